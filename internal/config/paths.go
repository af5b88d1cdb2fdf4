// Package config manages pathoverlap configuration and its file location.
//
// The configuration file lives under a root directory, ~/.pathoverlap/ by
// default. The root can be moved with PATHOVERLAP_ROOT, and the file itself
// can be pointed at directly with PATHOVERLAP_CONFIG or the --config flag.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvRoot overrides the root directory.
	EnvRoot = "PATHOVERLAP_ROOT"

	// EnvConfig overrides the config file path.
	EnvConfig = "PATHOVERLAP_CONFIG"
)

// Paths contains the filesystem paths used by pathoverlap.
type Paths struct {
	// Root is the base directory for pathoverlap data (default: ~/.pathoverlap)
	Root string

	// Config is the path to the config file
	Config string
}

// DefaultPaths returns the default paths for pathoverlap.
// Paths can be overridden with environment variables:
// - PATHOVERLAP_ROOT: Override the root directory
// - PATHOVERLAP_CONFIG: Override the config file (takes precedence over the root)
func DefaultPaths() (*Paths, error) {
	root := os.Getenv(EnvRoot)
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".pathoverlap")
	}

	cfg := os.Getenv(EnvConfig)
	if cfg == "" {
		cfg = filepath.Join(root, "config.yaml")
	}

	return &Paths{
		Root:   root,
		Config: cfg,
	}, nil
}
