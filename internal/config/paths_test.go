package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("returns paths based on home directory", func(t *testing.T) {
		t.Setenv(EnvRoot, "")
		t.Setenv(EnvConfig, "")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root == "" {
			t.Error("Root should not be empty")
		}
		if filepath.Base(paths.Root) != ".pathoverlap" {
			t.Errorf("Root should end with .pathoverlap, got: %s", paths.Root)
		}
		if paths.Config != filepath.Join(paths.Root, "config.yaml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}
	})

	t.Run("respects PATHOVERLAP_ROOT", func(t *testing.T) {
		customRoot := "/custom/pathoverlap"
		t.Setenv(EnvRoot, customRoot)
		t.Setenv(EnvConfig, "")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != customRoot {
			t.Errorf("Expected root %s, got %s", customRoot, paths.Root)
		}
		if paths.Config != filepath.Join(customRoot, "config.yaml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}
	})

	t.Run("PATHOVERLAP_CONFIG takes precedence", func(t *testing.T) {
		t.Setenv(EnvRoot, "/custom/pathoverlap")
		t.Setenv(EnvConfig, "/etc/pathoverlap.yaml")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Config != "/etc/pathoverlap.yaml" {
			t.Errorf("Config = %s, want /etc/pathoverlap.yaml", paths.Config)
		}
	})
}
