package config

import "errors"

// ErrInvalidConfig indicates the config file or a config value is invalid.
var ErrInvalidConfig = errors.New("invalid config")
