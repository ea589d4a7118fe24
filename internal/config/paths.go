// Package config manages embassy-init configuration and its location on disk.
//
// Configuration is an optional YAML file holding defaults for the init
// command and the tool's external collaborators. The default location is
// <user config dir>/embassy-init/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by embassy-init.
type Paths struct {
	// Root is the base directory for embassy-init configuration
	Root string

	// Config is the path to the config file
	Config string
}

// DefaultPaths returns the default paths for embassy-init.
// Paths can be overridden with environment variables:
// - EMBASSY_INIT_CONFIG: Override the config file path
// - EMBASSY_INIT_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("EMBASSY_INIT_ROOT")
	if root == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user config directory: %w", err)
		}
		root = filepath.Join(dir, "embassy-init")
	}

	cfg := os.Getenv("EMBASSY_INIT_CONFIG")
	if cfg == "" {
		cfg = filepath.Join(root, "config.yaml")
	}

	return &Paths{
		Root:   root,
		Config: cfg,
	}, nil
}
