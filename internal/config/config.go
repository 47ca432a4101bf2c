// Package config handles the editor configuration file.
//
// Configuration lives in a single YAML file, by default
// $XDG_CONFIG_HOME/flacbatch/config.yaml (falling back to
// ~/.config/flacbatch/config.yaml). A missing file yields the defaults;
// the file is only written when explicitly saved.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config models the editor configuration.
type Config struct {
	// DefaultPadding is the padding size in bytes applied when the
	// padding override is enabled and no explicit value is given.
	DefaultPadding int `yaml:"default_padding"`

	// UsePadding enables the padding override by default on save.
	UsePadding bool `yaml:"use_padding"`

	// SortImports sorts imported file lists by path.
	SortImports bool `yaml:"sort_imports"`

	// VerifyWrites re-reads written files with an independent tag
	// reader after every save.
	VerifyWrites bool `yaml:"verify_writes"`

	// ShowHashes displays content hashes in the block list view.
	ShowHashes bool `yaml:"show_hashes"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DefaultPadding: 8192,
		SortImports:    true,
		ShowHashes:     true,
	}
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "flacbatch", "config.yaml"), nil
}

// Load reads the configuration from path. A missing file is not an
// error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories
// as needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
