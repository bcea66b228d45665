// Package config handles the application's TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
)

const (
	// AppName is the application name used for config and data directories
	AppName = "takt"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// DataDir is the directory holding the storage blob. Empty means
	// the platform config directory for the app.
	DataDir string `toml:"data_dir"`
	// ExportDir is where CSV exports are written. Empty means the
	// current working directory.
	ExportDir string `toml:"export_dir"`
	// FenceLabel is the fenced-code-block tag marking tracker regions
	// in markdown documents.
	FenceLabel string `toml:"fence_label"`
}

// DefaultConfig returns a Config with the defaults used when no config
// file exists.
func DefaultConfig() Config {
	return Config{
		DataDir:    "",
		ExportDir:  "",
		FenceLabel: "time-tracker",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file at path, returning defaults when
// the file does not exist. A present-but-invalid file is an error, not
// a silent fallback.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.FenceLabel == "" {
		cfg.FenceLabel = DefaultConfig().FenceLabel
	}

	return cfg, nil
}

// ResolveDataDir expands and returns the configured data directory,
// falling back to the platform config directory for the app.
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return homedir.Expand(c.DataDir)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName), nil
}

// ResolveExportDir expands and returns the configured export directory,
// falling back to the current working directory.
func (c Config) ResolveExportDir() (string, error) {
	if c.ExportDir != "" {
		return homedir.Expand(c.ExportDir)
	}
	return os.Getwd()
}
