// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/crateops/crateops/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "crateops"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	// EnvTemplateDir is the environment variable naming the template checkout.
	EnvTemplateDir = "CRATEOPS_TEMPLATE_DIR"
	// EnvOwner is the environment variable naming the fallback license owner.
	EnvOwner = "CRATEOPS_OWNER"
)

// ConfigDir returns the crateops configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// ConfigFilePath returns the resolved config file path: the --config
// override if set, otherwise the default location under ConfigDir.
func ConfigFilePath() (string, error) {
	if configFilePathOverride != "" {
		return configFilePathOverride, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load reads configuration from the config file (if present) and the
// environment, layered over defaults. A missing config file is not an error;
// an unreadable or malformed one is.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("template_dir", defaults.TemplateDir)
	v.SetDefault("owner", defaults.Owner)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	// If a custom config file path is set via --config, use it exclusively
	// and require it to exist.
	if configFilePathOverride != "" {
		if !fileExists(configFilePathOverride) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFilePathOverride).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", configFilePathOverride)).
				BuildError()
		}
		v.SetConfigFile(configFilePathOverride)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFilePathOverride).
				WithSuggestion("Check that the file contains valid TOML syntax").
				WithSuggestion("See 'crateops config --help' for configuration options").
				Wrap(err).
				BuildError()
		}
	} else {
		path, err := ConfigFilePath()
		if err != nil {
			return nil, err
		}
		if fileExists(path) {
			v.SetConfigFile(path)
			v.SetConfigType(ConfigFileExt)
			if err := v.ReadInConfig(); err != nil {
				return nil, issue.NewErrorContext().
					WithOperation("load configuration").
					WithResource(path).
					WithSuggestion("Check that the file contains valid TOML syntax").
					WithSuggestion("See 'crateops config --help' for configuration options").
					Wrap(err).
					BuildError()
			}
		}
	}

	// Environment overrides file and defaults.
	if dir := os.Getenv(EnvTemplateDir); dir != "" {
		v.Set("template_dir", dir)
	}
	if owner := os.Getenv(EnvOwner); owner != "" {
		v.Set("owner", owner)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.WrapWithOperation(err, "parse configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
