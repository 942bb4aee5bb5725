// SPDX-License-Identifier: MPL-2.0

package config

// Package-level overrides. These exist so the cmd layer can inject the
// --config flag value and tests can redirect the config directory without
// touching the real user environment.
var (
	configFilePathOverride string
	configDirOverride      string
)

// SetConfigFilePathOverride sets a custom config file path (from the
// --config flag). An empty string clears the override.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// SetConfigDirOverride sets a custom config directory. Intended for tests.
// An empty string clears the override.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
