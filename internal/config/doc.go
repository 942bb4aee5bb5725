// SPDX-License-Identifier: MPL-2.0

// Package config handles crateops configuration using Viper.
//
// Configuration is resolved from three layers, later layers overriding
// earlier ones:
//
//  1. built-in defaults
//  2. an optional TOML config file (XDG config dir, or --config override)
//  3. environment variables (CRATEOPS_TEMPLATE_DIR, CRATEOPS_OWNER)
//
// Command-line flags are applied on top by the cmd layer; this package never
// reads flags itself.
package config
