// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTemplateDir is the sentinel error wrapped by InvalidTemplateDirError.
	ErrInvalidTemplateDir = errors.New("invalid template directory")
	// ErrInvalidOwner is the sentinel error wrapped by InvalidOwnerError.
	ErrInvalidOwner = errors.New("invalid owner name")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Config holds the crateops configuration.
	Config struct {
		// TemplateDir is the template checkout that `crateops sync` copies
		// from. Empty means unresolved; the sync command treats that as a
		// precondition failure.
		TemplateDir string `mapstructure:"template_dir"`

		// Owner is the fallback copyright-owner name used for license
		// generation when neither --name nor --private is given.
		Owner string `mapstructure:"owner"`

		// UI holds user interface preferences.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds user interface configuration.
	UIConfig struct {
		// Verbose enables verbose output.
		Verbose bool `mapstructure:"verbose"`
	}

	// InvalidTemplateDirError is returned when a template_dir value is
	// non-empty but whitespace-only.
	InvalidTemplateDirError struct {
		Value string
	}

	// InvalidOwnerError is returned when an owner value is non-empty but
	// whitespace-only.
	InvalidOwnerError struct {
		Value string
	}

	// InvalidConfigError aggregates all validation errors found in a Config.
	InvalidConfigError struct {
		Errors []error
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Error implements the error interface for InvalidTemplateDirError.
func (e *InvalidTemplateDirError) Error() string {
	return fmt.Sprintf("invalid template directory: value must not be whitespace-only (got %q)", e.Value)
}

// Unwrap returns ErrInvalidTemplateDir for errors.Is() compatibility.
func (e *InvalidTemplateDirError) Unwrap() error { return ErrInvalidTemplateDir }

// Error implements the error interface for InvalidOwnerError.
func (e *InvalidOwnerError) Error() string {
	return fmt.Sprintf("invalid owner name: value must not be whitespace-only (got %q)", e.Value)
}

// Unwrap returns ErrInvalidOwner for errors.Is() compatibility.
func (e *InvalidOwnerError) Unwrap() error { return ErrInvalidOwner }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// IsValid returns whether the Config is valid, and a list of validation
// errors if it is not. Empty values are valid: both fields are optional and
// resolved at the point of use.
func (c *Config) IsValid() (bool, []error) {
	var errs []error

	if c.TemplateDir != "" && strings.TrimSpace(c.TemplateDir) == "" {
		errs = append(errs, &InvalidTemplateDirError{Value: c.TemplateDir})
	}
	if c.Owner != "" && strings.TrimSpace(c.Owner) == "" {
		errs = append(errs, &InvalidOwnerError{Value: c.Owner})
	}

	if len(errs) > 0 {
		return false, errs
	}
	return true, nil
}

// Validate returns an InvalidConfigError aggregating all validation errors,
// or nil if the Config is valid.
func (c *Config) Validate() error {
	if ok, errs := c.IsValid(); !ok {
		return &InvalidConfigError{Errors: errs}
	}
	return nil
}
