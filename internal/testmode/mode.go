// SPDX-License-Identifier: MPL-2.0

// Package testmode selects which test runner a CI job should invoke.
//
// The selection is driven by a single key in a small config file at the
// project root (test.env):
//
//	TEST_WITH=nextest
//
// The four recognized modes map to fixed cargo invocations; anything else is
// a fatal configuration error.
package testmode

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// ModeMiri runs the test suite under the miri memory-safety checker.
	ModeMiri Mode = "miri"
	// ModeCargo runs the standard cargo test command. This is the default
	// when the config file or the key is absent.
	ModeCargo Mode = "cargo"
	// ModeNextest runs the suite with the nextest parallel runner.
	ModeNextest Mode = "nextest"
	// ModeNothing skips testing entirely and succeeds immediately.
	ModeNothing Mode = "nothing"

	// ConfigFileName is the selector config file, relative to the project root.
	ConfigFileName = "test.env"

	// configKey is the key whose value selects the mode.
	configKey = "TEST_WITH"
)

// ErrUnknownMode is the sentinel error wrapped by UnknownModeError.
var ErrUnknownMode = errors.New("unknown test mode")

type (
	// Mode is the selected test-execution strategy. Matching is exact and
	// case-sensitive: "Miri" is not a mode.
	Mode string

	// UnknownModeError is returned when a Mode value is not one of the four
	// recognized modes.
	UnknownModeError struct {
		Value Mode
	}
)

// Modes returns the accepted mode values in declaration order.
func Modes() []Mode {
	return []Mode{ModeMiri, ModeCargo, ModeNextest, ModeNothing}
}

// Error implements the error interface.
func (e *UnknownModeError) Error() string {
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return fmt.Sprintf("unknown test mode %q (accepted values: %s)", e.Value, strings.Join(names, ", "))
}

// Unwrap returns ErrUnknownMode so callers can use errors.Is for programmatic detection.
func (e *UnknownModeError) Unwrap() error { return ErrUnknownMode }

// IsValid returns whether the Mode is one of the four recognized modes,
// and a list of validation errors if it is not.
func (m Mode) IsValid() (bool, []error) {
	switch m {
	case ModeMiri, ModeCargo, ModeNextest, ModeNothing:
		return true, nil
	default:
		return false, []error{&UnknownModeError{Value: m}}
	}
}

// String returns the string representation of the Mode.
func (m Mode) String() string { return string(m) }

// Command returns the argv for the mode's test runner. ModeNothing has no
// command; it returns nil.
func (m Mode) Command() []string {
	switch m {
	case ModeMiri:
		return []string{"cargo", "miri", "test"}
	case ModeCargo:
		return []string{"cargo", "test"}
	case ModeNextest:
		return []string{"cargo", "nextest", "run"}
	default:
		return nil
	}
}

// ParseConfig extracts the Mode from selector config file content.
// The last TEST_WITH line wins when the key is duplicated; surrounding
// whitespace and carriage returns are stripped. An absent key or an empty
// value yields ModeCargo. Lines that do not match the key (including
// #-prefixed comments) are ignored.
//
// The returned Mode is not validated; callers decide how to treat an
// unrecognized value.
func ParseConfig(content string) Mode {
	value := ""
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		rest, ok := strings.CutPrefix(line, configKey+"=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(rest)
	}
	if value == "" {
		return ModeCargo
	}
	return Mode(value)
}

// LoadFile reads the selector config file and returns the effective Mode.
// A missing file yields ModeCargo; any other read error is returned.
func LoadFile(path string) (Mode, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ModeCargo, nil
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseConfig(string(content)), nil
}
