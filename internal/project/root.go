// SPDX-License-Identifier: MPL-2.0

// Package project locates the target project and reads and edits its
// manifest. A directory containing Cargo.toml is a project root.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName is the manifest file that marks a project root.
const ManifestName = "Cargo.toml"

// ErrNoManifest is returned when no manifest can be found.
var ErrNoManifest = errors.New("no Cargo.toml found")

// FindRoot walks up from start until it finds a directory containing the
// manifest, and returns that directory. It returns ErrNoManifest when the
// filesystem root is reached without a hit.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, ManifestName)); err == nil && info.Mode().IsRegular() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched from %s upward)", ErrNoManifest, start)
		}
		dir = parent
	}
}

// HasManifest reports whether dir itself contains the manifest.
func HasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ManifestName))
	return err == nil && info.Mode().IsRegular()
}
