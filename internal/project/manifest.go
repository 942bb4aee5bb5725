// SPDX-License-Identifier: MPL-2.0

package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type (
	// Manifest is the subset of Cargo.toml that crateops reads.
	Manifest struct {
		Package PackageSection `toml:"package"`
	}

	// PackageSection is the [package] table of the manifest.
	PackageSection struct {
		Name    string `toml:"name"`
		License string `toml:"license"`
	}
)

// ReadManifest parses the manifest in dir. Fields crateops does not care
// about are ignored, but the file must be valid TOML.
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestName)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	m := &Manifest{}
	if err := toml.Unmarshal(content, m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

// SetManifestLicense updates the license field of the manifest in dir,
// preserving the rest of the file byte-for-byte. The edit is a targeted
// line patch rather than a re-marshal so that user formatting, comments and
// table order survive. Returns true when the file content changed.
func SetManifestLicense(dir, license string) (bool, error) {
	path := filepath.Join(dir, ManifestName)
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	patched, changed := PatchLicenseLine(string(content), license)
	if !changed {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

// PatchLicenseLine rewrites the license assignment inside the [package]
// table of manifest content. If the table has a license line it is replaced;
// otherwise one is inserted directly after the [package] header. Content
// without a [package] table is returned unchanged.
//
// The second return value reports whether the output differs from the input,
// so repeated application with the same license is a no-op.
func PatchLicenseLine(content, license string) (string, bool) {
	assignment := fmt.Sprintf("license = %q", license)
	lines := strings.Split(content, "\n")

	inPackage := false
	packageHeader := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			inPackage = trimmed == "[package]"
			if inPackage {
				packageHeader = i
			}
			continue
		}
		if !inPackage {
			continue
		}
		if key, _, ok := strings.Cut(trimmed, "="); ok && strings.TrimSpace(key) == "license" {
			if trimmed == assignment {
				return content, false
			}
			lines[i] = assignment
			return strings.Join(lines, "\n"), true
		}
	}

	if packageHeader < 0 {
		return content, false
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:packageHeader+1]...)
	out = append(out, assignment)
	out = append(out, lines[packageHeader+1:]...)
	return strings.Join(out, "\n"), true
}
