// SPDX-License-Identifier: MPL-2.0

package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleManifest = `# top comment
[package]
name = "demo"
version = "0.1.0"
license = "Apache-2.0"
edition = "2021"

[dependencies]
serde = "1"
`

func TestReadManifest(t *testing.T) {
	t.Parallel()

	t.Run("parses package section", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeManifest(t, dir, sampleManifest)

		m, err := ReadManifest(dir)
		if err != nil {
			t.Fatalf("ReadManifest() returned error: %v", err)
		}
		if m.Package.Name != "demo" {
			t.Errorf("Package.Name = %q, want %q", m.Package.Name, "demo")
		}
		if m.Package.License != "Apache-2.0" {
			t.Errorf("Package.License = %q, want %q", m.Package.License, "Apache-2.0")
		}
	})

	t.Run("rejects malformed TOML", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeManifest(t, dir, "[package\nname=\n")

		if _, err := ReadManifest(dir); err == nil {
			t.Fatal("expected parse error for malformed manifest")
		}
	})
}

func TestPatchLicenseLine(t *testing.T) {
	t.Parallel()

	t.Run("replaces existing license line", func(t *testing.T) {
		t.Parallel()

		patched, changed := PatchLicenseLine(sampleManifest, "MIT")
		if !changed {
			t.Fatal("expected content to change")
		}
		if !strings.Contains(patched, "license = \"MIT\"") {
			t.Errorf("expected MIT license line, got:\n%s", patched)
		}
		if strings.Contains(patched, "Apache-2.0") {
			t.Errorf("old license line should be gone, got:\n%s", patched)
		}
		// Everything outside the license line is untouched.
		if !strings.Contains(patched, "# top comment") || !strings.Contains(patched, "serde = \"1\"") {
			t.Errorf("surrounding content was disturbed:\n%s", patched)
		}
	})

	t.Run("inserts when license line absent", func(t *testing.T) {
		t.Parallel()

		content := "[package]\nname = \"demo\"\n\n[dependencies]\n"
		patched, changed := PatchLicenseLine(content, "MIT")
		if !changed {
			t.Fatal("expected content to change")
		}
		wantPrefix := "[package]\nlicense = \"MIT\"\nname = \"demo\"\n"
		if !strings.HasPrefix(patched, wantPrefix) {
			t.Errorf("expected license inserted after [package] header, got:\n%s", patched)
		}
	})

	t.Run("idempotent when license already matches", func(t *testing.T) {
		t.Parallel()

		once, _ := PatchLicenseLine(sampleManifest, "MIT")
		twice, changed := PatchLicenseLine(once, "MIT")
		if changed {
			t.Error("second application should report no change")
		}
		if twice != once {
			t.Error("second application should be byte-identical")
		}
	})

	t.Run("ignores license keys outside package table", func(t *testing.T) {
		t.Parallel()

		content := "[badges]\nlicense = \"x\"\n"
		patched, changed := PatchLicenseLine(content, "MIT")
		if changed {
			t.Errorf("content without [package] should be unchanged, got:\n%s", patched)
		}
	})
}

func TestSetManifestLicense(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, sampleManifest)

	changed, err := SetManifestLicense(dir, "MIT")
	if err != nil {
		t.Fatalf("SetManifestLicense() returned error: %v", err)
	}
	if !changed {
		t.Error("expected first edit to report a change")
	}

	content, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatalf("failed to read manifest back: %v", err)
	}
	if !strings.Contains(string(content), "license = \"MIT\"") {
		t.Errorf("manifest not updated:\n%s", content)
	}

	changed, err = SetManifestLicense(dir, "MIT")
	if err != nil {
		t.Fatalf("second SetManifestLicense() returned error: %v", err)
	}
	if changed {
		t.Error("second edit with same license should be a no-op")
	}
}
