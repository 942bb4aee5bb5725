// SPDX-License-Identifier: MPL-2.0

package reconcile

import (
	"strings"
	"testing"
)

func TestPrependIfAbsent(t *testing.T) {
	t.Parallel()

	const marker = "See [DEVELOPMENT.md](DEVELOPMENT.md)"

	t.Run("prepends block and blank line", func(t *testing.T) {
		t.Parallel()

		existing := "# my project\n\nSome docs.\n"
		got, changed := PrependIfAbsent(existing, marker, marker)
		if !changed {
			t.Fatal("expected change")
		}
		want := marker + "\n\n" + existing
		if got != want {
			t.Errorf("PrependIfAbsent() = %q, want %q", got, want)
		}
		if !strings.HasSuffix(got, existing) {
			t.Error("prior content must be preserved byte-for-byte")
		}
	})

	t.Run("no-op when marker present", func(t *testing.T) {
		t.Parallel()

		existing := "intro\n" + marker + "\nrest\n"
		got, changed := PrependIfAbsent(existing, marker, marker)
		if changed {
			t.Error("expected no change when marker already present")
		}
		if got != existing {
			t.Error("content must be untouched on no-op")
		}
	})

	t.Run("idempotent across repeated application", func(t *testing.T) {
		t.Parallel()

		once, _ := PrependIfAbsent("body\n", marker, marker)
		twice, changed := PrependIfAbsent(once, marker, marker)
		if changed || twice != once {
			t.Error("second application must be a byte-identical no-op")
		}
	})
}

func TestAppendIfAbsent(t *testing.T) {
	t.Parallel()

	const block = "#![deny(clippy::unwrap_used)]\n#![deny(clippy::expect_used)]\n"

	t.Run("appends to content with trailing newline", func(t *testing.T) {
		t.Parallel()

		got, changed := AppendIfAbsent("fn main() {}\n", block)
		if !changed {
			t.Fatal("expected change")
		}
		if got != "fn main() {}\n"+block {
			t.Errorf("AppendIfAbsent() = %q", got)
		}
	})

	t.Run("inserts separating newline when missing", func(t *testing.T) {
		t.Parallel()

		got, _ := AppendIfAbsent("fn main() {}", block)
		if got != "fn main() {}\n"+block {
			t.Errorf("AppendIfAbsent() = %q", got)
		}
	})

	t.Run("no-op when block present", func(t *testing.T) {
		t.Parallel()

		existing := block + "\nfn main() {}\n"
		got, changed := AppendIfAbsent(existing, block)
		if changed || got != existing {
			t.Error("expected byte-identical no-op when block already present")
		}
	})

	t.Run("empty content gets just the block", func(t *testing.T) {
		t.Parallel()

		got, changed := AppendIfAbsent("", block)
		if !changed || got != block {
			t.Errorf("AppendIfAbsent(\"\") = %q, changed=%v", got, changed)
		}
	})
}
