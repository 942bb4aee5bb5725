// SPDX-License-Identifier: MPL-2.0

package reconcile

import "strings"

// PrependIfAbsent returns content with block prepended (followed by a blank
// line) unless marker is already present as a substring. The second return
// value reports whether the content changed; when false the input is
// returned untouched, which makes repeated application idempotent.
//
// The existing content is preserved byte-for-byte after the inserted block.
func PrependIfAbsent(content, marker, block string) (string, bool) {
	if strings.Contains(content, marker) {
		return content, false
	}
	return block + "\n\n" + content, true
}

// AppendIfAbsent returns content with block appended unless the block is
// already present as a substring. A newline separates the existing content
// from the block when the content does not already end with one.
func AppendIfAbsent(content, block string) (string, bool) {
	if strings.Contains(content, block) {
		return content, false
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + block, true
}
