// SPDX-License-Identifier: MPL-2.0

package reconcile

import "fmt"

// Summary accumulates the outcome of a reconciliation run. It is purely
// observational: the counts never influence control flow.
type Summary struct {
	// Created counts files written where none existed.
	Created int
	// Overwritten counts existing files replaced under --force.
	Overwritten int
	// Updated counts in-place text edits (README pointer, source header,
	// manifest license field).
	Updated int
	// Skipped counts operations that were no-ops (destination exists and
	// force not set, or content already up to date).
	Skipped int
	// Failed counts operations that reported an error.
	Failed int
}

// String renders the summary as a single human-readable line.
func (s *Summary) String() string {
	return fmt.Sprintf("%d created, %d overwritten, %d updated, %d skipped, %d failed",
		s.Created, s.Overwritten, s.Updated, s.Skipped, s.Failed)
}

// Changed reports whether the run modified anything on disk.
func (s *Summary) Changed() bool {
	return s.Created+s.Overwritten+s.Updated > 0
}
