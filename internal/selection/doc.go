// Package selection defines the canonical document-level selection record.
//
// A Selection names its two endpoints by block key and block-relative
// offset:
//
//   - Anchor: where the selection started
//   - Focus: where it currently extends to
//
// IsBackward reports whether the focus precedes the anchor in document
// order. Selections are immutable and handled by pointer. Updates go
// through Merge, which returns the receiver itself when nothing changes so
// callers can detect no-ops with a pointer comparison.
package selection
