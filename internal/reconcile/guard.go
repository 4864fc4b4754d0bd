package reconcile

import "github.com/dshills/blocksel/internal/selection"

// matchesCurrent reports whether both endpoints already sit where the
// current selection says they do.
func matchesCurrent(current *selection.Selection, anchor, focus endpoint) bool {
	return current.AnchorKey() == anchor.blockKey &&
		current.AnchorOffset() == anchor.blockOffset &&
		current.FocusKey() == focus.blockKey &&
		current.FocusOffset() == focus.blockOffset
}
