package reconcile

import "github.com/dshills/blocksel/internal/selection"

// update merges the resolved endpoints and direction into current.
func update(current *selection.Selection, anchor, focus endpoint, backward bool) *selection.Selection {
	return current.Merge(selection.Fields{
		AnchorKey:    &anchor.blockKey,
		AnchorOffset: &anchor.blockOffset,
		FocusKey:     &focus.blockKey,
		FocusOffset:  &focus.blockOffset,
		IsBackward:   &backward,
	})
}
