package reconcile

import (
	"fmt"
	"iter"
)

// isBackward reports whether focus precedes anchor in document order.
//
// Within a block, leaf start order stands in for document order; two
// endpoints in the same leaf compare by intra-leaf offset. Across blocks the
// first of the two blocks found in block order decides.
func isBackward(snap Snapshot, anchor, focus endpoint) (bool, error) {
	if anchor.blockKey == focus.blockKey {
		if focus.leaf.SameSpan(anchor.leaf) {
			return focus.intraOffset < anchor.intraOffset, nil
		}
		return focus.leaf.Start < anchor.leaf.Start, nil
	}

	first, ok := firstOf(snap.BlockKeys(), anchor.blockKey, focus.blockKey)
	if !ok {
		return false, fmt.Errorf("%w: %q, %q", ErrBlockNotInContent, anchor.blockKey, focus.blockKey)
	}
	return first == focus.blockKey, nil
}

// firstOf returns whichever of a and b appears first in keys.
func firstOf(keys iter.Seq[string], a, b string) (string, bool) {
	for k := range keys {
		if k == a || k == b {
			return k, true
		}
	}
	return "", false
}
