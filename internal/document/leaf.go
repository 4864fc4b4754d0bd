package document

import (
	"fmt"
	"slices"

	"github.com/dshills/blocksel/internal/offsetkey"
)

// Leaf is the smallest rendered span of a block.
// Start is inclusive, End is exclusive: [Start, End).
type Leaf struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of units covered by the leaf.
func (l Leaf) Len() int {
	return l.End - l.Start
}

// SameSpan returns true if both leaves cover the same range.
func (l Leaf) SameSpan(other Leaf) bool {
	return l.Start == other.Start && l.End == other.End
}

// String returns a human-readable representation of the leaf.
func (l Leaf) String() string {
	return fmt.Sprintf("[%d:%d)", l.Start, l.End)
}

// Segment is the run of leaves produced by one decorator range.
type Segment struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Leaves []Leaf `json:"leaves"`
}

// LeafTree maps decorator index, then leaf index, to a Leaf.
type LeafTree []Segment

// Leaf returns the leaf at tree[decoratorKey].Leaves[leafKey].
// Out-of-range indexes report false.
func (t LeafTree) Leaf(decoratorKey, leafKey int) (Leaf, bool) {
	if decoratorKey < 0 || decoratorKey >= len(t) {
		return Leaf{}, false
	}
	leaves := t[decoratorKey].Leaves
	if leafKey < 0 || leafKey >= len(leaves) {
		return Leaf{}, false
	}
	return leaves[leafKey], true
}

// Len returns the total number of leaves in the tree.
func (t LeafTree) Len() int {
	n := 0
	for _, seg := range t {
		n += len(seg.Leaves)
	}
	return n
}

// Clone returns a deep copy of the tree.
func (t LeafTree) Clone() LeafTree {
	if t == nil {
		return nil
	}
	out := make(LeafTree, len(t))
	for i, seg := range t {
		seg.Leaves = slices.Clone(seg.Leaves)
		out[i] = seg
	}
	return out
}

// Validate checks the tree against the text it was built from.
// Segments must be ordered and non-overlapping, leaves inside a segment must
// be contiguous from the segment's Start to its End, and nothing may extend
// past the text's length in unit.
func (t LeafTree) Validate(blockKey, text string, unit Unit) error {
	length := unit.Length(text)
	prevEnd := 0

	for d, seg := range t {
		if seg.Start < prevEnd {
			return &TreeError{BlockKey: blockKey, Decorator: d, Leaf: -1,
				Reason: fmt.Sprintf("segment starts at %d before previous end %d", seg.Start, prevEnd)}
		}
		if seg.End < seg.Start {
			return &TreeError{BlockKey: blockKey, Decorator: d, Leaf: -1,
				Reason: fmt.Sprintf("segment end %d before start %d", seg.End, seg.Start)}
		}
		if seg.End > length {
			return &TreeError{BlockKey: blockKey, Decorator: d, Leaf: -1,
				Reason: fmt.Sprintf("segment end %d past text length %d", seg.End, length)}
		}
		if len(seg.Leaves) == 0 {
			return &TreeError{BlockKey: blockKey, Decorator: d, Leaf: -1, Reason: "segment has no leaves"}
		}

		next := seg.Start
		for l, leaf := range seg.Leaves {
			if leaf.Start != next {
				return &TreeError{BlockKey: blockKey, Decorator: d, Leaf: l,
					Reason: fmt.Sprintf("leaf starts at %d, expected %d", leaf.Start, next)}
			}
			if leaf.End < leaf.Start {
				return &TreeError{BlockKey: blockKey, Decorator: d, Leaf: l,
					Reason: fmt.Sprintf("leaf end %d before start %d", leaf.End, leaf.Start)}
			}
			next = leaf.End
		}
		if next != seg.End {
			return &TreeError{BlockKey: blockKey, Decorator: d, Leaf: -1,
				Reason: fmt.Sprintf("leaves end at %d, segment ends at %d", next, seg.End)}
		}
		prevEnd = seg.End
	}
	return nil
}

// SingleLeafTree returns the tree of an undecorated block: one segment
// holding one leaf over the whole text.
func SingleLeafTree(text string, unit Unit) LeafTree {
	n := unit.Length(text)
	return LeafTree{{Start: 0, End: n, Leaves: []Leaf{{Start: 0, End: n}}}}
}

// TreeSource provides leaf trees by block key.
type TreeSource interface {
	BlockTree(blockKey string) (LeafTree, bool)
}

// LookupLeaf resolves a decoded offset key to its leaf.
// A missing block tree, segment, or leaf all report false; stale keys are
// expected and are not errors.
func LookupLeaf(src TreeSource, p offsetkey.Path) (Leaf, bool) {
	tree, ok := src.BlockTree(p.BlockKey)
	if !ok {
		return Leaf{}, false
	}
	return tree.Leaf(p.DecoratorKey, p.LeafKey)
}
