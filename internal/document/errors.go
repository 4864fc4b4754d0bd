package document

import (
	"errors"
	"fmt"
)

// Errors returned when building or decoding snapshots.
var (
	// ErrEmptyContent indicates a snapshot without blocks.
	ErrEmptyContent = errors.New("content has no blocks")

	// ErrEmptyBlockKey indicates a block without a key.
	ErrEmptyBlockKey = errors.New("empty block key")

	// ErrDuplicateBlockKey indicates two blocks share a key.
	ErrDuplicateBlockKey = errors.New("duplicate block key")

	// ErrInvalidTree indicates a leaf tree violates its invariants.
	ErrInvalidTree = errors.New("invalid leaf tree")

	// ErrSelectionOutOfContent indicates the selection names an unknown block.
	ErrSelectionOutOfContent = errors.New("selection references unknown block")

	// ErrSelectionOffsetOutOfRange indicates a selection offset past its
	// block's text.
	ErrSelectionOffsetOutOfRange = errors.New("selection offset out of range")

	// ErrUnknownUnit indicates an unrecognized offset unit name.
	ErrUnknownUnit = errors.New("unknown offset unit")

	// ErrInvalidJSON indicates a malformed snapshot document.
	ErrInvalidJSON = errors.New("invalid snapshot json")
)

// TreeError describes where a leaf tree breaks its invariants.
type TreeError struct {
	BlockKey  string
	Decorator int // Segment index, -1 when not segment specific
	Leaf      int // Leaf index, -1 when not leaf specific
	Reason    string
}

func (e *TreeError) Error() string {
	if e == nil {
		return ""
	}
	loc := fmt.Sprintf("block %q", e.BlockKey)
	if e.Decorator >= 0 {
		loc += fmt.Sprintf(" segment %d", e.Decorator)
	}
	if e.Leaf >= 0 {
		loc += fmt.Sprintf(" leaf %d", e.Leaf)
	}
	return fmt.Sprintf("invalid leaf tree at %s: %s", loc, e.Reason)
}

// Is reports whether target is ErrInvalidTree.
func (e *TreeError) Is(target error) bool {
	return target == ErrInvalidTree
}
