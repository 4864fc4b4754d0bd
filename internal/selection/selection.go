package selection

import "fmt"

// Point is one endpoint of a selection.
type Point struct {
	Key    string // Block key
	Offset int    // Offset within the block
}

// String returns "key:offset".
func (p Point) String() string {
	return fmt.Sprintf("%s:%d", p.Key, p.Offset)
}

// Selection is an immutable document-level selection.
type Selection struct {
	anchorKey    string
	anchorOffset int
	focusKey     string
	focusOffset  int
	isBackward   bool
	hasFocus     bool
}

// New creates a forward selection without focus between anchor and focus.
func New(anchor, focus Point) *Selection {
	return &Selection{
		anchorKey:    anchor.Key,
		anchorOffset: anchor.Offset,
		focusKey:     focus.Key,
		focusOffset:  focus.Offset,
	}
}

// CreateEmpty creates a collapsed selection at the start of a block.
func CreateEmpty(blockKey string) *Selection {
	return New(Point{Key: blockKey}, Point{Key: blockKey})
}

func (s *Selection) AnchorKey() string { return s.anchorKey }
func (s *Selection) AnchorOffset() int { return s.anchorOffset }
func (s *Selection) FocusKey() string  { return s.focusKey }
func (s *Selection) FocusOffset() int  { return s.focusOffset }
func (s *Selection) IsBackward() bool  { return s.isBackward }
func (s *Selection) HasFocus() bool    { return s.hasFocus }

// Anchor returns the anchor endpoint.
func (s *Selection) Anchor() Point {
	return Point{Key: s.anchorKey, Offset: s.anchorOffset}
}

// Focus returns the focus endpoint.
func (s *Selection) Focus() Point {
	return Point{Key: s.focusKey, Offset: s.focusOffset}
}

// IsCollapsed returns true if anchor and focus are the same position.
func (s *Selection) IsCollapsed() bool {
	return s.anchorKey == s.focusKey && s.anchorOffset == s.focusOffset
}

// Start returns the endpoint that comes first in document order.
func (s *Selection) Start() Point {
	if s.isBackward {
		return s.Focus()
	}
	return s.Anchor()
}

// End returns the endpoint that comes last in document order.
func (s *Selection) End() Point {
	if s.isBackward {
		return s.Anchor()
	}
	return s.Focus()
}

func (s *Selection) StartKey() string { return s.Start().Key }
func (s *Selection) StartOffset() int { return s.Start().Offset }
func (s *Selection) EndKey() string   { return s.End().Key }
func (s *Selection) EndOffset() int   { return s.End().Offset }

// HasEdgeWithin returns true if either endpoint lies in blockKey within
// [start, end].
func (s *Selection) HasEdgeWithin(blockKey string, start, end int) bool {
	if s.anchorKey == s.focusKey {
		if s.anchorKey != blockKey {
			return false
		}
		selStart, selEnd := s.StartOffset(), s.EndOffset()
		return (start <= selStart && selStart <= end) ||
			(start <= selEnd && selEnd <= end)
	}

	if blockKey != s.anchorKey && blockKey != s.focusKey {
		return false
	}
	offset := s.anchorOffset
	if blockKey == s.focusKey {
		offset = s.focusOffset
	}
	return start <= offset && end >= offset
}

// SamePosition returns true if both endpoints match other's.
// Direction and focus state are ignored.
func (s *Selection) SamePosition(other *Selection) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.anchorKey == other.anchorKey &&
		s.anchorOffset == other.anchorOffset &&
		s.focusKey == other.focusKey &&
		s.focusOffset == other.focusOffset
}

// Equal returns true if every field matches other's.
func (s *Selection) Equal(other *Selection) bool {
	if !s.SamePosition(other) {
		return false
	}
	if s == other {
		return true
	}
	return s.isBackward == other.isBackward && s.hasFocus == other.hasFocus
}

// String returns a human-readable representation of the selection.
func (s *Selection) String() string {
	return fmt.Sprintf("Anchor: %s, Focus: %s, Is Backward: %t, Has Focus: %t",
		s.Anchor(), s.Focus(), s.isBackward, s.hasFocus)
}
