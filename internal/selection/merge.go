package selection

// Fields holds optional overrides for Merge. Nil fields keep the current
// value.
type Fields struct {
	AnchorKey    *string
	AnchorOffset *int
	FocusKey     *string
	FocusOffset  *int
	IsBackward   *bool
	HasFocus     *bool
}

// Ptr returns a pointer to v, for filling Fields.
func Ptr[T any](v T) *T {
	return &v
}

// Merge returns a selection with the given fields overridden.
// If no override differs from the current value the receiver is returned
// unchanged.
func (s *Selection) Merge(f Fields) *Selection {
	next := *s
	if f.AnchorKey != nil {
		next.anchorKey = *f.AnchorKey
	}
	if f.AnchorOffset != nil {
		next.anchorOffset = *f.AnchorOffset
	}
	if f.FocusKey != nil {
		next.focusKey = *f.FocusKey
	}
	if f.FocusOffset != nil {
		next.focusOffset = *f.FocusOffset
	}
	if f.IsBackward != nil {
		next.isBackward = *f.IsBackward
	}
	if f.HasFocus != nil {
		next.hasFocus = *f.HasFocus
	}

	if next == *s {
		return s
	}
	return &next
}

// WithFocus returns the selection with its focus flag set.
func (s *Selection) WithFocus(hasFocus bool) *Selection {
	return s.Merge(Fields{HasFocus: &hasFocus})
}
