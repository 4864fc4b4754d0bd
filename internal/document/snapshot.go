package document

import (
	"fmt"
	"iter"

	"github.com/dshills/blocksel/internal/offsetkey"
	"github.com/dshills/blocksel/internal/selection"
)

// Snapshot is an immutable view of editor state: content, the current
// selection, and each block's leaf tree.
type Snapshot struct {
	content   *Content
	selection *selection.Selection
	unit      Unit
}

// Option configures New.
type Option func(*options)

type options struct {
	unit     Unit
	validate bool
}

// WithUnit sets the unit leaf offsets are measured in. Defaults to UnitRune.
func WithUnit(u Unit) Option {
	return func(o *options) {
		o.unit = u
	}
}

// WithValidation enables or disables leaf tree and selection checks.
// Validation is on by default.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}

// WithoutValidation skips leaf tree and selection checks.
func WithoutValidation() Option {
	return WithValidation(false)
}

// New creates a snapshot. A nil selection collapses to the start of the
// first block.
func New(blocks []Block, sel *selection.Selection, opts ...Option) (*Snapshot, error) {
	o := options{unit: UnitRune, validate: true}
	for _, opt := range opts {
		opt(&o)
	}

	content, err := NewContent(blocks)
	if err != nil {
		return nil, err
	}
	if sel == nil {
		sel = selection.CreateEmpty(content.FirstBlock().Key)
	}

	if o.validate {
		for _, b := range content.Blocks() {
			if err := b.Tree.Validate(b.Key, b.Text, o.unit); err != nil {
				return nil, err
			}
		}
		if err := validateSelection(content, sel, o.unit); err != nil {
			return nil, err
		}
	}

	return &Snapshot{content: content, selection: sel, unit: o.unit}, nil
}

// validateSelection checks that both endpoints name a block and sit within
// its text.
func validateSelection(content *Content, sel *selection.Selection, unit Unit) error {
	for _, p := range []selection.Point{sel.Anchor(), sel.Focus()} {
		b, ok := content.Block(p.Key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrSelectionOutOfContent, p.Key)
		}
		if n := unit.Length(b.Text); p.Offset < 0 || p.Offset > n {
			return fmt.Errorf("%w: %s outside [0, %d]", ErrSelectionOffsetOutOfRange, p, n)
		}
	}
	return nil
}

// MustNew is like New but panics on error. Intended for fixtures and tests.
func MustNew(blocks []Block, sel *selection.Selection, opts ...Option) *Snapshot {
	s, err := New(blocks, sel, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Selection returns the current selection.
func (s *Snapshot) Selection() *selection.Selection {
	return s.selection
}

// Content returns the document content.
func (s *Snapshot) Content() *Content {
	return s.content
}

// Unit returns the unit offsets are measured in.
func (s *Snapshot) Unit() Unit {
	return s.unit
}

// BlockKeys yields block keys in document order.
func (s *Snapshot) BlockKeys() iter.Seq[string] {
	return s.content.BlockKeys()
}

// BlockTree returns the leaf tree of a block.
func (s *Snapshot) BlockTree(blockKey string) (LeafTree, bool) {
	b, ok := s.content.Block(blockKey)
	if !ok {
		return nil, false
	}
	return b.Tree, true
}

// WithSelection returns a snapshot carrying sel. The receiver is returned
// when sel is the selection it already holds.
func (s *Snapshot) WithSelection(sel *selection.Selection) *Snapshot {
	if sel == s.selection {
		return s
	}
	next := *s
	next.selection = sel
	return &next
}

// OffsetKeys lists the offset key of every leaf in document order.
func (s *Snapshot) OffsetKeys() []string {
	n := 0
	for _, b := range s.content.Blocks() {
		n += b.Tree.Len()
	}
	keys := make([]string, 0, n)
	for _, b := range s.content.Blocks() {
		for d, seg := range b.Tree {
			for l := range seg.Leaves {
				keys = append(keys, offsetkey.Encode(offsetkey.Path{
					BlockKey:     b.Key,
					DecoratorKey: d,
					LeafKey:      l,
				}))
			}
		}
	}
	return keys
}
