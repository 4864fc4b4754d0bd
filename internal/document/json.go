package document

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/blocksel/internal/selection"
)

// JSON encodes the snapshot as
//
//	{"unit": ..., "blocks": [{"key", "text", "tree"}], "selection": {...}}
//
// The output is accepted by ParseJSON.
func (s *Snapshot) JSON() ([]byte, error) {
	doc := []byte(`{}`)
	var err error

	if doc, err = sjson.SetBytes(doc, "unit", s.unit.String()); err != nil {
		return nil, fmt.Errorf("encoding unit: %w", err)
	}
	if doc, err = sjson.SetRawBytes(doc, "blocks", []byte(`[]`)); err != nil {
		return nil, fmt.Errorf("encoding blocks: %w", err)
	}
	for _, b := range s.content.blocks {
		block := []byte(`{}`)
		if block, err = sjson.SetBytes(block, "key", b.Key); err != nil {
			return nil, fmt.Errorf("encoding block %q: %w", b.Key, err)
		}
		if block, err = sjson.SetBytes(block, "text", b.Text); err != nil {
			return nil, fmt.Errorf("encoding block %q: %w", b.Key, err)
		}
		tree := b.Tree
		if tree == nil {
			tree = LeafTree{}
		}
		if block, err = sjson.SetBytes(block, "tree", tree); err != nil {
			return nil, fmt.Errorf("encoding block %q tree: %w", b.Key, err)
		}
		if doc, err = sjson.SetRawBytes(doc, "blocks.-1", block); err != nil {
			return nil, fmt.Errorf("encoding block %q: %w", b.Key, err)
		}
	}

	return s.selection.AppendJSON(doc, "selection")
}

// ParseJSON decodes a snapshot document.
//
// Blocks without a key get a generated one. Blocks without a tree get a
// single undecorated leaf over their text. A missing "unit" member falls
// back to the WithUnit option; a present one overrides it. A missing
// selection collapses to the start of the first block.
func ParseJSON(data []byte, opts ...Option) (*Snapshot, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected object", ErrInvalidJSON)
	}

	o := options{unit: UnitRune, validate: true}
	for _, opt := range opts {
		opt(&o)
	}
	if u := root.Get("unit"); u.Exists() {
		unit, err := ParseUnit(u.String())
		if err != nil {
			return nil, err
		}
		opts = append(opts[:len(opts):len(opts)], WithUnit(unit))
		o.unit = unit
	}

	blocksJSON := root.Get("blocks")
	if !blocksJSON.IsArray() {
		return nil, fmt.Errorf("%w: blocks must be an array", ErrInvalidJSON)
	}

	seen := make(map[string]bool)
	blocksJSON.ForEach(func(_, b gjson.Result) bool {
		if k := b.Get("key").String(); k != "" {
			seen[k] = true
		}
		return true
	})

	var blocks []Block
	var parseErr error
	blocksJSON.ForEach(func(_, b gjson.Result) bool {
		block := Block{
			Key:  b.Get("key").String(),
			Text: b.Get("text").String(),
		}
		if block.Key == "" {
			block.Key = GenerateBlockKey(seen)
		}
		if t := b.Get("tree"); t.Exists() {
			block.Tree, parseErr = parseTree(block.Key, t)
			if parseErr != nil {
				return false
			}
		} else {
			block.Tree = SingleLeafTree(block.Text, o.unit)
		}
		blocks = append(blocks, block)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	var sel *selection.Selection
	if r := root.Get("selection"); r.Exists() {
		var err error
		sel, err = selection.FromResult(r)
		if err != nil {
			return nil, err
		}
	}

	return New(blocks, sel, opts...)
}

func parseTree(blockKey string, r gjson.Result) (LeafTree, error) {
	if !r.IsArray() {
		return nil, fmt.Errorf("%w: block %q tree must be an array", ErrInvalidJSON, blockKey)
	}
	var tree LeafTree
	for d, segJSON := range r.Array() {
		var seg Segment
		var err error
		if seg.Start, seg.End, err = parseSpan(segJSON); err != nil {
			return nil, fmt.Errorf("%w: block %q segment %d: %v", ErrInvalidJSON, blockKey, d, err)
		}
		leaves := segJSON.Get("leaves")
		if !leaves.IsArray() {
			return nil, fmt.Errorf("%w: block %q segment %d: leaves must be an array", ErrInvalidJSON, blockKey, d)
		}
		for l, leafJSON := range leaves.Array() {
			var leaf Leaf
			if leaf.Start, leaf.End, err = parseSpan(leafJSON); err != nil {
				return nil, fmt.Errorf("%w: block %q segment %d leaf %d: %v", ErrInvalidJSON, blockKey, d, l, err)
			}
			seg.Leaves = append(seg.Leaves, leaf)
		}
		tree = append(tree, seg)
	}
	return tree, nil
}

// parseSpan reads the start and end members of a segment or leaf.
func parseSpan(r gjson.Result) (start, end int, err error) {
	if start, err = wholeNumber(r, "start"); err != nil {
		return 0, 0, err
	}
	if end, err = wholeNumber(r, "end"); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// wholeNumber returns member name of r, which must be an integral JSON
// number.
func wholeNumber(r gjson.Result, name string) (int, error) {
	v := r.Get(name)
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%s must be a number, got %q", name, v.Raw)
	}
	if v.Num != math.Trunc(v.Num) || math.Abs(v.Num) > math.MaxInt32 {
		return 0, fmt.Errorf("%s must be a whole number, got %s", name, v.Raw)
	}
	return int(v.Num), nil
}
