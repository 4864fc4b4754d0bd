package document

import (
	"fmt"
	"iter"
)

// Block is one top-level unit of content.
type Block struct {
	Key  string
	Text string
	Tree LeafTree
}

// Content is the ordered block sequence of a document.
type Content struct {
	blocks []Block
	index  map[string]int // key -> position, for Block lookups only
}

// NewContent creates content from blocks in document order.
// Keys must be non-empty and unique.
func NewContent(blocks []Block) (*Content, error) {
	if len(blocks) == 0 {
		return nil, ErrEmptyContent
	}
	c := &Content{
		blocks: make([]Block, len(blocks)),
		index:  make(map[string]int, len(blocks)),
	}
	for i, b := range blocks {
		b.Tree = b.Tree.Clone()
		c.blocks[i] = b
		if b.Key == "" {
			return nil, fmt.Errorf("block %d: %w", i, ErrEmptyBlockKey)
		}
		if _, dup := c.index[b.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBlockKey, b.Key)
		}
		c.index[b.Key] = i
	}
	return c, nil
}

// Len returns the number of blocks.
func (c *Content) Len() int {
	return len(c.blocks)
}

// Block returns the block with the given key.
func (c *Content) Block(key string) (Block, bool) {
	i, ok := c.index[key]
	if !ok {
		return Block{}, false
	}
	return c.blocks[i], true
}

// FirstBlock returns the first block of the document.
func (c *Content) FirstBlock() Block {
	return c.blocks[0]
}

// BlockKeys yields block keys in document order.
func (c *Content) BlockKeys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, b := range c.blocks {
			if !yield(b.Key) {
				return
			}
		}
	}
}

// Blocks yields blocks in document order.
func (c *Content) Blocks() iter.Seq2[int, Block] {
	return func(yield func(int, Block) bool) {
		for i, b := range c.blocks {
			if !yield(i, b) {
				return
			}
		}
	}
}
