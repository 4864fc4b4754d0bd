package reconcile

import (
	"github.com/dshills/blocksel/internal/document"
	"github.com/dshills/blocksel/internal/offsetkey"
)

// endpoint is one resolved side of the selection.
type endpoint struct {
	blockKey    string
	leaf        document.Leaf
	intraOffset int // Offset within leaf
	blockOffset int // leaf.Start + intraOffset
}

// resolve decodes key, looks up its leaf, and computes the block offset.
func resolve(src document.TreeSource, which Endpoint, key string, intraOffset int) (endpoint, error) {
	if intraOffset < 0 {
		return endpoint{}, &EndpointError{Endpoint: which, Key: key, Err: ErrNegativeOffset}
	}

	path, err := offsetkey.Decode(key)
	if err != nil {
		return endpoint{}, &EndpointError{Endpoint: which, Key: key, Err: err}
	}

	leaf, ok := document.LookupLeaf(src, path)
	if !ok {
		return endpoint{}, &EndpointError{Endpoint: which, Key: key, Err: ErrLeafNotFound}
	}

	return endpoint{
		blockKey:    path.BlockKey,
		leaf:        leaf,
		intraOffset: intraOffset,
		blockOffset: leaf.Start + intraOffset,
	}, nil
}
