// Package offsetkey encodes and decodes the composite identifiers that the
// render layer attaches to every rendered text leaf.
//
// An offset key names one leaf inside a block's leaf tree:
//
//	<blockKey>-<decoratorKey>-<leafKey>
//
// The decorator and leaf parts are non-negative integers indexing the
// block's leaf tree. Block keys may themselves contain the delimiter, so
// keys are decoded from the right.
//
// Keys are only meaningful for the leaf tree generation that produced them.
// After an edit regenerates a block's tree, an old key may still decode
// cleanly but no longer address any leaf.
package offsetkey
