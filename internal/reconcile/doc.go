// Package reconcile translates a render-layer selection into a document
// selection.
//
// The render layer reports each selection endpoint as the offset key of the
// leaf the caret sits in plus an offset inside that leaf. Reconcile turns
// both endpoints into block key + block offset, works out whether the
// selection runs backward, and merges the result into the snapshot's current
// selection.
//
// Steps:
//
//   - Translate: decode each offset key, look up its leaf, and add the leaf's
//     start to the intra-leaf offset
//   - Guard: if both endpoints already match the current selection, return
//     the current *Selection itself
//   - Direction: compare leaves within one block, or scan block order across
//     blocks
//   - Update: merge the new endpoints and direction into the current
//     selection, keeping its other fields
//
// A Reconciler holds only configuration and is safe for concurrent use.
package reconcile
