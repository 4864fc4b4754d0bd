// Package document provides the read-only document model consumed by
// selection reconciliation.
//
// A Snapshot bundles three things owned by the surrounding editor:
//
//   - Content: the ordered blocks of the document
//   - the current Selection
//   - a LeafTree per block describing how the block's text was split into
//     rendered leaves
//
// A LeafTree is indexed first by decorator segment, then by leaf. Each Leaf
// carries block-relative Start and End offsets measured in the snapshot's
// Unit. Leaves inside a segment are contiguous and ordered by Start.
//
// Snapshots are immutable. Nothing in this package mutates a snapshot after
// New returns it; WithSelection produces a copy.
package document
