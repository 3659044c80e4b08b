// Package extentmap maintains the logical-to-physical extent index of
// a thin-provisioned volume on top of the rbtree engine.
//
// Extents are keyed by starting logical block. Remaps of the same
// starting block coexist as generations distinguished by an allocation
// sequence: the tree's strict order is (Start, Seq) while the weak
// order compares Start alone, so a block lookup lands on the newest
// generation at or below the block in one descent. The index also
// keeps per-subtree extent counts and block sums, which makes the
// total mapped size an O(1) read.
package extentmap
