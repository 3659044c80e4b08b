// Package rbtree implements an intrusive red-black tree carrying two
// orderings over the same nodes and an incremental per-subtree
// aggregation hook.
//
// The strict order is total and tie-free among resident nodes; it
// decides placement, uniqueness and binary search. The weak order may
// tie distinct nodes and serves only the two nearest-match queries,
// RightmostLE and LeftmostGE. Both comparators must be pure, stay
// consistent for the tree's lifetime, and agree on their primary key
// prefix, otherwise the nearest-match results are meaningless.
//
// The tree never allocates payloads. Callers own node memory, either by
// embedding a Node inside their own record or by heap-allocating one
// with NewNode, and drive every mutation through Insert, Delete and
// ReplaceNode. A node is resident between a successful Insert and the
// matching Delete; using a detached node where a resident one is
// required (or vice versa) is a contract violation that the tree
// detects only on a best-effort basis.
//
// Operations take O(log n) bounded time and never block. The tree holds
// no locks: concurrent mutation, or reads concurrent with a mutation,
// must be serialized by the caller. Read-only lookups may share a tree
// freely in the absence of writers.
package rbtree
