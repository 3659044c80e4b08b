package rbtree

// Aggregator maintains caller-defined per-subtree values across
// mutations. The tree invokes it at precise points during insertion,
// deletion and replacement; callers never invoke it directly. Every
// stored aggregate must be a pure function of the node's own payload
// and the aggregates stored at its two children.
type Aggregator[T any] interface {
	// Propagate recomputes n's aggregate from its children, then each
	// ancestor's in turn, stopping at stop (exclusive) or past the
	// root. A nil n is a no-op.
	Propagate(n, stop *Node[T])

	// Copy carries old's stored aggregate over to repl verbatim when
	// repl takes old's structural position. The children have not
	// changed yet at that instant, so recomputing would be wrong.
	Copy(old, repl *Node[T])

	// Rotate recomputes the aggregates of a rotated pair, old now a
	// child of top, from their already-correct children.
	Rotate(old, top *Node[T])
}

type noopAggregator[T any] struct{}

func (noopAggregator[T]) Propagate(_, _ *Node[T]) {}
func (noopAggregator[T]) Copy(_, _ *Node[T])      {}
func (noopAggregator[T]) Rotate(_, _ *Node[T])    {}

// Callbacks derives a full Aggregator from one recompute function plus
// one copy function, which is all most augmentations need.
type Callbacks[T any] struct {
	// Update recomputes n's aggregate from its children's stored
	// aggregates. It runs for every node on a propagation path, so a
	// freshly linked node needs no aggregate priming beforehand.
	Update func(n *Node[T])

	// Clone copies the stored aggregate from old's payload to repl's.
	Clone func(old, repl *Node[T])
}

func (c Callbacks[T]) Propagate(n, stop *Node[T]) {
	for n != nil && n != stop {
		c.Update(n)
		n = n.parent
	}
}

func (c Callbacks[T]) Copy(old, repl *Node[T]) {
	c.Clone(old, repl)
}

func (c Callbacks[T]) Rotate(old, top *Node[T]) {
	c.Update(old)
	c.Update(top)
}
