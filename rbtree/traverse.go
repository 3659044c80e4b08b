package rbtree

// extreme returns the node farthest toward side s, or nil for an empty
// tree.
func (t *Tree[T]) extreme(s side) *Node[T] {
	n := t.root
	if n == nil {
		return nil
	}
	for n.child[s] != nil {
		n = n.child[s]
	}
	return n
}

// First returns the node with the least item under the strict order.
func (t *Tree[T]) First() *Node[T] { return t.extreme(left) }

// Last returns the node with the greatest item under the strict order.
func (t *Tree[T]) Last() *Node[T] { return t.extreme(right) }

// neighbor returns the in-order neighbor on side s: the extreme of the
// child subtree on that side, or else the first ancestor reached from
// the other side. Nil on a detached node or past the end.
func (n *Node[T]) neighbor(s side) *Node[T] {
	if !n.linked {
		return nil
	}
	if c := n.child[s]; c != nil {
		for c.child[s.flip()] != nil {
			c = c.child[s.flip()]
		}
		return c
	}
	parent := n.parent
	for parent != nil && n == parent.child[s] {
		n = parent
		parent = n.parent
	}
	return parent
}

// Next returns the in-order successor, or nil.
func (n *Node[T]) Next() *Node[T] { return n.neighbor(right) }

// Prev returns the in-order predecessor, or nil.
func (n *Node[T]) Prev() *Node[T] { return n.neighbor(left) }

// leftDeepest descends preferring left, then right, until a leaf.
func leftDeepest[T any](n *Node[T]) *Node[T] {
	for {
		if n.child[left] != nil {
			n = n.child[left]
		} else if n.child[right] != nil {
			n = n.child[right]
		} else {
			return n
		}
	}
}

// FirstPostorder returns the first node in children-before-parent
// order, or nil for an empty tree.
func (t *Tree[T]) FirstPostorder() *Node[T] {
	if t.root == nil {
		return nil
	}
	return leftDeepest(t.root)
}

// NextPostorder returns the postorder successor: the left-deepest node
// of the right sibling subtree if n is a left child with one, otherwise
// the parent. Both children of a node are always yielded before it.
func (n *Node[T]) NextPostorder() *Node[T] {
	parent := n.parent
	if parent != nil && n == parent.child[left] && parent.child[right] != nil {
		return leftDeepest(parent.child[right])
	}
	return parent
}

// ForEachAscending walks the items in increasing strict order until fn
// returns false.
func (t *Tree[T]) ForEachAscending(fn func(item T) bool) {
	for n := t.First(); n != nil; n = n.Next() {
		if !fn(n.item) {
			return
		}
	}
}

// ForEachDescending walks the items in decreasing strict order until fn
// returns false.
func (t *Tree[T]) ForEachDescending(fn func(item T) bool) {
	for n := t.Last(); n != nil; n = n.Prev() {
		if !fn(n.item) {
			return
		}
	}
}

// ForEachPostorder walks the nodes children-first until fn returns
// false. The successor is fetched before fn runs, so fn may delete or
// recycle the node it was handed.
func (t *Tree[T]) ForEachPostorder(fn func(n *Node[T]) bool) {
	n := t.FirstPostorder()
	for n != nil {
		next := n.NextPostorder()
		if !fn(n) {
			return
		}
		n = next
	}
}
