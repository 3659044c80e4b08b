package rbtree

// Find returns the resident node comparing equal to item under the
// strict order, or nil. Absence is a normal outcome, not a fault.
func (t *Tree[T]) Find(item T) *Node[T] {
	n := t.root
	for n != nil {
		c := t.strict(item, n.item)
		switch {
		case c < 0:
			n = n.child[left]
		case c > 0:
			n = n.child[right]
		default:
			return n
		}
	}
	return nil
}

// RightmostLE returns the rightmost resident node whose item is less
// than or weakly equal to item under the weak order, or nil.
//
// The weak order may tie nodes the strict order separates, so the
// descent never stops at a match: it records the candidate and keeps
// going right, where an equal or smaller node may still sit.
func (t *Tree[T]) RightmostLE(item T) *Node[T] {
	var best *Node[T]
	n := t.root
	for n != nil {
		if t.weak(n.item, item) <= 0 {
			best = n
			n = n.child[right]
		} else {
			n = n.child[left]
		}
	}
	return best
}

// LeftmostGE returns the leftmost resident node whose item is greater
// than or weakly equal to item under the weak order, or nil. The mirror
// of RightmostLE: record and keep going left.
func (t *Tree[T]) LeftmostGE(item T) *Node[T] {
	var best *Node[T]
	n := t.root
	for n != nil {
		if t.weak(n.item, item) >= 0 {
			best = n
			n = n.child[left]
		} else {
			n = n.child[right]
		}
	}
	return best
}
