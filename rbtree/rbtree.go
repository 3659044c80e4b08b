package rbtree

// CompareFunc orders two payloads: negative when a precedes b, zero on a
// tie, positive when a follows b.
type CompareFunc[T any] func(a, b T) int

type color uint8

const (
	red color = iota
	black
)

// side indexes a child slot. The mirrored halves of the rebalancing case
// analysis differ only by this index, so each case is written once and
// parameterized by it.
type side uint8

const (
	left  side = 0
	right side = 1
)

func (s side) flip() side { return s ^ 1 }

// Node is the intrusive linkage unit. Embed one in your record, or
// allocate one with NewNode. The zero value is a detached node.
type Node[T any] struct {
	item   T
	parent *Node[T]
	child  [2]*Node[T]
	color  color
	linked bool
}

// NewNode returns a detached node carrying item.
func NewNode[T any](item T) *Node[T] {
	return &Node[T]{item: item}
}

// Item returns the payload the node carries.
func (n *Node[T]) Item() T { return n.item }

// SetItem rebinds the payload of a detached node. Rebinding a resident
// node silently corrupts the tree's orderings.
func (n *Node[T]) SetItem(item T) { n.item = item }

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.child[left] }

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.child[right] }

// Parent returns the parent, or nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Detached reports whether the node is outside any tree, either never
// inserted or already deleted.
func (n *Node[T]) Detached() bool { return !n.linked }

// childSide reports which slot of n's parent holds n. The parent must
// exist.
func (n *Node[T]) childSide() side {
	if n == n.parent.child[left] {
		return left
	}
	return right
}

func (n *Node[T]) detach() {
	n.parent = nil
	n.child[left] = nil
	n.child[right] = nil
	n.linked = false
}

func isBlack[T any](n *Node[T]) bool { return n == nil || n.color == black }

func isRed[T any](n *Node[T]) bool { return n != nil && n.color == red }

// Tree is the handle over one set of resident nodes. Create it with New
// or NewAugmented; the zero value is unusable.
type Tree[T any] struct {
	root   *Node[T]
	strict CompareFunc[T]
	weak   CompareFunc[T]
	aug    Aggregator[T]
	size   int
}

// New returns an empty unaugmented tree. The strict comparator decides
// placement and uniqueness; the weak comparator serves RightmostLE and
// LeftmostGE only. Both are required and must never change.
func New[T any](strict, weak CompareFunc[T]) *Tree[T] {
	return NewAugmented(strict, weak, nil)
}

// NewAugmented returns an empty tree whose mutations maintain the
// aggregates managed by aug. A nil aug selects the no-op aggregator.
func NewAugmented[T any](strict, weak CompareFunc[T], aug Aggregator[T]) *Tree[T] {
	if aug == nil {
		aug = noopAggregator[T]{}
	}
	return &Tree[T]{strict: strict, weak: weak, aug: aug}
}

// Len returns the number of resident nodes.
func (t *Tree[T]) Len() int { return t.size }

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// link attaches n as a red leaf in the slot the descent located.
// Rebalancing is the caller's job.
func (t *Tree[T]) link(n, parent *Node[T], s side) {
	n.parent = parent
	n.child[left] = nil
	n.child[right] = nil
	n.color = red
	n.linked = true
	if parent == nil {
		t.root = n
	} else {
		parent.child[s] = n
	}
}

// replaceChild points parent's slot for old at repl. A nil parent means
// old was the root.
func (t *Tree[T]) replaceChild(old, repl, parent *Node[T]) {
	if parent == nil {
		t.root = repl
	} else if parent.child[left] == old {
		parent.child[left] = repl
	} else {
		parent.child[right] = repl
	}
}

// rotate moves n down toward side d; its opposite child takes n's place.
// Colors are the caller's business. The aggregation rotate hook runs on
// every rotation so aggregates never need a full recompute.
func (t *Tree[T]) rotate(n *Node[T], d side) {
	up := n.child[d.flip()]
	n.child[d.flip()] = up.child[d]
	if up.child[d] != nil {
		up.child[d].parent = n
	}
	up.child[d] = n
	up.parent = n.parent
	if n.parent == nil {
		t.root = up
	} else {
		n.parent.child[n.childSide()] = up
	}
	n.parent = up
	t.aug.Rotate(n, up)
}

// Insert links n into the tree and rebalances. It returns false, leaving
// the tree untouched, when a resident node compares equal to n under the
// strict order, or when n itself is already resident.
func (t *Tree[T]) Insert(n *Node[T]) bool {
	if n.linked {
		return false
	}
	var (
		parent *Node[T]
		s      side
	)
	cur := t.root
	for cur != nil {
		c := t.strict(n.item, cur.item)
		if c == 0 {
			return false
		}
		parent = cur
		if c < 0 {
			s = left
		} else {
			s = right
		}
		cur = cur.child[s]
	}
	t.link(n, parent, s)
	t.insertFixup(n)
	t.aug.Propagate(n, nil)
	t.size++
	return true
}

// insertFixup restores the red-black invariants after n was linked as a
// red leaf. Three cases per side: red uncle recolors and moves the
// violation up; an inner grandchild is straightened by one rotation;
// the outer shape is resolved by rotating the parent over the
// grandparent.
func (t *Tree[T]) insertFixup(n *Node[T]) {
	for {
		parent := n.parent
		if parent == nil {
			n.color = black
			return
		}
		if parent.color == black {
			return
		}
		// The parent is red, so it is not the root and the grandparent
		// is black.
		gparent := parent.parent
		s := parent.childSide()
		uncle := gparent.child[s.flip()]
		if isRed(uncle) {
			parent.color = black
			uncle.color = black
			gparent.color = red
			n = gparent
			continue
		}
		if n == parent.child[s.flip()] {
			t.rotate(parent, s)
			parent = n
		}
		parent.color = black
		gparent.color = red
		t.rotate(gparent, s.flip())
		return
	}
}

// Delete removes n from the tree, rebalances, and leaves n detached.
// Deleting a node that is already detached is a no-op.
func (t *Tree[T]) Delete(n *Node[T]) {
	if !n.linked {
		return
	}
	rebalance := t.spliceOut(n)
	if rebalance != nil {
		t.eraseFixup(rebalance)
	}
	n.detach()
	t.size--
}

// spliceOut removes n structurally and returns the parent under which a
// black-height deficit remains, or nil when no color fixup is needed.
// Aggregates along the changed path are propagated here; fixup rotations
// patch the rest.
func (t *Tree[T]) spliceOut(n *Node[T]) *Node[T] {
	var rebalance, deepest *Node[T]

	lchild := n.child[left]
	rchild := n.child[right]
	switch {
	case lchild == nil:
		// At most a right child: promote it, keeping n's color. An
		// empty slot left by a black n is a deficit.
		parent := n.parent
		t.replaceChild(n, rchild, parent)
		if rchild != nil {
			rchild.parent = parent
			rchild.color = n.color
		} else if n.color == black {
			rebalance = parent
		}
		deepest = parent
	case rchild == nil:
		// Only a left child: it takes n's slot and color. The child of
		// a one-child node is red, so no deficit is possible.
		parent := n.parent
		lchild.parent = parent
		lchild.color = n.color
		t.replaceChild(n, lchild, parent)
		deepest = parent
	default:
		// Two children: the in-order successor takes n's position, and
		// the structural removal happens at the successor's old slot.
		succ := rchild
		var parent, child2 *Node[T]
		if succ.child[left] == nil {
			// The successor is n's right child; it keeps its own right
			// subtree and the deficit check happens directly under it.
			parent = succ
			child2 = succ.child[right]
			t.aug.Copy(n, succ)
		} else {
			for succ.child[left] != nil {
				parent = succ
				succ = succ.child[left]
			}
			child2 = succ.child[right]
			parent.child[left] = child2
			succ.child[right] = rchild
			rchild.parent = succ
			t.aug.Copy(n, succ)
			t.aug.Propagate(parent, succ)
		}
		succ.child[left] = lchild
		lchild.parent = succ
		wasBlack := succ.color == black
		succ.color = n.color
		succ.parent = n.parent
		t.replaceChild(n, succ, n.parent)
		if child2 != nil {
			child2.parent = parent
			child2.color = black
		} else if wasBlack {
			rebalance = parent
		}
		deepest = succ
	}

	t.aug.Propagate(deepest, nil)
	return rebalance
}

// eraseFixup resolves a black-height deficit sitting at a child slot of
// parent. The deficit node may be nil: right after a splice the vacated
// slot is empty, and comparing the nil node against parent's children
// still identifies the deficit side, since the sibling side kept its
// black height and cannot be empty.
func (t *Tree[T]) eraseFixup(parent *Node[T]) {
	var n *Node[T]
	for {
		var s side
		if n == parent.child[left] {
			s = left
		} else {
			s = right
		}
		sibling := parent.child[s.flip()]
		if sibling.color == red {
			// Case 1: red sibling rises above parent; the new sibling
			// is one of its black children.
			sibling.color = black
			parent.color = red
			t.rotate(parent, s)
			sibling = parent.child[s.flip()]
		}
		if isBlack(sibling.child[left]) && isBlack(sibling.child[right]) {
			// Case 2: recolor the sibling red, moving the deficit up to
			// parent. A red parent absorbs it.
			sibling.color = red
			if parent.color == red {
				parent.color = black
				return
			}
			n = parent
			parent = n.parent
			if parent == nil {
				return
			}
			continue
		}
		if isBlack(sibling.child[s.flip()]) {
			// Case 3: red near child rises above the sibling, producing
			// the red far child case 4 wants.
			sibling.child[s].color = black
			sibling.color = red
			t.rotate(sibling, s.flip())
			sibling = parent.child[s.flip()]
		}
		// Case 4: red far child. The sibling takes parent's color and
		// rises; the deficit is resolved.
		sibling.color = parent.color
		parent.color = black
		sibling.child[s.flip()].color = black
		t.rotate(parent, s)
		return
	}
}

// ReplaceNode splices repl into old's exact tree position, keeping old's
// parent, children and color, with no rebalancing. The stored aggregate
// is carried over verbatim; the subtree below has not changed. old must
// be resident and repl detached, otherwise the call is a no-op.
func (t *Tree[T]) ReplaceNode(old, repl *Node[T]) {
	if !old.linked || repl.linked {
		return
	}
	parent := old.parent
	repl.parent = parent
	repl.color = old.color
	repl.child[left] = old.child[left]
	repl.child[right] = old.child[right]
	repl.linked = true
	t.replaceChild(old, repl, parent)
	if repl.child[left] != nil {
		repl.child[left].parent = repl
	}
	if repl.child[right] != nil {
		repl.child[right].parent = repl
	}
	t.aug.Copy(old, repl)
	old.detach()
}

// Clear detaches every node and empties the tree. Payloads are not
// touched.
func (t *Tree[T]) Clear() {
	n := t.FirstPostorder()
	for n != nil {
		next := n.NextPostorder()
		n.detach()
		n = next
	}
	t.root = nil
	t.size = 0
}
