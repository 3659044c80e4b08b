package extentmap

import (
	"errors"
	"fmt"
	"io"

	"github.com/raidixlab/extentindex/rbtree"
)

var (
	// ErrExists means an extent with the same start and sequence is
	// already indexed.
	ErrExists = errors.New("extentmap: extent already mapped")
	// ErrNotMapped means the extent is not currently indexed.
	ErrNotMapped = errors.New("extentmap: extent not mapped")
	// ErrZeroSize rejects extents covering no blocks.
	ErrZeroSize = errors.New("extentmap: zero-length extent")
)

func strictOrder(a, b *Extent) int {
	switch {
	case a.Start < b.Start:
		return -1
	case a.Start > b.Start:
		return 1
	case a.Seq < b.Seq:
		return -1
	case a.Seq > b.Seq:
		return 1
	default:
		return 0
	}
}

func weakOrder(a, b *Extent) int {
	switch {
	case a.Start < b.Start:
		return -1
	case a.Start > b.Start:
		return 1
	default:
		return 0
	}
}

func updateAggregates(n *rbtree.Node[*Extent]) {
	e := n.Item()
	count, blocks := 1, e.Blocks
	if l := n.Left(); l != nil {
		count += l.Item().subCount
		blocks += l.Item().subBlocks
	}
	if r := n.Right(); r != nil {
		count += r.Item().subCount
		blocks += r.Item().subBlocks
	}
	e.subCount = count
	e.subBlocks = blocks
}

// Map is the extent index. It is not safe for concurrent use; the
// owning service serializes access.
type Map struct {
	tree *rbtree.Tree[*Extent]
}

// New returns an empty extent index.
func New() *Map {
	return &Map{
		tree: rbtree.NewAugmented(strictOrder, weakOrder, rbtree.Callbacks[*Extent]{
			Update: updateAggregates,
			Clone: func(old, repl *rbtree.Node[*Extent]) {
				repl.Item().subCount = old.Item().subCount
				repl.Item().subBlocks = old.Item().subBlocks
			},
		}),
	}
}

// Insert indexes e.
func (m *Map) Insert(e *Extent) error {
	if e.Blocks == 0 {
		return ErrZeroSize
	}
	e.node.SetItem(e)
	if !m.tree.Insert(&e.node) {
		return fmt.Errorf("%w: start=%d seq=%d", ErrExists, e.Start, e.Seq)
	}
	return nil
}

// Remove unindexes e, leaving it reusable.
func (m *Map) Remove(e *Extent) error {
	if e.node.Detached() {
		return fmt.Errorf("%w: start=%d seq=%d", ErrNotMapped, e.Start, e.Seq)
	}
	m.tree.Delete(&e.node)
	return nil
}

// LookupBlock returns the extent covering block. Only the newest
// generation whose start is nearest at or below block is consulted;
// coverage by an older, shadowed generation does not count.
func (m *Map) LookupBlock(block uint64) *Extent {
	probe := Extent{Start: block}
	n := m.tree.RightmostLE(&probe)
	if n == nil {
		return nil
	}
	if e := n.Item(); e.Contains(block) {
		return e
	}
	return nil
}

// NextMappedFrom returns the first extent starting at or after block,
// or nil. A hole scan pairs it with LookupBlock.
func (m *Map) NextMappedFrom(block uint64) *Extent {
	probe := Extent{Start: block}
	n := m.tree.LeftmostGE(&probe)
	if n == nil {
		return nil
	}
	return n.Item()
}

// FindExact returns the indexed extent with the given start and
// sequence, or nil.
func (m *Map) FindExact(start, seq uint64) *Extent {
	probe := Extent{Start: start, Seq: seq}
	n := m.tree.Find(&probe)
	if n == nil {
		return nil
	}
	return n.Item()
}

// Count returns the number of indexed extents.
func (m *Map) Count() int { return m.tree.Len() }

// MappedBlocks returns the total number of blocks covered by indexed
// extents, read from the root aggregate.
func (m *Map) MappedBlocks() uint64 {
	root := m.tree.Root()
	if root == nil {
		return 0
	}
	return root.Item().subBlocks
}

// Ascend walks extents in (start, seq) order, beginning at the first
// extent starting at or after from, until fn returns false.
func (m *Map) Ascend(from uint64, fn func(*Extent) bool) {
	probe := Extent{Start: from}
	for n := m.tree.LeftmostGE(&probe); n != nil; n = n.Next() {
		if !fn(n.Item()) {
			return
		}
	}
}

// Extents returns every indexed extent in ascending order.
func (m *Map) Extents() []*Extent {
	out := make([]*Extent, 0, m.tree.Len())
	m.tree.ForEachAscending(func(e *Extent) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Clear drops every extent from the index. When release is non-nil it
// runs for each extent, children before parents, before anything is
// detached; it must not reinsert, reset or otherwise touch the extent's
// linkage.
func (m *Map) Clear(release func(*Extent)) {
	if release != nil {
		m.tree.ForEachPostorder(func(n *rbtree.Node[*Extent]) bool {
			release(n.Item())
			return true
		})
	}
	m.tree.Clear()
}

// Dump writes the tree shape to w, one extent per line, children
// indented under parents.
func (m *Map) Dump(w io.Writer) {
	dumpNode(w, m.tree.Root(), 0)
}

func dumpNode(w io.Writer, n *rbtree.Node[*Extent], depth int) {
	if n == nil {
		return
	}
	dumpNode(w, n.Left(), depth+1)
	e := n.Item()
	fmt.Fprintf(w, "%*s[%d..%d) -> %d seq=%d sub=%d/%d\n",
		depth*2, "", e.Start, e.End(), e.Phys, e.Seq, e.subCount, e.subBlocks)
	dumpNode(w, n.Right(), depth+1)
}
