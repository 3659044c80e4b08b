package extentmap

import "github.com/raidixlab/extentindex/rbtree"

// Extent maps Blocks logical blocks starting at Start onto physical
// blocks starting at Phys. Seq is the allocation sequence assigned when
// the mapping was created; among extents sharing a Start it
// distinguishes generations, newest last.
type Extent struct {
	Start  uint64
	Blocks uint64
	Phys   uint64
	Seq    uint64

	subCount  int
	subBlocks uint64
	node      rbtree.Node[*Extent]
}

// NewExtent returns an extent ready for indexing.
func NewExtent(start, blocks, phys, seq uint64) *Extent {
	e := &Extent{Start: start, Blocks: blocks, Phys: phys, Seq: seq}
	e.node.SetItem(e)
	return e
}

// Reset clears a recycled extent for reuse. The extent must not be
// indexed.
func (e *Extent) Reset() {
	*e = Extent{}
	e.node.SetItem(e)
}

// End returns the first logical block past the extent.
func (e *Extent) End() uint64 { return e.Start + e.Blocks }

// Contains reports whether block falls inside the extent.
func (e *Extent) Contains(block uint64) bool {
	return block >= e.Start && block < e.End()
}

// Translate returns the physical block backing a logical block the
// extent contains.
func (e *Extent) Translate(block uint64) uint64 {
	return e.Phys + (block - e.Start)
}

// Mapped reports whether the extent is currently indexed.
func (e *Extent) Mapped() bool { return !e.node.Detached() }
