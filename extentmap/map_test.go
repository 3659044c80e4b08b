package extentmap

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestLookupBlock(t *testing.T) {
	m := New()
	for _, e := range []*Extent{
		NewExtent(0, 8, 1000, 1),
		NewExtent(16, 4, 2000, 2),
		NewExtent(64, 32, 3000, 3),
	} {
		if err := m.Insert(e); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	if e := m.LookupBlock(0); e == nil || e.Phys != 1000 {
		t.Fatalf("lookup(0) = %+v", e)
	}
	if e := m.LookupBlock(7); e == nil || e.Translate(7) != 1007 {
		t.Fatalf("lookup(7) = %+v", e)
	}
	if e := m.LookupBlock(8); e != nil {
		t.Fatalf("lookup(8) hit a hole: %+v", e)
	}
	if e := m.LookupBlock(15); e != nil {
		t.Fatalf("lookup(15) hit a hole: %+v", e)
	}
	if e := m.LookupBlock(19); e == nil || e.Phys != 2000 {
		t.Fatalf("lookup(19) = %+v", e)
	}
	if e := m.LookupBlock(20); e != nil {
		t.Fatalf("lookup(20) past extent end: %+v", e)
	}
	if e := m.LookupBlock(95); e == nil || e.Translate(95) != 3031 {
		t.Fatalf("lookup(95) = %+v", e)
	}
	if e := m.LookupBlock(200); e != nil {
		t.Fatalf("lookup(200) past everything: %+v", e)
	}
}

func TestGenerationShadowing(t *testing.T) {
	m := New()
	old := NewExtent(100, 10, 5000, 1)
	if err := m.Insert(old); err != nil {
		t.Fatalf("insert old: %v", err)
	}
	newer := NewExtent(100, 5, 6000, 2)
	if err := m.Insert(newer); err != nil {
		t.Fatalf("insert newer generation: %v", err)
	}

	// Both generations are indexed; lookups see only the newest.
	if m.Count() != 2 {
		t.Fatalf("count = %d", m.Count())
	}
	if e := m.LookupBlock(102); e != newer {
		t.Fatalf("lookup(102) = %+v, want the newer generation", e)
	}
	// The old generation still covers block 107, but it is shadowed.
	if e := m.LookupBlock(107); e != nil {
		t.Fatalf("lookup(107) = %+v, want shadowed miss", e)
	}

	// Dropping the newer generation re-exposes the old one.
	if err := m.Remove(newer); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if e := m.LookupBlock(107); e != old {
		t.Fatalf("lookup(107) after remove = %+v, want the old generation", e)
	}
}

func TestNextMappedFrom(t *testing.T) {
	m := New()
	m.Insert(NewExtent(10, 5, 0, 1))
	m.Insert(NewExtent(40, 5, 0, 2))

	if e := m.NextMappedFrom(0); e == nil || e.Start != 10 {
		t.Fatalf("next(0) = %+v", e)
	}
	if e := m.NextMappedFrom(10); e == nil || e.Start != 10 {
		t.Fatalf("next(10) = %+v", e)
	}
	if e := m.NextMappedFrom(11); e == nil || e.Start != 40 {
		t.Fatalf("next(11) = %+v", e)
	}
	if e := m.NextMappedFrom(41); e != nil {
		t.Fatalf("next(41) = %+v, want nil", e)
	}
}

func TestInsertErrors(t *testing.T) {
	m := New()
	if err := m.Insert(NewExtent(0, 0, 0, 1)); !errors.Is(err, ErrZeroSize) {
		t.Fatalf("zero-length insert: %v", err)
	}
	e := NewExtent(5, 5, 0, 7)
	if err := m.Insert(e); err != nil {
		t.Fatalf("insert: %v", err)
	}
	dup := NewExtent(5, 9, 1, 7)
	if err := m.Insert(dup); !errors.Is(err, ErrExists) {
		t.Fatalf("duplicate insert: %v", err)
	}
	if dup.Mapped() {
		t.Fatalf("rejected extent reports mapped")
	}
}

func TestRemoveErrors(t *testing.T) {
	m := New()
	e := NewExtent(5, 5, 0, 1)
	if err := m.Remove(e); !errors.Is(err, ErrNotMapped) {
		t.Fatalf("remove of unmapped: %v", err)
	}
	m.Insert(e)
	if err := m.Remove(e); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if e.Mapped() {
		t.Fatalf("removed extent reports mapped")
	}
	if err := m.Remove(e); !errors.Is(err, ErrNotMapped) {
		t.Fatalf("second remove: %v", err)
	}
}

func TestMappedBlocksAggregate(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(13))
	m := New()
	extents := make([]*Extent, n)
	var want uint64
	for i := range extents {
		blocks := uint64(rng.Intn(64) + 1)
		extents[i] = NewExtent(uint64(i*100), blocks, uint64(i*1000), uint64(i))
		if err := m.Insert(extents[i]); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		want += blocks
	}
	if got := m.MappedBlocks(); got != want {
		t.Fatalf("mapped blocks %d, want %d", got, want)
	}

	for _, i := range rng.Perm(n)[:n/2] {
		m.Remove(extents[i])
		want -= extents[i].Blocks
	}
	if got := m.MappedBlocks(); got != want {
		t.Fatalf("mapped blocks %d after removals, want %d", got, want)
	}
	if m.Count() != n/2 {
		t.Fatalf("count = %d, want %d", m.Count(), n/2)
	}
}

func TestAscend(t *testing.T) {
	m := New()
	for i := 0; i < 10; i++ {
		m.Insert(NewExtent(uint64(i*10), 5, 0, uint64(i)))
	}
	var starts []uint64
	m.Ascend(35, func(e *Extent) bool {
		starts = append(starts, e.Start)
		return len(starts) < 3
	})
	if len(starts) != 3 || starts[0] != 40 || starts[2] != 60 {
		t.Fatalf("ascend(35) = %v", starts)
	}
}

func TestClearRelease(t *testing.T) {
	m := New()
	extents := make([]*Extent, 30)
	for i := range extents {
		extents[i] = NewExtent(uint64(i*10), 5, 0, uint64(i))
		m.Insert(extents[i])
	}
	released := 0
	m.Clear(func(e *Extent) { released++ })
	if released != 30 {
		t.Fatalf("released %d of 30", released)
	}
	if m.Count() != 0 || m.MappedBlocks() != 0 {
		t.Fatalf("count %d blocks %d after clear", m.Count(), m.MappedBlocks())
	}
	for i, e := range extents {
		if e.Mapped() {
			t.Fatalf("extent %d still mapped after clear", i)
		}
	}
	// Cleared extents are reusable after a reset.
	extents[0].Reset()
	extents[0].Start, extents[0].Blocks, extents[0].Seq = 7, 3, 99
	if err := m.Insert(extents[0]); err != nil {
		t.Fatalf("reinsert after clear: %v", err)
	}
	if e := m.LookupBlock(8); e != extents[0] {
		t.Fatalf("lookup after reinsert = %+v", e)
	}
}

func TestFindExact(t *testing.T) {
	m := New()
	a := NewExtent(50, 5, 0, 1)
	b := NewExtent(50, 5, 0, 2)
	m.Insert(a)
	m.Insert(b)
	if got := m.FindExact(50, 1); got != a {
		t.Fatalf("find(50,1) = %+v", got)
	}
	if got := m.FindExact(50, 2); got != b {
		t.Fatalf("find(50,2) = %+v", got)
	}
	if got := m.FindExact(50, 3); got != nil {
		t.Fatalf("find(50,3) = %+v, want nil", got)
	}
}

func TestDump(t *testing.T) {
	m := New()
	m.Insert(NewExtent(0, 4, 100, 1))
	m.Insert(NewExtent(8, 4, 200, 2))
	var buf bytes.Buffer
	m.Dump(&buf)
	if buf.Len() == 0 {
		t.Fatalf("dump wrote nothing")
	}
}
