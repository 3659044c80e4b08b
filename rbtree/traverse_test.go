package rbtree

import (
	"math/rand"
	"testing"
)

func TestInOrderAscending(t *testing.T) {
	const n = 300
	rng := rand.New(rand.NewSource(3))
	tr := newPairTree()
	for _, k := range rng.Perm(n) {
		tr.Insert(NewNode(pair{strict: k, weak: k}))
	}
	count := 0
	prev := -1
	for nd := tr.First(); nd != nil; nd = nd.Next() {
		if nd.Item().strict <= prev {
			t.Fatalf("in-order walk went from %d to %d", prev, nd.Item().strict)
		}
		prev = nd.Item().strict
		count++
	}
	if count != n {
		t.Fatalf("walked %d of %d nodes", count, n)
	}
}

func TestInOrderDescending(t *testing.T) {
	tr := newPairTree()
	for i := 0; i < 64; i++ {
		tr.Insert(NewNode(pair{strict: i, weak: i}))
	}
	want := 63
	for nd := tr.Last(); nd != nil; nd = nd.Prev() {
		if nd.Item().strict != want {
			t.Fatalf("descending walk got %d, want %d", nd.Item().strict, want)
		}
		want--
	}
	if want != -1 {
		t.Fatalf("descending walk stopped at %d", want)
	}
}

func TestEmptyTreeTraversal(t *testing.T) {
	tr := newPairTree()
	if tr.First() != nil || tr.Last() != nil || tr.FirstPostorder() != nil {
		t.Fatalf("empty tree yielded a node")
	}
}

func TestDetachedNodeNeighbors(t *testing.T) {
	n := NewNode(pair{strict: 1, weak: 1})
	if n.Next() != nil || n.Prev() != nil {
		t.Fatalf("detached node has neighbors")
	}
}

func TestWalkers(t *testing.T) {
	tr := newPairTree()
	for i := 0; i < 20; i++ {
		tr.Insert(NewNode(pair{strict: i, weak: i}))
	}
	var got []int
	tr.ForEachAscending(func(p pair) bool {
		got = append(got, p.strict)
		return true
	})
	if len(got) != 20 {
		t.Fatalf("ascending walker yielded %d items", len(got))
	}
	for i, k := range got {
		if k != i {
			t.Fatalf("ascending walker yielded %d at position %d", k, i)
		}
	}

	got = got[:0]
	tr.ForEachDescending(func(p pair) bool {
		got = append(got, p.strict)
		return len(got) < 5
	})
	if len(got) != 5 || got[0] != 19 || got[4] != 15 {
		t.Fatalf("descending walker with early stop yielded %v", got)
	}
}

func TestPostorderYieldsChildrenFirst(t *testing.T) {
	const n = 200
	rng := rand.New(rand.NewSource(9))
	tr := newPairTree()
	for _, k := range rng.Perm(n) {
		tr.Insert(NewNode(pair{strict: k, weak: k}))
	}
	seen := make(map[*Node[pair]]bool)
	count := 0
	for nd := tr.FirstPostorder(); nd != nil; nd = nd.NextPostorder() {
		if l := nd.Left(); l != nil && !seen[l] {
			t.Fatalf("node yielded before its left child")
		}
		if r := nd.Right(); r != nil && !seen[r] {
			t.Fatalf("node yielded before its right child")
		}
		seen[nd] = true
		count++
	}
	if count != n {
		t.Fatalf("postorder walked %d of %d nodes", count, n)
	}
}

func TestPostorderTeardown(t *testing.T) {
	// Recycling each node as it is yielded must never touch a node that
	// was already recycled: the successor is computed first and parents
	// come after both children.
	const n = 150
	rng := rand.New(rand.NewSource(11))
	tr := newPairTree()
	for _, k := range rng.Perm(n) {
		tr.Insert(NewNode(pair{strict: k, weak: k}))
	}
	count := 0
	tr.ForEachPostorder(func(nd *Node[pair]) bool {
		nd.detach()
		nd.SetItem(pair{strict: -1, weak: -1})
		count++
		return true
	})
	if count != n {
		t.Fatalf("teardown visited %d of %d nodes", count, n)
	}
}
