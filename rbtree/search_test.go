package rbtree

import (
	"math/rand"
	"testing"
)

func TestFind(t *testing.T) {
	tr := newPairTree()
	if tr.Find(pair{strict: 1}) != nil {
		t.Fatalf("find on an empty tree returned a node")
	}
	nodes := make(map[int]*Node[pair])
	rng := rand.New(rand.NewSource(5))
	for _, k := range rng.Perm(100) {
		n := NewNode(pair{strict: k, weak: k % 7})
		nodes[k] = n
		tr.Insert(n)
	}
	for k, n := range nodes {
		if got := tr.Find(pair{strict: k}); got != n {
			t.Fatalf("find(%d) returned the wrong node", k)
		}
	}
	if tr.Find(pair{strict: 100}) != nil {
		t.Fatalf("find returned a node for an absent key")
	}
}

func TestNearestMatchBoundaries(t *testing.T) {
	// Weak keys 0,1,1,3,3,4 under distinct strict keys. The queries
	// reason about the weak order only.
	tr := newPairTree()
	weaks := []int{0, 1, 1, 3, 3, 4}
	nodes := make([]*Node[pair], len(weaks))
	for i, w := range weaks {
		nodes[i] = NewNode(pair{strict: i, weak: w})
		tr.Insert(nodes[i])
	}

	if got := tr.RightmostLE(pair{weak: 3}); got == nil || got.Item().weak != 3 {
		t.Fatalf("rightmost-le(3) = %v, want a weak-3 node", got)
	}
	// Two nodes tie at weak 1; the rightmost one wins.
	if got := tr.RightmostLE(pair{weak: 1}); got != nodes[2] {
		t.Fatalf("rightmost-le(1) did not pass the tie to reach the rightmost node")
	}
	if got := tr.RightmostLE(pair{weak: 5}); got != nodes[5] {
		t.Fatalf("rightmost-le(5) should return the greatest node")
	}
	if got := tr.RightmostLE(pair{weak: -1}); got != nil {
		t.Fatalf("rightmost-le(-1) = %v, want nil", got)
	}

	if got := tr.LeftmostGE(pair{weak: 2}); got == nil || got.Item().weak != 3 {
		t.Fatalf("leftmost-ge(2) = %v, want a weak-3 node", got)
	}
	if got := tr.LeftmostGE(pair{weak: 1}); got != nodes[1] {
		t.Fatalf("leftmost-ge(1) did not return the leftmost of the tied nodes")
	}
	if got := tr.LeftmostGE(pair{weak: -1}); got != nodes[0] {
		t.Fatalf("leftmost-ge(-1) should return the least node")
	}
	if got := tr.LeftmostGE(pair{weak: 5}); got != nil {
		t.Fatalf("leftmost-ge(5) = %v, want nil", got)
	}
}

// lexCmp orders by the weak key first and breaks ties on the strict key.
// With this strict order every weak-equal run is contiguous in tree order,
// which pins down exactly which node each nearest-match query returns.
func lexCmp(a, b pair) int {
	if c := cmpInt(a.weak, b.weak); c != 0 {
		return c
	}
	return cmpInt(a.strict, b.strict)
}

func TestNearestMatchAfterErase(t *testing.T) {
	// Mixed insert, erase and query script over (strict, weak) pairs
	// with weak ties. The probes reuse erased items; only their keys
	// matter.
	tr := New(lexCmp, weakCmp)
	items := []pair{
		{0, 2}, {1, 1}, {2, 3}, {3, 1}, {4, 3}, {5, 4}, {6, 0},
	}
	nodes := make([]*Node[pair], len(items))
	for i, it := range items {
		nodes[i] = NewNode(it)
		if !tr.Insert(nodes[i]) {
			t.Fatalf("insert %v failed", it)
		}
	}
	tr.Delete(nodes[0])
	tr.Delete(nodes[6])
	checkTree(t, tr)

	// Remaining weak keys: 1,1,3,3,4.
	if got := tr.RightmostLE(items[2]); got != nodes[4] {
		t.Fatalf("rightmost-le(3) = %v, want (4,3)", got)
	}
	if got := tr.RightmostLE(items[4]); got != nodes[4] {
		t.Fatalf("rightmost-le(3) = %v, want (4,3)", got)
	}
	if got := tr.RightmostLE(items[6]); got != nil {
		t.Fatalf("rightmost-le(0) = %v, want nil", got)
	}
	if got := tr.RightmostLE(items[0]); got != nodes[3] {
		t.Fatalf("rightmost-le(2) = %v, want (3,1)", got)
	}

	tr.Delete(nodes[5])
	checkTree(t, tr)

	// Remaining weak keys: 1,1,3,3.
	if got := tr.LeftmostGE(items[1]); got != nodes[1] {
		t.Fatalf("leftmost-ge(1) = %v, want (1,1)", got)
	}
	if got := tr.LeftmostGE(items[3]); got != nodes[1] {
		t.Fatalf("leftmost-ge(1) = %v, want (1,1)", got)
	}
	if got := tr.LeftmostGE(items[5]); got != nil {
		t.Fatalf("leftmost-ge(4) = %v, want nil", got)
	}
	if got := tr.LeftmostGE(items[0]); got != nodes[2] {
		t.Fatalf("leftmost-ge(2) = %v, want (2,3)", got)
	}
}

func TestWeakQueriesIgnoreProbeStrictKey(t *testing.T) {
	// The weak key coarsens the strict key two-to-one. The probe's
	// strict field must play no part in the weak queries.
	tr := newPairTree()
	nodes := make([]*Node[pair], 10)
	for i := range nodes {
		nodes[i] = NewNode(pair{strict: i, weak: i / 2})
		tr.Insert(nodes[i])
	}
	if got := tr.RightmostLE(pair{strict: -999, weak: 2}); got != nodes[5] {
		t.Fatalf("rightmost-le(2) = %v, want strict 5", got)
	}
	if got := tr.LeftmostGE(pair{strict: 999, weak: 2}); got != nodes[4] {
		t.Fatalf("leftmost-ge(2) = %v, want strict 4", got)
	}
}
