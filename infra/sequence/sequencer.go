package sequence

import "sync/atomic"

// Sequencer issues the strictly monotonic sequence numbers shared by
// WAL records and extent allocations. One instance per volume; the
// same number never comes out twice except after an explicit Reset
// during replay.
type Sequencer struct {
	next atomic.Uint64
}

// New returns a sequencer whose next issued value is start+1. A fresh
// volume starts at zero; replay restarts from the last applied record.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next issues the next sequence number.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence number.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset rewinds the sequencer after replay. Never call it while
// writers are active.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
