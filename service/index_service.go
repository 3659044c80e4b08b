package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/raidixlab/extentindex/api/pb"
	"github.com/raidixlab/extentindex/extentmap"
	"github.com/raidixlab/extentindex/infra/kafka"
	"github.com/raidixlab/extentindex/infra/memory"
	"github.com/raidixlab/extentindex/infra/outbox"
	"github.com/raidixlab/extentindex/infra/sequence"
	"github.com/raidixlab/extentindex/infra/wal"
)

/*
IndexService is the ONLY write entry point into the index.

All coordination between:
- domain (extentmap)
- infra (memory, sequence, wal, outbox)
- snapshot
happens here. One mutex serializes every mutation and query; the tree
itself carries no locks.
*/

type IndexService struct {
	mu        sync.Mutex
	idx       *extentmap.Map
	pool      *memory.Pool[extentmap.Extent]
	seqGen    *sequence.Sequencer
	wal       *wal.WAL
	outbox    *outbox.Outbox
	announcer *kafka.Producer
	volume    string
}

// NewIndexService wires all dependencies.
// No globals. No magic. announcer may be nil.
func NewIndexService(
	idx *extentmap.Map,
	pool *memory.Pool[extentmap.Extent],
	seqGen *sequence.Sequencer,
	w *wal.WAL,
	ob *outbox.Outbox,
	announcer *kafka.Producer,
	volume string,
) *IndexService {
	return &IndexService{
		idx:       idx,
		pool:      pool,
		seqGen:    seqGen,
		wal:       w,
		outbox:    ob,
		announcer: announcer,
		volume:    volume,
	}
}

// ExtentInfo is a detached copy of one mapping, safe to hold after the
// service lock is released.
type ExtentInfo struct {
	Start  uint64
	Blocks uint64
	Phys   uint64
	Seq    uint64
}

// End returns the first logical block past the extent.
func (e ExtentInfo) End() uint64 { return e.Start + e.Blocks }

// Translate returns the physical block backing a logical block the
// extent covers.
func (e ExtentInfo) Translate(block uint64) uint64 {
	return e.Phys + (block - e.Start)
}

func infoOf(e *extentmap.Extent) ExtentInfo {
	return ExtentInfo{Start: e.Start, Blocks: e.Blocks, Phys: e.Phys, Seq: e.Seq}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// InsertExtent maps blocks logical blocks at start onto phys. It
// returns the generation sequence assigned to the mapping.
func (s *IndexService) InsertExtent(start, blocks, phys uint64) (uint64, error) {
	if blocks == 0 {
		return 0, extentmap.ErrZeroSize
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seqGen.Next()

	// 1️⃣ Allocate domain object
	e := s.pool.Get()
	e.Reset()
	e.Start, e.Blocks, e.Phys, e.Seq = start, blocks, phys, seq

	// 2️⃣ Make the change durable before applying it
	rec := wal.NewRecord(wal.RecordMap, seq, encodeMapPayload(start, blocks, phys))
	if err := s.wal.Append(rec); err != nil {
		s.pool.Put(e)
		return 0, fmt.Errorf("wal append: %w", err)
	}

	// 3️⃣ Apply to the index
	if err := s.idx.Insert(e); err != nil {
		s.pool.Put(e)
		return 0, fmt.Errorf("apply map seq=%d: %w", seq, err)
	}

	// 4️⃣ Queue the event for broadcast
	s.enqueueEvent(pb.EventMap, seq, e)

	return seq, nil
}

// RemoveExtent unmaps the generation identified by (start, seq).
func (s *IndexService) RemoveExtent(start, seq uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.idx.FindExact(start, seq)
	if e == nil {
		return fmt.Errorf("%w: start=%d seq=%d", extentmap.ErrNotMapped, start, seq)
	}

	changeSeq := s.seqGen.Next()

	rec := wal.NewRecord(wal.RecordUnmap, changeSeq, encodeUnmapPayload(start, seq))
	if err := s.wal.Append(rec); err != nil {
		return fmt.Errorf("wal append: %w", err)
	}

	if err := s.idx.Remove(e); err != nil {
		return fmt.Errorf("apply unmap seq=%d: %w", changeSeq, err)
	}

	s.enqueueEvent(pb.EventUnmap, changeSeq, e)

	s.pool.Put(e)
	return nil
}

// enqueueEvent is best-effort: the change is already durable, so a
// full outbox error is logged rather than unwound.
func (s *IndexService) enqueueEvent(typ uint32, changeSeq uint64, e *extentmap.Extent) {
	ev := &pb.ExtentEvent{
		Type: typ,
		Seq:  changeSeq,
		Extent: &pb.Extent{
			Start: e.Start, Blocks: e.Blocks, Phys: e.Phys, Seq: e.Seq,
		},
		Time: time.Now().UnixNano(),
	}
	payload, err := marshalMessage(ev)
	if err != nil {
		log.Printf("[service] event marshal failed seq=%d: %v", changeSeq, err)
		return
	}
	if err := s.outbox.Put(changeSeq, payload); err != nil {
		log.Printf("[service] outbox enqueue failed seq=%d: %v", changeSeq, err)
	}
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// LookupBlock resolves one logical block against the newest covering
// generation.
func (s *IndexService) LookupBlock(block uint64) (ExtentInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.idx.LookupBlock(block)
	if e == nil {
		return ExtentInfo{}, false
	}
	return infoOf(e), true
}

// NextMappedFrom returns the first mapping starting at or after block.
func (s *IndexService) NextMappedFrom(block uint64) (ExtentInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.idx.NextMappedFrom(block)
	if e == nil {
		return ExtentInfo{}, false
	}
	return infoOf(e), true
}

// Extents copies out every mapping starting at or after from, in
// (start, seq) order.
func (s *IndexService) Extents(from uint64) []ExtentInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ExtentInfo, 0, s.idx.Count())
	s.idx.Ascend(from, func(e *extentmap.Extent) bool {
		out = append(out, infoOf(e))
		return true
	})
	return out
}

// Stats reports the index size and the last issued sequence.
type Stats struct {
	Extents      int
	MappedBlocks uint64
	LastSeq      uint64
}

func (s *IndexService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Extents:      s.idx.Count(),
		MappedBlocks: s.idx.MappedBlocks(),
		LastSeq:      s.seqGen.Current(),
	}
}

//
// ──────────────────────────────────────────────────────────
// Announcements
// ──────────────────────────────────────────────────────────
//

// announce publishes a snapshot notice on the direct producer path.
// Loss is fine: the next snapshot republishes.
func (s *IndexService) announce(seq uint64) {
	if s.announcer == nil {
		return
	}

	st := s.Stats()
	msg := &pb.SnapshotAnnouncement{
		Volume:       s.volume,
		Seq:          seq,
		Extents:      uint64(st.Extents),
		MappedBlocks: st.MappedBlocks,
		Created:      time.Now().UnixNano(),
	}
	payload, err := marshalMessage(msg)
	if err != nil {
		log.Printf("[service] announce marshal failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.announcer.Send(ctx, []byte(s.volume), payload); err != nil {
		log.Printf("[service] snapshot announce failed: %v", err)
	}
}
