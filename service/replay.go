package service

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/raidixlab/extentindex/extentmap"
	"github.com/raidixlab/extentindex/infra/memory"
	"github.com/raidixlab/extentindex/infra/sequence"
	"github.com/raidixlab/extentindex/infra/wal"
	"github.com/raidixlab/extentindex/snapshot"
)

// RestoreFromSnapshot rebuilds the index from the newest image plus the
// log tail past it. With no image on disk it degrades to a full replay.
func RestoreFromSnapshot(
	snapDir, walDir string,
	idx *extentmap.Map,
	pool *memory.Pool[extentmap.Extent],
	seqGen *sequence.Sequencer,
) error {
	fromSeq, err := snapshot.Load(filepath.Join(snapDir, snapshot.FileName), idx, pool)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if fromSeq > 0 {
		log.Printf("[service] snapshot loaded (%d extents, seq = %d)", idx.Count(), fromSeq)
	}
	return ReplayFromWAL(walDir, fromSeq, idx, pool, seqGen)
}

/*
ReplayFromWAL rebuilds in-memory state from the change log.

IMPORTANT:
- This MUST run before accepting traffic
- The outbox is NOT replayed
- fromSeq is the loaded snapshot's sequence. Records at or below it
  are already in the image and are skipped, so a log that still
  carries pre-snapshot segments replays cleanly.
*/

func ReplayFromWAL(
	walDir string,
	fromSeq uint64,
	idx *extentmap.Map,
	pool *memory.Pool[extentmap.Extent],
	seqGen *sequence.Sequencer,
) error {
	lastSeq, err := wal.Replay(walDir, func(rec *wal.Record) error {
		if rec.Seq <= fromSeq {
			return nil
		}

		switch rec.Type {
		case wal.RecordMap:
			start, blocks, phys, err := decodeMapPayload(rec.Data)
			if err != nil {
				return fmt.Errorf("record seq=%d: %w", rec.Seq, err)
			}
			e := pool.Get()
			e.Reset()
			e.Start, e.Blocks, e.Phys, e.Seq = start, blocks, phys, rec.Seq
			if err := idx.Insert(e); err != nil {
				pool.Put(e)
				return fmt.Errorf("replay map seq=%d: %w", rec.Seq, err)
			}

		case wal.RecordUnmap:
			start, gen, err := decodeUnmapPayload(rec.Data)
			if err != nil {
				return fmt.Errorf("record seq=%d: %w", rec.Seq, err)
			}
			e := idx.FindExact(start, gen)
			if e == nil {
				return fmt.Errorf("replay unmap seq=%d: no extent start=%d seq=%d", rec.Seq, start, gen)
			}
			if err := idx.Remove(e); err != nil {
				return fmt.Errorf("replay unmap seq=%d: %w", rec.Seq, err)
			}
			pool.Put(e)

		default:
			return fmt.Errorf("record seq=%d: unknown type %d", rec.Seq, rec.Type)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Resume sequencing AFTER replay. An empty tail must not rewind
	// below the snapshot.
	if lastSeq < fromSeq {
		lastSeq = fromSeq
	}
	seqGen.Reset(lastSeq)

	log.Printf("[service] wal replay complete (last seq = %d)", lastSeq)
	return nil
}
