package service

import (
	"context"
	"log"
	"time"

	"github.com/raidixlab/extentindex/snapshot"
)

// SnapshotNow writes one image and returns the sequence it covers.
func (s *IndexService) SnapshotNow(w *snapshot.Writer) (uint64, error) {
	s.mu.Lock()
	seq := s.seqGen.Current()
	err := w.Write(seq, s.idx)
	s.mu.Unlock()
	if err != nil {
		return 0, err
	}
	return seq, nil
}

// StartSnapshotJob periodically images the index, then retires log
// segments and acked outbox records the image covers.
func (s *IndexService) StartSnapshotJob(
	ctx context.Context,
	dir string,
	interval time.Duration,
) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-t.C:
				seq, err := s.SnapshotNow(w)
				if err != nil {
					log.Printf("[service] snapshot failed: %v", err)
					continue
				}

				// Truncate the change log after snapshot. The lock
				// keeps segment rotation out of Append's way.
				s.mu.Lock()
				_ = s.wal.TruncateBefore(seq)
				s.mu.Unlock()

				// GC the outbox (acked only)
				if n, err := s.outbox.PurgeAcked(); err == nil && n > 0 {
					log.Printf("[service] purged %d acked events", n)
				}

				s.announce(seq)
			}
		}
	}()
}
