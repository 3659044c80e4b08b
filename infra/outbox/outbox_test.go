package outbox

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cockroachdb/pebble"
)

func openTest(t *testing.T, dir string) *Outbox {
	t.Helper()
	o, err := Open(dir)
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	return o
}

func TestLifecycle(t *testing.T) {
	o := openTest(t, t.TempDir())
	defer o.Close()

	for i := 1; i <= 3; i++ {
		if err := o.Put(uint64(i), []byte(fmt.Sprintf("event-%d", i))); err != nil {
			t.Fatalf("put %d: %v", i, err)
		}
	}

	var pending []uint64
	o.ScanPending(func(rec *Record) error {
		pending = append(pending, rec.Seq)
		if string(rec.Payload) != fmt.Sprintf("event-%d", rec.Seq) {
			t.Fatalf("seq %d payload %q", rec.Seq, rec.Payload)
		}
		return nil
	})
	if len(pending) != 3 || pending[0] != 1 || pending[2] != 3 {
		t.Fatalf("pending %v", pending)
	}

	// A SENT record stays pending until the broker confirms it.
	if err := o.MarkSent(2); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	if err := o.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	if err := o.MarkFailed(3); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	pending = pending[:0]
	o.ScanPending(func(rec *Record) error {
		pending = append(pending, rec.Seq)
		return nil
	})
	if len(pending) != 1 || pending[0] != 2 {
		t.Fatalf("pending after marks %v", pending)
	}

	rec, err := o.Get(2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateSent || rec.Retries != 1 || rec.LastAttempt == 0 {
		t.Fatalf("sent record %+v", rec)
	}
	if string(rec.Payload) != "event-2" {
		t.Fatalf("payload survived marking as %q", rec.Payload)
	}
}

func TestReopenKeepsRecords(t *testing.T) {
	dir := t.TempDir()

	o := openTest(t, dir)
	o.Put(7, []byte("durable"))
	o.MarkSent(7)
	if err := o.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	o = openTest(t, dir)
	defer o.Close()

	rec, err := o.Get(7)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if rec.State != StateSent || string(rec.Payload) != "durable" {
		t.Fatalf("record after reopen %+v", rec)
	}
}

func TestPurgeAcked(t *testing.T) {
	o := openTest(t, t.TempDir())
	defer o.Close()

	for i := 1; i <= 4; i++ {
		o.Put(uint64(i), []byte("x"))
	}
	o.MarkAcked(1)
	o.MarkAcked(3)

	n, err := o.PurgeAcked()
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 2 {
		t.Fatalf("purged %d records, want 2", n)
	}

	if _, err := o.Get(1); !errors.Is(err, pebble.ErrNotFound) {
		t.Fatalf("get purged record: %v", err)
	}
	if _, err := o.Get(2); err != nil {
		t.Fatalf("get kept record: %v", err)
	}
}

func TestScanByState(t *testing.T) {
	o := openTest(t, t.TempDir())
	defer o.Close()

	o.Put(1, []byte("a"))
	o.Put(2, []byte("b"))
	o.MarkFailed(2)

	var failed []uint64
	o.ScanByState(StateFailed, func(rec *Record) error {
		failed = append(failed, rec.Seq)
		return nil
	})
	if len(failed) != 1 || failed[0] != 2 {
		t.Fatalf("failed scan %v", failed)
	}
}
