// Package outbox persists extent change events until a broker has
// confirmed them. Events are keyed by the change sequence number and
// move through NEW -> SENT -> ACKED (or FAILED), so a crash at any
// point leaves enough state to resume publishing without losing an
// event. Delivery is at-least-once; consumers dedupe on sequence.
package outbox

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

type Record struct {
	Seq         uint64
	State       State
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

const recordHeaderLen = 1 + 4 + 8

// binary encoding: [state:1][retries:4][lastAttempt:8][payload...]
func encodeRecord(r *Record) []byte {
	buf := make([]byte, recordHeaderLen+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	copy(buf[recordHeaderLen:], r.Payload)
	return buf
}

func decodeRecord(seq uint64, b []byte) (*Record, error) {
	if len(b) < recordHeaderLen {
		return nil, errors.New("invalid outbox record length")
	}
	return &Record{
		Seq:         seq,
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		// Copy: pebble values only live until the closer or the next
		// iterator step.
		Payload: append([]byte(nil), b[recordHeaderLen:]...),
	}, nil
}

// -------------------- Outbox --------------------

type Outbox struct {
	db *pebble.DB
}

func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &Outbox{db: db}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

// -------------------- API --------------------

// Put inserts a new entry (called by the index service after the
// change is applied). The payload is the wire-ready event.
func (o *Outbox) Put(seq uint64, payload []byte) error {
	rec := &Record{
		Seq:     seq,
		State:   StateNew,
		Payload: payload,
	}
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// MarkSent records a delivery attempt. It bumps the retry counter so
// the record reflects how many times the broker has seen it.
func (o *Outbox) MarkSent(seq uint64) error {
	return o.update(seq, func(r *Record) {
		r.State = StateSent
		r.Retries++
		r.LastAttempt = time.Now().UnixNano()
	})
}

// MarkAcked records broker confirmation.
func (o *Outbox) MarkAcked(seq uint64) error {
	return o.update(seq, func(r *Record) {
		r.State = StateAcked
	})
}

// MarkFailed parks a record that exhausted its retries.
func (o *Outbox) MarkFailed(seq uint64) error {
	return o.update(seq, func(r *Record) {
		r.State = StateFailed
	})
}

func (o *Outbox) update(seq uint64, mut func(*Record)) error {
	rec, err := o.Get(seq)
	if err != nil {
		return err
	}
	mut(rec)
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// Get returns the current record for a sequence number.
func (o *Outbox) Get(seq uint64) (*Record, error) {
	val, closer, err := o.db.Get(keyFor(seq))
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return decodeRecord(seq, val)
}

// Delete removes a record regardless of state.
func (o *Outbox) Delete(seq uint64) error {
	return o.db.Delete(keyFor(seq), pebble.Sync)
}

// -------------------- Scan --------------------

// ScanPending iterates NEW and SENT records in sequence order. A SENT
// record is still pending: the previous run may have crashed between
// marking and broker confirmation.
func (o *Outbox) ScanPending(fn func(rec *Record) error) error {
	return o.scan(func(rec *Record) error {
		if rec.State != StateNew && rec.State != StateSent {
			return nil
		}
		return fn(rec)
	})
}

// ScanByState iterates all records in the given state, in sequence
// order.
func (o *Outbox) ScanByState(state State, fn func(rec *Record) error) error {
	return o.scan(func(rec *Record) error {
		if rec.State != state {
			return nil
		}
		return fn(rec)
	})
}

func (o *Outbox) scan(fn func(rec *Record) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("event/"),
		UpperBound: []byte("event/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}

		rec, err := decodeRecord(seq, iter.Value())
		if err != nil {
			return err
		}

		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// PurgeAcked deletes every ACKED record and reports how many went.
// The retention job runs it after each snapshot.
func (o *Outbox) PurgeAcked() (int, error) {
	var seqs []uint64
	err := o.ScanByState(StateAcked, func(rec *Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, seq := range seqs {
		if err := o.db.Delete(keyFor(seq), pebble.Sync); err != nil {
			return 0, err
		}
	}
	return len(seqs), nil
}

// -------------------- Helpers --------------------

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("event/%020d", seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte("event/"))), "%d", &seq)
	return seq, err
}
