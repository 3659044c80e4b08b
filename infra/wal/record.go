package wal

import "time"

// RecordType says what a record does to the extent index.
type RecordType uint8

const (
	// RecordMap adds an extent mapping.
	RecordMap RecordType = iota
	// RecordUnmap drops an extent mapping.
	RecordUnmap
)

// Record is one durable log entry. Seq comes from the volume sequencer
// and strictly increases across the whole log.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
