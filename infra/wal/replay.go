package wal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

var (
	// ErrBadCRC marks a frame whose checksum does not match.
	ErrBadCRC = errors.New("wal: crc mismatch")
	// ErrOutOfOrder marks a sequence number that does not increase.
	ErrOutOfOrder = errors.New("wal: non-monotonic sequence")
)

type ReplayHandler func(*Record) error

// Replay feeds every record to fn in log order and returns the last
// sequence applied. A torn frame at the very end of the log, left by
// an interrupted append, ends the replay cleanly; a bad checksum or a
// torn frame anywhere else is corruption and fails it.
func Replay(dir string, fn ReplayHandler) (lastSeq uint64, err error) {
	files, err := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if err != nil {
		return 0, err
	}
	sort.Strings(files)

	for i, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return lastSeq, err
		}

		for {
			rec, rerr := readRecord(f)
			if rerr == io.EOF {
				break
			}
			if rerr == io.ErrUnexpectedEOF && i == len(files)-1 {
				break
			}
			if rerr != nil {
				_ = f.Close()
				return lastSeq, fmt.Errorf("%s: %w", filepath.Base(path), rerr)
			}

			if rec.Seq <= lastSeq {
				_ = f.Close()
				return lastSeq, fmt.Errorf("%s: %w: seq %d after %d",
					filepath.Base(path), ErrOutOfOrder, rec.Seq, lastSeq)
			}
			lastSeq = rec.Seq

			if err := fn(rec); err != nil {
				_ = f.Close()
				return lastSeq, err
			}
		}
		_ = f.Close()
	}

	return lastSeq, nil
}

func readRecord(r io.Reader) (*Record, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	t := RecordType(header[0])
	seq := binary.BigEndian.Uint64(header[1:9])
	ts := binary.BigEndian.Uint64(header[9:17])
	l := binary.BigEndian.Uint32(header[17:21])

	rest := make([]byte, l+4)
	if _, err := io.ReadFull(r, rest); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}

	payload := rest[:l]
	crc := binary.BigEndian.Uint32(rest[l:])
	if checksum(header, payload) != crc {
		return nil, ErrBadCRC
	}

	return &Record{
		Type: t,
		Seq:  seq,
		Time: int64(ts),
		Data: payload,
	}, nil
}
