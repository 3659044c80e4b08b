package service

import (
	"encoding/binary"
	"errors"

	protov2 "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

var errBadPayload = errors.New("service: malformed wal payload")

// WAL payloads are fixed-width big-endian. A map record carries the
// extent geometry; its generation seq rides in the frame header. An
// unmap record names the (start, generation) it removes.
const (
	mapPayloadLen   = 8 + 8 + 8
	unmapPayloadLen = 8 + 8
)

func encodeMapPayload(start, blocks, phys uint64) []byte {
	buf := make([]byte, mapPayloadLen)
	binary.BigEndian.PutUint64(buf[0:8], start)
	binary.BigEndian.PutUint64(buf[8:16], blocks)
	binary.BigEndian.PutUint64(buf[16:24], phys)
	return buf
}

func decodeMapPayload(b []byte) (start, blocks, phys uint64, err error) {
	if len(b) != mapPayloadLen {
		return 0, 0, 0, errBadPayload
	}
	return binary.BigEndian.Uint64(b[0:8]),
		binary.BigEndian.Uint64(b[8:16]),
		binary.BigEndian.Uint64(b[16:24]),
		nil
}

func encodeUnmapPayload(start, seq uint64) []byte {
	buf := make([]byte, unmapPayloadLen)
	binary.BigEndian.PutUint64(buf[0:8], start)
	binary.BigEndian.PutUint64(buf[8:16], seq)
	return buf
}

func decodeUnmapPayload(b []byte) (start, seq uint64, err error) {
	if len(b) != unmapPayloadLen {
		return 0, 0, errBadPayload
	}
	return binary.BigEndian.Uint64(b[0:8]),
		binary.BigEndian.Uint64(b[8:16]),
		nil
}

// marshalMessage serializes one of our hand-maintained wire types
// through the current protobuf runtime.
func marshalMessage(m protoadapt.MessageV1) ([]byte, error) {
	return protov2.Marshal(protoadapt.MessageV2Of(m))
}
