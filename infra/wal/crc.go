package wal

import "hash/crc32"

// checksum computes the IEEE CRC32 over the concatenation of parts.
func checksum(parts ...[]byte) uint32 {
	var crc uint32
	for _, p := range parts {
		crc = crc32.Update(crc, crc32.IEEETable, p)
	}
	return crc
}
