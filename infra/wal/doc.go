// Package wal is the segmented write-ahead log for extent mutations.
// Every map and unmap is framed, checksummed and appended before the
// in-memory index changes, so a restart replays the log back into an
// identical index. Segments rotate by size or age and are dropped
// wholesale once a snapshot covers their sequence range.
package wal
