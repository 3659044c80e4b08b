package snapshot

import "time"

// FileName is the image file inside the snapshot directory.
const FileName = "snapshot.bin"

type Snapshot struct {
	Seq     uint64
	Created time.Time
	Extents []ExtentEntry
}

type ExtentEntry struct {
	Start  uint64
	Blocks uint64
	Phys   uint64
	Seq    uint64
}
