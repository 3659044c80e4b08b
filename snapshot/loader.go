package snapshot

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/raidixlab/extentindex/extentmap"
	"github.com/raidixlab/extentindex/infra/memory"
)

// Load reads the image at path into m and returns the sequence number
// the image was taken at. Extents come from the pool so they recycle
// like live ones.
func Load(
	path string,
	m *extentmap.Map,
	pool *memory.Pool[extentmap.Extent],
) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil // snapshot optional
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	for _, en := range s.Extents {
		e := pool.Get()
		e.Reset()
		e.Start, e.Blocks, e.Phys, e.Seq = en.Start, en.Blocks, en.Phys, en.Seq
		if err := m.Insert(e); err != nil {
			return 0, fmt.Errorf("snapshot: load extent: %w", err)
		}
	}

	return s.Seq, nil
}
