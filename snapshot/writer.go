package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"github.com/raidixlab/extentindex/extentmap"
)

type Writer struct {
	Dir string
}

// Path returns where Write puts the image.
func (w *Writer) Path() string {
	return filepath.Join(w.Dir, FileName)
}

// Write persists the index as one image. The caller holds whatever
// lock keeps the index and seq consistent with each other.
func (w *Writer) Write(seq uint64, m *extentmap.Map) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return err
	}

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Extents: make([]ExtentEntry, 0, m.Count()),
	}

	m.Ascend(0, func(e *extentmap.Extent) bool {
		s.Extents = append(s.Extents, ExtentEntry{
			Start: e.Start, Blocks: e.Blocks,
			Phys: e.Phys, Seq: e.Seq,
		})
		return true
	})

	tmp := w.Path() + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	// Rename is atomic: a crash leaves either the old image or the new,
	// never a torn one.
	return os.Rename(tmp, w.Path())
}
