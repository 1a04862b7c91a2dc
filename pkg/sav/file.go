package sav

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/boxkit/boxkit/internal/mmfile"
)

// ReadSaveFile loads and parses a save image from disk. The file is
// memory-mapped where the platform allows; the returned Save owns a private
// copy, so the mapping is released before returning.
func ReadSaveFile(path string) (*Save, error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	s, perr := ParseSaveImage(data)
	if err := unmap(); err != nil {
		return nil, err
	}
	if perr != nil {
		return nil, fmt.Errorf("%s: %w", path, perr)
	}
	return s, nil
}

// WriteSaveFile writes the save's current image to path. The bytes go to a
// temporary file first, are flushed to stable storage, then renamed over the
// destination, so a crash never leaves a half-written save behind.
func WriteSaveFile(path string, s *Save) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(s.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := fsync(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	return syncDir(dir)
}
