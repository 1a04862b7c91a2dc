//go:build unix

package sav

import (
	"os"

	"golang.org/x/sys/unix"
)

func fsync(f *os.File) error {
	return unix.Fsync(int(f.Fd()))
}

// syncDir flushes the directory entry so the rename survives a crash.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return unix.Fsync(int(d.Fd()))
}
