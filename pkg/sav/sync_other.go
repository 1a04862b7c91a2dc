//go:build !unix

package sav

import "os"

func fsync(f *os.File) error { return f.Sync() }

// Directory sync is not meaningful off unix.
func syncDir(string) error { return nil }
