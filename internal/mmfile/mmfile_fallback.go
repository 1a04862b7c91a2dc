//go:build !unix && !windows

package mmfile

import (
	"fmt"
	"os"
)

// Map reads the whole file when memory mapping is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	if int64(len(data)) > maxMapSize {
		return nil, func() error { return nil }, fmt.Errorf("mmfile: %d bytes is far beyond any save image", len(data))
	}
	return data, func() error { return nil }, nil
}
