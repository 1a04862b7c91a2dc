//go:build windows

package mmfile

import (
	"fmt"
	"os"
)

// Map reads the whole file; a plain read is cheap at save-image sizes and
// avoids the handle lifetime rules of mapped views.
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
