package format

import "errors"

var (
	// ErrBadLength indicates a record buffer was not exactly RecordSize bytes.
	ErrBadLength = errors.New("format: record length must be 80 bytes")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnknownSave indicates no save generation could be detected from the buffer.
	ErrUnknownSave = errors.New("format: unrecognized save image")
)
