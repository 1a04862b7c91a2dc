package codec

import (
	"fmt"

	"github.com/boxkit/boxkit/internal/buf"
	"github.com/boxkit/boxkit/internal/format"
)

// RawRecord is a decrypted, unshuffled working view over an 80-byte record
// buffer. The Logical slices are mutable scratch; Commit writes the region
// back into the opened buffer with a freshly computed checksum. Fields not
// modeled by Record (spare block bytes) survive an Open/Commit round trip
// untouched, which is what targeted repairs need.
type RawRecord struct {
	Header  format.RecordHeader
	Logical [format.CryptBlockCount][]byte

	out []byte
}

// OpenRaw decrypts and unshuffles b into a working view. b is not modified
// until Commit.
func OpenRaw(b []byte) (*RawRecord, error) {
	hdr, err := format.ParseRecordHeader(b)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	data := make([]byte, format.RecCryptLen)
	copy(data, b[format.RecCryptOffset:])
	crypt(data, hdr.CryptKey())
	return &RawRecord{Header: hdr, Logical: unshuffle(data, hdr.PID), out: b}, nil
}

// Checksum recomputes the checksum over the current logical contents.
func (r *RawRecord) Checksum() uint16 { return Checksum(r.Logical) }

// Commit stores the recomputed checksum and writes the logical blocks back
// into the opened buffer, shuffled and re-encrypted.
func (r *RawRecord) Commit() {
	buf.PutU16LE(r.out[format.RecChecksumOffset:], r.Checksum())
	crypted := r.out[format.RecCryptOffset : format.RecCryptOffset+format.RecCryptLen]
	shuffle(crypted, r.Logical, r.Header.PID)
	crypt(crypted, r.Header.CryptKey())
}
