package format

import (
	"fmt"

	"github.com/boxkit/boxkit/internal/buf"
)

// Footer is the 12-byte trailer of a save sector.
type Footer struct {
	ID        uint16
	Checksum  uint16
	Signature uint32
	Counter   uint32
}

// Valid reports whether the footer carries the format signature and a
// plausible section id.
func (f Footer) Valid() bool {
	return f.Signature == SectorSignature && int(f.ID) < SectorsPerBlock
}

// ParseFooter extracts the footer fields from a full 4,096-byte sector.
func ParseFooter(sector []byte) (Footer, error) {
	if len(sector) < SectorSize {
		return Footer{}, fmt.Errorf("sector footer: got %d bytes: %w", len(sector), ErrTruncated)
	}
	return Footer{
		ID:        buf.U16LE(sector[SectorIDOffset:]),
		Checksum:  buf.U16LE(sector[SectorChecksumOffset:]),
		Signature: buf.U32LE(sector[SectorSignatureOffset:]),
		Counter:   buf.U32LE(sector[SectorCounterOffset:]),
	}, nil
}

// WriteFooterChecksum overwrites only the checksum field of a sector footer,
// leaving id, signature and counter untouched.
func WriteFooterChecksum(sector []byte, sum uint16) {
	if len(sector) < SectorSize {
		return
	}
	buf.PutU16LE(sector[SectorChecksumOffset:], sum)
}

// SectionChecksum computes the folded 16-bit checksum over the first
// SectionDataSize bytes of a sector payload: the 32-bit wraparound sum of all
// little-endian words, folded as (low16 + high16) & 0xFFFF.
func SectionChecksum(payload []byte) uint16 {
	var sum uint32
	n := SectionDataSize
	if len(payload) < n {
		n = len(payload) &^ 3
	}
	for off := 0; off < n; off += 4 {
		sum += buf.U32LE(payload[off:])
	}
	return uint16(sum + sum>>16)
}

// StripEmuHeader removes the optional 16-byte emulator header from a save
// buffer. It returns the canonical SaveSize view and whether a header was
// present, or ErrUnknownSave when the buffer matches neither size.
func StripEmuHeader(b []byte) ([]byte, bool, error) {
	switch len(b) {
	case SaveSize:
		return b, false, nil
	case SaveSize + EmuHeaderSize:
		return b[EmuHeaderSize:], true, nil
	default:
		return nil, false, fmt.Errorf("save image: got %d bytes: %w", len(b), ErrUnknownSave)
	}
}
