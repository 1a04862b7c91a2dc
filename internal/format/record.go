package format

import (
	"fmt"

	"github.com/boxkit/boxkit/internal/buf"
)

// RecordHeader captures the 32-byte plaintext prefix of a box record. The
// encrypted region is left to the codec package, which needs the key derived
// from these fields.
type RecordHeader struct {
	PID            uint32
	OTID           uint32
	RawNickname    []byte // RecNicknameLen bytes, still in the game charset
	Language       uint16
	RawOTName      []byte // RecOTNameLen bytes, still in the game charset
	Markings       byte
	StoredChecksum uint16
}

// TrainerID returns the public half of the combined owner id.
func (h RecordHeader) TrainerID() uint16 { return uint16(h.OTID) }

// SecretID returns the hidden half of the combined owner id.
func (h RecordHeader) SecretID() uint16 { return uint16(h.OTID >> 16) }

// CryptKey returns the XOR key for the encrypted region.
func (h RecordHeader) CryptKey() uint32 { return h.PID ^ h.OTID }

// ParseRecordHeader validates the record length and extracts the plaintext
// header fields. The returned byte slices alias b.
func ParseRecordHeader(b []byte) (RecordHeader, error) {
	if len(b) != RecordSize {
		return RecordHeader{}, fmt.Errorf("record header: got %d bytes: %w", len(b), ErrBadLength)
	}
	return RecordHeader{
		PID:            buf.U32LE(b[RecPIDOffset:]),
		OTID:           buf.U32LE(b[RecOTIDOffset:]),
		RawNickname:    b[RecNicknameOffset : RecNicknameOffset+RecNicknameLen],
		Language:       buf.U16LE(b[RecLanguageOffset:]),
		RawOTName:      b[RecOTNameOffset : RecOTNameOffset+RecOTNameLen],
		Markings:       b[RecMarkingsOffset],
		StoredChecksum: buf.U16LE(b[RecChecksumOffset:]),
	}, nil
}

// RecordEmpty reports whether the 80-byte slot holds no record. A slot is
// empty iff PID and stored checksum are both zero; trailing garbage does not
// count against it.
func RecordEmpty(b []byte) bool {
	if len(b) < RecChecksumOffset+2 {
		return true
	}
	return buf.U32LE(b[RecPIDOffset:]) == 0 && buf.U16LE(b[RecChecksumOffset:]) == 0
}

// KnownLanguage reports whether code is one of the seven language codes the
// original software writes.
func KnownLanguage(code uint16) bool {
	switch code {
	case LangJapanese, LangEnglish, LangFrench, LangItalian, LangGerman, LangKorean, LangSpanish:
		return true
	}
	return false
}
