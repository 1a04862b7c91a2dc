package format

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseRecordHeader(t *testing.T) {
	b := make([]byte, RecordSize)
	binary.LittleEndian.PutUint32(b[RecPIDOffset:], 0xCAFEBABE)
	binary.LittleEndian.PutUint32(b[RecOTIDOffset:], 0x56781234)
	binary.LittleEndian.PutUint16(b[RecLanguageOffset:], LangEnglish)
	b[RecMarkingsOffset] = 0x05
	binary.LittleEndian.PutUint16(b[RecChecksumOffset:], 0xBEEF)

	h, err := ParseRecordHeader(b)
	if err != nil {
		t.Fatalf("ParseRecordHeader: %v", err)
	}
	if h.PID != 0xCAFEBABE || h.OTID != 0x56781234 {
		t.Fatalf("unexpected ids: %+v", h)
	}
	if h.TrainerID() != 0x1234 || h.SecretID() != 0x5678 {
		t.Fatalf("owner id split wrong: tid=%#x sid=%#x", h.TrainerID(), h.SecretID())
	}
	if h.CryptKey() != 0xCAFEBABE^0x56781234 {
		t.Fatalf("crypt key = %#x", h.CryptKey())
	}
	if h.Language != LangEnglish || h.Markings != 0x05 || h.StoredChecksum != 0xBEEF {
		t.Fatalf("header fields wrong: %+v", h)
	}
}

func TestParseRecordHeaderBadLength(t *testing.T) {
	_, err := ParseRecordHeader(make([]byte, 79))
	if !errors.Is(err, ErrBadLength) {
		t.Fatalf("want ErrBadLength, got %v", err)
	}
	_, err = ParseRecordHeader(make([]byte, 81))
	if !errors.Is(err, ErrBadLength) {
		t.Fatalf("want ErrBadLength, got %v", err)
	}
}

func TestRecordEmpty(t *testing.T) {
	b := make([]byte, RecordSize)
	// Arbitrary junk past the checksum must not matter.
	for i := RecCryptOffset; i < RecordSize; i++ {
		b[i] = 0xA5
	}
	if !RecordEmpty(b) {
		t.Fatal("record with zero pid and checksum should be empty")
	}
	binary.LittleEndian.PutUint32(b[RecPIDOffset:], 1)
	if RecordEmpty(b) {
		t.Fatal("record with pid set should not be empty")
	}
}

func TestKnownLanguage(t *testing.T) {
	for _, code := range []uint16{LangJapanese, LangEnglish, LangFrench, LangItalian, LangGerman, LangKorean, LangSpanish} {
		if !KnownLanguage(code) {
			t.Fatalf("code %#x should be known", code)
		}
	}
	if KnownLanguage(0) || KnownLanguage(0x0208) {
		t.Fatal("unknown codes accepted")
	}
}
