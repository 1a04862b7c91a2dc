package charset

import (
	"testing"

	"golang.org/x/text/transform"
)

func TestDecodeFixed(t *testing.T) {
	// "PIKACHU" followed by terminator fill.
	raw := []byte{0xCA, 0xC3, 0xC5, 0xBB, 0xBD, 0xC2, 0xCF, 0xFF, 0xFF, 0xFF}
	if got := DecodeFixed(raw); got != "PIKACHU" {
		t.Fatalf("DecodeFixed = %q, want PIKACHU", got)
	}
}

func TestDecodeFixedStopsAtZero(t *testing.T) {
	raw := []byte{0xBB, 0x00, 0xBC, 0xBD}
	if got := DecodeFixed(raw); got != "A" {
		t.Fatalf("DecodeFixed = %q, want A", got)
	}
}

func TestDecodeFixedUnknownByte(t *testing.T) {
	raw := []byte{0xBB, 0x01, 0xBC, 0xFF}
	if got := DecodeFixed(raw); got != "A?B" {
		t.Fatalf("DecodeFixed = %q, want A?B", got)
	}
}

func TestEncodeFixedRoundTrip(t *testing.T) {
	for _, name := range []string{"PIKACHU", "Abc", "No1!", ""} {
		enc := EncodeFixed(name, 10)
		if len(enc) != 10 {
			t.Fatalf("EncodeFixed length = %d", len(enc))
		}
		if got := DecodeFixed(enc); got != name {
			t.Fatalf("round trip %q -> %q", name, got)
		}
	}
}

func TestEncodeFixedTruncates(t *testing.T) {
	enc := EncodeFixed("ABCDEFGHIJKLM", 10)
	if len(enc) != 10 {
		t.Fatalf("length = %d", len(enc))
	}
	if got := DecodeFixed(enc); got != "ABCDEFGHIJ" {
		t.Fatalf("truncated decode = %q", got)
	}
}

func TestEncodeFixedUnmappableRune(t *testing.T) {
	enc := EncodeFixed("Aé", 4) // é has no charset byte
	if enc[1] != QuestionByte {
		t.Fatalf("unmappable rune encoded as %#x, want %#x", enc[1], QuestionByte)
	}
}

func TestModernEncodingStreams(t *testing.T) {
	out, _, err := transform.Bytes(Modern.NewEncoder(), []byte("AZaz09"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0xBB, 0xD4, 0xD5, 0xEE, 0xA1, 0xAA}
	for i, b := range want {
		if out[i] != b {
			t.Fatalf("byte %d = %#x, want %#x", i, out[i], b)
		}
	}
	back, _, err := transform.Bytes(Modern.NewDecoder(), out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(back) != "AZaz09" {
		t.Fatalf("round trip = %q", back)
	}
}

func TestDecodeLegacy(t *testing.T) {
	// "RED" + terminator.
	raw := []byte{0x91, 0x84, 0x83, 0x50, 0x80, 0x80}
	if got := DecodeLegacy(raw); got != "RED" {
		t.Fatalf("DecodeLegacy = %q, want RED", got)
	}
}

func TestLegacyNamePlausible(t *testing.T) {
	if !LegacyNamePlausible([]byte{0x91, 0x84, 0x83, 0x50, 0x00}) {
		t.Fatal("valid name rejected")
	}
	if LegacyNamePlausible([]byte{0x50, 0x50}) {
		t.Fatal("empty name accepted")
	}
	if LegacyNamePlausible([]byte{0x91, 0x13, 0x50}) {
		t.Fatal("unmapped byte accepted")
	}
}
