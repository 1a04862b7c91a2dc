package buf

import "testing"

func TestU16LE(t *testing.T) {
	if got := U16LE([]byte{0x34, 0x12}); got != 0x1234 {
		t.Fatalf("U16LE = %#x, want 0x1234", got)
	}
	if got := U16LE([]byte{0x34}); got != 0 {
		t.Fatalf("U16LE short = %#x, want 0", got)
	}
}

func TestU24BE(t *testing.T) {
	if got := U24BE([]byte{0x01, 0x02, 0x03}); got != 0x010203 {
		t.Fatalf("U24BE = %#x, want 0x010203", got)
	}
	if got := U24BE([]byte{0x01, 0x02}); got != 0 {
		t.Fatalf("U24BE short = %#x, want 0", got)
	}
}

func TestU32LERoundTrip(t *testing.T) {
	b := make([]byte, 4)
	PutU32LE(b, 0xDEADBEEF)
	if got := U32LE(b); got != 0xDEADBEEF {
		t.Fatalf("U32LE = %#x, want 0xDEADBEEF", got)
	}
}

func TestPutShortBuffers(t *testing.T) {
	// Writes into undersized buffers must be silent no-ops.
	PutU16LE(nil, 1)
	PutU32LE([]byte{0, 0}, 1)
}

func TestSlice(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	s, ok := Slice(b, 1, 2)
	if !ok || len(s) != 2 || s[0] != 2 {
		t.Fatalf("Slice(1,2) = %v, %v", s, ok)
	}
	if _, ok := Slice(b, 3, 2); ok {
		t.Fatal("Slice(3,2) should be out of bounds")
	}
	if _, ok := Slice(b, -1, 1); ok {
		t.Fatal("negative offset should fail")
	}
	if !Has(b, 0, 4) || Has(b, 0, 5) {
		t.Fatal("Has bounds check failed")
	}
}
