package legacy

import (
	"testing"

	"github.com/boxkit/boxkit/internal/format"
)

// gen1Mon builds a 33-byte record in the first legacy format.
func gen1Mon(species byte, level byte, exp uint32, moves [4]byte, dv uint16) []byte {
	raw := make([]byte, format.Gen1BoxMonSize)
	raw[format.Gen1SpeciesOffset] = species
	raw[format.Gen1LevelOffset] = level
	copy(raw[format.Gen1MovesOffset:], moves[:])
	raw[format.Gen1OTIDOffset] = 0x12
	raw[format.Gen1OTIDOffset+1] = 0x34
	raw[format.Gen1ExpOffset] = byte(exp >> 16)
	raw[format.Gen1ExpOffset+1] = byte(exp >> 8)
	raw[format.Gen1ExpOffset+2] = byte(exp)
	raw[format.Gen1DVOffset] = byte(dv >> 8)
	raw[format.Gen1DVOffset+1] = byte(dv)
	for i := 0; i < 4; i++ {
		raw[format.Gen1PPOffset+i] = 0xC0 | 20 // PP-Up bits set, must be masked
	}
	return raw
}

// writeGen1Box places mons into the box structure at off.
func writeGen1Box(img []byte, off int, mons [][]byte, species []byte) {
	box := img[off:]
	box[0] = byte(len(mons))
	for i := range box[1 : 1+format.Gen1BoxCapacity+1] {
		box[1+i] = format.LegacyListTerminator
	}
	copy(box[1:], species)
	box[1+len(mons)] = format.LegacyListTerminator
	monsBase := 1 + format.Gen1BoxCapacity + 1
	for i, m := range mons {
		copy(box[monsBase+i*format.Gen1BoxMonSize:], m)
	}
}

func blankGen1Image() []byte {
	img := make([]byte, format.LegacySaveSize)
	// Mark every box empty with a proper terminator so the structural
	// validation passes.
	for _, off := range gen1Geometry.boxOffsets() {
		img[off] = 0
		img[off+1] = format.LegacyListTerminator
	}
	return img
}

func TestNormalizeExactSize(t *testing.T) {
	img := blankGen1Image()
	if NormalizeGen1(img) == nil {
		t.Fatal("valid 32K image rejected")
	}
	if NormalizeGen1(make([]byte, format.LegacySaveSize)) != nil {
		t.Fatal("image with no valid boxes accepted")
	}
}

func TestNormalizeDoubleSize(t *testing.T) {
	img := blankGen1Image()
	double := make([]byte, 2*format.LegacySaveSize)
	copy(double[format.LegacySaveSize:], img)
	got := NormalizeGen1(double)
	if got == nil {
		t.Fatal("64K image rejected")
	}
	if &got[0] != &double[format.LegacySaveSize] {
		t.Fatal("vote should pick the valid second half")
	}
}

func TestNormalizeTrailer(t *testing.T) {
	img := blankGen1Image()
	padded := append(append([]byte{}, img...), make([]byte, 512)...)
	if NormalizeGen1(padded) == nil {
		t.Fatal("32K+512 image rejected")
	}
	tooBig := append(append([]byte{}, img...), make([]byte, 513)...)
	if NormalizeGen1(tooBig) != nil {
		t.Fatal("oversized trailer accepted")
	}
}

func TestExtractGen1(t *testing.T) {
	img := blankGen1Image()
	pikachu := gen1Mon(0x54, 5, 125, [4]byte{84, 45, 0, 0}, 0xABCD)
	writeGen1Box(img, format.Gen1CurrentBoxOff, [][]byte{pikachu}, []byte{0x54})

	mons := ExtractGen1(img)
	if len(mons) != 1 {
		t.Fatalf("extracted %d records, want 1", len(mons))
	}
	m := mons[0]
	if m.Species != 25 || m.Level != 5 || m.Experience != 125 {
		t.Fatalf("unexpected record: %+v", m)
	}
	if m.OTID != 0x1234 {
		t.Fatalf("owner id = %#x", m.OTID)
	}
	if m.AtkDV != 0xA || m.DefDV != 0xB || m.SpeDV != 0xC || m.SpcDV != 0xD {
		t.Fatalf("DVs = %x %x %x %x", m.AtkDV, m.DefDV, m.SpeDV, m.SpcDV)
	}
	if m.PP[0] != 20 {
		t.Fatalf("PP-Up bits not masked: %d", m.PP[0])
	}
}

func TestExtractFiltersImplausible(t *testing.T) {
	cases := []struct {
		name string
		mon  []byte
	}{
		{"level zero", gen1Mon(0x54, 0, 10, [4]byte{84, 0, 0, 0}, 0)},
		{"level above cap", gen1Mon(0x54, 101, 10, [4]byte{84, 0, 0, 0}, 0)},
		{"experience absurd", gen1Mon(0x54, 50, 1300000, [4]byte{84, 0, 0, 0}, 0)},
		{"low level rich", gen1Mon(0x54, 5, 200000, [4]byte{84, 0, 0, 0}, 0)},
		{"underleveled species", gen1Mon(0x42, 10, 1000, [4]byte{84, 0, 0, 0}, 0)}, // dragonite below 55
		{"empty moveset", gen1Mon(0x54, 5, 125, [4]byte{0, 0, 0, 0}, 0)},
	}
	for _, c := range cases {
		img := blankGen1Image()
		writeGen1Box(img, format.Gen1CurrentBoxOff, [][]byte{c.mon}, []byte{c.mon[0]})
		if got := ExtractGen1(img); len(got) != 0 {
			t.Fatalf("%s: record should have been filtered", c.name)
		}
	}
}

func TestBoxValidRejectsBadStructure(t *testing.T) {
	img := blankGen1Image()
	// Slot count beyond capacity.
	img[format.Gen1CurrentBoxOff] = format.Gen1BoxCapacity + 1
	if gen1Geometry.boxValid(img, format.Gen1CurrentBoxOff) {
		t.Fatal("overfull box accepted")
	}
	// Unterminated species list.
	img[format.Gen1CurrentBoxOff] = 1
	img[format.Gen1CurrentBoxOff+1] = 0x54
	img[format.Gen1CurrentBoxOff+2] = 0x54 // should be 0xFF
	if gen1Geometry.boxValid(img, format.Gen1CurrentBoxOff) {
		t.Fatal("unterminated list accepted")
	}
	// Species missing from the legacy table.
	img[format.Gen1CurrentBoxOff+1] = 0x1F // glitch hole
	img[format.Gen1CurrentBoxOff+2] = format.LegacyListTerminator
	if gen1Geometry.boxValid(img, format.Gen1CurrentBoxOff) {
		t.Fatal("glitch species accepted")
	}
}

func TestGen2Extract(t *testing.T) {
	img := make([]byte, format.LegacySaveSize)
	for _, off := range gen2Geometry.boxOffsets() {
		img[off] = 0
		img[off+1] = format.LegacyListTerminator
	}
	raw := make([]byte, format.Gen2BoxMonSize)
	raw[format.Gen2SpeciesOffset] = 152 // in catalog range already
	raw[format.Gen2ItemOffset] = 0x51
	raw[format.Gen2MovesOffset] = 33
	raw[format.Gen2OTIDOffset] = 0xAB
	raw[format.Gen2OTIDOffset+1] = 0xCD
	raw[format.Gen2ExpOffset+2] = 135
	raw[format.Gen2LevelOffset] = 5
	raw[format.Gen2PPOffset] = 0x40 | 35

	box := img[format.Gen2CurrentBoxOff:]
	box[0] = 1
	box[1] = 152
	box[2] = format.LegacyListTerminator
	copy(box[1+format.Gen2BoxCapacity+1:], raw)

	mons := ExtractGen2(img)
	if len(mons) != 1 {
		t.Fatalf("extracted %d records, want 1", len(mons))
	}
	m := mons[0]
	if m.Species != 152 || m.HeldItem != 0x51 || m.OTID != 0xABCD || m.Experience != 135 {
		t.Fatalf("unexpected record: %+v", m)
	}
	if m.PP[0] != 35 {
		t.Fatalf("PP mask failed: %d", m.PP[0])
	}
}
