package verify

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/pkg/types"
)

func buildModern() []byte {
	save := make([]byte, format.SaveSize)
	for b := 0; b < format.SaveBlockCount; b++ {
		for i := 0; i < format.SectorsPerBlock; i++ {
			off := b*format.SaveBlockSize + i*format.SectorSize
			sector := save[off : off+format.SectorSize]
			binary.LittleEndian.PutUint16(sector[format.SectorIDOffset:], uint16(i))
			binary.LittleEndian.PutUint32(sector[format.SectorSignatureOffset:], format.SectorSignature)
			binary.LittleEndian.PutUint32(sector[format.SectorCounterOffset:], 9)
			binary.LittleEndian.PutUint16(sector[format.SectorChecksumOffset:], format.SectionChecksum(sector))
		}
	}
	return save
}

// gen1Offsets mirrors the first legacy format's box layout.
func gen1Offsets() []int {
	offs := []int{format.Gen1CurrentBoxOff}
	for _, bank := range []int{format.Gen1BoxBank2Off, format.Gen1BoxBank3Off} {
		for i := 0; i < format.Gen1BoxesPerBank; i++ {
			offs = append(offs, bank+i*format.Gen1BoxSize)
		}
	}
	return offs
}

func buildGen1() []byte {
	img := make([]byte, format.LegacySaveSize)
	for _, off := range gen1Offsets() {
		img[off] = 0
		img[off+1] = format.LegacyListTerminator
	}
	// Player name "RED".
	copy(img[format.Gen1PlayerNameOff:], []byte{0x91, 0x84, 0x83, format.LegacyNameTerminator})
	var sum byte
	for _, b := range img[format.Gen1ChecksumStart : format.Gen1ChecksumEnd+1] {
		sum += b
	}
	img[format.Gen1ChecksumOffset] = ^sum
	return img
}

func buildGen2() []byte {
	img := make([]byte, format.LegacySaveSize)
	offs := []int{format.Gen2CurrentBoxOff}
	for _, bank := range []int{format.Gen2BoxBank2Off, format.Gen2BoxBank3Off} {
		for i := 0; i < format.Gen2BoxesPerBank; i++ {
			offs = append(offs, bank+i*format.Gen2BoxSize)
		}
	}
	for _, off := range offs {
		img[off] = 0
		img[off+1] = format.LegacyListTerminator
	}
	// Player name "GOLD".
	copy(img[format.Gen2PlayerNameOff:], []byte{0x86, 0x8E, 0x8B, 0x83, format.LegacyNameTerminator})

	sum16 := func(start, end int) uint16 {
		var s uint16
		for _, b := range img[start : end+1] {
			s += uint16(b)
		}
		return s
	}
	binary.LittleEndian.PutUint16(img[format.Gen2Checksum1Offset:], sum16(format.Gen2Checksum1Start, format.Gen2Checksum1End))
	binary.LittleEndian.PutUint16(img[format.Gen2Checksum2Offset:], sum16(format.Gen2Checksum2Start, format.Gen2Checksum2End))
	return img
}

func TestDetectModern(t *testing.T) {
	kind, img, err := Detect(buildModern())
	require.NoError(t, err)
	assert.Equal(t, types.SaveModern, kind)
	assert.Len(t, img, format.SaveSize)

	// With an emulator header in front.
	kind, img, err = Detect(append(make([]byte, format.EmuHeaderSize), buildModern()...))
	require.NoError(t, err)
	assert.Equal(t, types.SaveModern, kind)
	assert.Len(t, img, format.SaveSize)
}

func TestDetectRejectsUnknown(t *testing.T) {
	_, _, err := Detect(make([]byte, 1000))
	assert.Error(t, err)
	_, _, err = Detect(make([]byte, format.LegacySaveSize)) // right size, no boxes
	assert.Error(t, err)
	_, _, err = Detect(make([]byte, format.SaveSize)) // right size, no signatures
	assert.Error(t, err)
}

func TestReportModern(t *testing.T) {
	save := buildModern()
	rep, err := Report(append(make([]byte, format.EmuHeaderSize), save...))
	require.NoError(t, err)
	assert.Equal(t, types.SaveModern, rep.Kind)
	assert.True(t, rep.EmuHeader)
	assert.Equal(t, uint32(9), rep.SaveCount)
	assert.Len(t, rep.Checks, format.SaveBlockCount*format.SectorsPerBlock)
	assert.True(t, rep.AllOK())
}

func TestReportModernFlagsBadSector(t *testing.T) {
	save := buildModern()
	save[3*format.SectorSize+100] ^= 0xFF // payload of block 0 sector 3

	rep, err := Report(save)
	require.NoError(t, err)
	assert.False(t, rep.AllOK())
	for _, c := range rep.Checks {
		if c.Location == "block 0 sector 3" {
			assert.False(t, c.OK)
			assert.NotEqual(t, c.Stored, c.Computed)
			return
		}
	}
	t.Fatal("corrupted sector missing from the report")
}

func TestReportGen1(t *testing.T) {
	rep, err := Report(buildGen1())
	require.NoError(t, err)
	assert.Equal(t, types.SaveLegacy1, rep.Kind)
	assert.Equal(t, "RED", rep.PlayerName)
	require.Len(t, rep.Checks, 1)
	assert.True(t, rep.AllOK())

	img := buildGen1()
	img[format.Gen1ChecksumStart+5] ^= 0x01
	rep, err = Report(img)
	require.NoError(t, err)
	assert.False(t, rep.AllOK())
}

func TestReportGen2(t *testing.T) {
	rep, err := Report(buildGen2())
	require.NoError(t, err)
	assert.Equal(t, types.SaveLegacy2, rep.Kind)
	assert.Equal(t, "GOLD", rep.PlayerName)
	require.Len(t, rep.Checks, 2)
	assert.True(t, rep.AllOK())
}

func TestDetectSeparatesLegacyGenerations(t *testing.T) {
	// Each image carries empty boxes valid under both layouts at the shared
	// bank offsets; the score vote must still pick the right generation.
	kind, _, err := Detect(buildGen1())
	require.NoError(t, err)
	assert.Equal(t, types.SaveLegacy1, kind)

	kind, _, err = Detect(buildGen2())
	require.NoError(t, err)
	assert.Equal(t, types.SaveLegacy2, kind)
}
