package legacy

import (
	"github.com/boxkit/boxkit/internal/buf"
	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/tables"
	"github.com/boxkit/boxkit/pkg/types"
)

// NormalizeGen2 reduces a second-legacy-format image to its canonical 32 KiB
// view, or nil when none of the accepted shapes validates.
func NormalizeGen2(raw []byte) []byte { return gen2Geometry.normalize(raw) }

// ExtractGen2 parses every plausible box record from a canonical image.
func ExtractGen2(img []byte) []*types.LegacyMon { return gen2Geometry.extract(img) }

func parseGen2(raw []byte) *types.LegacyMon {
	if len(raw) < format.Gen2BoxMonSize {
		return nil
	}
	m := &types.LegacyMon{
		Generation: 2,
		RawSpecies: raw[format.Gen2SpeciesOffset],
		Species:    tables.NationalFromGen2(raw[format.Gen2SpeciesOffset]),
		HeldItem:   raw[format.Gen2ItemOffset],
		Level:      raw[format.Gen2LevelOffset],
		OTID:       buf.U16BE(raw[format.Gen2OTIDOffset:]),
		Experience: buf.U24BE(raw[format.Gen2ExpOffset:]),
	}
	copy(m.Moves[:], raw[format.Gen2MovesOffset:format.Gen2MovesOffset+4])
	for i := 0; i < 4; i++ {
		m.PP[i] = raw[format.Gen2PPOffset+i] & format.LegacyPPMask
	}
	dv := buf.U16BE(raw[format.Gen2DVOffset:])
	m.AtkDV = byte(dv >> 12 & 0xF)
	m.DefDV = byte(dv >> 8 & 0xF)
	m.SpeDV = byte(dv >> 4 & 0xF)
	m.SpcDV = byte(dv & 0xF)
	return m
}
