package legacy

import (
	"github.com/boxkit/boxkit/internal/buf"
	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/tables"
	"github.com/boxkit/boxkit/pkg/types"
)

// NormalizeGen1 reduces a first-legacy-format image to its canonical 32 KiB
// view, or nil when none of the accepted shapes validates.
func NormalizeGen1(raw []byte) []byte { return gen1Geometry.normalize(raw) }

// ExtractGen1 parses every plausible box record from a canonical image.
func ExtractGen1(img []byte) []*types.LegacyMon { return gen1Geometry.extract(img) }

func parseGen1(raw []byte) *types.LegacyMon {
	if len(raw) < format.Gen1BoxMonSize {
		return nil
	}
	m := &types.LegacyMon{
		Generation: 1,
		RawSpecies: raw[format.Gen1SpeciesOffset],
		Species:    tables.NationalFromGen1(raw[format.Gen1SpeciesOffset]),
		Level:      raw[format.Gen1LevelOffset],
		OTID:       buf.U16BE(raw[format.Gen1OTIDOffset:]),
		Experience: buf.U24BE(raw[format.Gen1ExpOffset:]),
	}
	copy(m.Moves[:], raw[format.Gen1MovesOffset:format.Gen1MovesOffset+4])
	for i := 0; i < 4; i++ {
		m.PP[i] = raw[format.Gen1PPOffset+i] & format.LegacyPPMask
	}
	dv := buf.U16BE(raw[format.Gen1DVOffset:])
	m.AtkDV = byte(dv >> 12 & 0xF)
	m.DefDV = byte(dv >> 8 & 0xF)
	m.SpeDV = byte(dv >> 4 & 0xF)
	m.SpcDV = byte(dv & 0xF)
	return m
}
