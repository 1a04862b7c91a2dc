// Package legacy extracts box records from the two older 32 KiB save-image
// formats. Extraction filters rather than fails: slots that do not survive
// the plausibility checks are silently skipped, since legacy images in the
// wild routinely carry stale or glitched box data.
package legacy

import (
	"github.com/boxkit/boxkit/internal/buf"
	"github.com/boxkit/boxkit/internal/charset"
	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/tables"
	"github.com/boxkit/boxkit/pkg/types"
)

// geometry describes one legacy generation's box layout.
type geometry struct {
	generation   int
	capacity     int
	monSize      int
	currentBox   int
	bankOffsets  [2]int
	boxesPerBank int
	boxSize      int
	speciesKnown func(byte) uint16
}

var gen1Geometry = geometry{
	generation:   1,
	capacity:     format.Gen1BoxCapacity,
	monSize:      format.Gen1BoxMonSize,
	currentBox:   format.Gen1CurrentBoxOff,
	bankOffsets:  [2]int{format.Gen1BoxBank2Off, format.Gen1BoxBank3Off},
	boxesPerBank: format.Gen1BoxesPerBank,
	boxSize:      format.Gen1BoxSize,
	speciesKnown: tables.NationalFromGen1,
}

var gen2Geometry = geometry{
	generation:   2,
	capacity:     format.Gen2BoxCapacity,
	monSize:      format.Gen2BoxMonSize,
	currentBox:   format.Gen2CurrentBoxOff,
	bankOffsets:  [2]int{format.Gen2BoxBank2Off, format.Gen2BoxBank3Off},
	boxesPerBank: format.Gen2BoxesPerBank,
	boxSize:      format.Gen2BoxSize,
	speciesKnown: tables.NationalFromGen2,
}

// boxOffsets lists every box location in a canonical image: the current box
// plus the banked copies.
func (g geometry) boxOffsets() []int {
	offs := []int{g.currentBox}
	for _, bank := range g.bankOffsets {
		for i := 0; i < g.boxesPerBank; i++ {
			offs = append(offs, bank+i*g.boxSize)
		}
	}
	return offs
}

// boxValid applies the structural test: slot count within capacity, species
// list terminated, every listed species present in the legacy table.
func (g geometry) boxValid(img []byte, off int) bool {
	if !buf.Has(img, off, g.boxSize) {
		return false
	}
	box := img[off : off+g.boxSize]
	n := int(box[0])
	if n > g.capacity {
		return false
	}
	if box[1+n] != format.LegacyListTerminator {
		return false
	}
	for i := 0; i < n; i++ {
		if g.speciesKnown(box[1+i]) == 0 {
			return false
		}
	}
	return true
}

// score counts structurally valid boxes; used by the normalization vote.
func (g geometry) score(img []byte) int {
	if len(img) != format.LegacySaveSize {
		return 0
	}
	valid := 0
	for _, off := range g.boxOffsets() {
		if g.boxValid(img, off) {
			valid++
		}
	}
	return valid
}

// normalize reduces raw to a canonical 32 KiB image, or nil when no valid
// view exists. Accepted inputs: exactly 32 KiB; 64 KiB (the half with more
// valid boxes wins); 32 KiB plus a trailer of at most 512 bytes (head/tail
// vote, same scoring).
func (g geometry) normalize(raw []byte) []byte {
	const size = format.LegacySaveSize
	switch {
	case len(raw) == size:
		if g.score(raw) > 0 {
			return raw
		}
		return nil
	case len(raw) == 2*size:
		head, tail := raw[:size], raw[size:]
		hs, ts := g.score(head), g.score(tail)
		switch {
		case hs == 0 && ts == 0:
			return nil
		case ts > hs:
			return tail
		default:
			return head
		}
	case len(raw) > size && len(raw) <= size+format.NormalizeTrailerMax:
		head, tail := raw[:size], raw[len(raw)-size:]
		hs, ts := g.score(head), g.score(tail)
		switch {
		case hs == 0 && ts == 0:
			return nil
		case ts > hs:
			return tail
		default:
			return head
		}
	default:
		return nil
	}
}

// DetectGeneration decides which legacy generation raw belongs to. Both
// geometries are scored rather than tried in order: an empty box validates
// under either layout, so first-match detection would misclassify. Equal
// scores are broken by player-name plausibility, then in favor of the first
// generation. Returns 0 and nil when neither layout fits.
func DetectGeneration(raw []byte) (int, []byte) {
	img1 := gen1Geometry.normalize(raw)
	img2 := gen2Geometry.normalize(raw)
	s1, s2 := 0, 0
	if img1 != nil {
		s1 = gen1Geometry.score(img1)
	}
	if img2 != nil {
		s2 = gen2Geometry.score(img2)
	}
	switch {
	case s1 == 0 && s2 == 0:
		return 0, nil
	case s2 > s1:
		return 2, img2
	case s1 > s2:
		return 1, img1
	}
	name1 := charset.LegacyNamePlausible(img1[format.Gen1PlayerNameOff : format.Gen1PlayerNameOff+format.LegacyNameLen])
	name2 := charset.LegacyNamePlausible(img2[format.Gen2PlayerNameOff : format.Gen2PlayerNameOff+format.LegacyNameLen])
	if name2 && !name1 {
		return 2, img2
	}
	return 1, img1
}

// extract walks every box and returns the surviving records. Slots failing
// the plausibility filters are skipped, not reported.
func (g geometry) extract(img []byte) []*types.LegacyMon {
	var out []*types.LegacyMon
	for _, off := range g.boxOffsets() {
		if !g.boxValid(img, off) {
			continue
		}
		box := img[off : off+g.boxSize]
		n := int(box[0])
		monsBase := 1 + g.capacity + 1
		for i := 0; i < n; i++ {
			raw := box[monsBase+i*g.monSize : monsBase+(i+1)*g.monSize]
			var mon *types.LegacyMon
			if g.generation == 1 {
				mon = parseGen1(raw)
			} else {
				mon = parseGen2(raw)
			}
			if mon != nil && plausible(mon) {
				out = append(out, mon)
			}
		}
	}
	return out
}

// Plausibility caps. The absolute cap is the largest level-100 total across
// all growth curves; the tighter low-level cap rejects records whose
// experience could not have been earned at their recorded level.
const (
	maxExperience         = 1250000
	lowLevelBound         = 25
	lowLevelMaxExperience = 100000
)

func plausible(m *types.LegacyMon) bool {
	if m.Species == 0 {
		return false
	}
	if m.Level < 1 || m.Level > 100 {
		return false
	}
	if m.Experience > maxExperience {
		return false
	}
	if int(m.Level) <= lowLevelBound && m.Experience > lowLevelMaxExperience {
		return false
	}
	if int(m.Level) < tables.MinimumLevel(m.Species) {
		return false
	}
	if m.Moves == ([4]byte{}) {
		return false
	}
	return true
}
