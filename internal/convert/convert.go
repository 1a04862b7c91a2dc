// Package convert rebuilds a valid modern box record from a legacy one. The
// derived properties that matter in play (nature, the rarity flag) are
// preserved by searching for a compatible record key; everything the legacy
// formats cannot express is filled with documented defaults.
package convert

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/boxkit/boxkit/internal/codec"
	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/tables"
	"github.com/boxkit/boxkit/pkg/types"
)

// Key search parameters. The generator is the handhelds' 32-bit linear
// congruential generator; a candidate key is assembled from the high halves
// of two successive outputs. When the bounded search fails, the key is
// constructed arithmetically instead; see forceKey.
const (
	lcgMul = 0x41C64E6D
	lcgAdd = 0x6073

	// MaxKeyAttempts bounds the generator search.
	MaxKeyAttempts = 100000
)

// Defaults applied to fields the legacy formats do not carry.
const (
	defaultBall        = 4
	defaultFriendship  = 70
	defaultMetLocation = 0xFF // unknown origin
	fallbackMovePP     = 35
)

// Options adjusts the owner identity stamped onto converted records.
type Options struct {
	TrainerID uint16 // defaults to the legacy 16-bit owner id
	SecretID  uint16 // legacy formats have none; defaults to 0
	OTName    string
	Nickname  string
	Language  uint16 // defaults to the English code

	// Logger receives anomaly and audit events (index substitutions,
	// forced keys). Nil disables logging.
	Logger *zap.Logger
}

func lcg(x uint32) uint32 { return x*lcgMul + lcgAdd }

// legacyNature derives the nature index from the four DV nibbles. The
// weighting is a fixed historical approximation: there is no official
// derivation, and changing it would silently re-nature every transferred
// record, so it must be preserved as-is.
func legacyNature(m *types.LegacyMon) byte {
	return byte((uint32(m.AtkDV)*8 + uint32(m.DefDV)*4 + uint32(m.SpeDV)*2 + uint32(m.SpcDV)) % codec.NatureCount)
}

// legacyShiny is the old formats' rarity test over DVs.
func legacyShiny(m *types.LegacyMon) bool {
	if m.DefDV != 10 || m.SpeDV != 10 || m.SpcDV != 10 {
		return false
	}
	switch m.AtkDV {
	case 2, 3, 6, 7, 10, 11, 14, 15:
		return true
	}
	return false
}

// searchKey runs the bounded generator search for a key matching the wanted
// nature and rarity under the given owner id. The seed mixes the legacy
// record's identity so conversion is deterministic per record.
func searchKey(m *types.LegacyMon, otid uint32, nature byte, wantShiny bool) (pid uint32, attempts int, ok bool) {
	seed := uint32(m.OTID)<<16 | uint32(m.DVWord())
	seed ^= m.Experience
	for attempts = 1; attempts <= MaxKeyAttempts; attempts++ {
		s1 := lcg(seed)
		s2 := lcg(s1)
		seed = s2
		pid = uint32(s1>>16) | s2&0xFFFF0000
		if codec.Nature(pid) == nature && codec.Shiny(pid, otid) == wantShiny {
			return pid, attempts, true
		}
	}
	return 0, MaxKeyAttempts, false
}

// forceKey constructs a key arithmetically when the generator search is
// exhausted. For the rare case the low half is overwritten with the value
// that zeroes the XOR rarity test while the high half walks until the nature
// matches; otherwise the key is the smallest nature-preserving value that is
// not rare. Keys built here are not generator-derived.
func forceKey(otid uint32, nature byte, wantShiny bool) uint32 {
	tid := uint16(otid)
	sid := uint16(otid >> 16)
	if wantShiny {
		for hi := uint32(0); hi <= 0xFFFF; hi++ {
			lo := uint16(hi) ^ tid ^ sid
			pid := hi<<16 | uint32(lo)
			if codec.Nature(pid) == nature {
				return pid
			}
		}
		// Unreachable: 65536 candidates cover every residue mod 25.
	}
	pid := uint32(nature)
	for codec.Shiny(pid, otid) {
		pid += codec.NatureCount
	}
	return pid
}

// Legacy converts an extracted legacy record into an encoded modern record.
func Legacy(m *types.LegacyMon, opts Options) (*types.ConvertResult, error) {
	if m == nil || m.Species == 0 {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "legacy record has no translatable species"}
	}
	tid := opts.TrainerID
	if tid == 0 {
		tid = m.OTID
	}
	otid := uint32(opts.SecretID)<<16 | uint32(tid)
	lang := opts.Language
	if lang == 0 {
		lang = format.LangEnglish
	}

	nature := legacyNature(m)
	wantShiny := legacyShiny(m)
	pid, attempts, found := searchKey(m, otid, nature, wantShiny)
	if !found {
		pid = forceKey(otid, nature, wantShiny)
		if opts.Logger != nil {
			opts.Logger.Warn("key search exhausted, forcing key arithmetically",
				zap.Uint32("pid", pid),
				zap.Uint16("species", m.Species),
				zap.Bool("rare", wantShiny),
				zap.Int("attempts", attempts))
		}
	}

	r := &types.Record{
		PID:      pid,
		OTID:     otid,
		Nickname: opts.Nickname,
		Language: lang,
		OTName:   opts.OTName,

		Species:    m.Species,
		Experience: m.Experience,
		Friendship: defaultFriendship,

		MetLocation: defaultMetLocation,
		Ball:        defaultBall,
	}

	// IV = DV x 2 reaches only the even values 0..30. That loss is a known
	// artifact of the original transfer path and is preserved: narrowing it
	// would make converted records distinguishable from historical ones.
	hpDV := (m.AtkDV&1)<<3 | (m.DefDV&1)<<2 | (m.SpeDV&1)<<1 | m.SpcDV&1
	r.IVs = [6]byte{hpDV * 2, m.AtkDV * 2, m.DefDV * 2, m.SpeDV * 2, m.SpcDV * 2, m.SpcDV * 2}

	// Conservative legality policy: without per-species learnset data no
	// translated move is provably legal, so all are discarded and a single
	// known-legal fallback is assigned. Every nonzero source move counts as
	// dropped, whether or not it has a modern counterpart.
	dropped := 0
	for _, mv := range m.Moves {
		if mv == 0 {
			continue
		}
		dropped++
		if opts.Logger != nil {
			opts.Logger.Debug("move discarded",
				zap.Uint8("legacy", mv),
				zap.Uint16("modern", translateMove(m, mv)))
		}
	}
	r.Moves[0] = tables.FallbackMove(m.Species)
	r.PP[0] = fallbackMovePP

	if m.Generation == 2 && m.HeldItem != 0 {
		r.HeldItem = tables.ModernItemFromGen2(m.HeldItem)
		if r.HeldItem == 0 && opts.Logger != nil {
			opts.Logger.Debug("held item has no modern counterpart, dropped",
				zap.Uint8("item", m.HeldItem))
		}
	}

	// Met level is recomputed from the transferred experience rather than
	// carried over: the legacy level byte and experience routinely disagree
	// in stale box data, and the experience is what the modern format
	// trusts.
	curve := tables.CurveFor(m.Species)
	r.MetLevel = byte(curve.Level(m.Experience))

	data := codec.Encode(r)
	decoded, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("convert: re-decode: %w", err)
	}
	return &types.ConvertResult{
		Record:       decoded,
		Data:         data,
		KeyForced:    !found,
		Attempts:     attempts,
		DroppedMoves: dropped,
	}, nil
}

func translateMove(m *types.LegacyMon, mv byte) uint16 {
	if m.Generation == 1 {
		return tables.ModernMoveFromGen1(mv)
	}
	return tables.ModernMoveFromGen2(mv)
}
