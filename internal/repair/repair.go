// Package repair applies targeted fixes to individual box records and sweeps
// whole save images for unrecoverable slots. Record repairs mutate the
// caller's 80-byte buffer in place and are idempotent: a second application
// reports no change.
package repair

import (
	"github.com/boxkit/boxkit/internal/buf"
	"github.com/boxkit/boxkit/internal/codec"
	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/section"
	"github.com/boxkit/boxkit/internal/tables"
	"github.com/boxkit/boxkit/pkg/types"
)

// Checksum rewrites the stored checksum from the decrypted contents. The
// record data itself is not touched.
func Checksum(b []byte) (*types.RepairOutcome, error) {
	r, err := codec.OpenRaw(b)
	if err != nil {
		return nil, err
	}
	out := &types.RepairOutcome{ChecksumOK: true}
	if computed := r.Checksum(); computed != r.Header.StoredChecksum {
		buf.PutU16LE(b[format.RecChecksumOffset:], computed)
		out.Changed = true
		out.Fields = []string{"checksum"}
	}
	return out, nil
}

// Locale replaces an unknown language code with lang; pass 0 for English.
// The field is plaintext, so the checksum state is unaffected either way.
func Locale(b []byte, lang uint16) (*types.RepairOutcome, error) {
	if lang == 0 {
		lang = format.LangEnglish
	}
	r, err := codec.OpenRaw(b)
	if err != nil {
		return nil, err
	}
	out := &types.RepairOutcome{ChecksumOK: r.Checksum() == r.Header.StoredChecksum}
	if !format.KnownLanguage(r.Header.Language) {
		buf.PutU16LE(b[format.RecLanguageOffset:], lang)
		out.Changed = true
		out.Fields = []string{"language"}
	}
	return out, nil
}

// MetLevel recomputes the met-level bits from the record's experience via its
// species' growth curve. Only the seven met-level bits of the origins word
// are rewritten; ball and owner-sex bits are preserved.
func MetLevel(b []byte) (*types.RepairOutcome, error) {
	r, err := codec.OpenRaw(b)
	if err != nil {
		return nil, err
	}
	growth := r.Logical[format.BlockGrowth]
	species := tables.NationalFromInternal(buf.U16LE(growth[format.GrowthSpeciesOffset:]))
	exp := buf.U32LE(growth[format.GrowthExperienceOffset:])
	level := uint16(tables.CurveFor(species).Level(exp))

	misc := r.Logical[format.BlockMisc]
	origins := buf.U16LE(misc[format.MiscOriginsOffset:])
	fixed := origins&^format.OriginsMetLevelMask | level&format.OriginsMetLevelMask

	out := &types.RepairOutcome{}
	if fixed != origins {
		buf.PutU16LE(misc[format.MiscOriginsOffset:], fixed)
		r.Commit()
		out.Changed = true
		out.Fields = []string{"met-level"}
		out.ChecksumOK = true
		return out, nil
	}
	out.ChecksumOK = r.Checksum() == r.Header.StoredChecksum
	return out, nil
}

// EggFlag clears the egg bit of the misc block's packed word.
func EggFlag(b []byte) (*types.RepairOutcome, error) {
	r, err := codec.OpenRaw(b)
	if err != nil {
		return nil, err
	}
	misc := r.Logical[format.BlockMisc]
	ivWord := buf.U32LE(misc[format.MiscIVOffset:])

	out := &types.RepairOutcome{}
	if ivWord&format.IVEggFlagBit != 0 {
		buf.PutU32LE(misc[format.MiscIVOffset:], ivWord&^format.IVEggFlagBit)
		r.Commit()
		out.Changed = true
		out.Fields = []string{"egg-flag"}
		out.ChecksumOK = true
		return out, nil
	}
	out.ChecksumOK = r.Checksum() == r.Header.StoredChecksum
	return out, nil
}

// BadEgg is the composite repair for records a cartridge would flag as
// unusable: locale, met level and egg flag first, checksum last so it seals
// whatever the earlier steps rewrote. lang is the locale step's replacement
// language; pass 0 for English.
func BadEgg(b []byte, lang uint16) (*types.RepairOutcome, error) {
	locale := func(b []byte) (*types.RepairOutcome, error) { return Locale(b, lang) }
	out := &types.RepairOutcome{}
	for _, step := range []func([]byte) (*types.RepairOutcome, error){locale, MetLevel, EggFlag, Checksum} {
		o, err := step(b)
		if err != nil {
			return nil, err
		}
		out.Changed = out.Changed || o.Changed
		out.Fields = append(out.Fields, o.Fields...)
		out.ChecksumOK = o.ChecksumOK
	}
	return out, nil
}

// SweepCorruptSlots zero-fills every populated slot whose record checksum
// fails, then reseals the touched sections. Slots that decode cleanly are
// left alone.
func SweepCorruptSlots(s *section.Store) (*types.SweepResult, error) {
	res := &types.SweepResult{}
	blob := s.BuildBlob()
	for box := 0; box < format.BoxCount; box++ {
		for slot := 0; slot < format.BoxCapacity; slot++ {
			ref := types.SlotRef{Box: box, Slot: slot}
			off := format.StorageRecordsOffset + (box*format.BoxCapacity+slot)*format.RecordSize
			raw := blob[off : off+format.RecordSize]
			if format.RecordEmpty(raw) {
				continue
			}
			r, err := codec.Decode(raw)
			if err != nil {
				continue
			}
			res.Scanned++
			if r.ChecksumOK {
				continue
			}
			if err := clearSlot(s, ref); err != nil {
				return res, err
			}
			res.Cleared++
		}
	}
	return res, nil
}

// clearSlot zeroes one slot in the active block. Contiguous slots are wiped
// through the in-place view; the slot that straddles a section boundary goes
// through Inject, which handles the split rewrite.
func clearSlot(s *section.Store, ref types.SlotRef) error {
	if raw, ids, ok := s.SlotBytes(ref); ok {
		for i := range raw {
			raw[i] = 0
		}
		for _, id := range ids {
			if !s.RewriteSection(id) {
				return &types.Error{Kind: types.ErrKindCorrupt, Msg: "storage section missing during sweep"}
			}
		}
		return nil
	}
	_, err := s.Inject([]types.Placement{{SlotRef: ref, Data: make([]byte, format.RecordSize)}})
	return err
}
