// Package codec decodes and encodes the 80-byte box record: XOR decryption
// keyed by PID and owner id, the 24-way block permutation, the 16-bit
// wraparound checksum and the fixed-width string fields.
//
// Decode is pure and returns a fresh Record; Encode is pure and returns a
// fresh 80-byte buffer. Neither touches its input.
package codec

import (
	"fmt"

	"github.com/boxkit/boxkit/internal/buf"
	"github.com/boxkit/boxkit/internal/charset"
	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/tables"
	"github.com/boxkit/boxkit/pkg/types"
)

// ShinyThreshold is the exclusive upper bound of the XOR rarity test.
const ShinyThreshold = 8

// NatureCount is the modulus of the PID-derived nature index.
const NatureCount = 25

// Nature returns the nature index derived from a record key.
func Nature(pid uint32) byte { return byte(pid % NatureCount) }

// Shiny reports the rarity flag derived from key and owner id.
func Shiny(pid, otid uint32) bool {
	return uint16(pid>>16)^uint16(pid)^uint16(otid>>16)^uint16(otid) < ShinyThreshold
}

// Checksum computes the 16-bit wraparound sum of the 24 little-endian words
// of the 48-byte region in logical block order.
func Checksum(logical [format.CryptBlockCount][]byte) uint16 {
	var sum uint16
	for _, block := range logical {
		for off := 0; off < format.CryptBlockSize; off += 2 {
			sum += buf.U16LE(block[off:])
		}
	}
	return sum
}

// crypt XORs the 48-byte region word-wise with the key. XOR is its own
// inverse, so the same routine encrypts and decrypts.
func crypt(data []byte, key uint32) {
	for off := 0; off+4 <= len(data); off += 4 {
		buf.PutU32LE(data[off:], buf.U32LE(data[off:])^key)
	}
}

// Decode parses an 80-byte record. The only failure is a wrong buffer
// length; a checksum mismatch is reported through Record.ChecksumOK with all
// fields still populated.
func Decode(b []byte) (*types.Record, error) {
	hdr, err := format.ParseRecordHeader(b)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}

	data := make([]byte, format.RecCryptLen)
	copy(data, b[format.RecCryptOffset:])
	crypt(data, hdr.CryptKey())
	logical := unshuffle(data, hdr.PID)

	r := &types.Record{
		PID:      hdr.PID,
		OTID:     hdr.OTID,
		Nickname: charset.DecodeFixed(hdr.RawNickname),
		Language: hdr.Language,
		OTName:   charset.DecodeFixed(hdr.RawOTName),
		Markings: hdr.Markings,

		StoredChecksum:   hdr.StoredChecksum,
		ComputedChecksum: Checksum(logical),
		Nature:           Nature(hdr.PID),
		Shiny:            Shiny(hdr.PID, hdr.OTID),
	}
	r.ChecksumOK = r.StoredChecksum == r.ComputedChecksum

	growth := logical[format.BlockGrowth]
	r.SpeciesInternal = buf.U16LE(growth[format.GrowthSpeciesOffset:])
	r.Species = tables.NationalFromInternal(r.SpeciesInternal)
	r.HeldItem = buf.U16LE(growth[format.GrowthItemOffset:])
	r.Experience = buf.U32LE(growth[format.GrowthExperienceOffset:])
	r.PPBonuses = growth[format.GrowthPPBonusesOffset]
	r.Friendship = growth[format.GrowthFriendshipOffset]

	attacks := logical[format.BlockAttacks]
	for i := 0; i < format.MoveSlots; i++ {
		r.Moves[i] = buf.U16LE(attacks[format.AttackMovesOffset+2*i:])
		r.PP[i] = attacks[format.AttackPPOffset+i]
	}

	cond := logical[format.BlockCondition]
	for i := 0; i < format.StatCount; i++ {
		r.Effort[i] = cond[format.CondEffortOffset+i]
		r.Contest[i] = cond[format.CondContestOffset+i]
	}

	misc := logical[format.BlockMisc]
	r.Pokerus = misc[format.MiscStatusOffset]
	r.MetLocation = misc[format.MiscLocationOffset]
	origins := buf.U16LE(misc[format.MiscOriginsOffset:])
	r.MetLevel = byte(origins & format.OriginsMetLevelMask)
	r.Ball = byte((origins & format.OriginsBallMask) >> format.OriginsBallShift)
	r.OTFemale = origins&format.OriginsOTSexBit != 0
	ivWord := buf.U32LE(misc[format.MiscIVOffset:])
	for i := 0; i < format.StatCount; i++ {
		r.IVs[i] = byte(ivWord >> (i * format.IVBitsPerStat) & format.IVStatMask)
	}
	r.IsEgg = ivWord&format.IVEggFlagBit != 0
	if ivWord&format.IVAbilityBit != 0 {
		r.AbilitySlot = 1
	}
	r.Ribbons = buf.U32LE(misc[format.MiscRibbonsOffset:])

	return r, nil
}

// Encode builds the 80-byte on-disk form of r: logical blocks are assembled,
// checksummed, shuffled by PID and encrypted. Decode(Encode(r)) reproduces
// every field.
func Encode(r *types.Record) []byte {
	out := make([]byte, format.RecordSize)
	buf.PutU32LE(out[format.RecPIDOffset:], r.PID)
	buf.PutU32LE(out[format.RecOTIDOffset:], r.OTID)
	copy(out[format.RecNicknameOffset:], charset.EncodeFixed(r.Nickname, format.RecNicknameLen))
	buf.PutU16LE(out[format.RecLanguageOffset:], r.Language)
	copy(out[format.RecOTNameOffset:], charset.EncodeFixed(r.OTName, format.RecOTNameLen))
	out[format.RecMarkingsOffset] = r.Markings

	var blocks [format.CryptBlockCount][format.CryptBlockSize]byte
	var logical [format.CryptBlockCount][]byte
	for i := range blocks {
		logical[i] = blocks[i][:]
	}

	growth := logical[format.BlockGrowth]
	internal := r.SpeciesInternal
	if internal == 0 {
		internal = tables.InternalFromNational(r.Species)
	}
	buf.PutU16LE(growth[format.GrowthSpeciesOffset:], internal)
	buf.PutU16LE(growth[format.GrowthItemOffset:], r.HeldItem)
	buf.PutU32LE(growth[format.GrowthExperienceOffset:], r.Experience)
	growth[format.GrowthPPBonusesOffset] = r.PPBonuses
	growth[format.GrowthFriendshipOffset] = r.Friendship

	attacks := logical[format.BlockAttacks]
	for i := 0; i < format.MoveSlots; i++ {
		buf.PutU16LE(attacks[format.AttackMovesOffset+2*i:], r.Moves[i])
		attacks[format.AttackPPOffset+i] = r.PP[i]
	}

	cond := logical[format.BlockCondition]
	for i := 0; i < format.StatCount; i++ {
		cond[format.CondEffortOffset+i] = r.Effort[i]
		cond[format.CondContestOffset+i] = r.Contest[i]
	}

	misc := logical[format.BlockMisc]
	misc[format.MiscStatusOffset] = r.Pokerus
	misc[format.MiscLocationOffset] = r.MetLocation
	origins := uint16(r.MetLevel) & format.OriginsMetLevelMask
	origins |= uint16(r.Ball) << format.OriginsBallShift & format.OriginsBallMask
	if r.OTFemale {
		origins |= format.OriginsOTSexBit
	}
	buf.PutU16LE(misc[format.MiscOriginsOffset:], origins)
	var ivWord uint32
	for i := 0; i < format.StatCount; i++ {
		ivWord |= uint32(r.IVs[i]&format.IVStatMask) << (i * format.IVBitsPerStat)
	}
	if r.IsEgg {
		ivWord |= format.IVEggFlagBit
	}
	if r.AbilitySlot != 0 {
		ivWord |= format.IVAbilityBit
	}
	buf.PutU32LE(misc[format.MiscIVOffset:], ivWord)
	buf.PutU32LE(misc[format.MiscRibbonsOffset:], r.Ribbons)

	buf.PutU16LE(out[format.RecChecksumOffset:], Checksum(logical))

	crypted := out[format.RecCryptOffset:]
	shuffle(crypted, logical, r.PID)
	crypt(crypted, r.PID^r.OTID)
	return out
}
