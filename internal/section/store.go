// Package section parses and rewrites the modern 128 KiB sectioned save
// image. Parsing is read-only; Inject and the checksum rewrites mutate the
// caller's buffer in place, touching only the sectors of the selected block
// whose sections actually changed.
package section

import (
	"fmt"

	"github.com/boxkit/boxkit/internal/codec"
	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/tables"
	"github.com/boxkit/boxkit/pkg/types"
)

// Store is a parsed view over a save image. The underlying buffer is owned
// by the caller; Store never copies it.
type Store struct {
	raw  []byte // caller's buffer, possibly with emulator header
	save []byte // canonical 128 KiB view into raw

	hadHeader bool
	footers   [format.SaveBlockCount][format.SectorsPerBlock]format.Footer
	active    int
}

// Parse strips the optional emulator header, slices every sector footer and
// elects the authoritative save block. The buffer is retained, not copied.
func Parse(buffer []byte) (*Store, error) {
	save, hadHeader, err := format.StripEmuHeader(buffer)
	if err != nil {
		return nil, err
	}
	s := &Store{raw: buffer, save: save, hadHeader: hadHeader}
	for b := 0; b < format.SaveBlockCount; b++ {
		for i := 0; i < format.SectorsPerBlock; i++ {
			f, err := format.ParseFooter(s.sector(b, i))
			if err != nil {
				return nil, fmt.Errorf("block %d sector %d: %w", b, i, err)
			}
			s.footers[b][i] = f
		}
	}
	s.active = s.electBlock()
	return s, nil
}

// HadEmuHeader reports whether a 16-byte emulator header was stripped.
func (s *Store) HadEmuHeader() bool { return s.hadHeader }

// Bytes returns the canonical 128 KiB view, headerless. The slice aliases the
// buffer passed to Parse.
func (s *Store) Bytes() []byte { return s.save }

// ActiveBlock returns the index of the elected save block.
func (s *Store) ActiveBlock() int { return s.active }

// Footer returns the parsed footer of the given sector.
func (s *Store) Footer(block, sector int) format.Footer { return s.footers[block][sector] }

// SaveCounter returns the highest counter observed in the active block.
func (s *Store) SaveCounter() uint32 {
	max, _ := blockCounter(s.footers[s.active])
	return max
}

func (s *Store) sector(block, i int) []byte {
	off := block*format.SaveBlockSize + i*format.SectorSize
	return s.save[off : off+format.SectorSize]
}

// blockCounter returns the maximum save counter among valid sectors and how
// many sectors agree on it.
func blockCounter(footers [format.SectorsPerBlock]format.Footer) (max uint32, agree int) {
	seen := false
	for _, f := range footers {
		if !f.Valid() {
			continue
		}
		switch {
		case !seen || f.Counter > max:
			max, agree, seen = f.Counter, 1, true
		case f.Counter == max:
			agree++
		}
	}
	return max, agree
}

// electBlock picks the authoritative block: higher maximum counter wins;
// equal maxima fall back to the block with more sectors agreeing on that
// maximum. This defends against a save interrupted mid-write, which leaves
// one block with a mix of old and new counters.
func (s *Store) electBlock() int {
	max0, agree0 := blockCounter(s.footers[0])
	max1, agree1 := blockCounter(s.footers[1])
	switch {
	case max1 > max0:
		return 1
	case max0 > max1:
		return 0
	case agree1 > agree0:
		return 1
	default:
		return 0
	}
}

// sectionSector locates the sector holding section id within the active
// block. The second result is false when the section is absent.
func (s *Store) sectionSector(id int) (int, bool) {
	for i, f := range s.footers[s.active] {
		if f.Valid() && int(f.ID) == id {
			return i, true
		}
	}
	return 0, false
}

// BuildBlob concatenates the storage sections (ids 5..13, ascending) into a
// fresh 9 x 0xF80 buffer. Missing sections contribute zero bytes.
func (s *Store) BuildBlob() []byte {
	blob := make([]byte, format.StorageBlobSize)
	for id := format.StorageFirstSection; id <= format.StorageLastSection; id++ {
		i, ok := s.sectionSector(id)
		if !ok {
			continue
		}
		dst := blob[(id-format.StorageFirstSection)*format.SectionDataSize:]
		copy(dst[:format.SectionDataSize], s.sector(s.active, i))
	}
	return blob
}

// slotOffset returns the byte offset of a record slot within the blob.
func slotOffset(ref types.SlotRef) int {
	idx := ref.Box*format.BoxCapacity + ref.Slot
	return format.StorageRecordsOffset + idx*format.RecordSize
}

// slotInBounds reports whether ref addresses one of the 420 slots.
func slotInBounds(ref types.SlotRef) bool {
	return ref.Box >= 0 && ref.Box < format.BoxCount && ref.Slot >= 0 && ref.Slot < format.BoxCapacity
}

// ExtractRecords decodes every populated slot. Records with failing
// checksums are included, flagged through ChecksumOK.
func (s *Store) ExtractRecords() []*types.StoredRecord {
	blob := s.BuildBlob()
	var out []*types.StoredRecord
	for box := 0; box < format.BoxCount; box++ {
		for slot := 0; slot < format.BoxCapacity; slot++ {
			ref := types.SlotRef{Box: box, Slot: slot}
			off := slotOffset(ref)
			raw := blob[off : off+format.RecordSize]
			if format.RecordEmpty(raw) {
				continue
			}
			r, err := codec.Decode(raw)
			if err != nil {
				continue
			}
			out = append(out, &types.StoredRecord{SlotRef: ref, Record: r})
		}
	}
	return out
}

// FindEmptySlots lists every slot with no record. Emptiness follows the
// record invariant (zero key and checksum), not an all-zero comparison.
func (s *Store) FindEmptySlots() []types.SlotRef {
	blob := s.BuildBlob()
	var out []types.SlotRef
	for box := 0; box < format.BoxCount; box++ {
		for slot := 0; slot < format.BoxCapacity; slot++ {
			ref := types.SlotRef{Box: box, Slot: slot}
			off := slotOffset(ref)
			if format.RecordEmpty(blob[off : off+format.RecordSize]) {
				out = append(out, ref)
			}
		}
	}
	return out
}

// Inject writes the placements into the record stream and rewrites the
// touched sections of the active block in place: payload bytes first, then
// the footer checksum. Ids, signatures, counters, all other sections and the
// non-selected block are left untouched.
//
// Suspicious placements (failing checksum, out-of-table species) produce
// warnings rather than rejections: legitimate transfers sometimes carry
// edited payloads. Structural problems (bad length, slot out of bounds) are
// errors.
func (s *Store) Inject(placements []types.Placement) ([]string, error) {
	var warnings []string
	blob := s.BuildBlob()
	touched := map[int]bool{}

	for _, p := range placements {
		if len(p.Data) != format.RecordSize {
			return warnings, &types.Error{Kind: types.ErrKindFormat, Msg: fmt.Sprintf("placement %d/%d: record is %d bytes", p.Box, p.Slot, len(p.Data))}
		}
		if !slotInBounds(p.SlotRef) {
			return warnings, types.ErrSlotBounds
		}
		if r, err := codec.Decode(p.Data); err == nil {
			if !r.ChecksumOK {
				warnings = append(warnings, fmt.Sprintf("slot %d/%d: record checksum mismatch", p.Box, p.Slot))
			}
			if r.SpeciesInternal != 0 && tables.NationalFromInternal(r.SpeciesInternal) == 0 {
				warnings = append(warnings, fmt.Sprintf("slot %d/%d: species index %d outside table", p.Box, p.Slot, r.SpeciesInternal))
			}
		}
		off := slotOffset(p.SlotRef)
		copy(blob[off:off+format.RecordSize], p.Data)
		for sec := off / format.SectionDataSize; sec <= (off+format.RecordSize-1)/format.SectionDataSize; sec++ {
			touched[sec] = true
		}
	}

	for sec := range touched {
		id := format.StorageFirstSection + sec
		i, ok := s.sectionSector(id)
		if !ok {
			return warnings, &types.Error{Kind: types.ErrKindCorrupt, Msg: fmt.Sprintf("storage section %d missing from active block", id)}
		}
		sector := s.sector(s.active, i)
		copy(sector[:format.SectionDataSize], blob[sec*format.SectionDataSize:(sec+1)*format.SectionDataSize])
		sum := format.SectionChecksum(sector)
		format.WriteFooterChecksum(sector, sum)
		s.footers[s.active][i].Checksum = sum
	}
	return warnings, nil
}

// RewriteSection recomputes and stores the checksum of one storage section's
// sector after its payload was edited externally (the repair sweep does
// this). Returns false when the section is absent.
func (s *Store) RewriteSection(id int) bool {
	i, ok := s.sectionSector(id)
	if !ok {
		return false
	}
	sector := s.sector(s.active, i)
	sum := format.SectionChecksum(sector)
	format.WriteFooterChecksum(sector, sum)
	s.footers[s.active][i].Checksum = sum
	return true
}

// SlotBytes returns the in-place byte slice of one record slot inside the
// active block, plus the storage section ids backing it. The slice aliases
// the caller's save buffer; writing through it requires RewriteSection on
// each returned id afterwards. The second return value is false when the
// slot's bytes are not contiguous in one sector (the slot straddles a
// section boundary); callers must then fall back to Inject.
func (s *Store) SlotBytes(ref types.SlotRef) ([]byte, []int, bool) {
	if !slotInBounds(ref) {
		return nil, nil, false
	}
	off := slotOffset(ref)
	firstSec := off / format.SectionDataSize
	lastSec := (off + format.RecordSize - 1) / format.SectionDataSize
	ids := []int{format.StorageFirstSection + firstSec}
	if lastSec != firstSec {
		ids = append(ids, format.StorageFirstSection+lastSec)
		return nil, ids, false
	}
	i, ok := s.sectionSector(ids[0])
	if !ok {
		return nil, nil, false
	}
	sector := s.sector(s.active, i)
	rel := off - firstSec*format.SectionDataSize
	return sector[rel : rel+format.RecordSize], ids, true
}
