// Package verify audits save images without modifying them: generation
// detection, structural checks and recomputation of every native checksum.
package verify

import (
	"fmt"

	"github.com/boxkit/boxkit/internal/buf"
	"github.com/boxkit/boxkit/internal/charset"
	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/legacy"
	"github.com/boxkit/boxkit/internal/section"
	"github.com/boxkit/boxkit/pkg/types"
)

// ValidationError describes one failed structural check.
type ValidationError struct {
	Type    string
	Message string
	Offset  int // file offset of the failure, -1 when not applicable
	Details map[string]interface{}
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Detect identifies the save generation of data and returns its canonical
// view: the 128 KiB image for the modern format (emulator header stripped),
// or the normalized 32 KiB image for the legacy formats.
func Detect(data []byte) (types.SaveKind, []byte, error) {
	if img, _, err := format.StripEmuHeader(data); err == nil {
		if modernSignaturePresent(img) {
			return types.SaveModern, img, nil
		}
		return types.SaveUnknown, nil, &ValidationError{
			Type:    "Detect",
			Message: "128 KiB image without a valid sector signature",
			Offset:  format.SectorSignatureOffset,
		}
	}
	switch gen, img := legacy.DetectGeneration(data); gen {
	case 1:
		return types.SaveLegacy1, img, nil
	case 2:
		return types.SaveLegacy2, img, nil
	}
	return types.SaveUnknown, nil, types.ErrNotSave
}

// modernSignaturePresent reports whether any sector of either block carries
// the format signature.
func modernSignaturePresent(img []byte) bool {
	for b := 0; b < format.SaveBlockCount; b++ {
		for i := 0; i < format.SectorsPerBlock; i++ {
			off := b*format.SaveBlockSize + i*format.SectorSize
			if buf.U32LE(img[off+format.SectorSignatureOffset:]) == format.SectorSignature {
				return true
			}
		}
	}
	return false
}

// Report runs the full non-mutating audit: detection, metadata extraction and
// recomputation of every native checksum the detected format carries.
func Report(data []byte) (*types.ValidationReport, error) {
	kind, img, err := Detect(data)
	if err != nil {
		return nil, err
	}
	rep := &types.ValidationReport{
		Kind:      kind,
		EmuHeader: kind == types.SaveModern && len(data) == format.SaveSize+format.EmuHeaderSize,
	}
	switch kind {
	case types.SaveModern:
		if err := modernReport(img, rep); err != nil {
			return nil, err
		}
	case types.SaveLegacy1:
		rep.PlayerName = charset.DecodeLegacy(img[format.Gen1PlayerNameOff : format.Gen1PlayerNameOff+format.LegacyNameLen])
		rep.Checks = append(rep.Checks, gen1Check(img))
	case types.SaveLegacy2:
		rep.PlayerName = charset.DecodeLegacy(img[format.Gen2PlayerNameOff : format.Gen2PlayerNameOff+format.LegacyNameLen])
		rep.Checks = append(rep.Checks, gen2Checks(img)...)
	}
	return rep, nil
}

// modernReport verifies every signed sector of both blocks. Sectors without
// the signature are skipped: the backup block of a young save is often
// unwritten flash.
func modernReport(img []byte, rep *types.ValidationReport) error {
	store, err := section.Parse(img)
	if err != nil {
		return err
	}
	rep.SaveCount = store.SaveCounter()
	rep.PlayerName = modernPlayerName(store)

	signed := 0
	for b := 0; b < format.SaveBlockCount; b++ {
		for i := 0; i < format.SectorsPerBlock; i++ {
			f := store.Footer(b, i)
			if !f.Valid() {
				continue
			}
			signed++
			off := b*format.SaveBlockSize + i*format.SectorSize
			computed := format.SectionChecksum(img[off : off+format.SectorSize])
			rep.Checks = append(rep.Checks, types.ChecksumCheck{
				Location: fmt.Sprintf("block %d sector %d", b, i),
				Offset:   off + format.SectorChecksumOffset,
				Stored:   uint32(f.Checksum),
				Computed: uint32(computed),
				OK:       f.Checksum == computed,
			})
		}
	}
	if signed == 0 {
		return &ValidationError{Type: "ModernStructure", Message: "no signed sectors", Offset: -1}
	}
	return nil
}

// modernPlayerName pulls the player name from the trainer-info section
// (id 0) of the active block. Best effort: absent section yields "".
func modernPlayerName(store *section.Store) string {
	for i := 0; i < format.SectorsPerBlock; i++ {
		f := store.Footer(store.ActiveBlock(), i)
		if f.Valid() && f.ID == 0 {
			off := store.ActiveBlock()*format.SaveBlockSize + i*format.SectorSize
			raw := store.Bytes()[off : off+format.RecOTNameLen+1]
			return charset.DecodeFixed(raw)
		}
	}
	return ""
}

// gen1Check recomputes the single 8-bit checksum: the complement of the byte
// sum over the primary data range.
func gen1Check(img []byte) types.ChecksumCheck {
	var sum byte
	for _, b := range img[format.Gen1ChecksumStart : format.Gen1ChecksumEnd+1] {
		sum += b
	}
	computed := ^sum
	stored := img[format.Gen1ChecksumOffset]
	return types.ChecksumCheck{
		Location: "primary range",
		Offset:   format.Gen1ChecksumOffset,
		Stored:   uint32(stored),
		Computed: uint32(computed),
		OK:       stored == computed,
	}
}

// gen2Checks recomputes the two little-endian 16-bit sums of the second
// legacy format.
func gen2Checks(img []byte) []types.ChecksumCheck {
	ranges := []struct {
		location   string
		start, end int // end inclusive
		offset     int
	}{
		{"primary range", format.Gen2Checksum1Start, format.Gen2Checksum1End, format.Gen2Checksum1Offset},
		{"secondary range", format.Gen2Checksum2Start, format.Gen2Checksum2End, format.Gen2Checksum2Offset},
	}
	checks := make([]types.ChecksumCheck, 0, len(ranges))
	for _, r := range ranges {
		var sum uint16
		for _, b := range img[r.start : r.end+1] {
			sum += uint16(b)
		}
		stored := buf.U16LE(img[r.offset:])
		checks = append(checks, types.ChecksumCheck{
			Location: r.location,
			Offset:   r.offset,
			Stored:   uint32(stored),
			Computed: uint32(sum),
			OK:       stored == sum,
		})
	}
	return checks
}
