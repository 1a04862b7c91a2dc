package sav

import (
	"go.uber.org/zap"

	"github.com/boxkit/boxkit/internal/codec"
	"github.com/boxkit/boxkit/internal/convert"
	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/legacy"
	"github.com/boxkit/boxkit/internal/repair"
	"github.com/boxkit/boxkit/internal/section"
	"github.com/boxkit/boxkit/pkg/sav/verify"
	"github.com/boxkit/boxkit/pkg/types"
)

// DecodeRecord decodes one 80-byte box record. The only failure is a wrong
// buffer length; a checksum mismatch is not an error and is reported through
// Record.ChecksumOK.
func DecodeRecord(b []byte) (*types.Record, error) {
	r, err := codec.Decode(b)
	if err != nil {
		return nil, types.ErrBadLength
	}
	return r, nil
}

// EncodeRecord produces the 80-byte on-disk form of r.
func EncodeRecord(r *types.Record) []byte { return codec.Encode(r) }

// ValidateSave audits a save image without modifying it.
func ValidateSave(data []byte) (*types.ValidationReport, error) { return verify.Report(data) }

// ConvertOptions adjusts the owner identity stamped onto converted records.
// The zero value keeps the legacy owner id and uses the English locale.
type ConvertOptions struct {
	TrainerID uint16
	SecretID  uint16
	OTName    string
	Nickname  string
	Language  uint16
	Logger    *zap.Logger
}

// ConvertLegacyToModern rebuilds a legacy record as a valid modern one,
// preserving nature and rarity.
func ConvertLegacyToModern(m *types.LegacyMon, opts ConvertOptions) (*types.ConvertResult, error) {
	return convert.Legacy(m, convert.Options{
		TrainerID: opts.TrainerID,
		SecretID:  opts.SecretID,
		OTName:    opts.OTName,
		Nickname:  opts.Nickname,
		Language:  opts.Language,
		Logger:    opts.Logger,
	})
}

// Record repairs. Each mutates the caller's 80-byte buffer in place and is
// idempotent.
var (
	RepairChecksum = repair.Checksum
	FixMetLevel    = repair.MetLevel
	FixEggFlag     = repair.EggFlag
)

// FixLocale replaces an unknown language code with lang (0 means English).
func FixLocale(b []byte, lang uint16) (*types.RepairOutcome, error) {
	return repair.Locale(b, lang)
}

var languageCodes = map[string]uint16{
	"japanese": format.LangJapanese,
	"english":  format.LangEnglish,
	"french":   format.LangFrench,
	"italian":  format.LangItalian,
	"german":   format.LangGerman,
	"korean":   format.LangKorean,
	"spanish":  format.LangSpanish,
}

// LanguageCode resolves a language name to its record locale code. ok is
// false for names outside the seven known locales.
func LanguageCode(name string) (code uint16, ok bool) {
	code, ok = languageCodes[name]
	return code, ok
}

// RepairBadEgg runs the composite bad-egg repair, using lang for the locale
// step (0 means English).
func RepairBadEgg(b []byte, lang uint16) (*types.RepairOutcome, error) {
	return repair.BadEgg(b, lang)
}

// Save is a parsed save image. The backing buffer is owned by the Save;
// mutating operations edit it in place so Bytes always reflects the current
// state, emulator header included.
type Save struct {
	kind  types.SaveKind
	data  []byte         // full copy of the caller's image
	canon []byte         // canonical view into data
	store *section.Store // modern format only
}

// ParseSaveImage detects the generation of data and wraps it. The buffer is
// copied; the caller's slice is never modified.
func ParseSaveImage(data []byte) (*Save, error) {
	own := append([]byte{}, data...)
	kind, canon, err := verify.Detect(own)
	if err != nil {
		return nil, err
	}
	s := &Save{kind: kind, data: own, canon: canon}
	if kind == types.SaveModern {
		store, err := section.Parse(own)
		if err != nil {
			return nil, err
		}
		s.store = store
	}
	return s, nil
}

// Kind returns the detected save generation.
func (s *Save) Kind() types.SaveKind { return s.kind }

// Bytes returns the full image in its current state, including any emulator
// header or trailer the input carried.
func (s *Save) Bytes() []byte { return s.data }

func (s *Save) modern() (*section.Store, error) {
	if s.store == nil {
		return nil, &types.Error{Kind: types.ErrKindState, Msg: "operation requires the modern save format"}
	}
	return s.store, nil
}

// ExtractBoxRecords decodes every populated slot of a modern save.
func (s *Save) ExtractBoxRecords() ([]*types.StoredRecord, error) {
	store, err := s.modern()
	if err != nil {
		return nil, err
	}
	return store.ExtractRecords(), nil
}

// FindEmptySlots lists the unoccupied slots of a modern save.
func (s *Save) FindEmptySlots() ([]types.SlotRef, error) {
	store, err := s.modern()
	if err != nil {
		return nil, err
	}
	return store.FindEmptySlots(), nil
}

// InjectBoxRecords writes encoded records into a modern save and reseals the
// touched sections. Suspicious records produce warnings; structural problems
// produce errors.
func (s *Save) InjectBoxRecords(placements []types.Placement) ([]string, error) {
	store, err := s.modern()
	if err != nil {
		return nil, err
	}
	return store.Inject(placements)
}

// SweepCorruptSlots zero-fills every slot whose record checksum fails.
func (s *Save) SweepCorruptSlots() (*types.SweepResult, error) {
	store, err := s.modern()
	if err != nil {
		return nil, err
	}
	return repair.SweepCorruptSlots(store)
}

// RepairSlot applies a record repair to one stored record in place and
// reseals the touched sections. Repairs taking extra arguments, such as
// FixLocale, are passed as closures.
func (s *Save) RepairSlot(ref types.SlotRef, fix func([]byte) (*types.RepairOutcome, error)) (*types.RepairOutcome, error) {
	store, err := s.modern()
	if err != nil {
		return nil, err
	}
	if raw, ids, ok := store.SlotBytes(ref); ok {
		out, err := fix(raw)
		if err != nil {
			return nil, err
		}
		if out.Changed {
			for _, id := range ids {
				store.RewriteSection(id)
			}
		}
		return out, nil
	}
	// The slot straddles a section boundary; repair a copy and inject it.
	blob := store.BuildBlob()
	off := blobOffset(ref)
	if off < 0 {
		return nil, types.ErrSlotBounds
	}
	data := append([]byte{}, blob[off:off+format.RecordSize]...)
	out, err := fix(data)
	if err != nil {
		return nil, err
	}
	if out.Changed {
		if _, err := store.Inject([]types.Placement{{SlotRef: ref, Data: data}}); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// LegacyRecords extracts the plausible box records of a legacy save.
func (s *Save) LegacyRecords() ([]*types.LegacyMon, error) {
	switch s.kind {
	case types.SaveLegacy1:
		return legacy.ExtractGen1(s.canon), nil
	case types.SaveLegacy2:
		return legacy.ExtractGen2(s.canon), nil
	}
	return nil, &types.Error{Kind: types.ErrKindState, Msg: "operation requires a legacy save format"}
}

// Validate re-audits the save in its current state.
func (s *Save) Validate() (*types.ValidationReport, error) { return verify.Report(s.data) }

// blobOffset maps a slot reference to its byte offset in the storage blob,
// or -1 when out of bounds.
func blobOffset(ref types.SlotRef) int {
	if ref.Box < 0 || ref.Box >= format.BoxCount || ref.Slot < 0 || ref.Slot >= format.BoxCapacity {
		return -1
	}
	return format.StorageRecordsOffset + (ref.Box*format.BoxCapacity+ref.Slot)*format.RecordSize
}
