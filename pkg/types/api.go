package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat  ErrKind = iota // wrong buffer length / undetectable save generation
	ErrKindCorrupt                // structural corruption beyond targeted repair
	ErrKindBounds                 // box/slot coordinates outside the container
	ErrKindState                  // invalid operation for current state
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrBadLength indicates a record buffer was not exactly 80 bytes.
	ErrBadLength = &Error{Kind: ErrKindFormat, Msg: "record must be exactly 80 bytes"}
	// ErrNotSave indicates the buffer matches no known save generation.
	ErrNotSave = &Error{Kind: ErrKindFormat, Msg: "not a recognized save image"}
	// ErrSlotBounds indicates box/slot coordinates outside the 14x30 grid.
	ErrSlotBounds = &Error{Kind: ErrKindBounds, Msg: "box or slot index out of range"}
)

// -----------------------------------------------------------------------------
// Decoded Records
// -----------------------------------------------------------------------------

// Record is the fully decoded form of an 80-byte box record. Decoding always
// completes: when the stored checksum does not match the recomputed one,
// ChecksumOK is false and every field still carries its best-effort value so
// repair tooling can inspect the data.
type Record struct {
	// Plaintext header.
	PID      uint32
	OTID     uint32
	Nickname string
	Language uint16
	OTName   string
	Markings byte

	// Growth block. Species is the public catalog number; SpeciesInternal is
	// the raw on-disk index (they differ above catalog 251).
	SpeciesInternal uint16
	Species         uint16
	HeldItem        uint16
	Experience      uint32
	PPBonuses       byte
	Friendship      byte

	// Attacks block.
	Moves [4]uint16
	PP    [4]byte

	// Condition block: effort values and contest stats, both ordered
	// HP/Atk/Def/Spe/SpA/SpD and cool/beauty/cute/smart/tough/feel.
	Effort  [6]byte
	Contest [6]byte

	// Misc block.
	Pokerus     byte
	MetLocation byte
	MetLevel    byte
	Ball        byte
	OTFemale    bool
	IVs         [6]byte
	IsEgg       bool
	AbilitySlot byte
	Ribbons     uint32

	// Derived from PID and owner id.
	Nature byte
	Shiny  bool

	// Checksum state.
	StoredChecksum   uint16
	ComputedChecksum uint16
	ChecksumOK       bool
}

// TrainerID returns the public half of the combined owner id.
func (r *Record) TrainerID() uint16 { return uint16(r.OTID) }

// SecretID returns the hidden half of the combined owner id.
func (r *Record) SecretID() uint16 { return uint16(r.OTID >> 16) }

// LegacyMon is a record extracted from one of the two older box formats.
// DV values are 4-bit; multi-byte source fields are big-endian on disk.
type LegacyMon struct {
	Generation int // 1 or 2
	RawSpecies byte
	Species    uint16 // catalog number after table translation
	OTID       uint16
	Experience uint32
	Level      byte
	Moves      [4]byte
	PP         [4]byte // PP-Up bits already masked off
	AtkDV      byte
	DefDV      byte
	SpeDV      byte
	SpcDV      byte
	HeldItem   byte // second legacy format only
}

// DVWord repacks the four DVs in the on-disk order atk/def/spe/spc.
func (m *LegacyMon) DVWord() uint16 {
	return uint16(m.AtkDV)<<12 | uint16(m.DefDV)<<8 | uint16(m.SpeDV)<<4 | uint16(m.SpcDV)
}

// -----------------------------------------------------------------------------
// Save Containers
// -----------------------------------------------------------------------------

// SlotRef addresses one of the 420 record slots in the modern save.
type SlotRef struct {
	Box  int // 0-based, 0..13
	Slot int // 0-based, 0..29
}

// Placement pairs an encoded 80-byte record with its destination slot.
type Placement struct {
	SlotRef
	Data []byte
}

// StoredRecord pairs a decoded record with the slot it occupies.
type StoredRecord struct {
	SlotRef
	Record *Record
}
