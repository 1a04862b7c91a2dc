package types

// RepairOutcome reports what a targeted repair did to a single record.
type RepairOutcome struct {
	// Changed is true when any byte of the record was rewritten.
	Changed bool
	// Fields names the logical fields that were touched, in apply order.
	Fields []string
	// ChecksumOK reflects the record's checksum state after the repair.
	// False after a checksum repair indicates corruption beyond the
	// repair's scope.
	ChecksumOK bool
}

// SweepResult reports a corrupt-slot sweep over a save image.
type SweepResult struct {
	Scanned int // populated slots decoded
	Cleared int // slots zero-filled because their checksum failed
}

// ConvertResult carries a converted record plus provenance of its key.
type ConvertResult struct {
	Record *Record
	Data   []byte // encoded 80-byte form

	// KeyForced is true when the bounded generator search was exhausted and
	// the key was constructed arithmetically instead. Such keys satisfy the
	// nature and rarity constraints but are not generator-derived.
	KeyForced bool
	// Attempts is the number of generator candidates examined.
	Attempts int
	// DroppedMoves counts translated moves discarded by the conservative
	// legality policy.
	DroppedMoves int
}
