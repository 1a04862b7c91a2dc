package types

// SaveKind identifies the detected save-image generation.
type SaveKind int

const (
	SaveUnknown SaveKind = iota
	SaveLegacy1          // 32 KiB, 33-byte records
	SaveLegacy2          // 32 KiB, 32-byte records
	SaveModern           // 128 KiB sectioned image
)

func (k SaveKind) String() string {
	switch k {
	case SaveLegacy1:
		return "legacy-1"
	case SaveLegacy2:
		return "legacy-2"
	case SaveModern:
		return "modern"
	default:
		return "unknown"
	}
}

// ChecksumCheck is one recomputed native checksum location.
type ChecksumCheck struct {
	Location string // e.g. "block 0 sector 5", "primary range"
	Offset   int    // file offset of the stored checksum
	Stored   uint32
	Computed uint32
	OK       bool
}

// ValidationReport is the non-mutating audit of a save image.
type ValidationReport struct {
	Kind       SaveKind
	EmuHeader  bool   // 16-byte emulator header was present and stripped
	PlayerName string // best-effort, may be empty
	SaveCount  uint32 // highest save counter seen (modern format only)
	Checks     []ChecksumCheck
}

// AllOK reports whether every recomputed checksum matched.
func (r *ValidationReport) AllOK() bool {
	for _, c := range r.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}
