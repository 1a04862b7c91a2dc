package tables

// gen2Items maps second-legacy-format held item ids to modern item ids.
// Items with no modern counterpart (mail, format-specific key items) are
// absent and resolve to 0 ("none"); the converter drops them.
var gen2Items = map[byte]uint16{
	0x01: 1,   // master ball
	0x02: 2,   // ultra ball
	0x03: 179, // brightpowder
	0x04: 3,   // great ball
	0x05: 4,   // poké ball
	0x23: 193, // smoke ball
	0x29: 197, // everstone
	0x51: 221, // leftovers
	0x5B: 187, // dragon scale
	0x60: 189, // hard stone
	0x78: 202, // scope lens
	0xAD: 139, // berry
	0xAE: 142, // gold berry
}

// ModernItemFromGen2 translates a legacy held item id, defaulting to 0.
func ModernItemFromGen2(item byte) uint16 {
	return gen2Items[item]
}
