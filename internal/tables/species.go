// Package tables holds the fixed lookup data shared by the codec, the legacy
// readers and the converter: species index maps across the three formats,
// move and item translation tables, and the growth-curve polynomials.
//
// All tables are pure data. Lookups never fail: an index absent from a table
// resolves to 0 ("none") so callers can substitute defaults and keep going.
package tables

const (
	// MaxNational is the highest catalog (national) species number the
	// modern format can represent.
	MaxNational = 386

	// MaxInternal is the highest internal species index.
	MaxInternal = 411

	// FormBlockFirst..FormBlockLast is the 25-entry run of internal indices
	// that all collapse onto FormBlockNational (the letter forms of one
	// species). The reverse mapping returns FormBlockFirst.
	FormBlockFirst    = 252
	FormBlockLast     = 276
	FormBlockNational = 201

	// LaterBlockFirst is the first internal index of the shuffled 135-entry
	// block covering national numbers 252..386.
	LaterBlockFirst = 277
)

// laterBlock maps internal indices LaterBlockFirst..MaxInternal to national
// numbers 252..386. The ordering is historical, not arithmetic; treat it as
// opaque data.
var laterBlock = [MaxInternal - LaterBlockFirst + 1]uint16{
	252, 253, 254, 255, 256, 257, 258, 259, 260, 261, // 277..286
	262, 263, 264, 265, 266, 267, 268, 269, 270, 271, // 287..296
	272, 273, 274, 275, 290, 291, 292, 276, 277, 285, // 297..306
	286, 327, 278, 279, 283, 284, 320, 321, 300, 301, // 307..316
	352, 343, 344, 299, 324, 302, 339, 340, 370, 341, // 317..326
	342, 349, 350, 318, 319, 328, 329, 330, 296, 297, // 327..336
	309, 310, 322, 323, 363, 364, 365, 331, 332, 361, // 337..346
	362, 337, 338, 298, 325, 326, 311, 312, 303, 307, // 347..356
	308, 333, 334, 360, 355, 356, 315, 287, 288, 289, // 357..366
	316, 317, 357, 293, 294, 295, 366, 367, 368, 359, // 367..376
	353, 354, 336, 335, 369, 304, 305, 306, 351, 313, // 377..386
	314, 345, 346, 347, 348, 280, 281, 282, 371, 372, // 387..396
	373, 374, 375, 376, 377, 378, 379, 382, 383, 384, // 397..406
	380, 381, 385, 386, 358, // 407..411
}

var nationalToInternal = buildNationalToInternal()

func buildNationalToInternal() [MaxNational + 1]uint16 {
	var t [MaxNational + 1]uint16
	for n := uint16(1); n <= 251; n++ {
		t[n] = n
	}
	t[FormBlockNational] = FormBlockFirst
	for i, national := range laterBlock {
		t[national] = uint16(LaterBlockFirst + i)
	}
	return t
}

// NationalFromInternal maps an internal species index to its catalog number.
// Unknown indices map to 0.
func NationalFromInternal(internal uint16) uint16 {
	switch {
	case internal == 0 || internal > MaxInternal:
		return 0
	case internal <= 251:
		return internal
	case internal <= FormBlockLast:
		return FormBlockNational
	default:
		return laterBlock[internal-LaterBlockFirst]
	}
}

// InternalFromNational maps a catalog number to its internal index. For the
// collapsed form block it returns the fixed representative. Unknown numbers
// map to 0.
func InternalFromNational(national uint16) uint16 {
	if national == 0 || national > MaxNational {
		return 0
	}
	return nationalToInternal[national]
}

// gen1Species maps first-legacy-format species indices to catalog numbers.
// Holes (glitch indices) are 0.
var gen1Species = [191]uint16{
	0, 112, 115, 32, 35, 21, 100, 34, 80, 2, // 0..9
	103, 108, 102, 88, 94, 29, 31, 104, 111, 131, // 10..19
	59, 151, 130, 90, 72, 92, 123, 120, 9, 127, // 20..29
	114, 0, 0, 58, 95, 22, 16, 79, 64, 75, // 30..39
	113, 67, 122, 106, 107, 24, 47, 54, 96, 76, // 40..49
	0, 126, 0, 125, 82, 109, 0, 56, 86, 50, // 50..59
	128, 0, 0, 0, 83, 48, 149, 0, 0, 0, // 60..69
	84, 60, 124, 146, 144, 145, 132, 52, 98, 0, // 70..79
	0, 0, 37, 38, 25, 26, 0, 0, 147, 148, // 80..89
	140, 141, 116, 117, 0, 0, 27, 28, 138, 139, // 90..99
	39, 40, 133, 136, 135, 134, 66, 41, 23, 46, // 100..109
	61, 62, 13, 14, 15, 0, 85, 57, 51, 49, // 110..119
	87, 0, 0, 10, 11, 12, 68, 0, 55, 97, // 120..129
	42, 150, 143, 129, 0, 0, 89, 0, 99, 91, // 130..139
	0, 101, 36, 110, 53, 105, 0, 93, 63, 65, // 140..149
	17, 18, 121, 1, 3, 73, 0, 118, 119, 0, // 150..159
	0, 0, 0, 77, 78, 19, 20, 33, 30, 74, // 160..169
	137, 142, 0, 81, 0, 0, 4, 7, 5, 8, // 170..179
	6, 0, 0, 0, 0, 43, 44, 45, 69, 70, // 180..189
	71, // 190
}

// NationalFromGen1 maps a first-legacy-format species index to its catalog
// number. Glitch and out-of-range indices map to 0.
func NationalFromGen1(idx byte) uint16 {
	if int(idx) >= len(gen1Species) {
		return 0
	}
	return gen1Species[idx]
}

// NationalFromGen2 maps a second-legacy-format species index to its catalog
// number. That format already uses catalog numbering, so this is a bounded
// identity.
func NationalFromGen2(idx byte) uint16 {
	if idx == 0 || uint16(idx) > 251 {
		return 0
	}
	return uint16(idx)
}

// minimumLevels lists species that cannot legally appear below a certain
// level (late evolutions). Used by the legacy readers' plausibility filters.
var minimumLevels = map[uint16]int{
	3:   32, // final grass starter
	6:   36, // final fire starter
	9:   36, // final water starter
	130: 20,
	148: 30,
	149: 55,
}

// MinimumLevel returns the lowest level at which the species can legally
// appear, defaulting to 1.
func MinimumLevel(national uint16) int {
	if lv, ok := minimumLevels[national]; ok {
		return lv
	}
	return 1
}
