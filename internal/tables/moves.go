package tables

// Legacy move indices translate by explicit lookup, never by arithmetic
// offset: most entries are identity, but not all, and the exceptions sit
// inside the low shared range. Positions hold the modern move id for the
// legacy id at that index, 0 where no modern counterpart exists. Known
// non-identity entries, present in both legacy formats:
//
//	82 <-> 83  transposed pair
//	119 -> 0   copies the opponent's last move; no stored form to carry
//	144 -> 0   rewrites the user mid-battle; no stored form to carry

// gen1Moves covers the first legacy format's move ids 0..165.
var gen1Moves = [166]uint16{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, // 0..9
	10, 11, 12, 13, 14, 15, 16, 17, 18, 19, // 10..19
	20, 21, 22, 23, 24, 25, 26, 27, 28, 29, // 20..29
	30, 31, 32, 33, 34, 35, 36, 37, 38, 39, // 30..39
	40, 41, 42, 43, 44, 45, 46, 47, 48, 49, // 40..49
	50, 51, 52, 53, 54, 55, 56, 57, 58, 59, // 50..59
	60, 61, 62, 63, 64, 65, 66, 67, 68, 69, // 60..69
	70, 71, 72, 73, 74, 75, 76, 77, 78, 79, // 70..79
	80, 81, 83, 82, 84, 85, 86, 87, 88, 89, // 80..89
	90, 91, 92, 93, 94, 95, 96, 97, 98, 99, // 90..99
	100, 101, 102, 103, 104, 105, 106, 107, 108, 109, // 100..109
	110, 111, 112, 113, 114, 115, 116, 117, 118, 0, // 110..119
	120, 121, 122, 123, 124, 125, 126, 127, 128, 129, // 120..129
	130, 131, 132, 133, 134, 135, 136, 137, 138, 139, // 130..139
	140, 141, 142, 143, 0, 145, 146, 147, 148, 149, // 140..149
	150, 151, 152, 153, 154, 155, 156, 157, 158, 159, // 150..159
	160, 161, 162, 163, 164, 165, // 160..165
}

// gen2Moves covers the second legacy format's move ids 0..251.
var gen2Moves = [252]uint16{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, // 0..9
	10, 11, 12, 13, 14, 15, 16, 17, 18, 19, // 10..19
	20, 21, 22, 23, 24, 25, 26, 27, 28, 29, // 20..29
	30, 31, 32, 33, 34, 35, 36, 37, 38, 39, // 30..39
	40, 41, 42, 43, 44, 45, 46, 47, 48, 49, // 40..49
	50, 51, 52, 53, 54, 55, 56, 57, 58, 59, // 50..59
	60, 61, 62, 63, 64, 65, 66, 67, 68, 69, // 60..69
	70, 71, 72, 73, 74, 75, 76, 77, 78, 79, // 70..79
	80, 81, 83, 82, 84, 85, 86, 87, 88, 89, // 80..89
	90, 91, 92, 93, 94, 95, 96, 97, 98, 99, // 90..99
	100, 101, 102, 103, 104, 105, 106, 107, 108, 109, // 100..109
	110, 111, 112, 113, 114, 115, 116, 117, 118, 0, // 110..119
	120, 121, 122, 123, 124, 125, 126, 127, 128, 129, // 120..129
	130, 131, 132, 133, 134, 135, 136, 137, 138, 139, // 130..139
	140, 141, 142, 143, 0, 145, 146, 147, 148, 149, // 140..149
	150, 151, 152, 153, 154, 155, 156, 157, 158, 159, // 150..159
	160, 161, 162, 163, 164, 165, 166, 167, 168, 169, // 160..169
	170, 171, 172, 173, 174, 175, 176, 177, 178, 179, // 170..179
	180, 181, 182, 183, 184, 185, 186, 187, 188, 189, // 180..189
	190, 191, 192, 193, 194, 195, 196, 197, 198, 199, // 190..199
	200, 201, 202, 203, 204, 205, 206, 207, 208, 209, // 200..209
	210, 211, 212, 213, 214, 215, 216, 217, 218, 219, // 210..219
	220, 221, 222, 223, 224, 225, 226, 227, 228, 229, // 220..229
	230, 231, 232, 233, 234, 235, 236, 237, 238, 239, // 230..239
	240, 241, 242, 243, 244, 245, 246, 247, 248, 249, // 240..249
	250, 251, // 250..251
}

// ModernMoveFromGen1 translates a first-legacy-format move id. Unknown ids
// map to 0.
func ModernMoveFromGen1(move byte) uint16 {
	if int(move) >= len(gen1Moves) {
		return 0
	}
	return gen1Moves[move]
}

// ModernMoveFromGen2 translates a second-legacy-format move id. Unknown ids
// map to 0.
func ModernMoveFromGen2(move byte) uint16 {
	if int(move) >= len(gen2Moves) {
		return 0
	}
	return gen2Moves[move]
}

// UniversalFallbackMove is assigned when a converted record would otherwise
// have an empty moveset and its species has no dedicated fallback (move 33,
// learned at level 1 by most species).
const UniversalFallbackMove = 33

// fallbackMoves maps catalog species numbers to a single level-1 move known
// to be legal for that species. Consulted only when the conservative
// conversion policy has discarded every transferred move.
var fallbackMoves = map[uint16]uint16{
	4:   10,  // scratch
	25:  84,  // thundershock
	52:  10,  // scratch
	63:  100, // teleport
	92:  122, // lick
	129: 150, // splash
	133: 33,  // tackle
	201: 237, // hidden power
}

// FallbackMove returns the species-specific fallback move, or the universal
// default when the species is unlisted.
func FallbackMove(national uint16) uint16 {
	if m, ok := fallbackMoves[national]; ok {
		return m
	}
	return UniversalFallbackMove
}
