package tables

// Curve selects one of the four level/experience polynomial families.
type Curve int

const (
	CurveMediumFast Curve = iota
	CurveMediumSlow
	CurveFast
	CurveSlow
)

func (c Curve) String() string {
	switch c {
	case CurveMediumFast:
		return "medium-fast"
	case CurveMediumSlow:
		return "medium-slow"
	case CurveFast:
		return "fast"
	case CurveSlow:
		return "slow"
	default:
		return "unknown"
	}
}

const (
	// MinLevel and MaxLevel bound every curve.
	MinLevel = 1
	MaxLevel = 100
)

// Experience returns the total experience required to reach level. Levels
// are clamped to [MinLevel, MaxLevel].
func (c Curve) Experience(level int) uint32 {
	if level < MinLevel {
		level = MinLevel
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	n := int64(level)
	var exp int64
	switch c {
	case CurveFast:
		exp = 4 * n * n * n / 5
	case CurveSlow:
		exp = 5 * n * n * n / 4
	case CurveMediumSlow:
		exp = 6*n*n*n/5 - 15*n*n + 100*n - 140
	default: // medium-fast
		exp = n * n * n
	}
	if exp < 0 {
		exp = 0
	}
	return uint32(exp)
}

// Level inverts Experience by bisection: the highest level whose threshold
// does not exceed exp.
func (c Curve) Level(exp uint32) int {
	lo, hi := MinLevel, MaxLevel
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if c.Experience(mid) <= exp {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// mediumSlowSpecies and the sets below assign non-default curves by catalog
// number. Species not listed use medium-fast.
var mediumSlowSpecies = map[uint16]bool{
	1: true, 2: true, 3: true, 4: true, 5: true, 6: true,
	7: true, 8: true, 9: true, 16: true, 17: true, 18: true,
	29: true, 30: true, 31: true,
	32: true, 33: true, 34: true, 43: true, 44: true, 45: true,
	60: true, 61: true, 62: true, 63: true, 64: true, 65: true,
	66: true, 67: true, 68: true, 74: true, 75: true, 76: true,
	92: true, 93: true, 94: true, 147: true, 148: true, 149: true,
	152: true, 153: true, 154: true, 155: true, 156: true, 157: true,
	158: true, 159: true, 160: true, 252: true, 253: true, 254: true,
	255: true, 256: true, 257: true, 258: true, 259: true, 260: true,
}

var fastSpecies = map[uint16]bool{
	35: true, 36: true, 39: true, 40: true, 113: true, 115: true,
	122: true, 124: true, 125: true, 126: true, 133: true, 134: true,
	135: true, 136: true, 173: true, 174: true, 183: true, 184: true,
	209: true, 210: true, 242: true, 300: true, 301: true,
}

var slowSpecies = map[uint16]bool{
	58: true, 59: true, 72: true, 73: true, 86: true, 87: true,
	88: true, 89: true, 95: true, 108: true, 111: true, 112: true,
	127: true, 128: true, 130: true, 131: true, 142: true, 143: true,
	144: true, 145: true, 146: true, 150: true, 151: true,
	196: true, 197: true, 243: true, 244: true, 245: true,
	246: true, 247: true, 248: true, 249: true, 250: true, 251: true,
	302: true, 303: true, 320: true, 321: true, 333: true, 334: true,
	350: true, 371: true, 372: true, 373: true, 374: true, 375: true,
	376: true, 377: true, 378: true, 379: true, 380: true, 381: true,
	382: true, 383: true, 384: true, 385: true, 386: true,
}

// CurveFor returns the growth curve assigned to a catalog species number.
func CurveFor(national uint16) Curve {
	switch {
	case mediumSlowSpecies[national]:
		return CurveMediumSlow
	case fastSpecies[national]:
		return CurveFast
	case slowSpecies[national]:
		return CurveSlow
	default:
		return CurveMediumFast
	}
}
