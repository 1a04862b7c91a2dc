// Package charset implements the proprietary single-byte text encodings used
// by the handheld save formats. The modern charset is exposed as a
// golang.org/x/text encoding.Encoding so callers can use standard decoder and
// encoder pipelines; fixed-width helpers cover the padded name fields the
// formats actually store.
package charset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	// Terminator ends a modern fixed-width string; it doubles as the fill
	// byte. 0x00 also terminates (it is the on-disk space, but the original
	// software never writes one mid-string).
	Terminator = 0xFF

	// QuestionByte is what the encoder substitutes for unmappable runes.
	QuestionByte = 0xAC

	// LegacyTerminator ends a legacy-format string.
	LegacyTerminator = 0x50
)

// modernToRune maps modern charset bytes to runes. Zero entries other than
// index 0x00 are unmapped and decode to '?'.
var modernToRune = buildModernTable()

func buildModernTable() [256]rune {
	var t [256]rune
	t[0x00] = ' '
	for i := 0; i < 10; i++ {
		t[0xA1+i] = rune('0' + i)
	}
	t[0xAB] = '!'
	t[0xAC] = '?'
	t[0xAD] = '.'
	t[0xAE] = '-'
	t[0xB1] = '"'
	t[0xB2] = '"'
	t[0xB3] = '\''
	t[0xB4] = '\''
	t[0xB5] = '♂'
	t[0xB6] = '♀'
	t[0xB8] = ','
	t[0xBA] = '/'
	for i := 0; i < 26; i++ {
		t[0xBB+i] = rune('A' + i)
		t[0xD5+i] = rune('a' + i)
	}
	return t
}

// modernFromRune is the reverse map. Where two bytes decode to the same rune
// (curly quote pairs) the lower byte is the representative.
var modernFromRune = buildModernReverse()

func buildModernReverse() map[rune]byte {
	m := make(map[rune]byte, 80)
	for b := 255; b >= 0; b-- {
		if r := modernToRune[b]; r != 0 || b == 0 {
			m[r] = byte(b)
		}
	}
	m[' '] = 0x00
	return m
}

// Modern is the modern-format charset as an x/text Encoding. The decoder maps
// unknown bytes to '?'; the encoder maps unmappable runes to the question-mark
// byte. Terminators are not interpreted at this layer; use DecodeFixed for
// the padded name fields.
var Modern encoding.Encoding = modernCharset{}

type modernCharset struct{}

func (modernCharset) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: modernDecoder{}}
}

func (modernCharset) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: modernEncoder{}}
}

type modernDecoder struct{ transform.NopResetter }

func (modernDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for _, b := range src {
		r := modernToRune[b]
		if r == 0 && b != 0x00 {
			r = '?'
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc++
	}
	return nDst, nSrc, nil
}

type modernEncoder struct{ transform.NopResetter }

func (modernEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		b, ok := modernFromRune[r]
		if !ok {
			b = QuestionByte
		}
		dst[nDst] = b
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}

// DecodeFixed decodes a fixed-width modern name field, stopping at the first
// 0x00 or 0xFF byte.
func DecodeFixed(b []byte) string {
	end := len(b)
	for i, c := range b {
		if c == 0x00 || c == Terminator {
			end = i
			break
		}
	}
	if end == 0 {
		return ""
	}
	out, _, err := transform.Bytes(Modern.NewDecoder(), b[:end])
	if err != nil {
		return ""
	}
	return string(out)
}

// EncodeFixed encodes s into an n-byte field, truncating as needed and
// filling the remainder with the terminator byte.
func EncodeFixed(s string, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = Terminator
	}
	enc, _, err := transform.Bytes(Modern.NewEncoder(), []byte(s))
	if err == nil {
		copy(out, enc)
	}
	return out
}

// legacyToRune maps legacy charset bytes to runes.
var legacyToRune = buildLegacyTable()

func buildLegacyTable() [256]rune {
	var t [256]rune
	t[0x7F] = ' '
	for i := 0; i < 26; i++ {
		t[0x80+i] = rune('A' + i)
		t[0xA0+i] = rune('a' + i)
	}
	for i := 0; i < 10; i++ {
		t[0xF6+i] = rune('0' + i)
	}
	t[0xE0] = '\''
	t[0xE3] = '-'
	t[0xE6] = '?'
	t[0xE7] = '!'
	t[0xE8] = '.'
	return t
}

// DecodeLegacy decodes a legacy fixed-width name field, stopping at the 0x50
// terminator. Unknown bytes decode to '?'.
func DecodeLegacy(b []byte) string {
	var out []rune
	for _, c := range b {
		if c == LegacyTerminator {
			break
		}
		r := legacyToRune[c]
		if r == 0 {
			r = '?'
		}
		out = append(out, r)
	}
	return string(out)
}

// LegacyNamePlausible reports whether b looks like a legacy player name: at
// least one mapped character before a terminator, and no unmapped bytes
// before it. Used for save-format detection.
func LegacyNamePlausible(b []byte) bool {
	seen := 0
	for _, c := range b {
		if c == LegacyTerminator {
			return seen > 0
		}
		if legacyToRune[c] == 0 {
			return false
		}
		seen++
	}
	return seen > 0
}
