// Package charset narrows text to 8-bit code units and widens them back.
//
// Text is first split into UTF-16 code units. Units in the Latin-1 range map
// through ISO-8859-1; wider units keep only their low-order byte, so text
// outside Latin-1 does not survive a round trip.
package charset

import (
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// Latin1 is the code page used for both directions.
var Latin1 = charmap.ISO8859_1

// Narrow returns one byte per UTF-16 code unit of text.
func Narrow(text string) []byte {
	units := CodeUnits(text)
	out := make([]byte, len(units))
	for i, u := range units {
		out[i] = narrowUnit(u)
	}
	return out
}

// Widen maps every byte to the Latin-1 character with the same value.
func Widen(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = Latin1.DecodeByte(c)
	}
	return string(runes)
}

// CodeUnits splits text into UTF-16 code units. Characters outside the Basic
// Multilingual Plane become surrogate pairs.
func CodeUnits(text string) []uint16 {
	return utf16.Encode([]rune(text))
}

// IsLossless reports whether Widen(Narrow(text)) == text.
func IsLossless(text string) bool {
	for _, r := range text {
		if _, ok := Latin1.EncodeRune(r); !ok {
			return false
		}
	}
	return true
}

func narrowUnit(u uint16) byte {
	if u < 0x100 {
		if b, ok := Latin1.EncodeRune(rune(u)); ok {
			return b
		}
	}
	return byte(u)
}
