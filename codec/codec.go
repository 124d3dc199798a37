// Package codec converts text to a bit string and back, one 8-bit group per
// code unit, most significant bit first.
package codec

import (
	"github.com/ericlevine/pixelcode/bitutil"
	"github.com/ericlevine/pixelcode/charset"
)

// EncodeText returns the bit string for text. The result always holds
// exactly 8 bits per UTF-16 code unit of text; an empty text yields an empty
// bit string.
func EncodeText(text string) *bitutil.BitArray {
	units := charset.Narrow(text)
	bits := bitutil.NewBitArray(0)
	for _, b := range units {
		bits.AppendBits(uint32(b), 8)
	}
	return bits
}

// DecodeBits reads bits in consecutive 8-bit groups starting at index 0 and
// maps each group to one character. A trailing group shorter than 8 bits is
// ignored.
func DecodeBits(bits *bitutil.BitArray) string {
	return charset.Widen(bits.Bytes())
}

// EncodeString is EncodeText rendered as a string of '0' and '1'.
func EncodeString(text string) string {
	return EncodeText(text).String()
}

// DecodeString parses a string of '0' and '1' and decodes it.
func DecodeString(bits string) (string, error) {
	ba, err := bitutil.ParseBitString(bits)
	if err != nil {
		return "", err
	}
	return DecodeBits(ba), nil
}
