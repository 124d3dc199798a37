// Package bitutil provides the bit containers shared by the pixel code
// packages: a growable bit string and a fixed two-dimensional block grid.
package bitutil

import (
	"fmt"
	"strings"
)

const loadFactor = 0.75

// BitArray is an ordered, growable string of bits represented compactly by
// an array of uint32 values internally. Bit 0 is the first bit of the string.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a new BitArray with the given size and all bits unset.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		bits: makeArray(size),
		size: size,
	}
}

// ParseBitString creates a BitArray from a string of '0' and '1' characters.
func ParseBitString(s string) (*BitArray, error) {
	ba := NewBitArray(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			ba.Set(i)
		case '0':
		default:
			return nil, fmt.Errorf("bitutil: illegal character %q at offset %d", s[i], i)
		}
	}
	return ba, nil
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// SizeInBytes returns the number of complete 8-bit groups in the array.
func (ba *BitArray) SizeInBytes() int {
	return ba.size / 8
}

func (ba *BitArray) ensureCapacity(newSize int) {
	if newSize > len(ba.bits)*32 {
		newBits := makeArray(int(float64(newSize) / loadFactor))
		copy(newBits, ba.bits)
		ba.bits = newBits
	}
}

// Get returns true if bit i is set.
func (ba *BitArray) Get(i int) bool {
	return (ba.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// Set sets bit i.
func (ba *BitArray) Set(i int) {
	ba.bits[i/32] |= 1 << uint(i&0x1F)
}

// AppendBit appends a single bit.
func (ba *BitArray) AppendBit(bit bool) {
	ba.ensureCapacity(ba.size + 1)
	if bit {
		ba.bits[ba.size/32] |= 1 << uint(ba.size&0x1F)
	}
	ba.size++
}

// AppendBits appends the least-significant numBits bits of value, from most
// significant to least significant.
func (ba *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitarray: numBits must be between 0 and 32")
	}
	nextSize := ba.size
	ba.ensureCapacity(nextSize + numBits)
	for numBitsLeft := numBits - 1; numBitsLeft >= 0; numBitsLeft-- {
		if (value & (1 << uint(numBitsLeft))) != 0 {
			ba.bits[nextSize/32] |= 1 << uint(nextSize&0x1F)
		}
		nextSize++
	}
	ba.size = nextSize
}

// TruncateToBytes drops a trailing partial 8-bit group and returns the number
// of bits removed (0-7).
func (ba *BitArray) TruncateToBytes() int {
	dropped := ba.size % 8
	for i := ba.size - dropped; i < ba.size; i++ {
		ba.bits[i/32] &^= 1 << uint(i&0x1F)
	}
	ba.size -= dropped
	return dropped
}

// ToBytes packs numBytes groups of 8 bits starting at bitOffset into array,
// most-significant bit first within each byte.
func (ba *BitArray) ToBytes(bitOffset int, array []byte, offset, numBytes int) {
	for i := 0; i < numBytes; i++ {
		theByte := byte(0)
		for j := 0; j < 8; j++ {
			if ba.Get(bitOffset) {
				theByte |= 1 << uint(7-j)
			}
			bitOffset++
		}
		array[offset+i] = theByte
	}
}

// Bytes returns every complete 8-bit group packed MSB first. A trailing
// partial group is ignored.
func (ba *BitArray) Bytes() []byte {
	out := make([]byte, ba.SizeInBytes())
	ba.ToBytes(0, out, 0, len(out))
	return out
}

// String returns the bits as a string of '0' and '1' characters.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size)
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func makeArray(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}
