// Package grid maps a bit string onto square pixel blocks laid out in rows.
package grid

import (
	"errors"
	"fmt"

	"github.com/ericlevine/pixelcode/bitutil"
)

const (
	// DefaultBlockSize is the edge length of one block in pixels.
	DefaultBlockSize = 10

	// DefaultBlocksPerRow is the number of blocks in one row of the image.
	DefaultBlocksPerRow = 32
)

// ErrInvalidLayout is returned for a block size or row width below one.
var ErrInvalidLayout = errors.New("grid: invalid layout")

// Layout is the fixed geometry shared by the encoder and the decoder. Block i
// of a bit string sits in column i mod BlocksPerRow of row i / BlocksPerRow.
type Layout struct {
	BlockSize    int
	BlocksPerRow int
}

// Default returns the 10px, 32 blocks per row layout.
func Default() Layout {
	return Layout{BlockSize: DefaultBlockSize, BlocksPerRow: DefaultBlocksPerRow}
}

// WithDefaults replaces zero fields with their defaults.
func (l Layout) WithDefaults() Layout {
	if l.BlockSize == 0 {
		l.BlockSize = DefaultBlockSize
	}
	if l.BlocksPerRow == 0 {
		l.BlocksPerRow = DefaultBlocksPerRow
	}
	return l
}

// Validate returns ErrInvalidLayout unless both fields are at least one.
func (l Layout) Validate() error {
	if l.BlockSize < 1 || l.BlocksPerRow < 1 {
		return fmt.Errorf("block size %d, blocks per row %d: %w", l.BlockSize, l.BlocksPerRow, ErrInvalidLayout)
	}
	return nil
}

// Rows returns the number of rows needed for bitLength blocks.
func (l Layout) Rows(bitLength int) int {
	return (bitLength + l.BlocksPerRow - 1) / l.BlocksPerRow
}

// Dimensions returns the image size in pixels for bitLength blocks. The width
// is always a full row; the height covers every started row.
func (l Layout) Dimensions(bitLength int) (width, height int) {
	return l.BlocksPerRow * l.BlockSize, l.Rows(bitLength) * l.BlockSize
}

// Coordinate returns the top-left pixel of block i.
func (l Layout) Coordinate(i int) (x, y int) {
	return (i % l.BlocksPerRow) * l.BlockSize, (i / l.BlocksPerRow) * l.BlockSize
}

// Center returns the sample point of block i, the pixel at offset
// BlockSize/2 (rounded down) from its top-left corner on both axes.
func (l Layout) Center(i int) (x, y int) {
	x, y = l.Coordinate(i)
	half := l.BlockSize / 2
	return x + half, y + half
}

// BlockCount returns the number of whole blocks that tile a raster of the
// given size.
func (l Layout) BlockCount(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return (width / l.BlockSize) * (height / l.BlockSize)
}

// Matrix places bits on a BlocksPerRow wide grid, one matrix cell per block.
// Cells past the end of bits stay unset.
func (l Layout) Matrix(bits *bitutil.BitArray) *bitutil.BitMatrix {
	m := bitutil.NewBitMatrixWithSize(l.BlocksPerRow, l.Rows(bits.Size()))
	for i := 0; i < bits.Size(); i++ {
		if bits.Get(i) {
			m.Set(i%l.BlocksPerRow, i/l.BlocksPerRow)
		}
	}
	return m
}

// Scan returns the layout that walks a raster of the given width left to
// right in steps of the block size, counting a trailing partial column. A
// raster with no width has no columns.
func Scan(width, blockSize int) Layout {
	columns := 0
	if width > 0 {
		columns = (width + blockSize - 1) / blockSize
	}
	return Layout{BlockSize: blockSize, BlocksPerRow: columns}
}
