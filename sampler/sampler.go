// Package sampler reads a bit string back out of a pixel code raster by
// sampling the centre pixel of every block.
package sampler

import (
	"github.com/ericlevine/pixelcode/bitutil"
	"github.com/ericlevine/pixelcode/grid"
	"github.com/ericlevine/pixelcode/raster"
)

// DefaultThreshold is the luminance above which a sample reads as a set bit.
const DefaultThreshold = 127

// Result describes one sampling pass.
type Result struct {
	// Bits holds one bit per sampled block in row-major order.
	Bits *bitutil.BitArray

	// Columns and Rows give the block grid walked over the raster, counting
	// partial blocks at the right and bottom edges.
	Columns, Rows int

	// Skipped counts blocks whose sample point fell outside the raster.
	Skipped int

	// WidthMismatch is set when the raster width differs from the width the
	// layout would have rendered.
	WidthMismatch bool
}

// Malformed reports whether the raster did not line up with the layout.
func (r *Result) Malformed() bool {
	return r.Skipped > 0 || r.WidthMismatch
}

// Sampler samples rasters with a fixed luminance threshold.
type Sampler struct {
	Threshold float64
}

// New returns a Sampler using DefaultThreshold.
func New() *Sampler {
	return &Sampler{Threshold: DefaultThreshold}
}

// Sample walks the raster in block-sized steps, top to bottom and left to
// right, and emits one bit per block whose centre lies inside the raster.
// The layout's block size sets the step; its row width is only checked
// against the raster. Zero layout fields take their defaults; a layout that
// is still invalid samples nothing.
func (s *Sampler) Sample(r raster.Raster, layout grid.Layout) *Result {
	layout = layout.WithDefaults()
	width, height := r.Width(), r.Height()
	if layout.Validate() != nil {
		return &Result{Bits: bitutil.NewBitArray(0), WidthMismatch: true}
	}
	scan := grid.Scan(width, layout.BlockSize)
	rows := 0
	if height > 0 {
		rows = (height + layout.BlockSize - 1) / layout.BlockSize
	}
	res := &Result{
		Bits:          bitutil.NewBitArray(0),
		Columns:       scan.BlocksPerRow,
		Rows:          rows,
		WidthMismatch: width != layout.BlocksPerRow*layout.BlockSize,
	}
	for i := 0; i < scan.BlocksPerRow*rows; i++ {
		x, y := scan.Center(i)
		if x >= width || y >= height {
			res.Skipped++
			continue
		}
		res.Bits.AppendBit(Luminance(r.RGB(x, y)) > s.Threshold)
	}
	return res
}

// Sample samples r with the default threshold.
func Sample(r raster.Raster, layout grid.Layout) *Result {
	return New().Sample(r, layout)
}

// Luminance returns the Rec. 601 luma of an 8-bit RGB colour.
func Luminance(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}
