// Package render paints a bit string onto a surface as solid square blocks:
// white for a set bit, black for an unset bit and for any unused cells.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ericlevine/pixelcode/bitutil"
	"github.com/ericlevine/pixelcode/grid"
)

var (
	// On is the colour of a set bit.
	On = color.Gray{Y: 0xFF}

	// Off is the colour of an unset bit and of the background.
	Off = color.Gray{Y: 0}
)

// Surface accepts solid rectangle fills.
type Surface interface {
	// FillRect paints the w x h rectangle with top-left corner (x, y).
	FillRect(x, y, w, h int, c color.Color)
}

// GraySurface is a Surface backed by an *image.Gray.
type GraySurface struct {
	Image *image.Gray
}

// NewGraySurface allocates a width x height surface.
func NewGraySurface(width, height int) *GraySurface {
	return &GraySurface{Image: image.NewGray(image.Rect(0, 0, width, height))}
}

// FillRect paints a rectangle, clipped to the image bounds.
func (s *GraySurface) FillRect(x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.Image.Rect)
	draw.Draw(s.Image, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Render clears the layout's canvas for bits to Off and paints block i at
// layout.Coordinate(i). The result depends only on bits and layout.
func Render(bits *bitutil.BitArray, layout grid.Layout, s Surface) {
	width, height := layout.Dimensions(bits.Size())
	s.FillRect(0, 0, width, height, Off)
	for i := 0; i < bits.Size(); i++ {
		c := Off
		if bits.Get(i) {
			c = On
		}
		x, y := layout.Coordinate(i)
		s.FillRect(x, y, layout.BlockSize, layout.BlockSize, c)
	}
}

// Image renders bits onto a new image sized by layout.Dimensions.
func Image(bits *bitutil.BitArray, layout grid.Layout) *image.Gray {
	s := NewGraySurface(layout.Dimensions(bits.Size()))
	Render(bits, layout, s)
	return s.Image
}

// MatrixImage scales a block matrix up by blockSize pixels per cell.
func MatrixImage(m *bitutil.BitMatrix, blockSize int) *image.Gray {
	s := NewGraySurface(m.Width()*blockSize, m.Height()*blockSize)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) {
				s.FillRect(x*blockSize, y*blockSize, blockSize, blockSize, On)
			}
		}
	}
	return s.Image
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
