// Package raster provides read-only access to the RGB samples of an image.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
)

// ErrShortBuffer is returned when raw pixel data does not cover the raster.
var ErrShortBuffer = errors.New("raster: pixel buffer too short")

// Raster is a width x height grid of RGB samples. Alpha is not exposed.
type Raster interface {
	// Width returns the width of the raster in pixels.
	Width() int

	// Height returns the height of the raster in pixels.
	Height() int

	// RGB returns the 8-bit colour components of the pixel at (x, y), where
	// 0 <= x < Width() and 0 <= y < Height().
	RGB(x, y int) (r, g, b uint8)
}

// RGBA is a Raster over packed 8-bit R, G, B, A quadruplets in row-major
// order, the layout of a browser canvas ImageData buffer.
type RGBA struct {
	width  int
	height int
	pix    []byte
}

// NewRGBA wraps pix, which must hold at least width*height*4 bytes.
func NewRGBA(width, height int, pix []byte) (*RGBA, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("raster: negative dimensions %dx%d", width, height)
	}
	if width != 0 && height > (math.MaxInt/4)/width {
		return nil, fmt.Errorf("raster: %dx%d is too large: %w", width, height, ErrShortBuffer)
	}
	if need := width * height * 4; len(pix) < need {
		return nil, fmt.Errorf("%dx%d needs %d bytes, got %d: %w", width, height, need, len(pix), ErrShortBuffer)
	}
	return &RGBA{width: width, height: height, pix: pix}, nil
}

// Width returns the width of the raster.
func (r *RGBA) Width() int { return r.width }

// Height returns the height of the raster.
func (r *RGBA) Height() int { return r.height }

// RGB returns the colour of the pixel at (x, y).
func (r *RGBA) RGB(x, y int) (uint8, uint8, uint8) {
	i := (y*r.width + x) * 4
	return r.pix[i], r.pix[i+1], r.pix[i+2]
}

// Image is a Raster backed by a Go image.Image. Pixels are read as
// non-premultiplied colour so that alpha does not darken them.
type Image struct {
	img    image.Image
	bounds image.Rectangle
}

// FromImage wraps img. Raster coordinates are relative to img.Bounds().Min.
func FromImage(img image.Image) Raster {
	if g, ok := img.(*image.Gray); ok {
		return &Gray{img: g}
	}
	return &Image{img: img, bounds: img.Bounds()}
}

// Width returns the width of the image.
func (r *Image) Width() int { return r.bounds.Dx() }

// Height returns the height of the image.
func (r *Image) Height() int { return r.bounds.Dy() }

// RGB returns the colour of the pixel at (x, y).
func (r *Image) RGB(x, y int) (uint8, uint8, uint8) {
	c := color.NRGBAModel.Convert(r.img.At(r.bounds.Min.X+x, r.bounds.Min.Y+y)).(color.NRGBA)
	return c.R, c.G, c.B
}

// Gray is a Raster over an *image.Gray, read without colour conversion.
type Gray struct {
	img *image.Gray
}

// Width returns the width of the image.
func (r *Gray) Width() int { return r.img.Rect.Dx() }

// Height returns the height of the image.
func (r *Gray) Height() int { return r.img.Rect.Dy() }

// RGB returns the grey level of the pixel at (x, y) on all three channels.
func (r *Gray) RGB(x, y int) (uint8, uint8, uint8) {
	v := r.img.Pix[r.img.PixOffset(r.img.Rect.Min.X+x, r.img.Rect.Min.Y+y)]
	return v, v, v
}
