// Package pixelcode converts text into a black and white block image and
// reads text back out of such an image.
//
// Every 8-bit code unit of the text becomes eight blocks, most significant
// bit first. Blocks are laid out in rows of a fixed width; a set bit is
// painted white and an unset bit black. Decoding samples the centre pixel of
// every block and thresholds its luminance. There is no error correction, so
// the image must be decoded with the same block size it was encoded with.
package pixelcode

import (
	"image"

	"github.com/ericlevine/pixelcode/bitutil"
	"github.com/ericlevine/pixelcode/grid"
)

// EncodeResult holds everything produced while encoding one text.
type EncodeResult struct {
	Text   string
	Bits   *bitutil.BitArray
	Layout grid.Layout

	// Matrix holds one cell per block, Layout.BlocksPerRow wide.
	Matrix *bitutil.BitMatrix

	// Image is the rendered pixel code.
	Image *image.Gray
}

// Width returns the width of the rendered image in pixels.
func (r *EncodeResult) Width() int { return r.Image.Rect.Dx() }

// Height returns the height of the rendered image in pixels.
func (r *EncodeResult) Height() int { return r.Image.Rect.Dy() }

// Result encapsulates the result of decoding a pixel code image.
type Result struct {
	// Text is the decoded message. It may contain control characters if the
	// image was not a pixel code.
	Text string

	// Bits holds the sampled bits after truncation to whole bytes.
	Bits *bitutil.BitArray

	// TruncatedBits counts sampled bits dropped from a trailing partial byte.
	TruncatedBits int

	// Columns and Rows give the block grid sampled from the image.
	Columns, Rows int

	// Warning is non-nil when the image did not line up with the layout.
	// Decoding still returns whatever bits were recoverable.
	Warning *MalformedInputWarning
}

// NumBytes returns the number of decoded 8-bit groups.
func (r *Result) NumBytes() int {
	return r.Bits.SizeInBytes()
}
