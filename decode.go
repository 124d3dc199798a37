package pixelcode

import (
	"fmt"
	"image"
	"io"

	// Register the decoders for uploaded images.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/ericlevine/pixelcode/codec"
	"github.com/ericlevine/pixelcode/grid"
	"github.com/ericlevine/pixelcode/raster"
	"github.com/ericlevine/pixelcode/sampler"
)

// DecodeOptions configures pixel code sampling. Both values must match the
// ones the image was encoded with.
type DecodeOptions struct {
	// BlockSize is the edge length of one block in pixels. Zero selects
	// grid.DefaultBlockSize.
	BlockSize int

	// BlocksPerRow is the number of blocks per image row. Zero selects
	// grid.DefaultBlocksPerRow.
	BlocksPerRow int
}

func (o *DecodeOptions) layout() (grid.Layout, error) {
	var l grid.Layout
	if o != nil {
		l = grid.Layout{BlockSize: o.BlockSize, BlocksPerRow: o.BlocksPerRow}
	}
	l = l.WithDefaults()
	return l, l.Validate()
}

// Decode samples r and decodes the recovered bits. Sampling never fails: a
// raster that is not a pixel code yields garbage text, and a result with no
// text is returned together with ErrNoMessage.
func Decode(r raster.Raster, opts *DecodeOptions) (*Result, error) {
	layout, err := opts.layout()
	if err != nil {
		return nil, err
	}
	sampled := sampler.Sample(r, layout)
	bits := sampled.Bits
	truncated := bits.TruncateToBytes()
	res := &Result{
		Text:          codec.DecodeBits(bits),
		Bits:          bits,
		TruncatedBits: truncated,
		Columns:       sampled.Columns,
		Rows:          sampled.Rows,
	}
	if sampled.Malformed() {
		res.Warning = &MalformedInputWarning{
			SkippedBlocks: sampled.Skipped,
			Width:         r.Width(),
			ExpectedWidth: layout.BlocksPerRow * layout.BlockSize,
		}
	}
	if res.Text == "" {
		return res, ErrNoMessage
	}
	return res, nil
}

// DecodeImage decodes a pixel code held in a Go image.
func DecodeImage(img image.Image, opts *DecodeOptions) (*Result, error) {
	return Decode(raster.FromImage(img), opts)
}

// DecodeReader reads a PNG, JPEG or GIF file and decodes it.
func DecodeReader(rd io.Reader, opts *DecodeOptions) (*Result, error) {
	img, _, err := image.Decode(rd)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return DecodeImage(img, opts)
}
