package pixelcode

import (
	"strings"

	"github.com/ericlevine/pixelcode/codec"
	"github.com/ericlevine/pixelcode/grid"
	"github.com/ericlevine/pixelcode/render"
)

// EncodeOptions configures pixel code rendering. The same values must be used
// to decode the image.
type EncodeOptions struct {
	// BlockSize is the edge length of one block in pixels. Zero selects
	// grid.DefaultBlockSize.
	BlockSize int

	// BlocksPerRow is the number of blocks per image row. Zero selects
	// grid.DefaultBlocksPerRow.
	BlocksPerRow int
}

func (o *EncodeOptions) layout() (grid.Layout, error) {
	var l grid.Layout
	if o != nil {
		l = grid.Layout{BlockSize: o.BlockSize, BlocksPerRow: o.BlocksPerRow}
	}
	l = l.WithDefaults()
	return l, l.Validate()
}

// Encode converts text to bits and renders them. Text that is empty or only
// white space is rejected with ErrEmptyText; otherwise text is encoded as
// given.
func Encode(text string, opts *EncodeOptions) (*EncodeResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	layout, err := opts.layout()
	if err != nil {
		return nil, err
	}
	bits := codec.EncodeText(text)
	return &EncodeResult{
		Text:   text,
		Bits:   bits,
		Layout: layout,
		Matrix: layout.Matrix(bits),
		Image:  render.Image(bits, layout),
	}, nil
}

// EncodeToSurface paints the pixel code for text onto s, which must be at
// least as large as the dimensions returned for the text.
func EncodeToSurface(text string, s render.Surface, opts *EncodeOptions) (width, height int, err error) {
	if strings.TrimSpace(text) == "" {
		return 0, 0, ErrEmptyText
	}
	layout, err := opts.layout()
	if err != nil {
		return 0, 0, err
	}
	bits := codec.EncodeText(text)
	render.Render(bits, layout, s)
	width, height = layout.Dimensions(bits.Size())
	return width, height, nil
}
