package pixelcode

import (
	"errors"
	"fmt"

	"github.com/ericlevine/pixelcode/grid"
)

var (
	// ErrEmptyText is returned when asked to encode text that is empty or
	// consists only of white space.
	ErrEmptyText = errors.New("empty text")

	// ErrNoMessage is returned when an image decodes to no characters.
	ErrNoMessage = errors.New("no valid message found")

	// ErrInvalidLayout is returned for a block size or row width below one.
	ErrInvalidLayout = grid.ErrInvalidLayout
)

// MalformedInputWarning reports that a decoded image did not match the
// expected block grid. It is attached to a Result, never returned as a
// decoding failure.
type MalformedInputWarning struct {
	// SkippedBlocks counts blocks whose centre fell outside the image.
	SkippedBlocks int

	// Width is the width of the image; ExpectedWidth is the width the layout
	// renders.
	Width, ExpectedWidth int
}

func (w *MalformedInputWarning) Error() string {
	switch {
	case w.SkippedBlocks > 0 && w.Width != w.ExpectedWidth:
		return fmt.Sprintf("malformed input: %d blocks skipped, width %d, expected %d",
			w.SkippedBlocks, w.Width, w.ExpectedWidth)
	case w.SkippedBlocks > 0:
		return fmt.Sprintf("malformed input: %d blocks skipped", w.SkippedBlocks)
	default:
		return fmt.Sprintf("malformed input: width %d, expected %d", w.Width, w.ExpectedWidth)
	}
}
