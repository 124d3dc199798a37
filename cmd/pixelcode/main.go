// Command pixelcode writes text as a black and white pixel code PNG and reads
// such images back.
package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	pixelcode "github.com/ericlevine/pixelcode"
	"github.com/ericlevine/pixelcode/charset"
	"github.com/ericlevine/pixelcode/raster"
	"github.com/ericlevine/pixelcode/render"
	"github.com/ericlevine/pixelcode/session"
)

type cli struct {
	BlockSize    int  `help:"Edge length of one block in pixels." default:"10" env:"PIXELCODE_BLOCK_SIZE"`
	BlocksPerRow int  `help:"Number of blocks in one image row." default:"32" env:"PIXELCODE_BLOCKS_PER_ROW"`
	Verbose      bool `short:"v" help:"Print geometry and warnings to standard error."`

	Encode encodeCmd `cmd:"" help:"Encode text into a pixel code PNG."`
	Decode decodeCmd `cmd:"" help:"Decode pixel code images."`
}

type encodeCmd struct {
	Out   string        `short:"o" help:"PNG file to write, or - for standard output." default:"secret_pixel_code.png"`
	Delay time.Duration `help:"Wait this long before writing the image." default:"0s"`
	Text  string        `arg:"" help:"Text to encode, or - to read standard input."`
}

type decodeCmd struct {
	Files []string `arg:"" help:"Image files (PNG, JPEG, GIF)."`
}

var errNoMessage = errors.New("no valid message found")

func main() {
	var params cli
	ctx := kong.Parse(&params,
		kong.Name("pixelcode"),
		kong.Description("Convert text to a pixel code image and back."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&params))
}

func (c *cli) session() *session.Session {
	return session.New(session.Config{
		Encode:    &pixelcode.EncodeOptions{BlockSize: c.BlockSize, BlocksPerRow: c.BlocksPerRow},
		Decode:    &pixelcode.DecodeOptions{BlockSize: c.BlockSize, BlocksPerRow: c.BlocksPerRow},
		Delay:     c.Encode.Delay,
		Scheduler: session.Timer,
	})
}

func (c *encodeCmd) Run(g *cli) error {
	text := c.Text
	if text == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(b)
	}
	if !charset.IsLossless(text) {
		fmt.Fprintf(os.Stderr, "warning: characters outside Latin-1 will not decode to the original text\n")
	}

	s := g.session()
	if err := s.OpenEncode(); err != nil {
		return err
	}
	if err := s.SetInput(text); err != nil {
		return err
	}
	ready := make(chan *pixelcode.EncodeResult, 1)
	if err := s.Encode(func(r *pixelcode.EncodeResult) { ready <- r }); err != nil {
		return err
	}
	if c.Delay > 0 {
		fmt.Fprintf(os.Stderr, "typing...\n")
	}
	res := <-ready

	if g.Verbose {
		fmt.Fprintf(os.Stderr, "%d bits, %d blocks per row, %d rows, %dx%d px\n",
			res.Bits.Size(), res.Layout.BlocksPerRow, res.Matrix.Height(), res.Width(), res.Height())
		fmt.Fprint(os.Stderr, res.Matrix.StringWithChars("#", "."))
	}

	if c.Out == "-" {
		return render.WritePNG(os.Stdout, res.Image)
	}
	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, res.Image); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", c.Out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", c.Out)
	return nil
}

func (c *decodeCmd) Run(g *cli) error {
	s := g.session()
	if err := s.OpenDecode(); err != nil {
		return err
	}
	var failed error
	for _, path := range c.Files {
		text, err := decodeFile(s, path, g.Verbose)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: error: %v\n", path, err)
			failed = err
			continue
		}
		if len(c.Files) > 1 {
			fmt.Printf("%s: ", path)
		}
		fmt.Println(text)
		if text == session.NoMessageText {
			failed = errNoMessage
		}
	}
	return failed
}

func decodeFile(s *session.Session, path string, verbose bool) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	if err := s.Load(raster.FromImage(img)); err != nil {
		return "", err
	}
	text, res, err := s.Decode()
	if err != nil {
		return "", err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%s: %dx%d blocks, %d bytes, %d trailing bits dropped\n",
			path, res.Columns, res.Rows, res.NumBytes(), res.TruncatedBits)
		if res.Warning != nil {
			fmt.Fprintf(os.Stderr, "%s: warning: %v\n", path, res.Warning)
		}
	}
	return text, nil
}
