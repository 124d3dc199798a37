// Package session models the encode and decode screens of a pixel code front
// end as explicit state. A Session moves between a main screen and the two
// work screens only through its methods.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	pixelcode "github.com/ericlevine/pixelcode"
	"github.com/ericlevine/pixelcode/raster"
)

// NoMessageText is displayed when a decode produces no characters.
const NoMessageText = "No valid message found."

var (
	// ErrWrongScreen is returned when an action is not available on the
	// current screen.
	ErrWrongScreen = errors.New("session: action not available on this screen")

	// ErrNoImage is returned when decoding before an image was loaded.
	ErrNoImage = errors.New("session: no image loaded")
)

// Screen identifies the active screen.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenEncode
	ScreenDecode
)

// String returns the name of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenEncode:
		return "encode"
	case ScreenDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Scheduler runs f after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, f func())

// AfterFunc calls fn(d, f).
func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) { fn(d, f) }

// Immediate runs callbacks synchronously, ignoring the delay.
var Immediate Scheduler = SchedulerFunc(func(_ time.Duration, f func()) { f() })

// Timer runs callbacks on their own goroutine once the delay expires.
var Timer Scheduler = SchedulerFunc(func(d time.Duration, f func()) { time.AfterFunc(d, f) })

// Config configures a Session.
type Config struct {
	// Encode and Decode carry the block geometry; both default to 10px
	// blocks, 32 per row.
	Encode *pixelcode.EncodeOptions
	Decode *pixelcode.DecodeOptions

	// Delay is shown as "typing" before the encoded image is revealed.
	Delay time.Duration

	// Scheduler delivers the encoded image after Delay. Nil selects
	// Immediate.
	Scheduler Scheduler
}

// Session holds the state of one front end. It is safe for use by the
// scheduler's goroutine and one caller at a time.
type Session struct {
	cfg Config

	mu     sync.Mutex
	screen Screen

	// encode screen
	input   string
	typing  bool
	encoded *pixelcode.EncodeResult
	gen     int

	// decode screen
	loaded  raster.Raster
	display string
}

// New returns a Session on the main screen.
func New(cfg Config) *Session {
	if cfg.Scheduler == nil {
		cfg.Scheduler = Immediate
	}
	return &Session{cfg: cfg}
}

// Screen returns the active screen.
func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// OpenEncode moves from the main screen to an empty encode screen.
func (s *Session) OpenEncode() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenMain {
		return fmt.Errorf("open encode from %s: %w", s.screen, ErrWrongScreen)
	}
	s.screen = ScreenEncode
	s.input = ""
	s.typing = false
	s.encoded = nil
	s.gen++
	return nil
}

// OpenDecode moves from the main screen to an empty decode screen.
func (s *Session) OpenDecode() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenMain {
		return fmt.Errorf("open decode from %s: %w", s.screen, ErrWrongScreen)
	}
	s.screen = ScreenDecode
	s.loaded = nil
	s.display = ""
	return nil
}

// Back returns to the main screen. A pending encode is abandoned.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = ScreenMain
	s.gen++
}

// SetInput replaces the text on the encode screen, as typing or pasting would.
func (s *Session) SetInput(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenEncode {
		return fmt.Errorf("set input on %s: %w", s.screen, ErrWrongScreen)
	}
	s.input = text
	return nil
}

// Encode encodes the trimmed input. The result is computed immediately but
// revealed through the scheduler after the configured delay; onReady, if not
// nil, is called with it at that point. If Back or OpenEncode runs before the
// delay expires the reveal is dropped and onReady is never called, so callers
// must not block on it across a screen change.
func (s *Session) Encode(onReady func(*pixelcode.EncodeResult)) error {
	s.mu.Lock()
	if s.screen != ScreenEncode {
		s.mu.Unlock()
		return fmt.Errorf("encode on %s: %w", s.screen, ErrWrongScreen)
	}
	res, err := pixelcode.Encode(strings.TrimSpace(s.input), s.cfg.Encode)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.typing = true
	s.encoded = nil
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	s.cfg.Scheduler.AfterFunc(s.cfg.Delay, func() {
		s.mu.Lock()
		if gen != s.gen {
			s.mu.Unlock()
			return
		}
		s.typing = false
		s.encoded = res
		s.mu.Unlock()
		if onReady != nil {
			onReady(res)
		}
	})
	return nil
}

// Typing reports whether an encode is waiting to be revealed.
func (s *Session) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

// Encoded returns the revealed encode result, or nil.
func (s *Session) Encoded() *pixelcode.EncodeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.encoded
}

// Load sets the image to decode and clears any previous output.
func (s *Session) Load(r raster.Raster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenDecode {
		return fmt.Errorf("load on %s: %w", s.screen, ErrWrongScreen)
	}
	s.loaded = r
	s.display = ""
	return nil
}

// Decode decodes the loaded image and returns the text to display, which is
// NoMessageText when nothing was recovered. The decode result is returned
// as well so callers can inspect warnings.
func (s *Session) Decode() (string, *pixelcode.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenDecode {
		return "", nil, fmt.Errorf("decode on %s: %w", s.screen, ErrWrongScreen)
	}
	if s.loaded == nil {
		return "", nil, ErrNoImage
	}
	res, err := pixelcode.Decode(s.loaded, s.cfg.Decode)
	switch {
	case errors.Is(err, pixelcode.ErrNoMessage):
		s.display = NoMessageText
	case err != nil:
		return "", nil, err
	default:
		s.display = res.Text
	}
	return s.display, res, nil
}

// Display returns the text last shown on the decode screen.
func (s *Session) Display() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display
}
