package session

import (
	"errors"
	"image"
	"testing"
	"time"

	pixelcode "github.com/ericlevine/pixelcode"
	"github.com/ericlevine/pixelcode/raster"
)

// manualScheduler queues callbacks until run is called.
type manualScheduler struct {
	delays  []time.Duration
	pending []func()
}

func (m *manualScheduler) AfterFunc(d time.Duration, f func()) {
	m.delays = append(m.delays, d)
	m.pending = append(m.pending, f)
}

func (m *manualScheduler) run() {
	pending := m.pending
	m.pending = nil
	for _, f := range pending {
		f()
	}
}

func TestNavigation(t *testing.T) {
	s := New(Config{})
	if s.Screen() != ScreenMain {
		t.Fatalf("initial screen = %s", s.Screen())
	}
	if err := s.OpenEncode(); err != nil {
		t.Fatal(err)
	}
	if err := s.OpenDecode(); !errors.Is(err, ErrWrongScreen) {
		t.Errorf("OpenDecode from encode: err = %v, want ErrWrongScreen", err)
	}
	s.Back()
	if err := s.OpenDecode(); err != nil {
		t.Fatal(err)
	}
	if s.Screen() != ScreenDecode {
		t.Errorf("screen = %s, want decode", s.Screen())
	}
	if err := s.SetInput("x"); !errors.Is(err, ErrWrongScreen) {
		t.Errorf("SetInput on decode: err = %v", err)
	}
	s.Back()
	if s.Screen() != ScreenMain {
		t.Errorf("screen = %s, want main", s.Screen())
	}
}

func TestScreenString(t *testing.T) {
	for s, want := range map[Screen]string{ScreenMain: "main", ScreenEncode: "encode", ScreenDecode: "decode", Screen(9): "unknown"} {
		if got := s.String(); got != want {
			t.Errorf("Screen(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

func TestEncodeImmediate(t *testing.T) {
	s := New(Config{})
	if err := s.OpenEncode(); err != nil {
		t.Fatal(err)
	}
	if err := s.SetInput("  Hi \n"); err != nil {
		t.Fatal(err)
	}
	var got *pixelcode.EncodeResult
	if err := s.Encode(func(r *pixelcode.EncodeResult) { got = r }); err != nil {
		t.Fatal(err)
	}
	if got == nil || got.Text != "Hi" {
		t.Fatalf("onReady result = %+v, want trimmed text Hi", got)
	}
	if s.Typing() {
		t.Error("should not be typing after immediate delivery")
	}
	if s.Encoded() != got {
		t.Error("Encoded() should return the delivered result")
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	s := New(Config{})
	if err := s.OpenEncode(); err != nil {
		t.Fatal(err)
	}
	if err := s.SetInput("   "); err != nil {
		t.Fatal(err)
	}
	if err := s.Encode(nil); !errors.Is(err, pixelcode.ErrEmptyText) {
		t.Errorf("err = %v, want ErrEmptyText", err)
	}
	if s.Typing() {
		t.Error("rejected encode should not start typing")
	}
}

func TestEncodeDelayed(t *testing.T) {
	sched := &manualScheduler{}
	s := New(Config{Delay: 2 * time.Second, Scheduler: sched})
	if err := s.OpenEncode(); err != nil {
		t.Fatal(err)
	}
	if err := s.SetInput("later"); err != nil {
		t.Fatal(err)
	}
	delivered := 0
	if err := s.Encode(func(*pixelcode.EncodeResult) { delivered++ }); err != nil {
		t.Fatal(err)
	}
	if !s.Typing() || s.Encoded() != nil {
		t.Fatal("result should be hidden while typing")
	}
	if len(sched.delays) != 1 || sched.delays[0] != 2*time.Second {
		t.Errorf("delays = %v, want [2s]", sched.delays)
	}
	sched.run()
	if delivered != 1 || s.Typing() || s.Encoded() == nil {
		t.Errorf("delivered=%d typing=%v encoded=%v", delivered, s.Typing(), s.Encoded())
	}
}

func TestEncodeAbandonedByBack(t *testing.T) {
	sched := &manualScheduler{}
	s := New(Config{Scheduler: sched})
	if err := s.OpenEncode(); err != nil {
		t.Fatal(err)
	}
	if err := s.SetInput("stale"); err != nil {
		t.Fatal(err)
	}
	delivered := false
	if err := s.Encode(func(*pixelcode.EncodeResult) { delivered = true }); err != nil {
		t.Fatal(err)
	}
	s.Back()
	if err := s.OpenEncode(); err != nil {
		t.Fatal(err)
	}
	sched.run()
	if delivered || s.Encoded() != nil {
		t.Error("callback scheduled before leaving the screen should be dropped")
	}
}

func TestDecodeFlow(t *testing.T) {
	s := New(Config{})
	if _, _, err := s.Decode(); !errors.Is(err, ErrWrongScreen) {
		t.Errorf("Decode on main: err = %v", err)
	}
	if err := s.OpenDecode(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Decode(); !errors.Is(err, ErrNoImage) {
		t.Errorf("Decode without image: err = %v, want ErrNoImage", err)
	}

	encoded, err := pixelcode.Encode("abcd", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Load(raster.FromImage(encoded.Image)); err != nil {
		t.Fatal(err)
	}
	text, res, err := s.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if text != "abcd" || res.Text != "abcd" || s.Display() != "abcd" {
		t.Errorf("text = %q, display = %q", text, s.Display())
	}
}

func TestDecodeNoMessage(t *testing.T) {
	s := New(Config{})
	if err := s.OpenDecode(); err != nil {
		t.Fatal(err)
	}
	if err := s.Load(raster.FromImage(image.NewGray(image.Rect(0, 0, 4, 4)))); err != nil {
		t.Fatal(err)
	}
	text, res, err := s.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if text != NoMessageText {
		t.Errorf("text = %q, want %q", text, NoMessageText)
	}
	if res.Warning == nil {
		t.Error("expected malformed input warning")
	}
}

func TestOpenDecodeClearsState(t *testing.T) {
	s := New(Config{})
	if err := s.OpenDecode(); err != nil {
		t.Fatal(err)
	}
	if err := s.Load(raster.FromImage(image.NewGray(image.Rect(0, 0, 4, 4)))); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Decode(); err != nil {
		t.Fatal(err)
	}
	s.Back()
	if err := s.OpenDecode(); err != nil {
		t.Fatal(err)
	}
	if s.Display() != "" {
		t.Errorf("display = %q, want empty", s.Display())
	}
	if _, _, err := s.Decode(); !errors.Is(err, ErrNoImage) {
		t.Errorf("err = %v, want ErrNoImage", err)
	}
}
