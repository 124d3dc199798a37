package grid

import (
	"errors"
	"testing"

	"github.com/ericlevine/pixelcode/bitutil"
)

func TestDimensionsExample(t *testing.T) {
	l := Default()
	if rows := l.Rows(16); rows != 1 {
		t.Errorf("Rows(16) = %d, want 1", rows)
	}
	w, h := l.Dimensions(16)
	if w != 320 || h != 10 {
		t.Errorf("Dimensions(16) = %dx%d, want 320x10", w, h)
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		bits, blockSize, perRow int
		width, height           int
	}{
		{0, 10, 32, 320, 0},
		{1, 10, 32, 320, 10},
		{32, 10, 32, 320, 10},
		{33, 10, 32, 320, 20},
		{64, 1, 8, 8, 8},
		{7, 3, 2, 6, 12},
	}
	for _, tc := range tests {
		l := Layout{BlockSize: tc.blockSize, BlocksPerRow: tc.perRow}
		w, h := l.Dimensions(tc.bits)
		if w != tc.width || h != tc.height {
			t.Errorf("%+v.Dimensions(%d) = %dx%d, want %dx%d", l, tc.bits, w, h, tc.width, tc.height)
		}
	}
}

func TestGeometryLaw(t *testing.T) {
	for blockSize := 1; blockSize <= 4; blockSize++ {
		for perRow := 1; perRow <= 9; perRow++ {
			l := Layout{BlockSize: blockSize, BlocksPerRow: perRow}
			for bits := 0; bits <= 100; bits++ {
				_, h := l.Dimensions(bits)
				rows := h / blockSize
				if rows*perRow < bits {
					t.Fatalf("%+v: %d rows cannot hold %d bits", l, rows, bits)
				}
				if want := (bits + perRow - 1) / perRow; rows != want {
					t.Fatalf("%+v: rows = %d, want %d", l, rows, want)
				}
			}
		}
	}
}

func TestCoordinate(t *testing.T) {
	l := Default()
	tests := []struct{ i, x, y int }{
		{0, 0, 0},
		{1, 10, 0},
		{31, 310, 0},
		{32, 0, 10},
		{70, 60, 20},
	}
	for _, tc := range tests {
		if x, y := l.Coordinate(tc.i); x != tc.x || y != tc.y {
			t.Errorf("Coordinate(%d) = (%d,%d), want (%d,%d)", tc.i, x, y, tc.x, tc.y)
		}
	}
}

func TestCoordinateBijection(t *testing.T) {
	l := Layout{BlockSize: 3, BlocksPerRow: 7}
	const rows = 5
	w, h := l.Dimensions(rows * l.BlocksPerRow)
	seen := map[[2]int]bool{}
	for i := 0; i < rows*l.BlocksPerRow; i++ {
		x, y := l.Coordinate(i)
		if x < 0 || x >= w || y < 0 || y >= h {
			t.Errorf("Coordinate(%d) = (%d,%d) outside %dx%d", i, x, y, w, h)
		}
		key := [2]int{x, y}
		if seen[key] {
			t.Errorf("Coordinate(%d) = (%d,%d) repeats", i, x, y)
		}
		seen[key] = true
	}
}

func TestCenter(t *testing.T) {
	l := Default()
	if x, y := l.Center(33); x != 15 || y != 15 {
		t.Errorf("Center(33) = (%d,%d), want (15,15)", x, y)
	}
	odd := Layout{BlockSize: 5, BlocksPerRow: 4}
	if x, y := odd.Center(0); x != 2 || y != 2 {
		t.Errorf("Center(0) = (%d,%d), want (2,2)", x, y)
	}
}

func TestBlockCount(t *testing.T) {
	l := Default()
	tests := []struct{ w, h, want int }{
		{320, 10, 32},
		{320, 20, 64},
		{325, 19, 32},
		{9, 100, 0},
		{0, 0, 0},
	}
	for _, tc := range tests {
		if got := l.BlockCount(tc.w, tc.h); got != tc.want {
			t.Errorf("BlockCount(%d, %d) = %d, want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestBlockCountInvertsCoordinate(t *testing.T) {
	l := Layout{BlockSize: 4, BlocksPerRow: 6}
	w, h := l.Dimensions(30)
	n := l.BlockCount(w, h)
	if n != 30 {
		t.Fatalf("BlockCount = %d, want 30", n)
	}
	scan := Scan(w, l.BlockSize)
	for i := 0; i < n; i++ {
		ax, ay := l.Coordinate(i)
		bx, by := scan.Coordinate(i)
		if ax != bx || ay != by {
			t.Errorf("block %d: layout (%d,%d) != scan (%d,%d)", i, ax, ay, bx, by)
		}
	}
}

func TestScanCountsPartialColumn(t *testing.T) {
	if got := Scan(325, 10).BlocksPerRow; got != 33 {
		t.Errorf("Scan(325, 10) columns = %d, want 33", got)
	}
	if got := Scan(0, 10).BlocksPerRow; got != 0 {
		t.Errorf("Scan(0, 10) columns = %d, want 0", got)
	}
}

func TestMatrix(t *testing.T) {
	bits, _ := bitutil.ParseBitString("1001")
	l := Layout{BlockSize: 10, BlocksPerRow: 3}
	m := l.Matrix(bits)
	if m.Width() != 3 || m.Height() != 2 {
		t.Fatalf("matrix = %dx%d, want 3x2", m.Width(), m.Height())
	}
	want := "1 0 0 \n1 0 0 \n"
	if got := m.StringWithChars("1 ", "0 "); got != want {
		t.Errorf("matrix = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default layout: %v", err)
	}
	for _, l := range []Layout{{0, 32}, {10, 0}, {-1, 5}} {
		if err := l.Validate(); !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("%+v.Validate() = %v, want ErrInvalidLayout", l, err)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	if got := (Layout{}).WithDefaults(); got != Default() {
		t.Errorf("WithDefaults() = %+v", got)
	}
	if got := (Layout{BlockSize: 4}).WithDefaults(); got.BlockSize != 4 || got.BlocksPerRow != 32 {
		t.Errorf("WithDefaults() = %+v", got)
	}
}
