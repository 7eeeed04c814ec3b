package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	on := color.RGBA{R: 255, G: 165, A: 255}
	off := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []bool{true, false}, on, off)
	want := []byte{255, 165, 0, 255, 1, 2, 3, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, expected %v", buf, want)
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		px, py, size int
		x, y         int
	}{
		{0, 0, 32, 0, 0},
		{31, 32, 32, 0, 1},
		{65, 10, 32, 2, 0},
		{-1, 5, 32, -1, 0},
		{-33, -1, 32, -2, -1},
		{7, 7, 0, 7, 7},
	}
	for _, tc := range cases {
		x, y := CellAt(tc.px, tc.py, tc.size)
		if x != tc.x || y != tc.y {
			t.Fatalf("CellAt(%d,%d,%d) = %d,%d; expected %d,%d", tc.px, tc.py, tc.size, x, y, tc.x, tc.y)
		}
	}
}
