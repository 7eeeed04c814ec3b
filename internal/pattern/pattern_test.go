package pattern

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"life-sim/internal/core"
)

func gridOf(t *testing.T, cols, rows int, cells ...bool) *core.Grid {
	t.Helper()
	g, err := core.GridFrom(cols, rows, cells)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBinaryRoundTrip(t *testing.T) {
	empty := core.NewGrid(7, 3)
	full := core.NewGrid(4, 5)
	for i := range full.Cells() {
		full.Cells()[i] = true
	}
	mixed := core.NewGrid(33, 17)
	core.NewRNG(3).FillNormal(mixed.Cells(), core.ChaosThreshold)

	for _, g := range []*core.Grid{empty, full, mixed} {
		got, err := DecodeBinary(EncodeBinary(g))
		if err != nil {
			t.Fatalf("decode %dx%d: %v", g.Cols(), g.Rows(), err)
		}
		if !got.Equal(g) {
			t.Fatalf("round trip changed %dx%d grid", g.Cols(), g.Rows())
		}
	}
}

func TestBinaryLayout(t *testing.T) {
	g := gridOf(t, 3, 2,
		true, false, false,
		false, false, true)
	want := []byte{0, 0, 0, 2, 0, 0, 0, 3, 1, 0, 0, 0, 0, 1}
	if got := EncodeBinary(g); !slices.Equal(got, want) {
		t.Fatalf("encoded %v, expected %v", got, want)
	}
}

func TestBinaryDecodeErrors(t *testing.T) {
	valid := EncodeBinary(core.NewGrid(4, 4))

	cases := map[string]struct {
		data []byte
		want error
	}{
		"short header": {data: []byte{0, 0, 0}, want: ErrTruncated},
		"truncated":    {data: valid[:len(valid)-1], want: ErrTruncated},
		"zero rows":    {data: []byte{0, 0, 0, 0, 0, 0, 0, 4}, want: ErrDimensions},
		"negative":     {data: []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 1, 0}, want: ErrDimensions},
	}
	for name, tc := range cases {
		_, err := DecodeBinary(tc.data)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, expected %v", name, err, tc.want)
		}
		var de *DecodeError
		if !errors.As(err, &de) || de.Format != FormatBinary {
			t.Fatalf("%s: expected a binary DecodeError, got %T", name, err)
		}
	}
}

func TestBinaryIgnoresTrailingBytes(t *testing.T) {
	g := gridOf(t, 2, 1, true, false)
	data := append(EncodeBinary(g), 1, 1, 1)
	got, err := DecodeBinary(data)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(g) {
		t.Fatalf("decoded %v", got.Cells())
	}
}

func TestDecodeRLEGlider(t *testing.T) {
	g, err := DecodeRLEString("x = 3, y = 3\nbo$2bo$3o!")
	if err != nil {
		t.Fatal(err)
	}
	want := gridOf(t, 3, 3,
		false, true, false,
		false, false, true,
		true, true, true)
	if !g.Equal(want) {
		t.Fatalf("decoded:\n%s\nexpected:\n%s", g, want)
	}
}

func TestDecodeRLECommentsAndRule(t *testing.T) {
	src := "# a comment\n\n#N Block\nx = 2, y = 2, rule = B3/S23\n2o$\n2o!\n"
	g, err := DecodeRLEString(src)
	if err != nil {
		t.Fatal(err)
	}
	if g.Alive() != 4 || g.Cols() != 2 || g.Rows() != 2 {
		t.Fatalf("unexpected block:\n%s", g)
	}
}

func TestDecodeRLEFullRowThenRowEnd(t *testing.T) {
	// Each row is filled to the right edge and then closed with $; the $
	// must move down one row, not two.
	g, err := DecodeRLEString("x = 2, y = 3\n2o$2o$2o!")
	if err != nil {
		t.Fatal(err)
	}
	if g.Alive() != 6 {
		t.Fatalf("decoded:\n%s", g)
	}

	g, err = DecodeRLEString("x = 3, y = 3\n3o2$3o!")
	if err != nil {
		t.Fatal(err)
	}
	want := gridOf(t, 3, 3,
		true, true, true,
		false, false, false,
		true, true, true)
	if !g.Equal(want) {
		t.Fatalf("decoded:\n%s", g)
	}
}

func TestDecodeRLEImplicitWrapAndEarlyStop(t *testing.T) {
	// 5o on a 3-wide grid wraps into the second row; the third row is
	// never written because ! ends the pattern first.
	g, err := DecodeRLEString("x = 3, y = 3\n5o!3o")
	if err != nil {
		t.Fatal(err)
	}
	want := gridOf(t, 3, 3,
		true, true, true,
		true, true, false,
		false, false, false)
	if !g.Equal(want) {
		t.Fatalf("decoded:\n%s", g)
	}
}

func TestDecodeRLEStopsAtLastRow(t *testing.T) {
	g, err := DecodeRLEString("x = 2, y = 2\n9$o\n2o!")
	if err != nil {
		t.Fatal(err)
	}
	if g.Alive() != 0 {
		t.Fatalf("expected nothing written past the last row:\n%s", g)
	}
}

func TestDecodeRLEToleratesUnknownCharacters(t *testing.T) {
	g, err := DecodeRLEString("x = 3, y = 1\n o x2 zo !")
	if err != nil {
		t.Fatal(err)
	}
	want := gridOf(t, 3, 1, true, true, true)
	if !g.Equal(want) {
		t.Fatalf("decoded:\n%s", g)
	}
}

func TestDecodeRLEHeaderErrors(t *testing.T) {
	cases := map[string]error{
		"":                   ErrBadHeader,
		"# only comments\n":  ErrBadHeader,
		"bo$2bo$3o!":         ErrBadHeader,
		"x = 3\nooo!":        ErrBadHeader,
		"x = a, y = 3\n":     ErrBadHeader,
		"x = 0, y = 3\nooo!": ErrDimensions,
	}
	for src, want := range cases {
		_, err := DecodeRLEString(src)
		if !errors.Is(err, want) {
			t.Fatalf("%q: got %v, expected %v", src, err, want)
		}
	}
}

func TestOversizedDimensionsAreRejected(t *testing.T) {
	if _, err := DecodeRLEString("x = 40000, y = 40000\n!"); !errors.Is(err, ErrDimensions) {
		t.Fatalf("rle: got %v, expected ErrDimensions", err)
	}
	if _, err := DecodeRLEString(fmt.Sprintf("x = %d, y = 1\n!", core.MaxSide+1)); !errors.Is(err, ErrDimensions) {
		t.Fatalf("rle one past the limit: got %v", err)
	}
	if g, err := DecodeRLEString(fmt.Sprintf("x = %d, y = 1\n!", core.MaxSide)); err != nil || g.Cols() != core.MaxSide {
		t.Fatalf("rle at the limit: %v", err)
	}

	header := []byte{0, 0, 0x23, 0x28, 0, 0, 0, 1} // 9000 rows, 1 col
	if _, err := DecodeBinary(header); !errors.Is(err, ErrDimensions) {
		t.Fatalf("binary: got %v, expected ErrDimensions", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, core.MaxSide+1, 1))); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeImage(&buf, false); !errors.Is(err, ErrDimensions) {
		t.Fatalf("image: got %v, expected ErrDimensions", err)
	}
}

func TestRLERoundTrip(t *testing.T) {
	g := core.NewGrid(90, 40)
	core.NewRNG(11).FillNormal(g.Cells(), core.ChaosThreshold)
	// Leave leading, inner and trailing empty rows.
	for _, y := range []int{0, 1, 20, 21, 22, 39} {
		for x := 0; x < g.Cols(); x++ {
			g.Set(x, y, false)
		}
	}

	text := EncodeRLEString(g)
	for _, line := range bytes.Split([]byte(text), []byte("\n")) {
		if len(line) > rleLineWidth {
			t.Fatalf("line exceeds %d columns: %q", rleLineWidth, line)
		}
	}
	got, err := DecodeRLEString(text)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(g) {
		t.Fatal("RLE round trip changed the grid")
	}
}

func TestEncodeRLEGlider(t *testing.T) {
	g := gridOf(t, 3, 3,
		false, true, false,
		false, false, true,
		true, true, true)
	want := "x = 3, y = 3, rule = B3/S23\nbo$2bo$3o!\n"
	if got := EncodeRLEString(g); got != want {
		t.Fatalf("encoded %q, expected %q", got, want)
	}
}

func TestRotate(t *testing.T) {
	// a b c
	// d e f
	p := gridOf(t, 3, 2,
		true, false, false,
		false, false, true)

	if Rotate(p, 0) != p {
		t.Fatal("rotation by 0 must return the input")
	}

	cw := Rotate(p, 1)
	wantCW := gridOf(t, 2, 3,
		false, true,
		false, false,
		true, false)
	if !cw.Equal(wantCW) {
		t.Fatalf("r=1:\n%s\nexpected:\n%s", cw, wantCW)
	}

	half := Rotate(p, 2)
	wantHalf := gridOf(t, 3, 2,
		true, false, false,
		false, false, true)
	if !half.Equal(wantHalf) {
		t.Fatalf("r=2:\n%s", half)
	}

	ccw := Rotate(p, 3)
	wantCCW := gridOf(t, 2, 3,
		false, true,
		false, false,
		true, false)
	if !ccw.Equal(wantCCW) {
		t.Fatalf("r=3:\n%s\nexpected:\n%s", ccw, wantCCW)
	}
	if !Rotate(p, -1).Equal(ccw) {
		t.Fatal("r=-1 must match r=3")
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	p := core.NewGrid(7, 4)
	core.NewRNG(5).FillNormal(p.Cells(), core.ChaosThreshold)
	got := Rotate(Rotate(Rotate(Rotate(p, 1), 1), 1), 1)
	if !got.Equal(p) {
		t.Fatal("four quarter turns changed the pattern")
	}
	if !Rotate(p, 5).Equal(Rotate(p, 1)) {
		t.Fatal("rotation count must be taken mod 4")
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(0, 0, color.Gray{Y: 255})
	img.SetGray(2, 1, color.Gray{Y: 1})

	g := FromImage(img, false)
	want := gridOf(t, 3, 2,
		true, false, false,
		false, false, true)
	if !g.Equal(want) {
		t.Fatalf("converted:\n%s", g)
	}
	if inv := FromImage(img, true); inv.Alive() != 4 {
		t.Fatalf("inverted alive = %d, expected 4", inv.Alive())
	}
}

func TestReadFileByExtension(t *testing.T) {
	dir := t.TempDir()
	g := gridOf(t, 3, 3,
		false, true, false,
		false, false, true,
		true, true, true)

	bin := filepath.Join(dir, "glider.gol")
	if err := os.WriteFile(bin, EncodeBinary(g), 0o644); err != nil {
		t.Fatal(err)
	}
	rle := filepath.Join(dir, "glider.RLE")
	if err := os.WriteFile(rle, []byte(EncodeRLEString(g)), 0o644); err != nil {
		t.Fatal(err)
	}
	img := image.NewGray(image.Rect(0, 0, 3, 3))
	for i, c := range g.Cells() {
		if c {
			img.SetGray(i%3, i/3, color.Gray{Y: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	pic := filepath.Join(dir, "glider.png")
	if err := os.WriteFile(pic, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{bin, rle, pic} {
		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if !got.Equal(g) {
			t.Fatalf("%s decoded:\n%s", path, got)
		}
	}

	if _, err := ReadFile(filepath.Join(dir, "glider.txt")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
