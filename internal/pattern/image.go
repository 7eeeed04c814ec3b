package pattern

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"life-sim/internal/core"
)

// FromImage converts img to a pattern through grayscale. A pixel is live
// when its luma is non-zero; invert makes black pixels live instead.
func FromImage(img image.Image, invert bool) *core.Grid {
	b := img.Bounds()
	g := core.NewGrid(b.Dx(), b.Dy())
	cells := g.Cells()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			lit := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y > 0
			cells[(y-b.Min.Y)*g.Cols()+(x-b.Min.X)] = lit != invert
		}
	}
	return g
}

// DecodeImage decodes any registered image format (PNG, GIF, JPEG, BMP,
// TIFF) and converts it with FromImage. The header is checked against
// core.MaxSide before any pixels are decoded.
func DecodeImage(r io.Reader, invert bool) (*core.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Format: FormatImage, Err: err}
	}
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: FormatImage, Err: err}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > core.MaxSide || cfg.Height > core.MaxSide {
		return nil, &DecodeError{
			Format: FormatImage,
			Err:    fmt.Errorf("%w: %dx%d %s image", ErrDimensions, cfg.Width, cfg.Height, name),
		}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Format: FormatImage, Err: err}
	}
	return FromImage(img, invert), nil
}
