//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"life-sim/internal/core"
	"life-sim/internal/render"
)

// minGridLineCell is the smallest cell size at which grid lines are drawn.
const minGridLineCell = 4

var (
	gridLineColor = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	cursorColor   = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

// Overlay draws grid lines and highlights the cell under the cursor.
type Overlay struct {
	showGrid bool
	hoverX   int
	hoverY   int
	hovering bool
}

// NewOverlay constructs a new overlay instance with grid lines enabled.
func NewOverlay() *Overlay {
	return &Overlay{showGrid: true}
}

// Update tracks the hovered cell and toggles grid lines on G.
func (o *Overlay) Update(size core.Size, cellSize int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	cx, cy := ebiten.CursorPosition()
	o.hoverX, o.hoverY = render.CellAt(cx, cy, cellSize)
	o.hovering = o.hoverX >= 0 && o.hoverX < size.W && o.hoverY >= 0 && o.hoverY < size.H
}

// Draw paints the overlay on top of the grid image.
func (o *Overlay) Draw(screen *ebiten.Image, size core.Size, cellSize int) {
	cs := float32(cellSize)
	if o.showGrid && cellSize >= minGridLineCell {
		width := float32(size.W) * cs
		height := float32(size.H) * cs
		for x := 0; x <= size.W; x++ {
			fx := float32(x) * cs
			vector.StrokeLine(screen, fx, 0, fx, height, 1, gridLineColor, false)
		}
		for y := 0; y <= size.H; y++ {
			fy := float32(y) * cs
			vector.StrokeLine(screen, 0, fy, width, fy, 1, gridLineColor, false)
		}
	}
	if o.hovering {
		vector.StrokeRect(screen, float32(o.hoverX)*cs, float32(o.hoverY)*cs, cs, cs, 1, cursorColor, false)
	}
}
