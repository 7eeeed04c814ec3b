package core

import (
	"errors"
	"fmt"
)

// ErrDimensions reports grid dimensions that are out of range or disagree
// with the number of cells supplied.
var ErrDimensions = errors.New("invalid grid dimensions")

// MaxSide is the largest number of columns or rows a decoded pattern or a
// controller grid may have.
const MaxSide = 8192

// Grid stores a rectangle of binary cells in row-major order. The length of
// the backing slice always equals Cols()*Rows().
type Grid struct {
	cols, rows int
	data       []bool
}

// NewGrid allocates a zero-filled grid. Negative dimensions are treated as 0.
func NewGrid(cols, rows int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Grid{cols: cols, rows: rows, data: make([]bool, cols*rows)}
}

// GridFrom adopts cells as the backing slice of a cols x rows grid.
func GridFrom(cols, rows int, cells []bool) (*Grid, error) {
	if cols < 0 || rows < 0 || len(cells) != cols*rows {
		return nil, fmt.Errorf("%w: %dx%d with %d cells", ErrDimensions, cols, rows, len(cells))
	}
	return &Grid{cols: cols, rows: rows, data: cells}, nil
}

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.cols + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the cell at (x, y). Out-of-range coordinates read as dead.
func (g *Grid) At(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.data[y*g.cols+x]
}

// Set writes the cell at (x, y) and reports whether the coordinate was valid.
func (g *Grid) Set(x, y int, alive bool) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.data[y*g.cols+x] = alive
	return true
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	clear(g.data)
}

// Alive counts the live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{cols: g.cols, rows: g.rows, data: append([]bool(nil), g.data...)}
}

// CopyOverlap copies the top-left rectangle shared by g and src into g.
// Cells of g outside that rectangle are left untouched.
func (g *Grid) CopyOverlap(src *Grid) {
	w := min(g.cols, src.cols)
	h := min(g.rows, src.rows)
	if w == 0 || h == 0 {
		return
	}
	if g.cols == src.cols {
		copy(g.data[:w*h], src.data[:w*h])
		return
	}
	for y := 0; y < h; y++ {
		copy(g.data[y*g.cols:y*g.cols+w], src.data[y*src.cols:y*src.cols+w])
	}
}

// Take moves the buffer into a new handle. The receiver is left empty
// (0x0, no cells) so the previous owner can no longer reach the cells.
func (g *Grid) Take() *Grid {
	moved := &Grid{cols: g.cols, rows: g.rows, data: g.data}
	g.cols, g.rows, g.data = 0, 0, nil
	return moved
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.cols != o.cols || g.rows != o.rows {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid with '#' for live and '.' for dead cells, one row
// per line.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.cols+1)*g.rows)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.data[y*g.cols+x] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
