package pattern

import "life-sim/internal/core"

// Rotate returns p turned clockwise by r quarter turns. r is taken mod 4, so
// negative values turn counter-clockwise. For r == 0 p itself is returned;
// otherwise the result is a fresh grid and p is not modified.
func Rotate(p *core.Grid, r int) *core.Grid {
	r = ((r % 4) + 4) % 4
	if r == 0 {
		return p
	}
	cols, rows := p.Cols(), p.Rows()
	src := p.Cells()

	outCols, outRows := rows, cols
	if r == 2 {
		outCols, outRows = cols, rows
	}
	out := core.NewGrid(outCols, outRows)
	dst := out.Cells()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var dx, dy int
			switch r {
			case 1:
				dx, dy = outCols-y-1, x
			case 2:
				dx, dy = outCols-x-1, outRows-y-1
			case 3:
				dx, dy = y, outRows-x-1
			}
			dst[dy*outCols+dx] = src[y*cols+x]
		}
	}
	return out
}
