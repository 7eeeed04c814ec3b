// Package life implements Conway's Game of Life transition on a bounded grid.
// Cells outside the rectangle do not exist and never count as neighbours.
package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"life-sim/internal/core"
)

// minBandRows is the smallest band handed to its own goroutine.
const minBandRows = 16

// Rule reports the next state of a cell under B3/S23.
func Rule(alive bool, neighbours int) bool {
	return neighbours == 3 || (alive && neighbours == 2)
}

// Step writes the successor of src into dst and returns the number of live
// cells in dst. Both grids must have the same dimensions; dst is overwritten
// entirely. Row bands are evaluated concurrently by up to workers goroutines
// (workers <= 0 uses GOMAXPROCS).
func Step(dst, src *core.Grid, workers int) int {
	rows := src.Rows()
	if rows == 0 || src.Cols() == 0 {
		return 0
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	bands := min(workers, (rows+minBandRows-1)/minBandRows)
	if bands <= 1 {
		return stepRows(dst, src, 0, rows)
	}

	perBand := (rows + bands - 1) / bands
	partial := make([]int, bands)
	var eg errgroup.Group
	for i := 0; i < bands; i++ {
		start := i * perBand
		end := min(start+perBand, rows)
		if start >= end {
			break
		}
		eg.Go(func() error {
			partial[i] = stepRows(dst, src, start, end)
			return nil
		})
	}
	_ = eg.Wait()

	alive := 0
	for _, n := range partial {
		alive += n
	}
	return alive
}

// Next allocates the successor of src.
func Next(src *core.Grid, workers int) (*core.Grid, int) {
	dst := core.NewGrid(src.Cols(), src.Rows())
	alive := Step(dst, src, workers)
	return dst, alive
}

func stepRows(dst, src *core.Grid, start, end int) int {
	w, h := src.Cols(), src.Rows()
	cur := src.Cells()
	nxt := dst.Cells()
	alive := 0
	for y := start; y < end; y++ {
		y0, y1 := max(y-1, 0), min(y+1, h-1)
		for x := 0; x < w; x++ {
			x0, x1 := max(x-1, 0), min(x+1, w-1)
			neighbours := 0
			for ny := y0; ny <= y1; ny++ {
				row := cur[ny*w : ny*w+w]
				for nx := x0; nx <= x1; nx++ {
					if row[nx] && (nx != x || ny != y) {
						neighbours++
					}
				}
			}
			idx := y*w + x
			next := Rule(cur[idx], neighbours)
			nxt[idx] = next
			if next {
				alive++
			}
		}
	}
	return alive
}
