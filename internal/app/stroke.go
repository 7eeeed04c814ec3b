package app

import "life-sim/internal/core"

type cellEditor interface {
	Size() core.Size
	Cell(x, y int) bool
	SetCell(x, y int, alive bool) bool
}

// stroke is one press-drag-release of the paint button. The cell under the
// press fixes the mode: a live cell starts an erasing stroke, a dead one a
// drawing stroke. A press outside the grid starts nothing.
type stroke struct {
	held   bool
	active bool
	kill   bool
	lastX  int
	lastY  int
}

// paint applies the stroke to cell (x, y). It is called every frame the
// button is held; the first call of a press decides whether a stroke starts.
func (s *stroke) paint(ed cellEditor, x, y int) {
	if !s.held {
		s.held = true
		size := ed.Size()
		if x < 0 || y < 0 || x >= size.W || y >= size.H {
			return
		}
		s.active = true
		s.kill = ed.Cell(x, y)
	} else if !s.active || (x == s.lastX && y == s.lastY) {
		return
	}
	s.lastX, s.lastY = x, y
	ed.SetCell(x, y, !s.kill)
}

func (s *stroke) release() { s.held, s.active = false, false }
