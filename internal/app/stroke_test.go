package app

import (
	"testing"

	"life-sim/internal/sim"
)

func newEditor(t *testing.T) *sim.Controller {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.Cols, cfg.Rows = 4, 4
	cfg.Paused = true
	c := sim.New(cfg)
	t.Cleanup(c.Close)
	return c
}

func TestStrokeDrawsThenErases(t *testing.T) {
	c := newEditor(t)
	var s stroke

	s.paint(c, 0, 0)
	s.paint(c, 1, 0)
	s.paint(c, 1, 0)
	s.release()
	if !c.Cell(0, 0) || !c.Cell(1, 0) || c.Counters().Alive != 2 {
		t.Fatalf("drawing stroke left alive=%d", c.Counters().Alive)
	}

	s.paint(c, 1, 0)
	s.paint(c, 2, 0)
	s.release()
	if c.Cell(1, 0) || c.Cell(2, 0) || !c.Cell(0, 0) {
		t.Fatal("erasing stroke did not kill the cells it crossed")
	}
}

func TestStrokeIgnoresPressOutsideGrid(t *testing.T) {
	c := newEditor(t)
	c.SetCell(1, 1, true)
	var s stroke

	s.paint(c, -1, 2)
	s.paint(c, 4, 0)
	if s.active {
		t.Fatal("press outside the grid started a stroke")
	}
	// Dragging back into the grid without a new press writes nothing.
	s.paint(c, 1, 1)
	if s.active {
		t.Fatal("stroke started on a cell other than the pressed one")
	}
	if !c.Cell(1, 1) || c.Counters().Alive != 1 {
		t.Fatal("cells changed by a stroke that never started")
	}
}
