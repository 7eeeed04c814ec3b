package app

import (
	"flag"

	"life-sim/internal/sim"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Cols     int
	Rows     int
	CellSize int
	FPS      int
	Workers  int
	Paused   bool
	LoadPath string
	SavePath string
}

// NewConfig returns a Config populated from the controller defaults.
func NewConfig() *Config {
	d := sim.DefaultConfig()
	return &Config{
		Cols:     d.Cols,
		Rows:     d.Rows,
		CellSize: d.CellSize,
		FPS:      d.FPS,
		Workers:  d.Workers,
		Paused:   d.Paused,
		SavePath: "grid.gol",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid width in cells")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "generations per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation (0 = GOMAXPROCS)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.StringVar(&c.LoadPath, "load", c.LoadPath, "pattern to load at start and on Ctrl+E (.gol, .rle or image)")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "file written on Ctrl+S (.rle or .gol)")
}

// SimConfig converts the flags into a controller configuration.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Cols:     c.Cols,
		Rows:     c.Rows,
		CellSize: c.CellSize,
		FPS:      c.FPS,
		Workers:  c.Workers,
		Paused:   c.Paused,
	}
}
