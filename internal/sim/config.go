package sim

import "strconv"

// Config controls the initial state of a Controller.
type Config struct {
	Cols     int
	Rows     int
	CellSize int
	FPS      int
	// Workers bounds the goroutines used per tick; <= 0 uses GOMAXPROCS.
	Workers int
	Paused  bool
}

// DefaultConfig returns the standard configuration: a 36x20 grid of 32px
// cells, 10 ticks per second, four engine workers, starting paused.
func DefaultConfig() Config {
	return Config{
		Cols:     36,
		Rows:     20,
		CellSize: 32,
		FPS:      10,
		Workers:  4,
		Paused:   true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FPS = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Paused = parsed
		}
	}
	return c
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Cols <= 0 {
		c.Cols = d.Cols
	}
	if c.Rows <= 0 {
		c.Rows = d.Rows
	}
	if c.CellSize <= 0 {
		c.CellSize = d.CellSize
	}
	if c.FPS <= 0 {
		c.FPS = d.FPS
	}
	return c
}
