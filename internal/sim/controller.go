// Package sim owns the live Game of Life grid and the background driver that
// advances it. Every operation that touches cells or counters is serialised by
// one mutex over the live/scratch pair; the driver's pause flag and target
// rate live outside that lock as atomics.
package sim

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"life-sim/internal/core"
	"life-sim/internal/pattern"
	"life-sim/internal/sims/life"
)

// ErrEmptyPattern reports a pattern without cells.
var ErrEmptyPattern = errors.New("pattern has no cells")

// Controller owns the live grid and a scratch buffer of identical size. Both
// are swapped, never copied, on each tick. Callers only ever receive copies.
type Controller struct {
	mu       sync.Mutex
	cells    *core.Grid
	scratch  *core.Grid
	cellSize int
	workers  int

	generation atomic.Uint64
	alive      atomic.Uint64
	seq        uint64

	paused atomic.Bool
	fps    atomic.Int64

	obsMu     sync.RWMutex
	observers map[int]Observer
	nextObs   int

	driver    *driver
	closeOnce sync.Once
}

// New creates a Controller and starts its driver.
func New(cfg Config) *Controller {
	cfg = cfg.normalized()
	c := &Controller{
		cells:     core.NewGrid(cfg.Cols, cfg.Rows),
		scratch:   core.NewGrid(cfg.Cols, cfg.Rows),
		cellSize:  cfg.CellSize,
		workers:   cfg.Workers,
		observers: make(map[int]Observer),
	}
	c.paused.Store(cfg.Paused)
	c.fps.Store(int64(cfg.FPS))
	c.driver = newDriver(c.Tick, c.Paused, c.FPS)
	c.driver.start()
	return c
}

// Close stops the driver and waits for it to exit.
func (c *Controller) Close() {
	c.closeOnce.Do(c.driver.stop)
}

// DriverState reports the lifecycle state of the background loop.
func (c *Controller) DriverState() DriverState {
	return c.driver.current()
}

// Tick advances the grid by one generation.
func (c *Controller) Tick() {
	c.mu.Lock()
	alive := life.Step(c.scratch, c.cells, c.workers)
	c.cells, c.scratch = c.scratch, c.cells
	c.generation.Add(1)
	c.alive.Store(uint64(alive))
	ev := c.eventLocked(EventTick)
	c.mu.Unlock()

	c.notify(ev)
}

// Reset kills every cell and zeroes the counters.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.cells.Clear()
	c.generation.Store(0)
	c.alive.Store(0)
	ev := c.eventLocked(EventReset)
	c.mu.Unlock()

	c.notify(ev)
}

// Resize changes the grid dimensions, keeping the top-left overlap. Values
// are clamped to [1, core.MaxSide]. Counters are not touched.
func (c *Controller) Resize(cols, rows int) {
	cols, rows = min(max(cols, 1), core.MaxSide), min(max(rows, 1), core.MaxSide)

	c.mu.Lock()
	if cols == c.cells.Cols() && rows == c.cells.Rows() {
		c.mu.Unlock()
		return
	}
	c.resizeLocked(cols, rows)
	ev := c.eventLocked(EventResize)
	c.mu.Unlock()

	c.notify(ev)
}

// SetCols resizes the grid to n columns.
func (c *Controller) SetCols(n int) {
	c.Resize(n, c.Size().H)
}

// SetRows resizes the grid to n rows.
func (c *Controller) SetRows(n int) {
	c.Resize(c.Size().W, n)
}

func (c *Controller) resizeLocked(cols, rows int) {
	next := core.NewGrid(cols, rows)
	next.CopyOverlap(c.cells)
	c.cells = next
	c.scratch = core.NewGrid(cols, rows)
}

// Load decodes a binary dump and replaces the grid with it. On error the
// grid is unchanged.
func (c *Controller) Load(data []byte) error {
	p, err := pattern.DecodeBinary(data)
	if err != nil {
		return err
	}
	return c.LoadPattern(p)
}

// LoadFile reads a pattern in any supported format and loads it.
func (c *Controller) LoadFile(path string) error {
	p, err := pattern.ReadFile(path)
	if err != nil {
		return err
	}
	return c.LoadPattern(p)
}

// LoadPattern replaces the grid with p, taking ownership of its buffer: p is
// empty when LoadPattern returns successfully. The generation counter is
// reset and the driver is paused.
func (c *Controller) LoadPattern(p *core.Grid) error {
	if p == nil || p.Cols() <= 0 || p.Rows() <= 0 {
		return ErrEmptyPattern
	}
	owned := p.Take()
	alive := owned.Alive()

	c.mu.Lock()
	if owned.Cols() != c.cells.Cols() || owned.Rows() != c.cells.Rows() {
		c.scratch = core.NewGrid(owned.Cols(), owned.Rows())
	}
	c.cells = owned
	c.generation.Store(0)
	c.alive.Store(uint64(alive))
	c.paused.Store(true)
	ev := c.eventLocked(EventLoad)
	c.mu.Unlock()

	c.notify(ev)
	return nil
}

// Save returns the grid in the binary dump format.
func (c *Controller) Save() []byte {
	return pattern.EncodeBinary(c.Snapshot())
}

// SaveFile writes the grid to path, choosing the format from the extension
// (.rle for RLE, anything else for the binary dump). The file is written to a
// temporary sibling and renamed into place.
func (c *Controller) SaveFile(path string) error {
	format := pattern.DetectFormat(path)
	if format != pattern.FormatRLE {
		format = pattern.FormatBinary
	}
	data, err := pattern.Encode(c.Snapshot(), format)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Insert writes p onto the grid with its top-left corner at (x, y). Each
// covered cell takes the pattern's value; cells outside the footprint are
// untouched. When p reaches past the right or bottom edge the grid grows to
// fit first, within the same critical section, but never beyond
// core.MaxSide. Parts outside the grid after growing are clipped.
func (c *Controller) Insert(p *core.Grid, x, y int) {
	if p == nil || p.Cols() == 0 || p.Rows() == 0 {
		return
	}

	c.mu.Lock()
	needCols := min(max(c.cells.Cols(), x+p.Cols()), core.MaxSide)
	needRows := min(max(c.cells.Rows(), y+p.Rows()), core.MaxSide)
	grew := needCols != c.cells.Cols() || needRows != c.cells.Rows()
	if grew {
		c.resizeLocked(needCols, needRows)
	}
	src := p.Cells()
	for py := 0; py < p.Rows(); py++ {
		for px := 0; px < p.Cols(); px++ {
			c.cells.Set(x+px, y+py, src[py*p.Cols()+px])
		}
	}
	c.alive.Store(uint64(c.cells.Alive()))
	var resized Event
	if grew {
		resized = c.eventLocked(EventResize)
	}
	ev := c.eventLocked(EventInsert)
	c.mu.Unlock()

	if grew {
		c.notify(resized)
	}
	c.notify(ev)
}

// InsertFile reads a pattern, rotates it by rotation quarter turns clockwise
// and inserts it at (x, y).
func (c *Controller) InsertFile(path string, x, y, rotation int) error {
	p, err := pattern.ReadFile(path)
	if err != nil {
		return err
	}
	c.Insert(pattern.Rotate(p, rotation), x, y)
	return nil
}

// Chaos refills every cell at random from a clock-seeded generator. The
// alive counter is recomputed immediately; the generation is kept.
func (c *Controller) Chaos() {
	rng := core.NewClockRNG()

	c.mu.Lock()
	alive := rng.FillNormal(c.cells.Cells(), core.ChaosThreshold)
	c.alive.Store(uint64(alive))
	ev := c.eventLocked(EventChaos)
	c.mu.Unlock()

	c.notify(ev)
}

// Snapshot returns a copy of the grid that the caller owns.
func (c *Controller) Snapshot() *core.Grid {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cells.Clone()
}

// Cell reports whether (x, y) is alive. Out-of-range cells read as dead.
func (c *Controller) Cell(x, y int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cells.At(x, y)
}

// SetCell writes one cell and reports whether (x, y) was inside the grid.
func (c *Controller) SetCell(x, y int, alive bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setCellLocked(x, y, alive)
}

// ToggleCell flips one cell. It returns the new value and whether (x, y) was
// inside the grid.
func (c *Controller) ToggleCell(x, y int) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.cells.InBounds(x, y) {
		return false, false
	}
	next := !c.cells.At(x, y)
	c.setCellLocked(x, y, next)
	return next, true
}

func (c *Controller) setCellLocked(x, y int, alive bool) bool {
	if !c.cells.InBounds(x, y) {
		return false
	}
	prev := c.cells.At(x, y)
	c.cells.Set(x, y, alive)
	switch {
	case alive && !prev:
		c.alive.Add(1)
	case !alive && prev:
		c.alive.Add(^uint64(0))
	}
	return true
}

// Counters returns the generation and alive counters.
func (c *Controller) Counters() core.Counters {
	return core.Counters{Generation: c.generation.Load(), Alive: c.alive.Load()}
}

// Size returns the current grid dimensions.
func (c *Controller) Size() core.Size {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cells.Size()
}

// CellSize returns the display size of one cell in pixels.
func (c *Controller) CellSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cellSize
}

// SetCellSize sets the display size of one cell; values below 1 become 1.
func (c *Controller) SetCellSize(size int) {
	c.mu.Lock()
	c.cellSize = max(size, 1)
	c.mu.Unlock()
}

// FPS returns the driver's target tick rate.
func (c *Controller) FPS() int { return int(c.fps.Load()) }

// SetFPS changes the target tick rate; the driver picks it up on its next
// iteration. Non-positive rates run at one tick per second.
func (c *Controller) SetFPS(fps int) { c.fps.Store(int64(fps)) }

// Paused reports whether the driver is skipping ticks.
func (c *Controller) Paused() bool { return c.paused.Load() }

// SetPaused pauses or resumes the driver. Observers are told about changes.
func (c *Controller) SetPaused(paused bool) {
	if c.paused.Swap(paused) == paused {
		return
	}
	c.mu.Lock()
	ev := c.eventLocked(EventPause)
	c.mu.Unlock()
	c.notify(ev)
}

// TogglePause flips the pause flag and returns the new value.
func (c *Controller) TogglePause() bool {
	paused := !c.Paused()
	c.SetPaused(paused)
	return paused
}

// Subscribe registers o for events. The returned function unregisters it.
func (c *Controller) Subscribe(o Observer) func() {
	c.obsMu.Lock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = o
	c.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.obsMu.Lock()
			delete(c.observers, id)
			c.obsMu.Unlock()
		})
	}
}

func (c *Controller) eventLocked(kind EventKind) Event {
	c.seq++
	return Event{
		Seq:        c.seq,
		Kind:       kind,
		Generation: c.generation.Load(),
		Alive:      c.alive.Load(),
		Cols:       c.cells.Cols(),
		Rows:       c.cells.Rows(),
		Paused:     c.paused.Load(),
	}
}

func (c *Controller) notify(ev Event) {
	c.obsMu.RLock()
	observers := make([]Observer, 0, len(c.observers))
	for _, o := range c.observers {
		observers = append(observers, o)
	}
	c.obsMu.RUnlock()

	for _, o := range observers {
		o.Observe(ev)
	}
}
