package core

import "time"

// Pacer computes how long a loop should sleep between iterations to hold a
// steady target rate. It corrects for the drift of the previous iteration but
// never sleeps longer than twice the ideal interval, so a long stall is not
// followed by a burst of catch-up ticks.
type Pacer struct {
	now     func() time.Time
	start   time.Time
	lastFPS int
}

// NewPacer constructs a Pacer for the given starting rate.
func NewPacer(fps int) *Pacer {
	return &Pacer{now: time.Now, lastFPS: clampFPS(fps)}
}

// SetClock replaces the time source. Intended for tests.
func (p *Pacer) SetClock(now func() time.Time) { p.now = now }

// Begin marks the start of an iteration and returns the wall time elapsed
// since the previous iteration began (zero on the first call).
func (p *Pacer) Begin() time.Duration {
	now := p.now()
	var delta time.Duration
	if !p.start.IsZero() {
		delta = now.Sub(p.start)
	}
	p.start = now
	return delta
}

// Wait returns the sleep for the iteration started by the last Begin, given
// delta as returned by Begin and the rate to use for the next interval.
func (p *Pacer) Wait(delta time.Duration, fps int) time.Duration {
	work := p.now().Sub(p.start)
	var correction time.Duration
	if delta != 0 {
		correction = Interval(p.lastFPS) - delta - work
	}
	p.lastFPS = clampFPS(fps)
	return SleepFor(Interval(p.lastFPS), correction)
}

// Interval returns the ideal time between ticks at fps; non-positive rates
// are treated as 1.
func Interval(fps int) time.Duration {
	return time.Second / time.Duration(clampFPS(fps))
}

// SleepFor clamps ideal+correction to [0, 2*ideal].
func SleepFor(ideal, correction time.Duration) time.Duration {
	d := ideal + correction
	if d < 0 {
		return 0
	}
	if d > 2*ideal {
		return 2 * ideal
	}
	return d
}

func clampFPS(fps int) int {
	if fps < 1 {
		return 1
	}
	return fps
}
