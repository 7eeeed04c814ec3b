package core

import (
	"testing"
	"time"
)

func TestSleepForClamps(t *testing.T) {
	ideal := 100 * time.Millisecond
	if got := SleepFor(ideal, -150*time.Millisecond); got != 0 {
		t.Fatalf("negative sleep not clamped: %v", got)
	}
	if got := SleepFor(ideal, 500*time.Millisecond); got != 2*ideal {
		t.Fatalf("long sleep not clamped: %v", got)
	}
	if got := SleepFor(ideal, -20*time.Millisecond); got != 80*time.Millisecond {
		t.Fatalf("sleep = %v", got)
	}
}

func TestIntervalTreatsNonPositiveAsOne(t *testing.T) {
	if Interval(0) != time.Second || Interval(-5) != time.Second {
		t.Fatal("non-positive fps must run at one tick per second")
	}
	if Interval(10) != 100*time.Millisecond {
		t.Fatalf("interval = %v", Interval(10))
	}
}

func TestPacerCorrectsDrift(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewPacer(10)
	p.SetClock(func() time.Time { return now })

	// First iteration: no correction, full interval.
	delta := p.Begin()
	now = now.Add(5 * time.Millisecond)
	if got := p.Wait(delta, 10); got != 100*time.Millisecond {
		t.Fatalf("first wait = %v", got)
	}

	// The previous iteration took 120ms in total (overslept); this one
	// works for 10ms, so 30ms are taken off the next interval.
	now = now.Add(115 * time.Millisecond)
	delta = p.Begin()
	if delta != 120*time.Millisecond {
		t.Fatalf("delta = %v", delta)
	}
	now = now.Add(10 * time.Millisecond)
	if got := p.Wait(delta, 10); got != 70*time.Millisecond {
		t.Fatalf("corrected wait = %v", got)
	}

	// A long stall never produces a negative sleep.
	now = now.Add(2 * time.Second)
	delta = p.Begin()
	if got := p.Wait(delta, 10); got != 0 {
		t.Fatalf("wait after stall = %v", got)
	}
}

func TestPacerPicksUpRateChanges(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewPacer(10)
	p.SetClock(func() time.Time { return now })

	delta := p.Begin()
	p.Wait(delta, 10)
	now = now.Add(100 * time.Millisecond)
	delta = p.Begin()
	// Previous interval was exact; the next uses the new 50 fps rate.
	if got := p.Wait(delta, 50); got != 20*time.Millisecond {
		t.Fatalf("wait = %v", got)
	}
}
