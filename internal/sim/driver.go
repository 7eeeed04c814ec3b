package sim

import (
	"sync/atomic"
	"time"

	"life-sim/internal/core"
)

// DriverState is the lifecycle of the background tick loop.
type DriverState int32

const (
	DriverRunning DriverState = iota
	DriverStopping
	DriverStopped
)

func (s DriverState) String() string {
	switch s {
	case DriverRunning:
		return "running"
	case DriverStopping:
		return "stopping"
	default:
		return "stopped"
	}
}

// driver calls tick at the rate reported by fps unless paused reports true.
// Cancellation is cooperative: stop flips the state and the loop exits at the
// top of its next iteration; a tick in progress always completes.
type driver struct {
	tick   func()
	paused func() bool
	fps    func() int

	pacer *core.Pacer
	state atomic.Int32
	quit  chan struct{}
	done  chan struct{}
}

func newDriver(tick func(), paused func() bool, fps func() int) *driver {
	d := &driver{
		tick:   tick,
		paused: paused,
		fps:    fps,
		pacer:  core.NewPacer(fps()),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	d.state.Store(int32(DriverRunning))
	return d
}

func (d *driver) start() {
	go d.run()
}

func (d *driver) run() {
	defer close(d.done)
	defer d.state.Store(int32(DriverStopped))

	for DriverState(d.state.Load()) == DriverRunning {
		delta := d.pacer.Begin()
		if !d.paused() {
			d.tick()
		}
		wait := d.pacer.Wait(delta, d.fps())
		if wait <= 0 {
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-d.quit:
			timer.Stop()
		}
	}
}

// stop requests shutdown and blocks until the loop has returned. It is safe
// to call more than once.
func (d *driver) stop() {
	if d.state.CompareAndSwap(int32(DriverRunning), int32(DriverStopping)) {
		close(d.quit)
	}
	<-d.done
}

func (d *driver) current() DriverState {
	return DriverState(d.state.Load())
}
