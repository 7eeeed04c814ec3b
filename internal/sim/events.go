package sim

// EventKind identifies what changed.
type EventKind int

const (
	EventTick EventKind = iota
	EventReset
	EventResize
	EventLoad
	EventInsert
	EventChaos
	EventPause
)

func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventReset:
		return "reset"
	case EventResize:
		return "resize"
	case EventLoad:
		return "load"
	case EventInsert:
		return "insert"
	case EventChaos:
		return "chaos"
	case EventPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Event carries the controller state observed right after an operation.
type Event struct {
	// Seq numbers events in the order their operations took the grid lock,
	// starting at 1.
	Seq        uint64
	Kind       EventKind
	Generation uint64
	Alive      uint64
	Cols       int
	Rows       int
	Paused     bool
}

// Observer receives events after the operation that produced them has
// released the grid lock. Observers may call back into the Controller.
// Operations running on different goroutines deliver concurrently, so an
// observer can see a later event before an earlier one; observers that keep
// state should ignore events whose Seq is below the last one they applied.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }
