package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Counters holds the derived simulation counters.
type Counters struct {
	Generation uint64
	Alive      uint64
}
