package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Automaton defines the contract presentation adapters drive. Adapters only
// forward input and read cells; they never mutate the grid.
type Automaton interface {
	Name() string
	Size() Size
	// Cells returns the current generation in row-major order. The slice is
	// owned by the automaton and must be treated as read-only.
	Cells() []uint8
	// Advance feeds elapsed wall-clock seconds to the automaton and reports
	// how many generations were executed.
	Advance(elapsed float64) int
	TriggerRun()
	Running() bool
	Generation() uint64
}
