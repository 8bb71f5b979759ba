package app

// Options controls the window frontend.
type Options struct {
	Title string
	Scale int
	// TPS is how often the window polls input and advances the simulation.
	// It is independent of the simulation tick rate.
	TPS int
}

// DefaultOptions returns the standard window settings.
func DefaultOptions() Options {
	return Options{Title: "Conway's Life", Scale: 3, TPS: 60}
}
