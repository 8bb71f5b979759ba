package life

import "conway-live/internal/core"

// Config holds parameters for the Life simulation.
type Config struct {
	Width  int
	Height int

	// TickRate is the number of generations per second of elapsed time.
	TickRate float64
	Seed     int64

	// MaxStepsPerAdvance bounds the generations one Advance call may run.
	// Zero disables the bound.
	MaxStepsPerAdvance int

	StartRunning bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 320, Height: 240, TickRate: core.DefaultTickRate, Seed: 1}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.MaxStepsPerAdvance < 0 {
		c.MaxStepsPerAdvance = 0
	}
	return c
}
