package life

import (
	"fmt"
	"strconv"

	"conway-live/internal/core"
)

var (
	_ core.Automaton         = (*Life)(nil)
	_ core.ParameterProvider = (*Life)(nil)
)

// TriggerRun starts the simulation. There is no way back to the stopped
// state; calling it again has no effect.
func (l *Life) TriggerRun() { l.running = true }

// Running reports whether TriggerRun has been called.
func (l *Life) Running() bool { return l.running }

// TickRate returns the configured generations per second.
func (l *Life) TickRate() float64 { return l.clock.Rate() }

// Debt returns the elapsed seconds not yet turned into generations.
func (l *Life) Debt() float64 { return l.clock.Debt() }

// Advance feeds elapsed wall-clock seconds to the simulation and runs one
// generation per whole tick period now covered by the accumulated time. While
// stopped the call does nothing and the time is not banked. When a step cap is
// configured the ticks beyond it are dropped rather than carried over, so the
// remaining debt is always below one tick period. A single call never runs
// more than core.MaxTicks generations.
func (l *Life) Advance(elapsed float64) int {
	if !l.running {
		return 0
	}
	ticks := l.clock.Accumulate(elapsed)
	if ticks == 0 {
		return 0
	}
	steps := ticks
	if l.maxSteps > 0 && steps > l.maxSteps {
		steps = l.maxSteps
	}
	for i := 0; i < steps; i++ {
		l.Step()
	}
	if steps < ticks || ticks == core.MaxTicks {
		l.clock.Settle()
	} else {
		l.clock.Discharge(ticks)
	}
	return steps
}

// Parameters describes the simulation for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	size := l.Size()
	state := "stopped"
	if l.running {
		state = "running"
	}
	capLabel := "off"
	if l.maxSteps > 0 {
		capLabel = strconv.Itoa(l.maxSteps)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Value: state},
				{Key: "generation", Label: "Generation", Value: strconv.FormatUint(l.generation, 10)},
				{Key: "population", Label: "Population", Value: strconv.Itoa(l.Population())},
			},
		},
		{
			Name: "Clock",
			Params: []core.Parameter{
				{Key: "tick_rate", Label: "Tick rate", Value: strconv.FormatFloat(l.clock.Rate(), 'f', -1, 64)},
				{Key: "debt", Label: "Debt", Value: fmt.Sprintf("%.4fs", l.clock.Debt())},
				{Key: "max_steps_per_advance", Label: "Step cap", Value: capLabel},
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Value: fmt.Sprintf("%dx%d", size.W, size.H)},
				{Key: "seed", Label: "Seed", Value: strconv.FormatInt(l.seed, 10)},
			},
		},
	}}
}
