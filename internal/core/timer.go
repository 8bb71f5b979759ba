package core

import (
	"math"
	"time"
)

// DefaultTickRate is the number of generations per simulated second.
const DefaultTickRate = 60

// MaxTicks bounds the ticks a single Accumulate call reports. Debt beyond it
// is dropped, keeping only the fraction of a period.
const MaxTicks = 1 << 20

// Clock converts elapsed seconds into whole ticks at a fixed rate. Time that
// does not add up to a full tick is kept as debt for the next call.
type Clock struct {
	rate float64
	debt float64
}

// NewClock constructs a Clock targeting the given ticks per second.
func NewClock(rate float64) *Clock {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		rate = DefaultTickRate
	}
	return &Clock{rate: rate}
}

// Rate returns the tick rate in ticks per second.
func (c *Clock) Rate() float64 { return c.rate }

// Period returns the length of one tick in seconds.
func (c *Clock) Period() float64 { return 1 / c.rate }

// Debt returns the accumulated seconds not yet converted into ticks.
func (c *Clock) Debt() float64 { return c.debt }

// Accumulate adds dt seconds to the debt and reports how many whole ticks the
// debt now covers, at most MaxTicks. The debt is not reduced; call Discharge
// or Settle once the ticks have been consumed. Negative and NaN values are
// ignored.
func (c *Clock) Accumulate(dt float64) int {
	if dt > 0 && !math.IsInf(dt, 1) {
		c.debt += dt
	}
	ticks := math.Floor(c.debt * c.rate)
	if ticks < MaxTicks {
		return int(ticks)
	}
	residual := 0.0
	if !math.IsInf(c.debt, 1) {
		residual = math.Mod(c.debt, c.Period())
	}
	c.debt = float64(MaxTicks)/c.rate + residual
	return MaxTicks
}

// Discharge removes ticks worth of time from the debt.
func (c *Clock) Discharge(ticks int) {
	if ticks <= 0 {
		return
	}
	c.debt -= float64(ticks) / c.rate
	if c.debt < 0 {
		c.debt = 0
	}
}

// Settle drops every whole period from the debt, leaving less than one tick.
func (c *Clock) Settle() {
	c.debt = math.Mod(c.debt, c.Period())
	if c.debt < 0 || math.IsNaN(c.debt) {
		c.debt = 0
	}
}

// Reset drops any accumulated debt.
func (c *Clock) Reset() { c.debt = 0 }

// FrameTimer measures wall-clock time between successive calls to Elapsed.
type FrameTimer struct {
	last time.Time
	now  func() time.Time
}

// NewFrameTimer returns a FrameTimer reading time from time.Now.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{now: time.Now}
}

// Elapsed returns the seconds since the previous call. The first call
// returns zero.
func (f *FrameTimer) Elapsed() float64 {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return delta.Seconds()
}
