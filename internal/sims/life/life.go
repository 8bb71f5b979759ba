package life

import (
	"math/rand/v2"

	"conway-live/internal/core"
)

// Life implements Conway's Game of Life on a bounded grid whose edges read as
// dead cells. Generations are double buffered: a step reads only the current
// grid and publishes the freshly written one when the whole pass is done.
type Life struct {
	cur *core.Grid
	nxt *core.Grid

	clock    *core.Clock
	maxSteps int
	seed     int64

	running    bool
	generation uint64
}

// New returns a Life simulation seeded from cfg.Seed. The simulation starts
// stopped unless cfg.StartRunning is set.
func New(cfg Config) *Life {
	cfg = cfg.normalized()
	l := &Life{
		cur:      core.NewGrid(cfg.Width, cfg.Height),
		nxt:      core.NewGrid(cfg.Width, cfg.Height),
		clock:    core.NewClock(cfg.TickRate),
		maxSteps: cfg.MaxStepsPerAdvance,
		running:  cfg.StartRunning,
	}
	l.Reseed(cfg.Seed)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation returns the number of steps executed since the last reseed.
func (l *Life) Generation() uint64 { return l.generation }

// Population counts the live cells of the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Seed returns the seed the current board was generated from.
func (l *Life) Seed() int64 { return l.seed }

// Reseed replaces the board with a fresh random one. The run flag is kept.
func (l *Life) Reseed(seed int64) {
	l.seed = seed
	Seed(core.NewRNG(seed).Source(), l.cur)
	l.nxt.Clear()
	l.clock.Reset()
	l.generation = 0
}

// Step advances the simulation by one generation regardless of the run flag.
func (l *Life) Step() {
	Step(l.cur, l.nxt)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// Seed fills g with independent uniform 0/1 cells.
func Seed(rng *rand.Rand, g *core.Grid) {
	core.FillBinary(rng, g.Cells())
}

// NeighborCount sums the eight cells surrounding column x of row y. Positions
// off the grid count as dead; the grid does not wrap. x and y must lie on the
// grid.
func NeighborCount(g *core.Grid, x, y int) int {
	cells := g.Cells()
	w, h := g.W, g.H
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		row := ny * w
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= w || (dx == 0 && dy == 0) {
				continue
			}
			n += int(cells[row+nx])
		}
	}
	return n
}

// Step writes the generation following prior into next. Both grids must share
// the same dimensions and must not alias.
func Step(prior, next *core.Grid) {
	src := prior.Cells()
	dst := next.Cells()
	w, h := prior.W, prior.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			dst[idx] = rule(src[idx], NeighborCount(prior, x, y))
		}
	}
}

// rule applies birth on exactly three neighbours and survival on two or three.
func rule(cell uint8, neighbors int) uint8 {
	if neighbors == 3 || (cell == 1 && neighbors == 2) {
		return 1
	}
	return 0
}
