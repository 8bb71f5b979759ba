package core

// Grid stores a 2D grid of binary cell values in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies on the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y). Positions off the grid read as dead.
func (g *Grid) At(x, y int) uint8 {
	if !g.In(x, y) {
		return 0
	}
	return g.data[y*g.W+x]
}

// Set stores v at (x, y). Any non-zero v is stored as 1; writes off the grid
// are dropped.
func (g *Grid) Set(x, y int, v uint8) {
	if !g.In(x, y) {
		return
	}
	if v != 0 {
		v = 1
	}
	g.data[y*g.W+x] = v
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
