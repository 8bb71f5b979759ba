//go:build ebiten

package app

import (
	"errors"

	"conway-live/internal/core"
	"conway-live/internal/render"
	"conway-live/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an automaton to the ebiten.Game interface. It forwards input
// and elapsed time and only ever reads the cells.
type Game struct {
	sim     core.Automaton
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FrameTimer

	scale int
}

// New constructs a Game for the provided simulation.
func New(sim core.Automaton, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		hud:     ui.NewHUD(sim),
		overlay: ui.NewOverlay(sim),
		timer:   core.NewFrameTimer(),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation by the wall
// time since the previous update.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if anyMouseButtonJustPressed() {
		g.sim.TriggerRun()
	}
	g.hud.Update()

	g.sim.Advance(g.timer.Elapsed())
	return nil
}

func anyMouseButtonJustPressed() bool {
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if inpututil.IsMouseButtonJustPressed(b) {
			return true
		}
	}
	return false
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

// Run opens a window for sim and blocks until it is closed.
func Run(sim core.Automaton, opts Options) error {
	game := New(sim, opts.Scale)
	size := sim.Size()

	title := opts.Title
	if title == "" {
		title = sim.Name()
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(size.W*game.scale, size.H*game.scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
