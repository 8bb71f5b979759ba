//go:build ebiten

package ui

import (
	"image/color"

	"conway-live/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const startPrompt = "click to start"

// Overlay prints a start prompt over the board until the simulation runs.
type Overlay struct {
	sim   core.Automaton
	label *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Automaton) *Overlay {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, startPrompt)
	label := ebiten.NewImage(bounds.Dx()+12, bounds.Dy()+10)
	label.Fill(color.RGBA{A: 180})
	text.Draw(label, startPrompt, face, 6, 5-bounds.Min.Y, color.White)
	return &Overlay{sim: sim, label: label}
}

// Draw centres the prompt on screen while the simulation is stopped.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.sim.Running() {
		return
	}
	sb := screen.Bounds()
	lb := o.label.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64((sb.Dx()-lb.Dx())/2), float64((sb.Dy()-lb.Dy())/2))
	screen.DrawImage(o.label, op)
}
