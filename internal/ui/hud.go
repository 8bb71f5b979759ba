//go:build ebiten

package ui

import (
	"image/color"

	"conway-live/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 15
	panelWidth   = 190
)

// HUD renders a translucent panel listing the simulation parameters.
type HUD struct {
	provider core.ParameterProvider
	visible  bool
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD for the provided simulation. It returns nil when the
// simulation does not describe its parameters.
func NewHUD(sim core.Automaton) *HUD {
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return nil
	}
	return &HUD{provider: provider, visible: true}
}

// Update toggles visibility on H and refreshes the cached snapshot.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if h.visible {
		h.snapshot = h.provider.Parameters()
	}
}

// Draw paints the panel in the top-left corner of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	lines := 0
	for _, g := range h.snapshot.Groups {
		lines += 1 + len(g.Params)
	}
	height := panelPadding*2 + lines*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	y := panelPadding + 11
	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label, face, panelPadding+6, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, panelWidth-panelPadding-bounds.Dx(), y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
			y += lineHeight
		}
	}

	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
