//go:build ebiten

package ui

import (
	"image/color"

	"heightmap/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 14
)

// HUD draws frame timing, the camera pose and the renderer settings over the
// top-left corner of the view. F1 toggles it.
type HUD struct {
	params  core.ParameterProvider
	visible bool
	panel   *ebiten.Image
	lines   []string
}

// NewHUD constructs a visible HUD reading parameters from the provider.
func NewHUD(params core.ParameterProvider) *HUD {
	return &HUD{params: params, visible: true}
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.visible = !h.visible
	}
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image, stats Stats) {
	if h == nil || !h.visible {
		return
	}
	var snap core.ParameterSnapshot
	if h.params != nil {
		snap = h.params.Parameters()
	}
	h.lines = Lines(stats, snap)

	face := basicfont.Face7x13
	width := 0
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	width += 2 * panelPadding
	height := len(h.lines)*lineHeight + 2*panelPadding

	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 180})
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(4, 4)
	screen.DrawImage(h.panel, op)
}
