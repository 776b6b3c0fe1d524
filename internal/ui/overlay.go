//go:build ebiten

package ui

import (
	"image/color"

	"chance-encounter/internal/core"
	"chance-encounter/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type visitMaskProvider interface {
	VisitMask() []float32
}

var heatTint = color.RGBA{R: 255, G: 196, B: 64, A: 0}

// Overlay draws optional visuals on top of the board.
type Overlay struct {
	sim      core.Sim
	layout   render.Layout
	showHeat bool
	maskImg  *ebiten.Image
	maskBuf  []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, layout render.Layout) *Overlay {
	return &Overlay{sim: sim, layout: layout}
}

// Update handles overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHeat {
		return
	}
	provider, ok := o.sim.(visitMaskProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.Cells()
	if total <= 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	if !fillMaskRGBA(o.maskBuf, provider.VisitMask(), heatTint) {
		return
	}
	o.maskImg.WritePixels(o.maskBuf)
	pitch := float64(o.layout.Pitch())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pitch, pitch)
	op.GeoM.Translate(float64(o.layout.Margin), float64(o.layout.Margin))
	screen.DrawImage(o.maskImg, op)
}

