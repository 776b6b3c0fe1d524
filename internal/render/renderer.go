//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads palette-coded cells into a one-pixel-per-cell image and
// draws it scaled up to the board layout.
type GridPainter struct {
	w, h   int
	layout Layout
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, layout Layout) *GridPainter {
	gp := &GridPainter{w: w, h: h, layout: layout, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws the cells and then the grid lines in the line color.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, line color.Color) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	pitch := float64(gp.layout.Pitch())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pitch, pitch)
	op.GeoM.Translate(float64(gp.layout.Margin), float64(gp.layout.Margin))
	dst.DrawImage(gp.img, op)

	if gp.layout.Margin <= 0 {
		return
	}
	bw, bh := gp.layout.BoardSize(gp.w, gp.h)
	m := float32(gp.layout.Margin)
	for x := 0; x <= gp.w; x++ {
		vector.DrawFilledRect(dst, float32(x*gp.layout.Pitch()), 0, m, float32(bh), line, false)
	}
	for y := 0; y <= gp.h; y++ {
		vector.DrawFilledRect(dst, 0, float32(y*gp.layout.Pitch()), float32(bw), m, line, false)
	}
}

// Outline strokes a border just inside cell (x, y).
func (gp *GridPainter) Outline(dst *ebiten.Image, x, y int, width float32, col color.Color) {
	ox, oy := gp.layout.CellOrigin(x, y)
	c := float32(gp.layout.Cell)
	half := width / 2
	vector.StrokeRect(dst, float32(ox)+half, float32(oy)+half, c-width, c-width, width, col, true)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
