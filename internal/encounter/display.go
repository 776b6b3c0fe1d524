package encounter

import "image/color"

// Display buffer codes returned by Cells.
const (
	CellFloor uint8 = iota
	CellWall
	CellBlue
	CellRed
	CellEncounter
)

var (
	ColorBackground = color.RGBA{R: 15, G: 16, B: 20, A: 255}
	ColorFloor      = color.RGBA{R: 40, G: 44, B: 52, A: 255}
	ColorWall       = color.RGBA{R: 88, G: 94, B: 110, A: 255}
	ColorBlue       = color.RGBA{R: 76, G: 161, B: 255, A: 255}
	ColorRed        = color.RGBA{R: 255, G: 92, B: 92, A: 255}
	ColorMeet       = color.RGBA{R: 90, G: 214, B: 125, A: 255}
	ColorText       = color.RGBA{R: 230, G: 230, B: 235, A: 255}
)

var encounterPalette = []color.RGBA{
	CellFloor:     ColorFloor,
	CellWall:      ColorWall,
	CellBlue:      ColorBlue,
	CellRed:       ColorRed,
	CellEncounter: ColorMeet,
}

// Palette maps display codes to colors.
func (w *World) Palette() []color.RGBA { return encounterPalette }

// Cells exposes the display buffer, one code per cell in row-major order.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// VisitMask returns per-cell visit intensity in [0, 1], normalised to the
// most visited cell of the round.
func (w *World) VisitMask() []float32 {
	var peak uint32
	for _, v := range w.visits {
		if v > peak {
			peak = v
		}
	}
	for i, v := range w.visits {
		if peak == 0 {
			w.mask[i] = 0
			continue
		}
		w.mask[i] = float32(v) / float32(peak)
	}
	return w.mask
}

func (w *World) refreshDisplay() {
	size := w.board.Size()
	cells := w.display.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			code := CellFloor
			if w.board.IsWall(Vec{X: x, Y: y}) {
				code = CellWall
			}
			cells[w.display.Index(x, y)] = code
		}
	}
	w.display.Set(w.blue.Pos.X, w.blue.Pos.Y, CellBlue)
	w.display.Set(w.red.Pos.X, w.red.Pos.Y, CellRed)
	if w.met {
		// Crossing agents sit on different cells; mark both.
		w.display.Set(w.blue.Pos.X, w.blue.Pos.Y, CellEncounter)
		w.display.Set(w.red.Pos.X, w.red.Pos.Y, CellEncounter)
	}
}
