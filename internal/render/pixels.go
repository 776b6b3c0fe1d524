package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Codes past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Layout converts grid coordinates into screen pixels for a board drawn with
// square cells separated by grid lines of width Margin.
type Layout struct {
	Cell   int
	Margin int
	Panel  int
}

// Pitch is the distance between the origins of adjacent cells.
func (l Layout) Pitch() int { return l.Cell + l.Margin }

// BoardSize returns the pixel size of a w x h board including outer lines.
func (l Layout) BoardSize(w, h int) (int, int) {
	return w*l.Pitch() + l.Margin, h*l.Pitch() + l.Margin
}

// ScreenSize returns the full logical screen size, board plus side panel.
func (l Layout) ScreenSize(w, h int) (int, int) {
	bw, bh := l.BoardSize(w, h)
	return bw + l.Panel, bh
}

// CellOrigin returns the top-left pixel of cell (x, y).
func (l Layout) CellOrigin(x, y int) (int, int) {
	return x*l.Pitch() + l.Margin, y*l.Pitch() + l.Margin
}
