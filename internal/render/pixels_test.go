package render

import (
	"image/color"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 255}, {R: 9, G: 8, B: 7, A: 255}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 5}, palette)
	want := []byte{1, 2, 3, 255, 9, 8, 7, 255, 9, 8, 7, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}

	fillPaletteRGBA(buf, []uint8{0, 1, 2}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette left buf[%d] = %d", i, b)
		}
	}
}

func TestLayoutGeometry(t *testing.T) {
	l := Layout{Cell: 48, Margin: 1, Panel: 220}
	if w, h := l.BoardSize(12, 12); w != 589 || h != 589 {
		t.Fatalf("BoardSize = %dx%d, want 589x589", w, h)
	}
	if w, h := l.ScreenSize(12, 12); w != 809 || h != 589 {
		t.Fatalf("ScreenSize = %dx%d, want 809x589", w, h)
	}
	if x, y := l.CellOrigin(2, 3); x != 99 || y != 148 {
		t.Fatalf("CellOrigin(2,3) = (%d,%d), want (99,148)", x, y)
	}
}
