package encounter

import (
	"chance-encounter/internal/core"

	"github.com/kamstrup/intmap"
)

// Board holds the grid dimensions and the set of wall cells.
type Board struct {
	w, h  int
	walls *intmap.Set[int]
}

// NewBoard returns an empty board. Dimensions below one are raised to one.
func NewBoard(w, h int) *Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Board{w: w, h: h, walls: intmap.NewSet[int](w*h/8 + 1)}
}

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Vec) bool {
	return p.X >= 0 && p.X < b.w && p.Y >= 0 && p.Y < b.h
}

func (b *Board) index(p Vec) int { return p.Y*b.w + p.X }

// IsWall reports whether p is a wall cell.
func (b *Board) IsWall(p Vec) bool {
	if !b.InBounds(p) {
		return false
	}
	return b.walls.Has(b.index(p))
}

// Open reports whether an agent may stand on p.
func (b *Board) Open(p Vec) bool { return b.InBounds(p) && !b.walls.Has(b.index(p)) }

// AddWall marks p as a wall. Coordinates off the board are ignored.
func (b *Board) AddWall(p Vec) {
	if b.InBounds(p) {
		b.walls.Add(b.index(p))
	}
}

// RemoveWall clears the wall at p if there is one.
func (b *Board) RemoveWall(p Vec) {
	if b.InBounds(p) {
		b.walls.Del(b.index(p))
	}
}

// WallCount returns the number of wall cells.
func (b *Board) WallCount() int { return b.walls.Len() }

// ClearWalls removes every wall.
func (b *Board) ClearWalls() {
	b.walls = intmap.NewSet[int](b.w*b.h/8 + 1)
}

// GenerateWalls replaces the walls with a fresh random layout where each cell
// independently becomes a wall with probability density.
func (b *Board) GenerateWalls(rng *core.RNG, density float64) {
	b.ClearWalls()
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if rng.Chance(density) {
				b.walls.Add(y*b.w + x)
			}
		}
	}
}

// ClearCells removes walls from the given cells, typically the agents' starts.
func (b *Board) ClearCells(cells ...Vec) {
	for _, c := range cells {
		b.RemoveWall(c)
	}
}

var neighborOffsets = [4]Vec{Right, Left, Down, Up}

// ValidMoves lists the open 4-neighbours of p. An agent boxed in on all sides
// gets p itself as its only move.
func (b *Board) ValidMoves(p Vec) []Vec {
	opts, n := b.openNeighbors(p)
	if n == 0 {
		return []Vec{p}
	}
	return append([]Vec(nil), opts[:n]...)
}

// RandomStep picks one of ValidMoves(p) uniformly.
func (b *Board) RandomStep(rng *core.RNG, p Vec) Vec {
	opts, n := b.openNeighbors(p)
	if n == 0 {
		return p
	}
	return opts[rng.IntN(n)]
}

func (b *Board) openNeighbors(p Vec) ([4]Vec, int) {
	var opts [4]Vec
	n := 0
	for _, d := range neighborOffsets {
		if c := p.Add(d); b.Open(c) {
			opts[n] = c
			n++
		}
	}
	return opts, n
}

// Corners returns the two opposite start cells used for every round.
func (b *Board) Corners() (Vec, Vec) {
	return Vec{X: 0, Y: 0}, Vec{X: b.w - 1, Y: b.h - 1}
}
