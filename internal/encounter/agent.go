package encounter

import "fmt"

// Vec is a cell coordinate or a unit direction on the grid.
type Vec struct {
	X, Y int
}

// Directions an agent may take in one turn.
var (
	Up    = Vec{X: 0, Y: -1}
	Down  = Vec{X: 0, Y: 1}
	Left  = Vec{X: -1, Y: 0}
	Right = Vec{X: 1, Y: 0}
)

// Add returns v translated by d.
func (v Vec) Add(d Vec) Vec { return Vec{X: v.X + d.X, Y: v.Y + d.Y} }

func (v Vec) String() string { return fmt.Sprintf("(%d,%d)", v.X, v.Y) }

// Agent is a walker on the board. Prev is the cell it occupied before the
// most recent turn and equals Pos when it stayed put.
type Agent struct {
	Pos  Vec
	Prev Vec
}

// NewAgent places an agent at start with no movement history.
func NewAgent(start Vec) Agent {
	return Agent{Pos: start, Prev: start}
}

// MoveTo records the current cell as Prev and moves to p.
func (a *Agent) MoveTo(p Vec) {
	a.Prev = a.Pos
	a.Pos = p
}

// Stay records a turn in which the agent did not move.
func (a *Agent) Stay() { a.Prev = a.Pos }

// Met reports whether a and b occupy the same cell.
func Met(a, b Agent) bool { return a.Pos == b.Pos }

// Crossed reports whether a and b swapped cells during the last turn.
func Crossed(a, b Agent) bool { return a.Pos == b.Prev && b.Pos == a.Prev }

// Encountered reports whether the agents met or crossed paths.
func Encountered(a, b Agent) bool { return Met(a, b) || Crossed(a, b) }
