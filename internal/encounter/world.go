package encounter

import (
	"context"

	"chance-encounter/internal/core"
)

// Mode selects who controls the blue agent.
type Mode uint8

const (
	// PlayerVsRandom lets the player steer blue while red walks randomly.
	PlayerVsRandom Mode = iota
	// RandomVsRandom moves both agents randomly.
	RandomVsRandom
)

func (m Mode) String() string {
	switch m {
	case PlayerVsRandom:
		return "Player vs Random"
	case RandomVsRandom:
		return "Random vs Random"
	default:
		return "Unknown"
	}
}

// Next returns the other mode.
func (m Mode) Next() Mode {
	if m == PlayerVsRandom {
		return RandomVsRandom
	}
	return PlayerVsRandom
}

// World is the state of a Chance Encounter session: the current round plus
// the toggles that survive a reset.
type World struct {
	cfg Config

	board *Board
	blue  Agent
	red   Agent

	mode      Mode
	obstacles bool
	autoRun   bool
	turns     int
	met       bool

	stats   *Stats
	pending *monteCarloRun
	mcErr   error

	display *core.ByteGrid
	visits  []uint32
	mask    []float32

	seed int64
	rng  *core.RNG
}

type monteCarloRun struct {
	cancel context.CancelFunc
	done   chan monteCarloResult
}

type monteCarloResult struct {
	stats Stats
	err   error
}

// New returns a world with the provided dimensions using default parameters.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// world is seeded from cfg.Seed and ready to play.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.normalized()
	w := &World{
		cfg:     cfg,
		board:   NewBoard(cfg.Width, cfg.Height),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		visits:  make([]uint32, cfg.Width*cfg.Height),
		mask:    make([]float32, cfg.Width*cfg.Height),
	}
	w.Reset(0)
	return w
}

// Name identifies the game.
func (w *World) Name() string { return "chance-encounter" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return w.board.Size() }

// Config returns a copy of the active configuration.
func (w *World) Config() Config { return w.cfg }

// Reset reseeds the world RNG and starts a new round. A zero seed selects the
// configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = seed
	w.rng = core.NewRNG(seed)
	w.ResetRound()
}

// Seed returns the seed of the last Reset.
func (w *World) Seed() int64 { return w.seed }

// ResetRound starts a fresh round without reseeding, so consecutive rounds
// get different obstacle layouts. Auto-run and Monte Carlo results are
// cleared and an in-flight Monte Carlo run is cancelled.
func (w *World) ResetRound() {
	w.turns = 0
	w.met = false
	w.autoRun = false
	w.stats = nil
	w.mcErr = nil
	w.cancelMonteCarlo()

	w.board.ClearWalls()
	a, b := w.board.Corners()
	if w.obstacles {
		w.board.GenerateWalls(w.rng, w.cfg.Params.ObstacleDensity)
		w.board.ClearCells(a, b)
	}
	w.blue = NewAgent(a)
	w.red = NewAgent(b)

	for i := range w.visits {
		w.visits[i] = 0
	}
	w.recordVisits()
	w.refreshDisplay()
}

// Step advances a random-vs-random turn. It does nothing in player mode so
// the auto-run ticker can call it unconditionally.
func (w *World) Step() {
	if w.mode != RandomVsRandom {
		return
	}
	w.StepRandomVsRandom()
}

// StepRandomVsRandom moves both agents randomly. It reports whether a turn
// was played.
func (w *World) StepRandomVsRandom() bool {
	if w.met {
		return false
	}
	w.blue.MoveTo(w.board.RandomStep(w.rng, w.blue.Pos))
	w.red.MoveTo(w.board.RandomStep(w.rng, w.red.Pos))
	w.endTurn()
	return true
}

// StepPlayer moves blue one cell in dir, or keeps it in place when the target
// is a wall or off the board, then moves red randomly. It reports whether a
// turn was played.
func (w *World) StepPlayer(dir Vec) bool {
	if w.met {
		return false
	}
	if target := w.blue.Pos.Add(dir); w.board.Open(target) {
		w.blue.MoveTo(target)
	} else {
		w.blue.Stay()
	}
	w.red.MoveTo(w.board.RandomStep(w.rng, w.red.Pos))
	w.endTurn()
	return true
}

func (w *World) endTurn() {
	w.turns++
	w.met = Encountered(w.blue, w.red)
	w.recordVisits()
	w.refreshDisplay()
}

// SetMode switches mode and starts a new round.
func (w *World) SetMode(m Mode) {
	w.mode = m
	w.ResetRound()
}

// SetObstacles toggles wall generation and starts a new round.
func (w *World) SetObstacles(on bool) {
	w.obstacles = on
	w.ResetRound()
}

// SetAutoRun enables or disables auto-run. Auto-run only applies in
// random-vs-random mode.
func (w *World) SetAutoRun(on bool) {
	w.autoRun = on && w.mode == RandomVsRandom
}

// AutoRunning reports whether the auto-run ticker should drive Step.
func (w *World) AutoRunning() bool {
	return w.autoRun && w.mode == RandomVsRandom && !w.met
}

// Mode returns the active mode.
func (w *World) Mode() Mode { return w.mode }

// Obstacles reports whether walls are generated for new rounds.
func (w *World) Obstacles() bool { return w.obstacles }

// AutoRun reports whether auto-run is switched on, even after an encounter.
func (w *World) AutoRun() bool { return w.autoRun }

// Turns returns the number of turns played this round.
func (w *World) Turns() int { return w.turns }

// Encountered reports whether the round has ended.
func (w *World) Encountered() bool { return w.met }

// Blue returns the player-side agent.
func (w *World) Blue() Agent { return w.blue }

// Red returns the random agent.
func (w *World) Red() Agent { return w.red }

// Board exposes the current board.
func (w *World) Board() *Board { return w.board }

func (w *World) recordVisits() {
	for _, p := range [2]Vec{w.blue.Pos, w.red.Pos} {
		if w.board.InBounds(p) {
			w.visits[w.board.index(p)]++
		}
	}
}
