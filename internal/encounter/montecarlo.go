package encounter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"

	"chance-encounter/internal/core"

	"golang.org/x/sync/errgroup"
)

// MonteCarloConfig describes a batch of headless random-vs-random trials.
type MonteCarloConfig struct {
	Width, Height int
	Trials        int
	MaxSteps      int
	// ObstacleDensity regenerates walls for every trial when positive.
	ObstacleDensity float64
	Seed            int64
	// Workers defaults to runtime.NumCPU when zero.
	Workers int
}

// Stats summarises a Monte Carlo run.
type Stats struct {
	Trials     int
	MaxSteps   int
	Meets      int
	TotalSteps int
	// AvgSteps is the mean number of turns over trials that ended in an
	// encounter, or +Inf when none did.
	AvgSteps float64
	// MeetRate is the fraction of trials that ended within MaxSteps.
	MeetRate float64
}

// ErrInvalidGrid is returned when a grid cannot hold two distinct start cells.
var ErrInvalidGrid = errors.New("grid must contain at least two cells")

// RunMonteCarlo plays cfg.Trials independent rounds where both agents walk
// randomly from opposite corners until they encounter each other or MaxSteps
// turns elapse. Trial i draws from RNG stream i of cfg.Seed, so the result
// does not depend on the worker count.
func RunMonteCarlo(ctx context.Context, cfg MonteCarloConfig) (Stats, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height < 2 {
		return Stats{}, fmt.Errorf("monte carlo %dx%d: %w", cfg.Width, cfg.Height, ErrInvalidGrid)
	}
	if cfg.MaxSteps <= 0 {
		return Stats{}, fmt.Errorf("monte carlo: max steps must be positive, got %d", cfg.MaxSteps)
	}
	stats := Stats{Trials: cfg.Trials, MaxSteps: cfg.MaxSteps, AvgSteps: math.Inf(1)}
	if cfg.Trials <= 0 {
		stats.Trials = 0
		return stats, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Trials {
		workers = cfg.Trials
	}

	var (
		next       atomic.Int64
		meets      atomic.Int64
		totalSteps atomic.Int64
	)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			board := NewBoard(cfg.Width, cfg.Height)
			for {
				trial := next.Add(1) - 1
				if trial >= int64(cfg.Trials) {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				rng := core.NewStreamRNG(cfg.Seed, uint64(trial))
				if met, steps := runTrial(board, rng, cfg); met {
					meets.Add(1)
					totalSteps.Add(int64(steps))
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	stats.Meets = int(meets.Load())
	stats.TotalSteps = int(totalSteps.Load())
	stats.MeetRate = float64(stats.Meets) / float64(stats.Trials)
	if stats.Meets > 0 {
		stats.AvgSteps = float64(stats.TotalSteps) / float64(stats.Meets)
	}
	return stats, nil
}

func runTrial(board *Board, rng *core.RNG, cfg MonteCarloConfig) (bool, int) {
	a0, b0 := board.Corners()
	if cfg.ObstacleDensity > 0 {
		board.GenerateWalls(rng, cfg.ObstacleDensity)
		board.ClearCells(a0, b0)
	}
	a, b := NewAgent(a0), NewAgent(b0)
	for step := 1; step <= cfg.MaxSteps; step++ {
		a.MoveTo(board.RandomStep(rng, a.Pos))
		b.MoveTo(board.RandomStep(rng, b.Pos))
		if Encountered(a, b) {
			return true, step
		}
	}
	return false, cfg.MaxSteps
}
