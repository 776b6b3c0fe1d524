package encounter

import (
	"context"
	"errors"
)

// Action is a player command decoded from input.
type Action uint8

const (
	ActionNone Action = iota
	ActionToggleMode
	ActionReset
	ActionToggleObstacles
	ActionMonteCarlo
	ActionStep
	ActionToggleAutoRun
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
)

var moveDirections = map[Action]Vec{
	ActionMoveUp:    Up,
	ActionMoveDown:  Down,
	ActionMoveLeft:  Left,
	ActionMoveRight: Right,
}

// Apply executes an action against the world. Step and auto-run only act in
// random-vs-random mode and moves only in player mode. It reports whether the
// action changed anything.
func (w *World) Apply(a Action) bool {
	switch a {
	case ActionToggleMode:
		w.SetMode(w.mode.Next())
		return true
	case ActionReset:
		w.ResetRound()
		return true
	case ActionToggleObstacles:
		w.SetObstacles(!w.obstacles)
		return true
	case ActionMonteCarlo:
		return w.StartMonteCarlo()
	case ActionStep:
		if w.mode != RandomVsRandom {
			return false
		}
		return w.StepRandomVsRandom()
	case ActionToggleAutoRun:
		if w.mode != RandomVsRandom {
			return false
		}
		w.SetAutoRun(!w.autoRun)
		return true
	}
	if dir, ok := moveDirections[a]; ok {
		if w.mode != PlayerVsRandom {
			return false
		}
		return w.StepPlayer(dir)
	}
	return false
}

// MonteCarloConfig derives the obstacle-free estimator settings from the
// world configuration.
func (w *World) MonteCarloConfig() MonteCarloConfig {
	return MonteCarloConfig{
		Width:    w.cfg.Width,
		Height:   w.cfg.Height,
		Trials:   w.cfg.Params.MonteCarloTrials,
		MaxSteps: w.cfg.Params.MonteCarloMaxSteps,
		Workers:  w.cfg.Params.MonteCarloWorkers,
		Seed:     w.rng.Source().Int64(),
	}
}

// StartMonteCarlo launches a background run. It returns false when one is
// already in flight.
func (w *World) StartMonteCarlo() bool {
	if w.pending != nil {
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	run := &monteCarloRun{cancel: cancel, done: make(chan monteCarloResult, 1)}
	cfg := w.MonteCarloConfig()
	go func() {
		stats, err := RunMonteCarlo(ctx, cfg)
		run.done <- monteCarloResult{stats: stats, err: err}
	}()
	w.pending = run
	w.stats = nil
	w.mcErr = nil
	return true
}

// PollMonteCarlo collects a finished background run without blocking. It
// reports whether a result was collected during this call.
func (w *World) PollMonteCarlo() bool {
	if w.pending == nil {
		return false
	}
	select {
	case res := <-w.pending.done:
		w.pending.cancel()
		w.pending = nil
		if res.err != nil {
			w.mcErr = res.err
			return true
		}
		stats := res.stats
		w.stats = &stats
		return true
	default:
		return false
	}
}

// MonteCarloRunning reports whether a background run is in flight.
func (w *World) MonteCarloRunning() bool { return w.pending != nil }

// MonteCarloStats returns the last completed run, if any.
func (w *World) MonteCarloStats() (Stats, bool) {
	if w.stats == nil {
		return Stats{}, false
	}
	return *w.stats, true
}

// MonteCarloErr returns the error of the last run, ignoring cancellations.
func (w *World) MonteCarloErr() error {
	if errors.Is(w.mcErr, context.Canceled) {
		return nil
	}
	return w.mcErr
}

// Close cancels any in-flight Monte Carlo run.
func (w *World) Close() { w.cancelMonteCarlo() }

func (w *World) cancelMonteCarlo() {
	if w.pending == nil {
		return
	}
	w.pending.cancel()
	w.pending = nil
}
