package encounter

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRespectsMode(t *testing.T) {
	w := New(12, 12)

	assert.False(t, w.Apply(ActionStep), "step is random-vs-random only")
	assert.False(t, w.Apply(ActionToggleAutoRun))
	assert.True(t, w.Apply(ActionMoveRight))
	assert.Equal(t, Vec{1, 0}, w.Blue().Pos)

	require.True(t, w.Apply(ActionToggleMode))
	assert.Equal(t, RandomVsRandom, w.Mode())
	assert.Equal(t, 0, w.Turns(), "switching mode starts a new round")
	assert.Equal(t, Vec{0, 0}, w.Blue().Pos)

	assert.False(t, w.Apply(ActionMoveRight), "moves are player mode only")
	assert.True(t, w.Apply(ActionStep))
	assert.Equal(t, 1, w.Turns())

	assert.True(t, w.Apply(ActionToggleAutoRun))
	assert.True(t, w.AutoRunning())
	assert.True(t, w.Apply(ActionReset))
	assert.False(t, w.AutoRun(), "reset turns auto-run off")
	assert.False(t, w.Apply(ActionNone))
}

func TestApplyToggleObstacles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.ObstacleDensity = 0.5
	w := NewWithConfig(cfg)

	require.True(t, w.Apply(ActionToggleObstacles))
	assert.True(t, w.Obstacles())
	assert.Greater(t, w.Board().WallCount(), 0)

	require.True(t, w.Apply(ActionToggleObstacles))
	assert.False(t, w.Obstacles())
	assert.Equal(t, 0, w.Board().WallCount())
}

func TestAutoRunStopsAfterEncounter(t *testing.T) {
	w := New(2, 1)
	w.SetMode(RandomVsRandom)
	w.SetAutoRun(true)
	require.True(t, w.AutoRunning())

	w.Step()
	assert.True(t, w.Encountered())
	assert.False(t, w.AutoRunning())
	assert.True(t, w.AutoRun(), "the toggle stays on until the next round")
}

func TestBackgroundMonteCarlo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 2, 1
	cfg.Params.MonteCarloTrials = 40
	w := NewWithConfig(cfg)

	require.True(t, w.Apply(ActionMonteCarlo))
	assert.True(t, w.MonteCarloRunning())
	assert.False(t, w.StartMonteCarlo(), "only one run at a time")

	require.Eventually(t, w.PollMonteCarlo, 5*time.Second, time.Millisecond)
	assert.False(t, w.MonteCarloRunning())
	require.NoError(t, w.MonteCarloErr())

	stats, ok := w.MonteCarloStats()
	require.True(t, ok)
	assert.Equal(t, 40, stats.Trials)
	assert.Equal(t, 40, stats.Meets)
	assert.Equal(t, 1.0, stats.AvgSteps)

	w.ResetRound()
	_, ok = w.MonteCarloStats()
	assert.False(t, ok, "reset clears Monte Carlo results")
}

func TestResetCancelsMonteCarlo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MonteCarloTrials = 10000
	w := NewWithConfig(cfg)

	require.True(t, w.StartMonteCarlo())
	w.ResetRound()
	assert.False(t, w.MonteCarloRunning())
	assert.False(t, w.PollMonteCarlo())
	assert.NoError(t, w.MonteCarloErr())
}

func TestStatusLines(t *testing.T) {
	w := New(2, 1)
	text := func() string {
		var parts []string
		for _, line := range w.Status() {
			parts = append(parts, line.Text)
		}
		return strings.Join(parts, "\n")
	}

	assert.Contains(t, text(), "Mode: Player vs Random")
	assert.Contains(t, text(), "Obstacles: OFF")
	assert.NotContains(t, text(), "Encounter!")

	w.Apply(ActionToggleMode)
	w.Apply(ActionToggleAutoRun)
	assert.Contains(t, text(), "Auto-Run: ON")

	w.Apply(ActionStep)
	assert.Contains(t, text(), "Turns: 1")
	assert.Contains(t, text(), "Encounter!")

	w.stats = &Stats{Trials: 1000, MaxSteps: 2000, AvgSteps: 37.24, MeetRate: 0.5}
	assert.Contains(t, text(), "MC (1000 trials):")
	assert.Contains(t, text(), "Avg steps to meet: 37.2")
	assert.Contains(t, text(), "Meet rate <=2000: 50.0%")

	w.stats.AvgSteps = math.Inf(1)
	assert.Contains(t, text(), "Avg steps to meet: inf")
}
