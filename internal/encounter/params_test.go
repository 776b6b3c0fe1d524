package encounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                "20",
		"h":                "bogus",
		"seed":             "-7",
		"obstacle_density": "1.5",
		"auto_run_tps":     "30",
		"mc_trials":        "250",
		"mc_max_steps":     "0",
	})
	def := DefaultConfig()
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, def.Height, cfg.Height)
	assert.Equal(t, int64(-7), cfg.Seed)
	assert.Equal(t, def.Params.ObstacleDensity, cfg.Params.ObstacleDensity)
	assert.Equal(t, 30, cfg.Params.AutoRunTPS)
	assert.Equal(t, 250, cfg.Params.MonteCarloTrials)
	assert.Equal(t, def.Params.MonteCarloMaxSteps, cfg.Params.MonteCarloMaxSteps)

	assert.Equal(t, def, FromMap(nil))
	assert.Equal(t, 2, FromMap(map[string]string{"w": "1", "h": "1"}).Width)
}

func TestParameterSetters(t *testing.T) {
	w := New(12, 12)

	assert.True(t, w.SetFloatParameter("obstacle_density", 0.9))
	assert.Equal(t, 0.5, w.Config().Params.ObstacleDensity, "clamped to control max")
	assert.False(t, w.SetFloatParameter("mc_trials", 3))
	assert.False(t, w.SetFloatParameter("unknown", 1))

	assert.True(t, w.SetIntParameter("mc_trials", 50))
	assert.Equal(t, 100, w.Config().Params.MonteCarloTrials)
	assert.True(t, w.SetIntParameter("auto_run_tps", 20))
	assert.Equal(t, 20, w.Config().Params.AutoRunTPS)
	assert.False(t, w.SetIntParameter("obstacle_density", 1))

	p, ok := w.Parameters().Lookup("mc_trials")
	assert.True(t, ok)
	assert.Equal(t, "100", p.Value)
	p, ok = w.Parameters().Lookup("seed")
	assert.True(t, ok)
	assert.Equal(t, "42", p.Value)
}
