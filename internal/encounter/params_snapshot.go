package encounter

import (
	"math"
	"strconv"

	"chance-encounter/internal/core"
)

// Parameters reports the tunables shown on the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.seed),
			},
		},
		{
			Name: "Round",
			Params: []core.Parameter{
				floatParam("obstacle_density", "Obstacles", params.ObstacleDensity),
				intParam("auto_run_tps", "Auto-run TPS", params.AutoRunTPS),
			},
		},
		{
			Name: "Monte Carlo",
			Params: []core.Parameter{
				intParam("mc_trials", "MC trials", params.MonteCarloTrials),
				intParam("mc_max_steps", "MC max steps", params.MonteCarloMaxSteps),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var encounterControls = []core.ParameterControl{
	{Key: "obstacle_density", Label: "Obstacles", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
	{Key: "auto_run_tps", Label: "Auto-run TPS", Type: core.ParamTypeInt, Step: 5, Min: 1, Max: 60, HasMin: true, HasMax: true},
	{Key: "mc_trials", Label: "MC trials", Type: core.ParamTypeInt, Step: 500, Min: 100, Max: 10000, HasMin: true, HasMax: true},
}

// ParameterControls lists the parameters adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return encounterControls
}

// SetIntParameter updates an integer tunable, clamping to its control bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	v := int(math.Round(ctrl.Clamp(float64(value))))
	switch key {
	case "auto_run_tps":
		w.cfg.Params.AutoRunTPS = v
	case "mc_trials":
		w.cfg.Params.MonteCarloTrials = v
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float tunable, clamping to its control bounds.
// A new obstacle density applies from the next round.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeFloat || math.IsNaN(value) {
		return false
	}
	switch key {
	case "obstacle_density":
		w.cfg.Params.ObstacleDensity = ctrl.Clamp(value)
	default:
		return false
	}
	return true
}

func controlFor(key string) (core.ParameterControl, bool) {
	for _, ctrl := range encounterControls {
		if ctrl.Key == key {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
