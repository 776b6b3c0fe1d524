package ui

import (
	"image"
	"math"
	"strconv"

	"chance-encounter/internal/core"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// adjustedValue returns the value one step away in direction, clamped to the
// control bounds. It reports false when the value would not change.
func adjustedValue(state *hudControlState, direction int) (float64, bool) {
	if state == nil || direction == 0 {
		return 0, false
	}
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		step := int(math.Round(ctrl.Step))
		if step <= 0 {
			step = 1
		}
		target := ctrl.Clamp(float64(state.intValue + direction*step))
		if int(math.Round(target)) == state.intValue {
			return 0, false
		}
		return target, true
	case core.ParamTypeFloat:
		step := ctrl.Step
		if step <= 0 {
			step = 0.05
		}
		target := ctrl.Clamp(state.floatValue + float64(direction)*step)
		if math.Abs(target-state.floatValue) < 1e-9 {
			return 0, false
		}
		return target, true
	default:
		return 0, false
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	var precision int
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
