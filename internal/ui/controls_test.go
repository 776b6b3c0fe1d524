package ui

import (
	"image/color"
	"testing"

	"chance-encounter/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestAdjustedValueInt(t *testing.T) {
	state := &hudControlState{
		control:  core.ParameterControl{Type: core.ParamTypeInt, Step: 500, Min: 100, Max: 10000, HasMin: true, HasMax: true},
		intValue: 1000,
	}
	v, ok := adjustedValue(state, 1)
	assert.True(t, ok)
	assert.Equal(t, 1500.0, v)

	state.intValue = 300
	v, ok = adjustedValue(state, -1)
	assert.True(t, ok)
	assert.Equal(t, 100.0, v, "clamped to min")

	state.intValue = 100
	_, ok = adjustedValue(state, -1)
	assert.False(t, ok, "already at min")
}

func TestAdjustedValueFloat(t *testing.T) {
	state := &hudControlState{
		control:    core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
		floatValue: 0.49,
	}
	v, ok := adjustedValue(state, 1)
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)

	state.floatValue = 0.5
	_, ok = adjustedValue(state, 1)
	assert.False(t, ok)

	_, ok = adjustedValue(&hudControlState{control: core.ParameterControl{Type: core.ParamTypeBool}}, 1)
	assert.False(t, ok)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0.12", formatFloat(core.ParameterControl{Step: 0.02}, 0.12))
	assert.Equal(t, "0.5", formatFloat(core.ParameterControl{Step: 0.5}, 0.5))
	assert.Equal(t, "0.125", formatFloat(core.ParameterControl{Step: 0.005}, 0.125))
}

func TestFillMaskRGBA(t *testing.T) {
	buf := make([]byte, 8)
	assert.True(t, fillMaskRGBA(buf, []float32{0, 1}, color.RGBA{R: 255, G: 196, B: 64}))
	assert.Equal(t, []byte{0, 0, 0, 0}, buf[:4])
	assert.Equal(t, byte(140), buf[7])
	assert.LessOrEqual(t, buf[4], buf[7], "premultiplied channels never exceed alpha")

	assert.False(t, fillMaskRGBA(buf, []float32{1}, color.RGBA{}))
}
