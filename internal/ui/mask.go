package ui

import (
	"image/color"
	"math"
)

// fillMaskRGBA converts per-cell intensities in [0, 1] into premultiplied
// tinted pixels. It reports false when mask and buf sizes disagree.
func fillMaskRGBA(buf []byte, mask []float32, tint color.RGBA) bool {
	if len(buf) != 4*len(mask) {
		return false
	}
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)

	for i, m := range mask {
		base := i * 4
		intensity := clamp01(float64(m))
		if intensity == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}

		alpha := math.Round(maxAlpha * math.Pow(intensity, intensityBias))
		glow := (glowBase + glowRange*math.Sqrt(intensity)) * alpha / 255

		buf[base+0] = scaleColorComponent(tint.R, glow)
		buf[base+1] = scaleColorComponent(tint.G, glow)
		buf[base+2] = scaleColorComponent(tint.B, glow)
		buf[base+3] = uint8(alpha)
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
