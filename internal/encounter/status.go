package encounter

import (
	"fmt"
	"math"

	"chance-encounter/internal/core"
)

var controlsHelp = []string{
	"M - toggle mode",
	"R - reset round",
	"O - toggle obstacles",
	"P - Monte Carlo stats",
	"Arrows/WASD - move",
	"Space - single step",
	"Enter - auto-run",
	"H - visit heat-map",
	"Esc/Q - quit",
}

// Status renders the side panel text for the current round.
func (w *World) Status() []core.StatusLine {
	lines := []core.StatusLine{
		{Text: "Chance Encounter", Emphasis: true},
		{},
		{Text: "Mode: " + w.mode.String()},
		{Text: fmt.Sprintf("Turns: %d", w.turns)},
	}
	if w.met {
		lines = append(lines, core.StatusLine{Text: "Encounter!", Emphasis: true, Color: ColorMeet})
	}
	if w.autoRun && w.mode == RandomVsRandom {
		lines = append(lines, core.StatusLine{Text: "Auto-Run: ON"})
	}
	lines = append(lines, core.StatusLine{Text: "Obstacles: " + onOff(w.obstacles)}, core.StatusLine{})

	lines = append(lines, core.StatusLine{Text: "Controls:", Emphasis: true})
	for _, help := range controlsHelp {
		lines = append(lines, core.StatusLine{Text: help})
	}

	switch {
	case w.pending != nil:
		lines = append(lines, core.StatusLine{}, core.StatusLine{Text: "MC: running...", Emphasis: true})
	case w.stats != nil:
		lines = append(lines, core.StatusLine{})
		lines = append(lines, monteCarloLines(*w.stats)...)
	case w.MonteCarloErr() != nil:
		lines = append(lines, core.StatusLine{}, core.StatusLine{Text: "MC failed", Emphasis: true, Color: ColorRed})
	}
	return lines
}

func monteCarloLines(s Stats) []core.StatusLine {
	return []core.StatusLine{
		{Text: fmt.Sprintf("MC (%d trials):", s.Trials), Emphasis: true},
		{Text: "Avg steps to meet: " + formatAvg(s.AvgSteps)},
		{Text: fmt.Sprintf("Meet rate <=%d: %.1f%%", s.MaxSteps, s.MeetRate*100)},
	}
}

func formatAvg(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.1f", v)
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
