//go:build ebiten

package app

import (
	"log/slog"

	"chance-encounter/internal/core"
	"chance-encounter/internal/encounter"
	"chance-encounter/internal/render"
	"chance-encounter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an encounter world to the ebiten.Game interface.
type Game struct {
	world   *encounter.World
	layout  render.Layout
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	auto    *core.FixedStep
	log     *slog.Logger

	wasAutoRunning bool
}

// New constructs a Game for the provided world.
func New(world *encounter.World, layout render.Layout, log *slog.Logger) *Game {
	size := world.Size()
	return &Game{
		world:   world,
		layout:  layout,
		painter: render.NewGridPainter(size.W, size.H, layout),
		hud:     ui.NewHUD(world, layout.Panel),
		overlay: ui.NewOverlay(world, layout),
		auto:    core.NewFixedStep(world.Config().Params.AutoRunTPS),
		log:     log,
	}
}

// Update handles input and advances the world.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.world.Close()
		return ebiten.Termination
	}
	for _, action := range pressedActions() {
		g.apply(action)
	}

	if g.world.PollMonteCarlo() {
		g.logMonteCarlo()
	}

	g.overlay.Update()
	bw, _ := g.layout.BoardSize(g.world.Size().W, g.world.Size().H)
	g.hud.Update(bw)

	running := g.world.AutoRunning()
	if running && !g.wasAutoRunning {
		g.auto.Reset()
	}
	g.wasAutoRunning = running
	if running {
		g.auto.SetTPS(g.world.Config().Params.AutoRunTPS)
		if g.auto.ShouldStep() {
			g.world.Step()
			g.logEncounter()
		}
	}
	return nil
}

func (g *Game) apply(action encounter.Action) {
	if !g.world.Apply(action) {
		return
	}
	switch action {
	case encounter.ActionToggleMode, encounter.ActionReset, encounter.ActionToggleObstacles:
		g.log.Debug("round reset",
			"mode", g.world.Mode().String(),
			"obstacles", g.world.Obstacles(),
			"walls", g.world.Board().WallCount())
	case encounter.ActionMonteCarlo:
		g.log.Info("monte carlo started", "trials", g.world.Config().Params.MonteCarloTrials)
	default:
		g.logEncounter()
	}
}

func (g *Game) logEncounter() {
	if !g.world.Encountered() {
		return
	}
	blue, red := g.world.Blue(), g.world.Red()
	kind := "meet"
	if !encounter.Met(blue, red) {
		kind = "cross"
	}
	g.log.Info("encounter",
		"kind", kind,
		"turns", g.world.Turns(),
		"blue", blue.Pos.String(),
		"red", red.Pos.String())
}

func (g *Game) logMonteCarlo() {
	if err := g.world.MonteCarloErr(); err != nil {
		g.log.Error("monte carlo failed", "err", err)
		return
	}
	stats, ok := g.world.MonteCarloStats()
	if !ok {
		return
	}
	g.log.Info("monte carlo finished",
		"trials", stats.Trials,
		"meets", stats.Meets,
		"avg_steps", stats.AvgSteps,
		"meet_rate", stats.MeetRate)
}

// Draw renders the board, overlays and side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(encounter.ColorBackground)
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), encounter.ColorBackground)
	g.overlay.Draw(screen)
	if g.world.Encountered() {
		blue := g.world.Blue()
		g.painter.Outline(screen, blue.Pos.X, blue.Pos.Y, 4, encounter.ColorMeet)
	}
	size := g.world.Size()
	bw, bh := g.layout.BoardSize(size.W, size.H)
	g.hud.Draw(screen, bw, bh)
}

// Layout returns the fixed logical screen size; ebiten scales it to fit a
// resized window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return g.layout.ScreenSize(s.W, s.H)
}
