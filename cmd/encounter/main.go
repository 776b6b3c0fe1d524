//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"chance-encounter/internal/app"
	"chance-encounter/internal/encounter"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Load(flag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	world := encounter.NewWithConfig(cfg.WorldConfig())
	if cfg.Obstacles {
		world.SetObstacles(true)
	}
	defer world.Close()

	layout := cfg.Layout()
	game := app.New(world, layout, logger)
	size := world.Size()
	w, h := layout.ScreenSize(size.W, size.H)

	ebiten.SetWindowTitle("Chance Encounter")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting",
		"grid", fmt.Sprintf("%dx%d", size.W, size.H),
		"seed", world.Seed(),
		"obstacles", world.Obstacles())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop exited", "err", err)
		os.Exit(1)
	}
}
