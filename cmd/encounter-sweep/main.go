package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"
)

func main() {
	sizes := flag.String("sizes", "6,8,12,16", "comma-separated square grid sizes")
	densities := flag.String("densities", "0,0.06,0.12,0.2", "comma-separated obstacle densities")
	trials := flag.Int("trials", 1000, "trials per scenario")
	maxSteps := flag.Int("max-steps", 2000, "step limit per trial")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 42, "base seed")
	format := flag.String("format", "table", "output format: table or yaml")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "log level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	p, err := newPlan(*sizes, *densities)
	if err != nil {
		logger.Error("invalid sweep", "err", err)
		os.Exit(2)
	}
	p.trials = *trials
	p.maxSteps = *maxSteps
	p.workers = *workers
	p.seed = *seed

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("sweeping", "scenarios", len(p.scenarios()), "workers", *workers, "trials", *trials)
	start := time.Now()
	rep, err := p.run(ctx, func(r scenarioResult) {
		logger.Debug("scenario done", "size", r.Size, "density", r.Density, "meet_rate", r.MeetRate)
	})
	if err != nil {
		logger.Error("sweep aborted", "err", err)
		os.Exit(1)
	}
	logger.Info("sweep finished", "elapsed", time.Since(start).Round(time.Millisecond))

	switch *format {
	case "yaml":
		err = writeYAML(os.Stdout, rep)
	default:
		err = writeTable(os.Stdout, rep)
	}
	if err != nil {
		logger.Error("write report", "err", err)
		os.Exit(1)
	}
}
