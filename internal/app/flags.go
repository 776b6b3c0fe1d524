package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"chance-encounter/internal/encounter"
	"chance-encounter/internal/render"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters for the application. Every
// field can also come from a YAML file named by -config; flags given
// explicitly on the command line win over the file.
type Config struct {
	ConfigPath string `yaml:"-"`

	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Cell   int `yaml:"cell"`
	Margin int `yaml:"margin"`
	Panel  int `yaml:"panel"`
	TPS    int `yaml:"tps"`

	ObstacleDensity float64 `yaml:"obstacle_density"`
	Obstacles       bool    `yaml:"obstacles"`
	AutoRunTPS      int     `yaml:"auto_run_tps"`

	MonteCarloTrials   int `yaml:"mc_trials"`
	MonteCarloMaxSteps int `yaml:"mc_max_steps"`
	MonteCarloWorkers  int `yaml:"mc_workers"`

	LogLevel string `yaml:"log_level"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	world := encounter.DefaultConfig()
	return &Config{
		Width:              world.Width,
		Height:             world.Height,
		Seed:               world.Seed,
		Cell:               48,
		Margin:             1,
		Panel:              220,
		TPS:                60,
		ObstacleDensity:    world.Params.ObstacleDensity,
		AutoRunTPS:         world.Params.AutoRunTPS,
		MonteCarloTrials:   world.Params.MonteCarloTrials,
		MonteCarloMaxSteps: world.Params.MonteCarloMaxSteps,
		LogLevel:           "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional YAML config file")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for round generation")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.IntVar(&c.Margin, "margin", c.Margin, "grid line width in pixels")
	fs.IntVar(&c.Panel, "panel", c.Panel, "side panel width in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "game loop ticks per second")
	fs.Float64Var(&c.ObstacleDensity, "density", c.ObstacleDensity, "obstacle density in [0,1]")
	fs.BoolVar(&c.Obstacles, "obstacles", c.Obstacles, "start with obstacles enabled")
	fs.IntVar(&c.AutoRunTPS, "auto-tps", c.AutoRunTPS, "auto-run steps per second")
	fs.IntVar(&c.MonteCarloTrials, "trials", c.MonteCarloTrials, "Monte Carlo trials")
	fs.IntVar(&c.MonteCarloMaxSteps, "max-steps", c.MonteCarloMaxSteps, "Monte Carlo step limit per trial")
	fs.IntVar(&c.MonteCarloWorkers, "workers", c.MonteCarloWorkers, "Monte Carlo workers (0 = NumCPU)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Load applies the YAML file named by ConfigPath, then re-applies the flags
// that were set explicitly on fs so they take precedence. fs must already be
// parsed.
func (c *Config) Load(fs *flag.FlagSet) error {
	if c.ConfigPath == "" {
		return nil
	}
	data, err := os.ReadFile(c.ConfigPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := c.decode(data); err != nil {
		return fmt.Errorf("parse config %s: %w", c.ConfigPath, err)
	}
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if err := fs.Set(f.Name, f.Value.String()); err != nil {
			setErr = errors.Join(setErr, err)
		}
	})
	return setErr
}

func (c *Config) decode(data []byte) error {
	path := c.ConfigPath
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	c.ConfigPath = path
	return nil
}

// Validate reports every out-of-range field.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 || c.Width*c.Height < 2 {
		errs = append(errs, fmt.Errorf("grid %dx%d must hold at least two cells", c.Width, c.Height))
	}
	if c.Cell <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %d", c.Cell))
	}
	if c.Margin < 0 {
		errs = append(errs, fmt.Errorf("margin must not be negative, got %d", c.Margin))
	}
	if c.Panel < 0 {
		errs = append(errs, fmt.Errorf("panel width must not be negative, got %d", c.Panel))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.AutoRunTPS <= 0 {
		errs = append(errs, fmt.Errorf("auto-run tps must be positive, got %d", c.AutoRunTPS))
	}
	if c.ObstacleDensity < 0 || c.ObstacleDensity > 1 {
		errs = append(errs, fmt.Errorf("obstacle density must be in [0,1], got %g", c.ObstacleDensity))
	}
	if c.MonteCarloTrials < 0 {
		errs = append(errs, fmt.Errorf("trials must not be negative, got %d", c.MonteCarloTrials))
	}
	if c.MonteCarloMaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("max steps must be positive, got %d", c.MonteCarloMaxSteps))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// WorldConfig converts the flags into the game's world configuration.
func (c *Config) WorldConfig() encounter.Config {
	return encounter.Config{
		Width:  c.Width,
		Height: c.Height,
		Seed:   c.Seed,
		Params: encounter.Params{
			ObstacleDensity:    c.ObstacleDensity,
			AutoRunTPS:         c.AutoRunTPS,
			MonteCarloTrials:   c.MonteCarloTrials,
			MonteCarloMaxSteps: c.MonteCarloMaxSteps,
			MonteCarloWorkers:  c.MonteCarloWorkers,
		},
	}
}

// Layout returns the pixel layout of the board and side panel.
func (c *Config) Layout() render.Layout {
	return render.Layout{Cell: c.Cell, Margin: c.Margin, Panel: c.Panel}
}

// NewLogger builds a text logger at the configured level.
func (c *Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}
