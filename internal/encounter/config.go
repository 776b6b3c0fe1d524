package encounter

import "strconv"

// Params holds the tunables of a round and of the Monte Carlo estimator.
type Params struct {
	ObstacleDensity float64

	AutoRunTPS int

	MonteCarloTrials   int
	MonteCarloMaxSteps int
	MonteCarloWorkers  int
}

// Config controls the world dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard 12x12 configuration.
func DefaultConfig() Config {
	return Config{
		Width:  12,
		Height: 12,
		Seed:   42,
		Params: Params{
			ObstacleDensity:    0.12,
			AutoRunTPS:         15,
			MonteCarloTrials:   1000,
			MonteCarloMaxSteps: 2000,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse or fall outside their range keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["obstacle_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.ObstacleDensity = parsed
		}
	}
	if v, ok := cfg["auto_run_tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.AutoRunTPS = parsed
		}
	}
	if v, ok := cfg["mc_trials"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MonteCarloTrials = parsed
		}
	}
	if v, ok := cfg["mc_max_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.MonteCarloMaxSteps = parsed
		}
	}
	if v, ok := cfg["mc_workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MonteCarloWorkers = parsed
		}
	}
	return c.normalized()
}

// normalized fixes up dimensions so the two start corners are distinct cells.
func (c Config) normalized() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.Width*c.Height < 2 {
		c.Width = 2
	}
	if c.Params.AutoRunTPS <= 0 {
		c.Params.AutoRunTPS = DefaultConfig().Params.AutoRunTPS
	}
	if c.Params.MonteCarloMaxSteps <= 0 {
		c.Params.MonteCarloMaxSteps = DefaultConfig().Params.MonteCarloMaxSteps
	}
	return c
}
