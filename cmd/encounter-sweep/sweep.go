package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"chance-encounter/internal/encounter"

	"gopkg.in/yaml.v3"
)

type plan struct {
	sizes     []int
	densities []float64
	trials    int
	maxSteps  int
	workers   int
	seed      int64
}

type scenario struct {
	size    int
	density float64
}

type scenarioResult struct {
	Size     int     `yaml:"size"`
	Density  float64 `yaml:"density"`
	Trials   int     `yaml:"trials"`
	Meets    int     `yaml:"meets"`
	AvgSteps float64 `yaml:"avg_steps"`
	MeetRate float64 `yaml:"meet_rate"`
}

type report struct {
	Trials   int              `yaml:"trials"`
	MaxSteps int              `yaml:"max_steps"`
	Seed     int64            `yaml:"seed"`
	Results  []scenarioResult `yaml:"results"`
}

func newPlan(sizes, densities string) (*plan, error) {
	p := &plan{}
	for _, field := range splitList(sizes) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", field, err)
		}
		if n < 2 {
			return nil, fmt.Errorf("size %d: grid must be at least 2x2", n)
		}
		p.sizes = append(p.sizes, n)
	}
	for _, field := range splitList(densities) {
		d, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("density %q: %w", field, err)
		}
		if d < 0 || d > 1 {
			return nil, fmt.Errorf("density %g: must be in [0,1]", d)
		}
		p.densities = append(p.densities, d)
	}
	if len(p.sizes) == 0 || len(p.densities) == 0 {
		return nil, fmt.Errorf("need at least one size and one density")
	}
	return p, nil
}

func splitList(s string) []string {
	var out []string
	for _, field := range strings.Split(s, ",") {
		if field = strings.TrimSpace(field); field != "" {
			out = append(out, field)
		}
	}
	return out
}

func (p *plan) scenarios() []scenario {
	out := make([]scenario, 0, len(p.sizes)*len(p.densities))
	for _, size := range p.sizes {
		for _, density := range p.densities {
			out = append(out, scenario{size: size, density: density})
		}
	}
	return out
}

// run evaluates every scenario in turn; each scenario fans its trials out
// across the worker pool. Scenario i uses seed+i.
func (p *plan) run(ctx context.Context, progress func(scenarioResult)) (report, error) {
	rep := report{Trials: p.trials, MaxSteps: p.maxSteps, Seed: p.seed}
	for i, sc := range p.scenarios() {
		stats, err := encounter.RunMonteCarlo(ctx, encounter.MonteCarloConfig{
			Width:           sc.size,
			Height:          sc.size,
			Trials:          p.trials,
			MaxSteps:        p.maxSteps,
			ObstacleDensity: sc.density,
			Seed:            p.seed + int64(i),
			Workers:         p.workers,
		})
		if err != nil {
			return report{}, fmt.Errorf("scenario %dx%d density %g: %w", sc.size, sc.size, sc.density, err)
		}
		res := scenarioResult{
			Size:     sc.size,
			Density:  sc.density,
			Trials:   stats.Trials,
			Meets:    stats.Meets,
			AvgSteps: stats.AvgSteps,
			MeetRate: stats.MeetRate,
		}
		if progress != nil {
			progress(res)
		}
		rep.Results = append(rep.Results, res)
	}
	sort.SliceStable(rep.Results, func(i, j int) bool {
		if rep.Results[i].Size != rep.Results[j].Size {
			return rep.Results[i].Size < rep.Results[j].Size
		}
		return rep.Results[i].Density < rep.Results[j].Density
	})
	return rep, nil
}

func writeTable(w io.Writer, rep report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "size\tdensity\tmeets\tavg steps\tmeet rate\t\n")
	for _, r := range rep.Results {
		avg := "inf"
		if !math.IsInf(r.AvgSteps, 1) {
			avg = strconv.FormatFloat(r.AvgSteps, 'f', 1, 64)
		}
		fmt.Fprintf(tw, "%dx%d\t%.2f\t%d/%d\t%s\t%.1f%%\t\n",
			r.Size, r.Size, r.Density, r.Meets, r.Trials, avg, r.MeetRate*100)
	}
	return tw.Flush()
}

func writeYAML(w io.Writer, rep report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
