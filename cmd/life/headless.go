package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"conway-live/internal/sims/life"
)

// simulate feeds dt-sized updates until total seconds have elapsed and
// records the population after every update.
func simulate(sim *life.Life, total, dt float64) []float64 {
	sim.TriggerRun()
	n := int(total / dt)
	pops := make([]float64, 0, n+1)
	pops = append(pops, float64(sim.Population()))
	for i := 0; i < n; i++ {
		sim.Advance(dt)
		pops = append(pops, float64(sim.Population()))
	}
	return pops
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if seconds <= 0 || frameDt <= 0 {
		return errors.Errorf("[runHeadless] time and dt must be positive, got %v and %v", seconds, frameDt)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sim := life.New(cfg.Life())
	pops := simulate(sim, seconds, frameDt)

	fmt.Println(asciigraph.Plot(pops,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("population (seed %d)", sim.Seed())),
	))
	fmt.Printf("\ngenerations: %d  final population: %d  debt: %.4fs\n",
		sim.Generation(), sim.Population(), sim.Debt())
	return nil
}

type sweepResult struct {
	seed       int64
	initial    int
	final      int
	generation uint64
}

// sweep runs generations steps for each of count seeds starting at first.
func sweep(base life.Config, first int64, count, generations int) []sweepResult {
	results := make([]sweepResult, 0, count)
	for i := 0; i < count; i++ {
		cfg := base
		cfg.Seed = first + int64(i)
		sim := life.New(cfg)
		res := sweepResult{seed: cfg.Seed, initial: sim.Population()}
		for g := 0; g < generations; g++ {
			sim.Step()
		}
		res.final = sim.Population()
		res.generation = sim.Generation()
		results = append(results, res)
	}
	return results
}

func runSweep(cmd *cobra.Command, args []string) error {
	if seeds <= 0 || gens < 0 {
		return errors.Errorf("[runSweep] need a positive seed count and non-negative generations, got %d and %d", seeds, gens)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	base := cfg.Life()
	cells := float64(base.Width * base.Height)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tGEN\tINITIAL\tFINAL\tDENSITY")
	for _, r := range sweep(base, cfg.Seed, seeds, gens) {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.4f\n", r.seed, r.generation, r.initial, r.final, float64(r.final)/cells)
	}
	return w.Flush()
}
