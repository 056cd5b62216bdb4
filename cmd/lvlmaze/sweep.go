package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/runlog"
	"github.com/katalvlaran/lvlmaze/runner"
)

func sweep(args []string) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	sizes := fs.String("sizes", "9,15,21", "Comma-separated square maze sizes")
	seeds := fs.String("seeds", "1,2,3,4,5", "Comma-separated generation seeds")
	algos := fs.String("algos", "", "Comma-separated algorithms (default: all)")
	parallel := fs.Int("parallel", 4, "Number of concurrent runs")
	gamma := fs.Float64("gamma", cfg.Discount, "MDP discount factor")
	theta := fs.Float64("theta", cfg.Theta, "MDP convergence threshold")
	slip := fs.Float64("slip", cfg.SlipProb, "Lateral slip probability")
	csvPath := fs.String("csv", cfg.ResultsCSV, "Results CSV path (empty disables)")
	dbPath := fs.String("db", cfg.DBPath, "SQLite store path (empty disables)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lvlmaze sweep [options]\n\nRun the cross product of sizes, seeds, and algorithms.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	plan := runner.SweepPlan{Parallel: *parallel}

	for _, s := range strings.Split(*sizes, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("bad size %q: %w", s, err)
		}
		plan.Sizes = append(plan.Sizes, n)
	}
	for _, s := range strings.Split(*seeds, ",") {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("bad seed %q: %w", s, err)
		}
		plan.Seeds = append(plan.Seeds, n)
	}
	if *algos == "" {
		plan.Algorithms = runner.Algorithms()
	} else {
		for _, s := range strings.Split(*algos, ",") {
			a, err := runner.ParseAlgorithm(strings.TrimSpace(s))
			if err != nil {
				return err
			}
			plan.Algorithms = append(plan.Algorithms, a)
		}
	}

	base := runner.Spec{
		Discount:   *gamma,
		Theta:      *theta,
		SlipProb:   *slip,
		StepReward: cfg.StepReward,
		GoalReward: cfg.GoalReward,
		WallReward: cfg.WallReward,
	}

	total := len(plan.Sizes) * len(plan.Seeds) * len(plan.Algorithms)
	fmt.Printf("Running %d solves (%d sizes x %d seeds x %d algorithms, parallel=%d)\n",
		total, len(plan.Sizes), len(plan.Seeds), len(plan.Algorithms), *parallel)

	recs, err := runner.RunSweep(plan, base)
	if err != nil {
		return err
	}

	solved := 0
	for _, rec := range recs {
		if rec.Solved {
			solved++
		}
	}
	fmt.Printf("Completed %d runs, %d solved\n", len(recs), solved)

	if *csvPath != "" {
		logger, lerr := runlog.NewCSVLogger(*csvPath)
		if lerr != nil {
			return lerr
		}
		if lerr = logger.Append(recs...); lerr != nil {
			return lerr
		}
		fmt.Printf("Saved metrics -> %s\n", *csvPath)
	}

	if *dbPath != "" {
		store, serr := runlog.OpenStore(*dbPath)
		if serr != nil {
			return serr
		}
		defer store.Close()
		for _, rec := range recs {
			if serr = store.InsertRun(rec); serr != nil {
				return serr
			}
		}
		fmt.Printf("Stored runs -> %s\n", *dbPath)
	}

	return nil
}
