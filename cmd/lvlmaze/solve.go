package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/metrics"
	"github.com/katalvlaran/lvlmaze/render"
	"github.com/katalvlaran/lvlmaze/runlog"
	"github.com/katalvlaran/lvlmaze/runner"
)

func solve(args []string) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	rows := fs.Int("rows", 15, "Maze rows")
	cols := fs.Int("cols", 15, "Maze columns")
	seed := fs.Int64("seed", 42, "Generation seed")
	algo := fs.String("algo", "bfs", "Algorithm: bfs|dfs|astar_manhattan|astar_euclidean|value|policy")
	gamma := fs.Float64("gamma", cfg.Discount, "MDP discount factor")
	theta := fs.Float64("theta", cfg.Theta, "MDP convergence threshold")
	slip := fs.Float64("slip", cfg.SlipProb, "Lateral slip probability")
	csvPath := fs.String("csv", cfg.ResultsCSV, "Results CSV path (empty disables)")
	dbPath := fs.String("db", cfg.DBPath, "SQLite store path (empty disables)")
	svgPath := fs.String("svg", "", "Write the solved maze as SVG (empty disables)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lvlmaze solve [options]\n\nGenerate one maze, solve it, and log the run.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	algorithm, err := runner.ParseAlgorithm(*algo)
	if err != nil {
		return err
	}

	spec := runner.Spec{
		Rows: *rows, Cols: *cols, Seed: *seed,
		Algorithm:  algorithm,
		Discount:   *gamma,
		Theta:      *theta,
		SlipProb:   *slip,
		StepReward: cfg.StepReward,
		GoalReward: cfg.GoalReward,
		WallReward: cfg.WallReward,
	}

	res, rec, err := runner.Run(spec)
	if err != nil {
		return err
	}

	printRunSummary(rec)

	if *csvPath != "" {
		logger, lerr := runlog.NewCSVLogger(*csvPath)
		if lerr != nil {
			return lerr
		}
		if lerr = logger.Append(rec); lerr != nil {
			return lerr
		}
		fmt.Printf("\nSaved metrics -> %s\n", *csvPath)
	}

	if *dbPath != "" {
		store, serr := runlog.OpenStore(*dbPath)
		if serr != nil {
			return serr
		}
		defer store.Close()
		if serr = store.InsertRun(rec); serr != nil {
			return serr
		}
		fmt.Printf("Stored run -> %s\n", *dbPath)
	}

	if *svgPath != "" {
		m, gerr := maze.Generate(spec.Rows, spec.Cols, spec.Seed)
		if gerr != nil {
			return gerr
		}
		r := render.NewSVGRenderer()
		r.CellPx = cfg.CellPx
		if werr := r.WriteFile(*svgPath, m, res); werr != nil {
			return werr
		}
		fmt.Printf("Saved image -> %s\n", *svgPath)
	}

	return nil
}

func printRunSummary(rec *metrics.Run) {
	fmt.Println("\n=== RUN SUMMARY ===")
	fmt.Printf("Algo: %s\n", rec.Algorithm)
	fmt.Printf("Maze: %dx%d (seed=%d)\n", rec.MazeRows, rec.MazeCols, rec.RandomSeed)
	fmt.Printf("Solved: %t\n", rec.Solved)
	fmt.Printf("Runtime: %.3f ms\n", rec.ExecutionTimeMS)

	if rec.HeuristicType != "" {
		fmt.Printf("Heuristic: %s\n", rec.HeuristicType)
	}

	if rec.MDPRecorded() {
		fmt.Printf("MDP gamma:       %g\n", rec.DiscountFactor)
		fmt.Printf("MDP theta:       %g\n", rec.ConvergenceThreshold)
		fmt.Printf("Step reward:     %g\n", rec.StepReward)
		fmt.Printf("Goal reward:     %g\n", rec.GoalReward)
		fmt.Printf("Wall penalty:    %g\n", rec.WallPenalty)
		iters := rec.ValueIterationSteps
		if iters == 0 {
			iters = rec.PolicyIterationSteps
		}
		fmt.Printf("Iterations:      %d\n", iters)
		fmt.Printf("Final delta:     %g\n", rec.FinalConvergenceError)
		fmt.Printf("Path length:     %d\n", rec.SolutionPathLength)
	} else {
		fmt.Printf("States expanded: %d\n", rec.StatesExpanded)
		fmt.Printf("Unique visited:  %d\n", rec.UniqueStatesVisited)
		fmt.Printf("Max frontier:    %d\n", rec.MaximumFrontierSize)
		fmt.Printf("Path length:     %d\n", rec.SolutionPathLength)
		fmt.Printf("Solution cost:   %g\n", rec.SolutionCost)
	}
	fmt.Printf("Peak memory:     %d KB\n", rec.PeakMemoryKB)
}
