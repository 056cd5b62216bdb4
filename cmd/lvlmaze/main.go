package main

import (
	"fmt"
	"os"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "solve":
		if err := solve(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sweep":
		if err := sweep(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "summary":
		if err := summary(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("lvlmaze version " + version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lvlmaze - maze generation and solving workbench

Usage:
  lvlmaze <command> [options]

Commands:
  solve      Generate one maze, solve it, log and optionally render the run
  sweep      Run a batch of solves across sizes, seeds, and algorithms
  summary    Print per-algorithm aggregates from the SQLite store
  help       Show this help message
  version    Show version information

Examples:
  # Solve a 21x21 maze with A* and render the result
  lvlmaze solve --rows 21 --cols 21 --seed 42 --algo astar_manhattan --svg out.svg

  # Value iteration with a custom discount
  lvlmaze solve --rows 9 --cols 9 --algo value --gamma 0.9

  # Sweep three sizes over five seeds with every solver
  lvlmaze sweep --sizes 9,15,21 --seeds 1,2,3,4,5 --parallel 4

  # Aggregate what the sweeps stored
  lvlmaze summary --db outputs/runs.db`)
}
