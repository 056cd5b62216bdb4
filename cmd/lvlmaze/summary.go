package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/lvlmaze/config"
	"github.com/katalvlaran/lvlmaze/runlog"
)

func summary(args []string) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	dbPath := fs.String("db", cfg.DBPath, "SQLite store path")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lvlmaze summary [options]\n\nPrint per-algorithm aggregates from the SQLite store.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dbPath == "" {
		return fmt.Errorf("no database: pass --db or set LVLMAZE_DB")
	}

	store, err := runlog.OpenStore(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	summaries, err := store.SummaryByAlgorithm()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No runs stored yet.")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tRUNS\tSOLVE RATE\tMEAN EXPANDED\tMEAN PATH LEN\tMEAN MS")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\t%.1f\t%.1f\t%.3f\n",
			s.Algorithm, s.Runs, 100*s.SolveRate, s.MeanExpanded, s.MeanPathLength, s.MeanExecutionMS)
	}

	return w.Flush()
}
