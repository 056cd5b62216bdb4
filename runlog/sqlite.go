package runlog

import (
	"database/sql"
	"fmt"

	"github.com/katalvlaran/lvlmaze/metrics"
	_ "modernc.org/sqlite"
)

// Store persists run records in a SQLite database for ad-hoc querying and
// cross-run summaries. Pure-Go driver, no cgo.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the database at path and migrates the
// schema.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("runlog: open database: %w", err)
	}

	s := &Store{db: db}
	if err = s.migrate(); err != nil {
		db.Close()

		return nil, fmt.Errorf("runlog: migrate: %w", err)
	}

	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		algorithm TEXT NOT NULL,
		maze_rows INTEGER NOT NULL,
		maze_cols INTEGER NOT NULL,
		random_seed INTEGER NOT NULL,
		solved INTEGER NOT NULL,
		execution_time_ms REAL NOT NULL,
		peak_memory_kb INTEGER NOT NULL,
		solution_path_length INTEGER NOT NULL,
		solution_cost REAL NOT NULL,
		states_expanded INTEGER NOT NULL,
		states_generated INTEGER NOT NULL,
		unique_states_visited INTEGER NOT NULL,
		maximum_frontier_size INTEGER NOT NULL,
		heuristic_type TEXT,
		heuristic_evaluations INTEGER,
		repeated_state_updates INTEGER,
		discount_factor REAL,
		convergence_threshold REAL,
		total_bellman_updates INTEGER,
		final_convergence_error REAL,
		value_iteration_steps INTEGER,
		policy_iteration_steps INTEGER,
		policy_evaluation_steps INTEGER,
		notes TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm);
	CREATE INDEX IF NOT EXISTS idx_runs_dims ON runs(maze_rows, maze_cols);`

	_, err := s.db.Exec(schema)

	return err
}

// InsertRun stores one finalized record. Columns that do not apply to the
// run's algorithm family are stored as NULL.
func (s *Store) InsertRun(r *metrics.Run) error {
	if r == nil {
		return ErrNilRun
	}

	var (
		heuristicType  any
		heuristicEvals any
		repeatedUpd    any
	)
	if r.HeuristicType != "" {
		heuristicType = r.HeuristicType
		heuristicEvals = r.HeuristicEvaluations
		repeatedUpd = r.RepeatedStateUpdates
	}

	var (
		discount, theta, finalErr     any
		bellman, viSteps, piSteps, pe any
	)
	if r.MDPRecorded() {
		discount = r.DiscountFactor
		theta = r.ConvergenceThreshold
		bellman = r.TotalBellmanUpdates
		finalErr = r.FinalConvergenceError
		viSteps = r.ValueIterationSteps
		piSteps = r.PolicyIterationSteps
		pe = r.PolicyEvaluationSteps
	}

	_, err := s.db.Exec(`
	INSERT INTO runs (
		run_id, algorithm, maze_rows, maze_cols, random_seed, solved,
		execution_time_ms, peak_memory_kb, solution_path_length, solution_cost,
		states_expanded, states_generated, unique_states_visited,
		maximum_frontier_size, heuristic_type, heuristic_evaluations,
		repeated_state_updates, discount_factor, convergence_threshold,
		total_bellman_updates, final_convergence_error, value_iteration_steps,
		policy_iteration_steps, policy_evaluation_steps, notes
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Algorithm, r.MazeRows, r.MazeCols, r.RandomSeed, r.Solved,
		r.ExecutionTimeMS, r.PeakMemoryKB, r.SolutionPathLength, r.SolutionCost,
		r.StatesExpanded, r.StatesGenerated, r.UniqueStatesVisited,
		r.MaximumFrontierSize, heuristicType, heuristicEvals,
		repeatedUpd, discount, theta,
		bellman, finalErr, viSteps,
		piSteps, pe, r.Notes,
	)
	if err != nil {
		return fmt.Errorf("runlog: insert run %s: %w", r.RunID, err)
	}

	return nil
}

// AlgorithmSummary aggregates stored runs of one algorithm.
type AlgorithmSummary struct {
	Algorithm       string
	Runs            int
	SolveRate       float64
	MeanExpanded    float64
	MeanPathLength  float64
	MeanExecutionMS float64
}

// SummaryByAlgorithm returns per-algorithm aggregates over all stored runs,
// ordered by algorithm name.
func (s *Store) SummaryByAlgorithm() ([]AlgorithmSummary, error) {
	rows, err := s.db.Query(`
	SELECT algorithm,
	       COUNT(*),
	       AVG(solved),
	       AVG(states_expanded),
	       AVG(solution_path_length),
	       AVG(execution_time_ms)
	FROM runs
	GROUP BY algorithm
	ORDER BY algorithm`)
	if err != nil {
		return nil, fmt.Errorf("runlog: summary query: %w", err)
	}
	defer rows.Close()

	var out []AlgorithmSummary
	for rows.Next() {
		var a AlgorithmSummary
		if err = rows.Scan(&a.Algorithm, &a.Runs, &a.SolveRate, &a.MeanExpanded, &a.MeanPathLength, &a.MeanExecutionMS); err != nil {
			return nil, fmt.Errorf("runlog: summary scan: %w", err)
		}
		out = append(out, a)
	}

	return out, rows.Err()
}
