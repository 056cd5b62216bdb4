// Package metrics defines the per-run accumulator threaded through every
// solver call. It is not a passive logger: solvers feed it frontier samples,
// expansion counts, and convergence data as they execute, and the finalized
// record is the flat row consumed by runlog persistence.
package metrics

import (
	"math"
	"strconv"

	"github.com/google/uuid"
)

// Run collects everything a single solve produces besides the path itself.
// One instance per run, exclusively owned by the in-flight solver call,
// mutated in place, finalized exactly once, never reused.
type Run struct {
	// Experiment identifiers.
	RunID      string
	Algorithm  string
	MazeRows   int
	MazeCols   int
	RandomSeed int64

	// General performance.
	Solved             bool
	ExecutionTimeMS    float64
	PeakMemoryKB       uint64
	SolutionPathLength int
	SolutionCost       float64
	PathCostRatio      float64 // derived: cost per step; NaN until Finalize

	// Search counters.
	StatesExpanded           int
	StatesGenerated          int
	UniqueStatesVisited      int
	MaximumFrontierSize      int
	AverageFrontierSize      float64 // derived; NaN until Finalize
	EstimatedBranchingFactor float64 // derived; NaN until Finalize

	HeuristicType        string // empty unless A*
	HeuristicEvaluations int
	RepeatedStateUpdates int // A*: improved g for an already-seen state

	// MDP block; meaningful only after SetMDPParams.
	DiscountFactor        float64
	ConvergenceThreshold  float64
	StepReward            float64
	GoalReward            float64
	WallPenalty           float64
	TotalBellmanUpdates   int
	FinalConvergenceError float64
	PolicyReachesGoal     bool
	ValueIterationSteps   int
	PolicyIterationSteps  int
	PolicyEvaluationSteps int

	Notes string

	// Internal frontier sampling state.
	frontierTotal   int
	frontierSamples int
	mdp             bool
}

// NewRun returns a fresh accumulator for one solver invocation. Derived
// fields start as NaN so unfinalized records are detectable.
func NewRun(algorithm string, rows, cols int, seed int64) *Run {
	return &Run{
		RunID:                    uuid.NewString(),
		Algorithm:                algorithm,
		MazeRows:                 rows,
		MazeCols:                 cols,
		RandomSeed:               seed,
		PathCostRatio:            math.NaN(),
		AverageFrontierSize:      math.NaN(),
		EstimatedBranchingFactor: math.NaN(),
	}
}

// RecordFrontier samples the current frontier size, feeding both the
// maximum and the running average.
func (r *Run) RecordFrontier(size int) {
	if size > r.MaximumFrontierSize {
		r.MaximumFrontierSize = size
	}
	r.frontierTotal += size
	r.frontierSamples++
}

// SetMDPParams records the environment's reward and convergence parameters
// at solver entry and marks the MDP block as populated.
func (r *Run) SetMDPParams(discount, theta, step, goal, wall float64) {
	r.DiscountFactor = discount
	r.ConvergenceThreshold = theta
	r.StepReward = step
	r.GoalReward = goal
	r.WallPenalty = wall
	r.mdp = true
}

// MDPRecorded reports whether SetMDPParams was called for this run.
func (r *Run) MDPRecorded() bool { return r.mdp }

// Finalize computes the derived ratios. Call exactly once, after the solver
// returns.
func (r *Run) Finalize() {
	if r.frontierSamples > 0 {
		r.AverageFrontierSize = float64(r.frontierTotal) / float64(r.frontierSamples)
	}
	if r.StatesExpanded > 0 {
		r.EstimatedBranchingFactor = float64(r.StatesGenerated) / float64(r.StatesExpanded)
	}
	if r.SolutionPathLength > 0 {
		r.PathCostRatio = r.SolutionCost / float64(r.SolutionPathLength)
	}
}

// header is the fixed column order of the tabular contract. Persistence
// treats the record as an opaque flat row; changing this order is a schema
// change.
var header = []string{
	"run_id", "algorithm", "maze_rows", "maze_cols", "random_seed",
	"solved", "execution_time_ms", "peak_memory_kb",
	"solution_path_length", "solution_cost", "path_cost_ratio",
	"states_expanded", "states_generated", "unique_states_visited",
	"maximum_frontier_size", "average_frontier_size", "estimated_branching_factor",
	"heuristic_type", "heuristic_evaluations", "repeated_state_updates",
	"discount_factor", "convergence_threshold",
	"step_reward", "goal_reward", "wall_penalty",
	"total_bellman_updates", "final_convergence_error", "policy_reaches_goal",
	"value_iteration_steps", "policy_iteration_steps", "policy_evaluation_steps",
	"notes",
}

// Header returns the fixed column names of the flat record.
func Header() []string {
	out := make([]string, len(header))
	copy(out, header)

	return out
}

// Row renders the record in Header order. Columns that do not apply to the
// run (the MDP block for search runs, heuristic counters for non-A* runs,
// underived ratios) render as empty strings.
func (r *Run) Row() []string {
	row := []string{
		r.RunID,
		r.Algorithm,
		strconv.Itoa(r.MazeRows),
		strconv.Itoa(r.MazeCols),
		strconv.FormatInt(r.RandomSeed, 10),
		strconv.FormatBool(r.Solved),
		formatFloat(r.ExecutionTimeMS),
		strconv.FormatUint(r.PeakMemoryKB, 10),
		strconv.Itoa(r.SolutionPathLength),
		formatFloat(r.SolutionCost),
		formatFloat(r.PathCostRatio),
		strconv.Itoa(r.StatesExpanded),
		strconv.Itoa(r.StatesGenerated),
		strconv.Itoa(r.UniqueStatesVisited),
		strconv.Itoa(r.MaximumFrontierSize),
		formatFloat(r.AverageFrontierSize),
		formatFloat(r.EstimatedBranchingFactor),
		r.HeuristicType,
	}

	if r.HeuristicType != "" {
		row = append(row,
			strconv.Itoa(r.HeuristicEvaluations),
			strconv.Itoa(r.RepeatedStateUpdates),
		)
	} else {
		row = append(row, "", "")
	}

	if r.mdp {
		row = append(row,
			formatFloat(r.DiscountFactor),
			formatFloat(r.ConvergenceThreshold),
			formatFloat(r.StepReward),
			formatFloat(r.GoalReward),
			formatFloat(r.WallPenalty),
			strconv.Itoa(r.TotalBellmanUpdates),
			formatFloat(r.FinalConvergenceError),
			strconv.FormatBool(r.PolicyReachesGoal),
			strconv.Itoa(r.ValueIterationSteps),
			strconv.Itoa(r.PolicyIterationSteps),
			strconv.Itoa(r.PolicyEvaluationSteps),
		)
	} else {
		row = append(row, "", "", "", "", "", "", "", "", "", "", "")
	}

	row = append(row, r.Notes)

	return row
}

// formatFloat renders a float compactly, with NaN (an unset derived field)
// rendered as an empty column.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
