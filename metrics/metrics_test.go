package metrics_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmaze/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRun_Identity checks the identifying fields and run ID uniqueness.
func TestNewRun_Identity(t *testing.T) {
	a := metrics.NewRun("bfs", 11, 13, 42)
	b := metrics.NewRun("bfs", 11, 13, 42)

	assert.Equal(t, "bfs", a.Algorithm)
	assert.Equal(t, 11, a.MazeRows)
	assert.Equal(t, 13, a.MazeCols)
	assert.Equal(t, int64(42), a.RandomSeed)
	assert.NotEmpty(t, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.False(t, a.MDPRecorded())
}

// TestRecordFrontier_MaxAndAverage verifies sampling feeds both statistics.
func TestRecordFrontier_MaxAndAverage(t *testing.T) {
	r := metrics.NewRun("bfs", 5, 5, 0)
	for _, n := range []int{1, 4, 2, 3} {
		r.RecordFrontier(n)
	}
	r.Finalize()

	assert.Equal(t, 4, r.MaximumFrontierSize)
	assert.InDelta(t, 2.5, r.AverageFrontierSize, 1e-12)
}

// TestFinalize_DerivedRatios covers branching factor and cost-per-step.
func TestFinalize_DerivedRatios(t *testing.T) {
	r := metrics.NewRun("astar_manhattan", 5, 5, 0)
	r.StatesExpanded = 10
	r.StatesGenerated = 25
	r.SolutionPathLength = 8
	r.SolutionCost = 8
	r.Finalize()

	assert.InDelta(t, 2.5, r.EstimatedBranchingFactor, 1e-12)
	assert.InDelta(t, 1.0, r.PathCostRatio, 1e-12)
}

// TestFinalize_NoSamples leaves derived fields unset (NaN) when nothing was
// recorded.
func TestFinalize_NoSamples(t *testing.T) {
	r := metrics.NewRun("value", 5, 5, 0)
	r.Finalize()

	assert.True(t, math.IsNaN(r.AverageFrontierSize))
	assert.True(t, math.IsNaN(r.EstimatedBranchingFactor))
	assert.True(t, math.IsNaN(r.PathCostRatio))
}

// TestRow_MatchesHeader requires every row to line up with the fixed header.
func TestRow_MatchesHeader(t *testing.T) {
	r := metrics.NewRun("dfs", 7, 7, 3)
	r.Finalize()

	header := metrics.Header()
	row := r.Row()
	require.Len(t, row, len(header))
}

// TestRow_BlanksForInapplicableColumns checks the flat-record contract:
// MDP columns are blank on search runs and populated on MDP runs.
func TestRow_BlanksForInapplicableColumns(t *testing.T) {
	header := metrics.Header()
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("missing column %q", name)

		return -1
	}

	search := metrics.NewRun("bfs", 5, 5, 1)
	search.Finalize()
	row := search.Row()
	assert.Empty(t, row[col("discount_factor")])
	assert.Empty(t, row[col("value_iteration_steps")])
	assert.Empty(t, row[col("heuristic_type")])
	assert.Empty(t, row[col("heuristic_evaluations")])

	mdp := metrics.NewRun("value", 5, 5, 1)
	mdp.SetMDPParams(0.99, 1e-6, -0.01, 1.0, -0.05)
	mdp.ValueIterationSteps = 12
	mdp.Finalize()
	require.True(t, mdp.MDPRecorded())
	row = mdp.Row()
	assert.Equal(t, "0.99", row[col("discount_factor")])
	assert.Equal(t, "12", row[col("value_iteration_steps")])
	assert.Equal(t, "1e-06", row[col("convergence_threshold")])
}
