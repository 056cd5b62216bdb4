package runlog_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/metrics"
	"github.com/katalvlaran/lvlmaze/runlog"
)

func sampleRun(t *testing.T, algo string, solved bool) *metrics.Run {
	t.Helper()
	rec := metrics.NewRun(algo, 5, 5, 42)
	rec.Solved = solved
	rec.ExecutionTimeMS = 1.5
	rec.SolutionPathLength = 9
	rec.SolutionCost = 8
	rec.StatesExpanded = 20
	rec.StatesGenerated = 24
	rec.Finalize()

	return rec
}

func TestCSVLogger_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "results.csv")
	l, err := runlog.NewCSVLogger(path)
	require.NoError(t, err)
	assert.Equal(t, path, l.Path())

	require.NoError(t, l.Append(sampleRun(t, "bfs", true)))
	require.NoError(t, l.Append(sampleRun(t, "dfs", true), sampleRun(t, "astar_manhattan", true)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "one header plus three data rows")
	assert.Equal(t, metrics.Header(), rows[0])
	for _, row := range rows[1:] {
		assert.Len(t, row, len(metrics.Header()))
	}
	assert.Equal(t, "bfs", rows[1][1])
	assert.Equal(t, "dfs", rows[2][1])
}

func TestCSVLogger_NilRunAndEmptyAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	l, err := runlog.NewCSVLogger(path)
	require.NoError(t, err)

	require.NoError(t, l.Append(), "empty append is a no-op")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no-op append must not create the file")

	assert.ErrorIs(t, l.Append(nil), runlog.ErrNilRun)
}

func TestStore_InsertAndSummary(t *testing.T) {
	s, err := runlog.OpenStore(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.InsertRun(sampleRun(t, "bfs", true)))
	require.NoError(t, s.InsertRun(sampleRun(t, "bfs", false)))

	mdp := sampleRun(t, "value", true)
	mdp.SetMDPParams(0.99, 1e-6, -0.01, 1.0, -0.05)
	mdp.TotalBellmanUpdates = 1200
	require.NoError(t, s.InsertRun(mdp))

	summaries, err := s.SummaryByAlgorithm()
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "bfs", summaries[0].Algorithm)
	assert.Equal(t, 2, summaries[0].Runs)
	assert.InDelta(t, 0.5, summaries[0].SolveRate, 1e-9)
	assert.InDelta(t, 20, summaries[0].MeanExpanded, 1e-9)

	assert.Equal(t, "value", summaries[1].Algorithm)
	assert.Equal(t, 1, summaries[1].Runs)
	assert.InDelta(t, 1.0, summaries[1].SolveRate, 1e-9)
}

func TestStore_NilRun(t *testing.T) {
	s, err := runlog.OpenStore(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()

	assert.ErrorIs(t, s.InsertRun(nil), runlog.ErrNilRun)
}

func TestStore_DuplicateRunID(t *testing.T) {
	s, err := runlog.OpenStore(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer s.Close()

	rec := sampleRun(t, "bfs", true)
	require.NoError(t, s.InsertRun(rec))
	assert.Error(t, s.InsertRun(rec), "run_id is a primary key")
}
