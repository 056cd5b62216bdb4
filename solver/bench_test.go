package solver_test

import (
	"testing"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/mazenv"
	"github.com/katalvlaran/lvlmaze/metrics"
	"github.com/katalvlaran/lvlmaze/solver"
)

func benchEnv(b *testing.B, size int) *mazenv.Env {
	b.Helper()
	m, err := maze.Generate(size, size, 42)
	if err != nil {
		b.Fatal(err)
	}
	env, err := mazenv.New(m)
	if err != nil {
		b.Fatal(err)
	}

	return env
}

// BenchmarkBFS_51 measures BFS on a 51×51 maze.
func BenchmarkBFS_51(b *testing.B) {
	env := benchEnv(b, 51)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := metrics.NewRun("bfs", 51, 51, 42)
		_, _ = solver.BFS(env, rec)
	}
}

// BenchmarkDFS_51 measures DFS on a 51×51 maze.
func BenchmarkDFS_51(b *testing.B) {
	env := benchEnv(b, 51)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := metrics.NewRun("dfs", 51, 51, 42)
		_, _ = solver.DFS(env, rec)
	}
}

// BenchmarkAStar_Manhattan_51 measures A* with the tighter heuristic.
func BenchmarkAStar_Manhattan_51(b *testing.B) {
	env := benchEnv(b, 51)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := metrics.NewRun("astar_manhattan", 51, 51, 42)
		_, _ = solver.AStar(env, rec, solver.Manhattan)
	}
}

// BenchmarkValueIteration_11 measures dynamic programming on an 11×11 maze.
func BenchmarkValueIteration_11(b *testing.B) {
	env := benchEnv(b, 11)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := metrics.NewRun("value", 11, 11, 42)
		_, _ = solver.ValueIteration(env, rec)
	}
}
