package solver_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/mazenv"
	"github.com/katalvlaran/lvlmaze/metrics"
	"github.com/katalvlaran/lvlmaze/solver"
)

// ExampleBFS solves a seeded 5×5 maze. A perfect maze is always connected,
// so the run is guaranteed to succeed and the path endpoints are fixed by
// construction.
func ExampleBFS() {
	m, _ := maze.Generate(5, 5, 42)
	env, _ := mazenv.New(m)
	rec := metrics.NewRun("bfs", 5, 5, 42)

	res, _ := solver.BFS(env, rec)

	fmt.Println(rec.Solved, res.Path[0], res.Path[len(res.Path)-1])
	// Output:
	// true (0,0) (4,4)
}

// ExampleAStar shows that both admissible heuristics find paths of equal
// length — the unique tree path of a perfect maze.
func ExampleAStar() {
	m, _ := maze.Generate(9, 9, 7)
	env, _ := mazenv.New(m)

	recM := metrics.NewRun("astar_manhattan", 9, 9, 7)
	resM, _ := solver.AStar(env, recM, solver.Manhattan)

	recE := metrics.NewRun("astar_euclidean", 9, 9, 7)
	resE, _ := solver.AStar(env, recE, solver.Euclidean)

	fmt.Println(len(resM.Path) == len(resE.Path), recM.Solved && recE.Solved)
	// Output:
	// true true
}

// ExampleValueIteration derives a policy path on a small maze.
func ExampleValueIteration() {
	m, _ := maze.Generate(4, 4, 1)
	env, _ := mazenv.New(m, mazenv.WithDiscount(0.9))
	rec := metrics.NewRun("value", 4, 4, 1)

	res, _ := solver.ValueIteration(env, rec, solver.WithTheta(1e-6))

	fmt.Println(rec.Solved, res.Path[0], res.Path[len(res.Path)-1])
	// Output:
	// true (0,0) (3,3)
}
