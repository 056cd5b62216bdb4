package solver

import (
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/mazenv"
	"github.com/katalvlaran/lvlmaze/metrics"
)

// validate rejects nil collaborators before any solver touches state.
func validate(env *mazenv.Env, rec *metrics.Run) error {
	if env == nil {
		return ErrNilEnv
	}
	if rec == nil {
		return ErrNilMetrics
	}

	return nil
}

// reconstructPath walks Parent links from goal back to start and reverses.
// Returns nil when goal was never discovered or the chain does not reach
// start.
func reconstructPath(parent map[maze.Coord]maze.Coord, start, goal maze.Coord) []maze.Coord {
	if goal != start {
		if _, ok := parent[goal]; !ok {
			return nil
		}
	}

	path := []maze.Coord{goal}
	cur := goal
	for cur != start {
		prev, ok := parent[cur]
		if !ok {
			return nil
		}
		cur = prev
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// finishSearch fills the success/failure metrics shared by BFS, DFS, and A*.
func finishSearch(rec *metrics.Run, res *Result, path []maze.Coord, visited int) *Result {
	rec.UniqueStatesVisited = visited
	if len(path) > 0 {
		res.Path = path
		rec.Solved = true
		rec.SolutionPathLength = len(path) - 1
		rec.SolutionCost = float64(rec.SolutionPathLength)
	}

	return res
}
