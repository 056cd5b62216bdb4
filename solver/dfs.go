// Depth-first search over the environment's graph view.
package solver

import (
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/mazenv"
	"github.com/katalvlaran/lvlmaze/metrics"
)

// DFS runs depth-first search from the maze start toward the goal, using a
// LIFO frontier. Neighbors are pushed in reverse canonical order so that
// popping still explores them North, East, South, West. DFS carries no
// path-length guarantee. An exhausted frontier returns an unsolved Result,
// not an error.
//
// Metrics obligations match BFS exactly.
//
// Complexity: O(V + E) time, O(V) memory.
func DFS(env *mazenv.Env, rec *metrics.Run) (*Result, error) {
	if err := validate(env, rec); err != nil {
		return nil, err
	}

	m := env.Maze()
	start, goal := m.Start(), m.Goal()
	cells := m.Rows() * m.Cols()

	stack := make([]maze.Coord, 0, cells)
	stack = append(stack, start)
	visited := make(map[maze.Coord]bool, cells)
	visited[start] = true
	parent := make(map[maze.Coord]maze.Coord, cells)

	res := &Result{
		VisitedOrder: make([]maze.Coord, 0, cells),
		Parent:       parent,
	}

	rec.RecordFrontier(len(stack))

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		res.VisitedOrder = append(res.VisitedOrder, s)
		rec.StatesExpanded++

		if s == goal {
			return finishSearch(rec, res, reconstructPath(parent, start, goal), len(visited)), nil
		}

		nbs := env.Neighbors(s)
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
			rec.StatesGenerated++
			if visited[nb] {
				continue
			}
			visited[nb] = true
			parent[nb] = s
			stack = append(stack, nb)
		}

		rec.RecordFrontier(len(stack))
	}

	return finishSearch(rec, res, nil, len(visited)), nil
}
