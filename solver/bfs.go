// Breadth-first search over the environment's graph view.
package solver

import (
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/mazenv"
	"github.com/katalvlaran/lvlmaze/metrics"
)

// BFS runs breadth-first search from the maze start toward the goal, using
// a FIFO frontier and canonical neighbor order. The first expansion that
// reaches the goal yields a shortest path in edge count, and the search
// stops there. An exhausted frontier returns an unsolved Result, not an
// error.
//
// Metrics: StatesExpanded per dequeue, StatesGenerated per neighbor
// examined, frontier sampled before the loop and after each expansion's
// child generation, UniqueStatesVisited at termination.
//
// Complexity: O(V + E) time, O(V) memory over the rows×cols cell graph.
func BFS(env *mazenv.Env, rec *metrics.Run) (*Result, error) {
	if err := validate(env, rec); err != nil {
		return nil, err
	}

	m := env.Maze()
	start, goal := m.Start(), m.Goal()
	cells := m.Rows() * m.Cols()

	queue := make([]maze.Coord, 0, cells)
	queue = append(queue, start)
	visited := make(map[maze.Coord]bool, cells)
	visited[start] = true
	parent := make(map[maze.Coord]maze.Coord, cells)

	res := &Result{
		VisitedOrder: make([]maze.Coord, 0, cells),
		Parent:       parent,
	}

	rec.RecordFrontier(len(queue))

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		res.VisitedOrder = append(res.VisitedOrder, s)
		rec.StatesExpanded++

		if s == goal {
			return finishSearch(rec, res, reconstructPath(parent, start, goal), len(visited)), nil
		}

		for _, nb := range env.Neighbors(s) {
			rec.StatesGenerated++
			if visited[nb] {
				continue
			}
			visited[nb] = true
			parent[nb] = s
			queue = append(queue, nb)
		}

		rec.RecordFrontier(len(queue))
	}

	return finishSearch(rec, res, nil, len(visited)), nil
}
