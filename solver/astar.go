// A* search over the environment's graph view, with lazy decrease-key.
package solver

import (
	"errors"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/mazenv"
	"github.com/katalvlaran/lvlmaze/metrics"
	"github.com/katalvlaran/lvlmaze/pqueue"
)

// AStar runs A* from the maze start toward the goal, ordering the frontier
// by f = g + h with the selected admissible heuristic. Popping a state
// already in the closed set discards it (duplicate suppression from the
// lazy-invalidation queue); an improved tentative g re-pushes the neighbor
// at its new f. The queue's ErrEmptyQueue is a normal loop-termination
// signal and never surfaces to the caller — an exhausted frontier returns
// an unsolved Result.
//
// Metrics: in addition to the shared search counters,
// HeuristicEvaluations per estimate and RepeatedStateUpdates whenever a
// tentative g improves an already-seen state.
//
// Complexity: O((V + E) log V) time, O(V + E) memory under lazy
// decrease-key.
func AStar(env *mazenv.Env, rec *metrics.Run, h Heuristic) (*Result, error) {
	if err := validate(env, rec); err != nil {
		return nil, err
	}
	if h != Manhattan && h != Euclidean {
		return nil, ErrUnknownHeuristic
	}

	m := env.Maze()
	start, goal := m.Start(), m.Goal()
	cells := m.Rows() * m.Cols()

	rec.HeuristicType = h.String()

	open := pqueue.New[maze.Coord]()
	open.Push(start, estimate(rec, h, start, goal))

	g := make(map[maze.Coord]float64, cells)
	g[start] = 0
	parent := make(map[maze.Coord]maze.Coord, cells)
	closed := make(map[maze.Coord]bool, cells)

	res := &Result{
		VisitedOrder: make([]maze.Coord, 0, cells),
		Parent:       parent,
	}

	rec.RecordFrontier(open.Len())

	for {
		s, _, err := open.Pop()
		if err != nil {
			if errors.Is(err, pqueue.ErrEmptyQueue) {
				break
			}

			return nil, err
		}

		if closed[s] {
			continue
		}
		closed[s] = true

		res.VisitedOrder = append(res.VisitedOrder, s)
		rec.StatesExpanded++

		if s == goal {
			return finishSearch(rec, res, reconstructPath(parent, start, goal), len(g)), nil
		}

		for _, nb := range env.Neighbors(s) {
			rec.StatesGenerated++
			tentative := g[s] + env.Cost(s, nb)

			known, seen := g[nb]
			if seen && tentative < known {
				rec.RepeatedStateUpdates++
			}
			if !seen || tentative < known {
				g[nb] = tentative
				parent[nb] = s
				open.Push(nb, tentative+estimate(rec, h, nb, goal))
			}
		}

		rec.RecordFrontier(open.Len())
	}

	return finishSearch(rec, res, nil, len(g)), nil
}

// estimate counts a heuristic evaluation and returns h(a, b).
func estimate(rec *metrics.Run, h Heuristic, a, b maze.Coord) float64 {
	rec.HeuristicEvaluations++

	return h.estimate(a, b)
}
