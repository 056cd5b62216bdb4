// Value Iteration over the environment's MDP view.
package solver

import (
	"math"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/mazenv"
	"github.com/katalvlaran/lvlmaze/metrics"
)

// ValueIteration solves the maze MDP by asynchronous (Gauss-Seidel) value
// iteration: each sweep walks the states in fixed row-major order and
// overwrites V in place, so later states in the same sweep read the already
// updated values of earlier ones. There is no double buffering; the sweep
// order is part of the algorithm's observable trajectory. The goal is
// terminal: its value stays 0 and it is skipped in every sweep.
//
// Iteration stops when the per-sweep delta drops below Theta or MaxIters is
// reached — hitting the cap is not an error, the best-effort V is used.
// The greedy policy derived from V is then simulated forward from start for
// at most rows×cols×4 steps; stopping on a wall-bounce fixed point or at
// the step cap without reaching the goal counts as unsolved.
//
// VisitedOrder records every state update in sweep order, giving renderers
// a convergence trace.
func ValueIteration(env *mazenv.Env, rec *metrics.Run, opts ...Option) (*Result, error) {
	if err := validate(env, rec); err != nil {
		return nil, err
	}
	o, err := buildMDPOptions(opts)
	if err != nil {
		return nil, err
	}

	recordMDPEntry(env, rec, o.Theta)

	V := zeroValueTable(env)
	states := env.States()

	res := &Result{
		VisitedOrder: make([]maze.Coord, 0, len(states)),
		Parent:       map[maze.Coord]maze.Coord{},
	}

	iters := 0
	delta := 0.0
	for iters < o.MaxIters {
		iters++
		delta = 0
		for _, s := range states {
			if env.IsGoal(s) {
				continue
			}
			old := V[s]
			best := math.Inf(-1)
			for _, a := range mazenv.Actions {
				if q := env.ExpectedReturn(V, s, a); q > best {
					best = q
				}
			}
			V[s] = best
			rec.TotalBellmanUpdates++
			if d := math.Abs(old - best); d > delta {
				delta = d
			}

			res.VisitedOrder = append(res.VisitedOrder, s)
		}
		if delta < o.Theta {
			break
		}
	}

	rec.ValueIterationSteps = iters

	policy := derivePolicy(env, V)
	m := env.Maze()
	path := followPolicy(env, policy, m.Rows()*m.Cols()*4)

	return finishMDP(env, rec, res, path, delta), nil
}
