// Policy Iteration over the environment's MDP view.
package solver

import (
	"math"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/mazenv"
	"github.com/katalvlaran/lvlmaze/metrics"
)

// PolicyIteration solves the maze MDP by alternating policy evaluation and
// policy improvement. Evaluation applies only the current policy's action
// per state, with the same in-place Gauss-Seidel sweep semantics as
// ValueIteration, starting from a fresh zero table each round and stopping
// at Theta or MaxEvalIters. Improvement re-greedifies every non-terminal
// state against the evaluated V; the outer loop ends when a full pass
// leaves the policy unchanged, or silently at MaxPolicyIters with the last
// policy used as-is.
//
// The initial policy maps every state to Right. Path derivation, the
// forward-simulation step cap, and the unsolved conditions match
// ValueIteration exactly.
func PolicyIteration(env *mazenv.Env, rec *metrics.Run, opts ...Option) (*Result, error) {
	if err := validate(env, rec); err != nil {
		return nil, err
	}
	o, err := buildMDPOptions(opts)
	if err != nil {
		return nil, err
	}

	recordMDPEntry(env, rec, o.Theta)

	states := env.States()
	policy := make(map[maze.Coord]mazenv.Action, len(states))
	for _, s := range states {
		policy[s] = mazenv.Right
	}

	res := &Result{
		VisitedOrder: make([]maze.Coord, 0, len(states)),
		Parent:       map[maze.Coord]maze.Coord{},
	}

	outer := 0
	finalDelta := 0.0
	totalEvalSweeps := 0
	for outer < o.MaxPolicyIters {
		outer++

		V, delta, evalIters := evaluatePolicy(env, rec, policy, o.Theta, o.MaxEvalIters)
		finalDelta = delta
		totalEvalSweeps += evalIters

		// One sweep worth of states as the visible trace per round.
		res.VisitedOrder = append(res.VisitedOrder, states...)

		if improvePolicy(env, V, policy) {
			break
		}
	}

	rec.PolicyIterationSteps = outer
	rec.PolicyEvaluationSteps = totalEvalSweeps

	m := env.Maze()
	path := followPolicy(env, policy, m.Rows()*m.Cols()*4)

	return finishMDP(env, rec, res, path, finalDelta), nil
}

// evaluatePolicy iteratively evaluates the fixed policy from a zero table,
// sweeping in row-major order and updating V in place, until the sweep
// delta drops below theta or maxEvalIters sweeps have run. Returns the
// table, the last delta, and the sweep count.
func evaluatePolicy(env *mazenv.Env, rec *metrics.Run, policy map[maze.Coord]mazenv.Action, theta float64, maxEvalIters int) (map[maze.Coord]float64, float64, int) {
	V := zeroValueTable(env)
	states := env.States()

	delta := 0.0
	iters := 0
	for iters < maxEvalIters {
		iters++
		delta = 0
		for _, s := range states {
			if env.IsGoal(s) {
				continue
			}
			old := V[s]
			V[s] = env.ExpectedReturn(V, s, policy[s])
			rec.TotalBellmanUpdates++
			if d := math.Abs(old - V[s]); d > delta {
				delta = d
			}
		}
		if delta < theta {
			break
		}
	}

	return V, delta, iters
}

// improvePolicy re-greedifies every non-terminal state against V, ties
// breaking toward the first action in canonical order. Reports whether the
// policy was left unchanged.
func improvePolicy(env *mazenv.Env, V map[maze.Coord]float64, policy map[maze.Coord]mazenv.Action) bool {
	stable := true
	for _, s := range env.States() {
		if env.IsGoal(s) {
			continue
		}
		old := policy[s]
		best := old
		bestQ := math.Inf(-1)
		for _, a := range mazenv.Actions {
			if q := env.ExpectedReturn(V, s, a); q > bestQ {
				bestQ = q
				best = a
			}
		}
		policy[s] = best
		if best != old {
			stable = false
		}
	}

	return stable
}
