// Shared machinery of the MDP solvers: option handling, greedy policy
// derivation, and forward policy simulation.
package solver

import (
	"math"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/mazenv"
	"github.com/katalvlaran/lvlmaze/metrics"
)

// buildMDPOptions applies functional options over the defaults and surfaces
// any recorded violation.
func buildMDPOptions(opts []Option) (MDPOptions, error) {
	o := DefaultMDPOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// recordMDPEntry copies the environment's reward and convergence
// parameters into the accumulator at solver entry.
func recordMDPEntry(env *mazenv.Env, rec *metrics.Run, theta float64) {
	rec.SetMDPParams(env.Discount, theta, env.StepReward, env.GoalReward, env.WallReward)
}

// zeroValueTable initializes V[s] = 0 for every state.
func zeroValueTable(env *mazenv.Env) map[maze.Coord]float64 {
	states := env.States()
	V := make(map[maze.Coord]float64, len(states))
	for _, s := range states {
		V[s] = 0
	}

	return V
}

// derivePolicy extracts the greedy policy from V. Ties break toward the
// first action in canonical order; the terminal goal keeps an arbitrary Up.
func derivePolicy(env *mazenv.Env, V map[maze.Coord]float64) map[maze.Coord]mazenv.Action {
	policy := make(map[maze.Coord]mazenv.Action, len(V))
	for _, s := range env.States() {
		if env.IsGoal(s) {
			policy[s] = mazenv.Up
			continue
		}
		best := mazenv.Up
		bestQ := math.Inf(-1)
		for _, a := range mazenv.Actions {
			if q := env.ExpectedReturn(V, s, a); q > bestQ {
				bestQ = q
				best = a
			}
		}
		policy[s] = best
	}

	return policy
}

// followPolicy simulates the policy forward from start for at most maxSteps
// moves, using each action's intended (first) transition outcome. It stops
// early on reaching the goal or on a wall-bounce fixed point: a step that
// leaves the state unchanged means the policy is stuck.
func followPolicy(env *mazenv.Env, policy map[maze.Coord]mazenv.Action, maxSteps int) []maze.Coord {
	s := env.Maze().Start()
	path := []maze.Coord{s}
	for i := 0; i < maxSteps; i++ {
		if env.IsGoal(s) {
			break
		}
		s2 := env.Transitions(s, policy[s])[0].Next
		path = append(path, s2)
		if s2 == s {
			break
		}
		s = s2
	}

	return path
}

// finishMDP fills the outcome metrics shared by both MDP solvers. The path
// counts as a solution only when its last cell is the goal; a cap or bounce
// cutoff leaves the run unsolved with an empty path.
func finishMDP(env *mazenv.Env, rec *metrics.Run, res *Result, path []maze.Coord, delta float64) *Result {
	solved := len(path) > 0 && path[len(path)-1] == env.Maze().Goal()

	rec.Solved = solved
	rec.PolicyReachesGoal = solved
	rec.FinalConvergenceError = delta
	if solved {
		rec.SolutionPathLength = len(path) - 1
		rec.SolutionCost = float64(rec.SolutionPathLength)
		res.Path = path
	}

	return res
}
