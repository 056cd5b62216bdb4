// Package mazenv wraps a maze.Maze with two read-only views over the same
// wall data: a graph view (neighbor enumeration, unit edge cost) for search
// algorithms, and an MDP view (actions, probabilistic transitions, rewards,
// one-step Bellman backup) for dynamic programming.
package mazenv

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Env is the dual-interface environment. It is immutable after New and may
// be shared across repeated solver calls.
type Env struct {
	m *maze.Maze

	// MDP parameters. Exposed read-only by convention: solvers record them
	// into metrics at entry and never mutate them.
	StepReward float64
	GoalReward float64
	WallReward float64
	Discount   float64
	SlipProb   float64
}

// Transition is one weighted outcome of taking an action.
type Transition struct {
	Next maze.Coord
	Prob float64
}

// New wraps m with default parameters (step −0.01, goal +1.0, wall −0.05,
// γ=0.99, slip 0) adjusted by opts. Returns ErrNilMaze for a nil maze and
// ErrBadParameter when γ ∉ (0,1] or slip ∉ [0,1).
func New(m *maze.Maze, opts ...Option) (*Env, error) {
	if m == nil {
		return nil, ErrNilMaze
	}

	e := &Env{
		m:          m,
		StepReward: -0.01,
		GoalReward: 1.0,
		WallReward: -0.05,
		Discount:   0.99,
		SlipProb:   0.0,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.Discount <= 0 || e.Discount > 1 {
		return nil, fmt.Errorf("%w: discount %v not in (0,1]", ErrBadParameter, e.Discount)
	}
	if e.SlipProb < 0 || e.SlipProb >= 1 {
		return nil, fmt.Errorf("%w: slip probability %v not in [0,1)", ErrBadParameter, e.SlipProb)
	}

	return e, nil
}

// Maze returns the wrapped maze.
func (e *Env) Maze() *maze.Maze { return e.m }

// IsGoal reports whether s is the terminal goal cell.
func (e *Env) IsGoal(s maze.Coord) bool { return s == e.m.Goal() }

// ----------------------------
// Graph view (BFS / DFS / A*)
// ----------------------------

// Neighbors returns the cells reachable from s with no wall between them,
// in canonical North, East, South, West order, omitting out-of-grid cells.
// Pure, no side effects.
func (e *Env) Neighbors(s maze.Coord) []maze.Coord {
	out := make([]maze.Coord, 0, 4)

	if !e.m.HasWall(s, maze.North) && s.Row-1 >= 0 {
		out = append(out, maze.Coord{Row: s.Row - 1, Col: s.Col})
	}
	if !e.m.HasWall(s, maze.East) && s.Col+1 < e.m.Cols() {
		out = append(out, maze.Coord{Row: s.Row, Col: s.Col + 1})
	}
	if !e.m.HasWall(s, maze.South) && s.Row+1 < e.m.Rows() {
		out = append(out, maze.Coord{Row: s.Row + 1, Col: s.Col})
	}
	if !e.m.HasWall(s, maze.West) && s.Col-1 >= 0 {
		out = append(out, maze.Coord{Row: s.Row, Col: s.Col - 1})
	}

	return out
}

// Cost returns the edge cost between two adjacent cells. Constant 1.0 on the
// unweighted grid; kept as a named hook so future weighting never touches
// solver logic.
func (e *Env) Cost(_, _ maze.Coord) float64 { return 1.0 }

// ----------------------------
// MDP view (Value / Policy iteration)
// ----------------------------

// States returns every cell in row-major order. Each call yields a fresh
// slice; this ordering is an invariant of value/policy iteration sweep
// reproducibility.
func (e *Env) States() []maze.Coord {
	out := make([]maze.Coord, 0, e.m.Rows()*e.m.Cols())
	for r := 0; r < e.m.Rows(); r++ {
		for c := 0; c < e.m.Cols(); c++ {
			out = append(out, maze.Coord{Row: r, Col: c})
		}
	}

	return out
}

// Move returns the deterministic destination of taking a from s. A move
// blocked by a wall or the grid boundary bounces: s is returned unchanged.
// An action outside the enumeration panics.
func (e *Env) Move(s maze.Coord, a Action) maze.Coord {
	switch a {
	case Up:
		if e.m.HasWall(s, maze.North) || s.Row-1 < 0 {
			return s
		}

		return maze.Coord{Row: s.Row - 1, Col: s.Col}
	case Right:
		if e.m.HasWall(s, maze.East) || s.Col+1 >= e.m.Cols() {
			return s
		}

		return maze.Coord{Row: s.Row, Col: s.Col + 1}
	case Down:
		if e.m.HasWall(s, maze.South) || s.Row+1 >= e.m.Rows() {
			return s
		}

		return maze.Coord{Row: s.Row + 1, Col: s.Col}
	case Left:
		if e.m.HasWall(s, maze.West) || s.Col-1 < 0 {
			return s
		}

		return maze.Coord{Row: s.Row, Col: s.Col - 1}
	}
	panic(fmt.Sprintf("mazenv: unknown action %d", uint8(a)))
}

// Reward returns the reward for the (s, a, s2) step: 0 once s is the
// absorbing goal, GoalReward for entering the goal, WallReward for a bounce,
// StepReward otherwise.
func (e *Env) Reward(s maze.Coord, _ Action, s2 maze.Coord) float64 {
	if e.IsGoal(s) {
		return 0
	}
	if e.IsGoal(s2) {
		return e.GoalReward
	}
	if s2 == s {
		return e.WallReward
	}

	return e.StepReward
}

// Transitions returns the weighted outcomes of taking a from s; the
// probabilities always sum to 1. The goal is absorbing. With SlipProb = 0
// the single intended outcome is returned. Otherwise the intended move
// carries 1−slip and each orthogonal side action slip/2, with outcomes that
// land on the same cell merged into one entry. The intended outcome is
// always first, which the policy-following simulation relies on.
func (e *Env) Transitions(s maze.Coord, a Action) []Transition {
	if e.IsGoal(s) {
		return []Transition{{Next: s, Prob: 1.0}}
	}
	if e.SlipProb <= 0 {
		return []Transition{{Next: e.Move(s, a), Prob: 1.0}}
	}

	sides := a.sideActions()
	out := []Transition{{Next: e.Move(s, a), Prob: 1.0 - e.SlipProb}}
	for _, sa := range sides {
		next := e.Move(s, sa)
		merged := false
		for i := range out {
			if out[i].Next == next {
				out[i].Prob += e.SlipProb / 2
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, Transition{Next: next, Prob: e.SlipProb / 2})
		}
	}

	return out
}

// ExpectedReturn computes the one-step Bellman backup
// Σ p·(reward + γ·V[s2]) over Transitions(s, a). V must hold a value for
// every reachable successor; a missing entry is a caller bug and panics.
func (e *Env) ExpectedReturn(V map[maze.Coord]float64, s maze.Coord, a Action) float64 {
	total := 0.0
	for _, t := range e.Transitions(s, a) {
		v, ok := V[t.Next]
		if !ok {
			panic(fmt.Sprintf("mazenv: value table missing state %v", t.Next))
		}
		total += t.Prob * (e.Reward(s, a, t.Next) + e.Discount*v)
	}

	return total
}
