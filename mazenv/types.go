// Package mazenv defines the environment types and tunable options for the
// dual-view maze environment.
package mazenv

import (
	"errors"
	"fmt"
)

// Sentinel errors for environment construction.
var (
	// ErrNilMaze is returned when a nil *maze.Maze is passed to New.
	ErrNilMaze = errors.New("mazenv: maze is nil")

	// ErrBadParameter is returned when a reward/discount/slip parameter is
	// outside its valid range.
	ErrBadParameter = errors.New("mazenv: parameter out of range")
)

// Action is one of the four MDP actions, in fixed order.
type Action uint8

// The closed action set. Order matters: argmax tie-breaking and slip
// side-action mapping both rely on it.
const (
	Up Action = iota
	Right
	Down
	Left
)

// Actions lists the full action set in canonical order.
var Actions = [4]Action{Up, Right, Down, Left}

// String returns the single-letter action name (U, R, D, L).
func (a Action) String() string {
	switch a {
	case Up:
		return "U"
	case Right:
		return "R"
	case Down:
		return "D"
	case Left:
		return "L"
	}

	return fmt.Sprintf("Action(%d)", uint8(a))
}

// sideActions returns the two actions orthogonal to a, in fixed order.
// Reaching the default branch means an action outside the enumeration was
// forged; that is a programmer error, not a recoverable condition.
func (a Action) sideActions() [2]Action {
	switch a {
	case Up, Down:
		return [2]Action{Left, Right}
	case Right, Left:
		return [2]Action{Up, Down}
	}
	panic(fmt.Sprintf("mazenv: unknown action %d", uint8(a)))
}

// Option configures New via functional arguments.
type Option func(*Env)

// WithStepReward sets the per-step reward (typically small and negative).
func WithStepReward(r float64) Option {
	return func(e *Env) { e.StepReward = r }
}

// WithGoalReward sets the reward for entering the goal cell.
func WithGoalReward(r float64) Option {
	return func(e *Env) { e.GoalReward = r }
}

// WithWallReward sets the reward for bouncing off a wall.
func WithWallReward(r float64) Option {
	return func(e *Env) { e.WallReward = r }
}

// WithDiscount sets the MDP discount factor γ ∈ (0, 1].
func WithDiscount(g float64) Option {
	return func(e *Env) { e.Discount = g }
}

// WithSlip sets the probability that an action slips to an orthogonal
// direction. Must lie in [0, 1); 0 keeps transitions deterministic.
func WithSlip(p float64) Option {
	return func(e *Env) { e.SlipProb = p }
}
