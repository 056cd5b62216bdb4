// Package solver defines the shared result shape, heuristics, options, and
// sentinel errors for the five maze solvers.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Sentinel errors for solver execution.
var (
	// ErrNilEnv is returned when a nil environment is passed to a solver.
	ErrNilEnv = errors.New("solver: environment is nil")

	// ErrNilMetrics is returned when a nil metrics accumulator is passed.
	ErrNilMetrics = errors.New("solver: metrics accumulator is nil")

	// ErrUnknownHeuristic is returned when A* receives a heuristic outside
	// the supported set.
	ErrUnknownHeuristic = errors.New("solver: unknown heuristic")

	// ErrOptionViolation is returned when an invalid MDP option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Heuristic selects the admissible distance estimate used by A*.
type Heuristic uint8

const (
	// Manhattan is |Δrow| + |Δcol| — exact lower bound on the 4-connected grid.
	Manhattan Heuristic = iota
	// Euclidean is sqrt(Δrow² + Δcol²) — admissible but looser than Manhattan.
	Euclidean
)

// String returns the heuristic name as recorded in metrics.
func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	}

	return fmt.Sprintf("Heuristic(%d)", uint8(h))
}

// estimate computes the remaining-cost estimate from a to b.
func (h Heuristic) estimate(a, b maze.Coord) float64 {
	dr := math.Abs(float64(a.Row - b.Row))
	dc := math.Abs(float64(a.Col - b.Col))
	if h == Euclidean {
		return math.Sqrt(dr*dr + dc*dc)
	}

	return dr + dc
}

// Result is the uniform outcome record of every solver invocation.
//
//   - Path: start→goal cell sequence; empty when unsolved. "No path found"
//     is an expected outcome, never an error.
//   - VisitedOrder: full expansion trace for search solvers, full sweep
//     trace for MDP solvers; consumed by rendering.
//   - Parent: predecessor links of the search tree; the start cell carries
//     no entry. Empty for MDP solvers, whose paths come from policy
//     following rather than tree reconstruction.
type Result struct {
	Path         []maze.Coord
	VisitedOrder []maze.Coord
	Parent       map[maze.Coord]maze.Coord
}

// Option configures the MDP solvers via functional arguments. Invalid
// values are recorded and surfaced as ErrOptionViolation on invocation.
type Option func(*MDPOptions)

// MDPOptions holds the convergence and cap parameters of Value and Policy
// Iteration. Exceeding a cap is not an error; the solver returns its
// best-effort state at cutoff.
type MDPOptions struct {
	// Theta is the convergence threshold on the per-sweep delta.
	Theta float64

	// MaxIters caps Value Iteration sweeps.
	MaxIters int

	// MaxPolicyIters caps Policy Iteration outer improvement rounds.
	MaxPolicyIters int

	// MaxEvalIters caps evaluation sweeps per policy-evaluation phase.
	MaxEvalIters int

	// internal error recorded during option parsing
	err error
}

// DefaultMDPOptions returns the stock parameters: theta 1e-6, 200000 value
// sweeps, 10000 policy rounds, 50000 evaluation sweeps per round.
func DefaultMDPOptions() MDPOptions {
	return MDPOptions{
		Theta:          1e-6,
		MaxIters:       200_000,
		MaxPolicyIters: 10_000,
		MaxEvalIters:   50_000,
	}
}

// WithTheta sets the convergence threshold. Must be positive.
func WithTheta(theta float64) Option {
	return func(o *MDPOptions) {
		if theta <= 0 {
			o.err = fmt.Errorf("%w: theta must be positive (%g)", ErrOptionViolation, theta)

			return
		}
		o.Theta = theta
	}
}

// WithMaxIters caps Value Iteration sweeps. Must be positive.
func WithMaxIters(n int) Option {
	return func(o *MDPOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIters must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxIters = n
	}
}

// WithMaxPolicyIters caps Policy Iteration outer rounds. Must be positive.
func WithMaxPolicyIters(n int) Option {
	return func(o *MDPOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxPolicyIters must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxPolicyIters = n
	}
}

// WithMaxEvalIters caps evaluation sweeps per evaluation phase. Must be
// positive.
func WithMaxEvalIters(n int) Option {
	return func(o *MDPOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxEvalIters must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxEvalIters = n
	}
}
