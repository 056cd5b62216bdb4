// Package mazenv exposes one maze through two read-only views.
//
// What
//
//   - Graph view: Neighbors(s) in canonical N,E,S,W order plus the Cost hook
//     (constant 1.0) — everything BFS, DFS, and A* need.
//   - MDP view: the fixed four-action set {Up, Right, Down, Left}, the
//     deterministic Move with wall bounce, the Reward function, the
//     Transitions distribution with optional slip noise, and the
//     ExpectedReturn Bellman backup — everything Value/Policy Iteration need.
//
// Both views read the same wall grid; nothing is duplicated. An Env is
// immutable after New and safe to share across repeated solver calls.
//
// Determinism
//
//	States() always enumerates cells in row-major order and Neighbors()
//	always enumerates in N,E,S,W order, so solver traces and value-iteration
//	sweeps are fully reproducible.
//
// Errors
//
//   - ErrNilMaze, ErrBadParameter from New.
//   - ExpectedReturn panics on a value table missing a successor state, and
//     Move panics on an action outside the enumeration: both indicate
//     programmer error, not recoverable conditions.
package mazenv
