// Package maze provides the perfect-maze model and carving procedure used
// by every lvlmaze solver and renderer.
//
// What
//
//   - Coord: (row, col) value identity for cells; map-key safe.
//   - Side: 4-bit per-cell wall mask (North=1, East=2, South=4, West=8).
//   - Maze: immutable rows×cols grid of wall masks plus start and goal.
//   - Generate: iterative randomized depth-first carving ("recursive
//     backtracker") from a (rows, cols, seed) triple.
//
// Guarantees
//
//   - Perfect maze: the open-cell graph is a spanning tree — connected,
//     acyclic, exactly rows×cols−1 open edges — so every pair of cells is
//     joined by exactly one simple path.
//   - Wall symmetry: the wall bit between two adjacent cells always agrees
//     on both sides; there are no one-way walls.
//   - Determinism: Generate seeds its random source exactly once and draws
//     only at the neighbor choice, so equal arguments give bit-identical
//     wall grids.
//
// Complexity
//
//   - Time:   O(rows×cols)
//   - Memory: O(rows×cols)
//
// Usage
//
//	m, err := maze.Generate(11, 11, 42)
//	if err != nil {
//	    // ErrInvalidDimensions or ErrBadEndpoint
//	}
//	open := !m.HasWall(maze.Coord{0, 0}, maze.East)
package maze
