// Package lvlmaze generates perfect mazes and solves them two ways:
// classical graph search (BFS, DFS, A*) and dynamic programming over a
// stochastic grid-world MDP (Value Iteration, Policy Iteration) — with a
// shared metrics contract, tabular persistence, and SVG visualization.
//
// 🚀 What is lvlmaze?
//
//	A small, deterministic maze laboratory:
//		• maze/    — perfect-maze carving (recursive backtracker) on 4-bit wall masks
//		• mazenv/  — one maze, two views: graph neighbors for search,
//		             transitions + rewards for dynamic programming
//		• pqueue/  — generic min-priority queue with lazy decrease-key
//		• solver/  — BFS, DFS, A* (Manhattan/Euclidean), Value Iteration,
//		             Policy Iteration, all feeding one metrics accumulator
//		• metrics/ — per-run counters, frontier statistics, convergence data
//		• runlog/  — CSV append log + SQLite run store
//		• render/  — static SVG of walls, exploration order, and solution path
//		• runner/  — single-run entry contract and parallel batch sweeps
//		• config/  — .env-seeded defaults for the lvlmaze CLI
//
// ✨ Why choose lvlmaze?
//
//   - Reproducible – identical (rows, cols, seed) always yields an identical
//     maze and identical solver traces
//   - Observable – every solver reports expansions, frontier sizes, and
//     convergence errors through one flat record
//   - Pure Go SQLite – no cgo anywhere in the pipeline
//
// Start with maze.Generate, wrap with mazenv.New, then pick a solver — or use
// runner.Run for the full generate→solve→measure pipeline.
package lvlmaze
