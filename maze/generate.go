package maze

import (
	"math/rand"
)

// carveDir describes a grid step and the wall bits it opens:
// curr is cleared on the cell we leave, next on the cell we enter.
type carveDir struct {
	dr, dc     int
	curr, next Side
}

// Canonical carving order: North, East, South, West. Candidate collection
// follows this order so a given seed always reproduces the same maze.
var carveDirs = [4]carveDir{
	{-1, 0, North, South},
	{0, 1, East, West},
	{1, 0, South, North},
	{0, -1, West, East},
}

// Option configures Generate via functional arguments.
type Option func(*genOptions)

type genOptions struct {
	start   Coord
	goal    Coord
	goalSet bool
}

// WithStart overrides the default (0,0) start cell.
func WithStart(c Coord) Option {
	return func(o *genOptions) { o.start = c }
}

// WithGoal overrides the default (rows-1, cols-1) goal cell.
func WithGoal(c Coord) Option {
	return func(o *genOptions) {
		o.goal = c
		o.goalSet = true
	}
}

// Generate carves a perfect maze using the iterative recursive-backtracker:
// a visited grid and an explicit cell stack seeded with start; at each step
// the stack top picks one unvisited grid-neighbor uniformly at random, the
// shared wall is cleared on both sides, and the neighbor is pushed; a cell
// with no unvisited neighbors is popped. The random source is seeded exactly
// once per call and consumed only at the neighbor choice, so identical
// arguments yield a bit-identical wall grid.
//
// Returns ErrInvalidDimensions when rows < 2 or cols < 2, and ErrBadEndpoint
// when a custom start or goal lies outside the grid.
//
// Complexity: O(rows×cols) time and memory.
func Generate(rows, cols int, seed int64, opts ...Option) (*Maze, error) {
	if rows < 2 || cols < 2 {
		return nil, ErrInvalidDimensions
	}

	o := genOptions{start: Coord{0, 0}}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.goalSet {
		o.goal = Coord{rows - 1, cols - 1}
	}

	m := &Maze{rows: rows, cols: cols, start: o.start, goal: o.goal}
	if !m.InBounds(o.start) || !m.InBounds(o.goal) {
		return nil, ErrBadEndpoint
	}

	// All walls present before carving.
	walls := make([][]Side, rows)
	visited := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		walls[r] = make([]Side, cols)
		visited[r] = make([]bool, cols)
		for c := 0; c < cols; c++ {
			walls[r][c] = AllSides
		}
	}

	rng := rand.New(rand.NewSource(seed))

	type candidate struct {
		cell Coord
		dir  carveDir
	}

	stack := make([]Coord, 0, rows*cols)
	stack = append(stack, o.start)
	visited[o.start.Row][o.start.Col] = true

	cand := make([]candidate, 0, 4)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		cand = cand[:0]
		for _, d := range carveDirs {
			n := Coord{cur.Row + d.dr, cur.Col + d.dc}
			if m.InBounds(n) && !visited[n.Row][n.Col] {
				cand = append(cand, candidate{cell: n, dir: d})
			}
		}

		if len(cand) == 0 {
			stack = stack[:len(stack)-1] // backtrack
			continue
		}

		pick := cand[rng.Intn(len(cand))]
		walls[cur.Row][cur.Col] &^= pick.dir.curr
		walls[pick.cell.Row][pick.cell.Col] &^= pick.dir.next
		visited[pick.cell.Row][pick.cell.Col] = true
		stack = append(stack, pick.cell)
	}

	m.walls = walls

	return m, nil
}
