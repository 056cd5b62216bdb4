package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/solver"
)

// ErrNilMaze is returned when Render is given no maze to draw.
var ErrNilMaze = errors.New("render: maze is nil")

// Default styling, overridable per renderer.
const (
	DefaultCellPx   = 24
	defaultWall     = "#1f2430"
	defaultVisited  = "#dce8f7"
	defaultPath     = "#e4572e"
	defaultStart    = "#2a9d3f"
	defaultGoal     = "#b5179e"
	defaultBackdrop = "#ffffff"
)

// SVGRenderer draws a maze and, optionally, a solver result on top of it.
// Zero-value fields fall back to the package defaults.
type SVGRenderer struct {
	CellPx       int
	WallColor    string
	VisitedColor string
	PathColor    string
	StartColor   string
	GoalColor    string
}

// NewSVGRenderer returns a renderer with the default palette and cell size.
func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{
		CellPx:       DefaultCellPx,
		WallColor:    defaultWall,
		VisitedColor: defaultVisited,
		PathColor:    defaultPath,
		StartColor:   defaultStart,
		GoalColor:    defaultGoal,
	}
}

// Render produces a standalone SVG document. Layers bottom-up: backdrop,
// visited shading, solution polyline, start/goal markers, walls. res may be
// nil to draw the bare maze.
func (r *SVGRenderer) Render(m *maze.Maze, res *solver.Result) (string, error) {
	if m == nil {
		return "", ErrNilMaze
	}

	cell := r.CellPx
	if cell <= 0 {
		cell = DefaultCellPx
	}
	wall := fallback(r.WallColor, defaultWall)
	visited := fallback(r.VisitedColor, defaultVisited)
	path := fallback(r.PathColor, defaultPath)
	startC := fallback(r.StartColor, defaultStart)
	goalC := fallback(r.GoalColor, defaultGoal)

	// One cell of margin around the grid.
	width := (m.Cols() + 2) * cell
	height := (m.Rows() + 2) * cell
	// px maps a grid column/row index to its top-left pixel coordinate.
	px := func(i int) int { return (i + 1) * cell }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="%s"/>`, width, height, defaultBackdrop)

	if res != nil {
		for _, c := range res.VisitedOrder {
			fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				px(c.Col), px(c.Row), cell, cell, visited)
		}
	}

	if res != nil && len(res.Path) > 1 {
		var pts strings.Builder
		for i, c := range res.Path {
			if i > 0 {
				pts.WriteByte(' ')
			}
			fmt.Fprintf(&pts, "%d,%d", px(c.Col)+cell/2, px(c.Row)+cell/2)
		}
		fmt.Fprintf(&sb, `<polyline points="%s" fill="none" stroke="%s" stroke-width="%d" stroke-linecap="round" stroke-linejoin="round"/>`,
			pts.String(), path, cell/4)
	}

	r.marker(&sb, m.Start(), cell, px, startC)
	r.marker(&sb, m.Goal(), cell, px, goalC)

	// Walls last so they sit above every fill. East and South of each cell
	// plus the outer North and West edges covers every wall segment once.
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			c := maze.Coord{Row: row, Col: col}
			x, y := px(col), px(row)
			if row == 0 && m.HasWall(c, maze.North) {
				line(&sb, x, y, x+cell, y, wall)
			}
			if col == 0 && m.HasWall(c, maze.West) {
				line(&sb, x, y, x, y+cell, wall)
			}
			if m.HasWall(c, maze.East) {
				line(&sb, x+cell, y, x+cell, y+cell, wall)
			}
			if m.HasWall(c, maze.South) {
				line(&sb, x, y+cell, x+cell, y+cell, wall)
			}
		}
	}

	sb.WriteString(`</svg>`)

	return sb.String(), nil
}

// WriteFile renders the maze and writes the SVG document to path, creating
// parent directories.
func (r *SVGRenderer) WriteFile(path string, m *maze.Maze, res *solver.Result) error {
	svg, err := r.Render(m, res)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: create images dir: %w", err)
		}
	}
	if err = os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}

	return nil
}

func (r *SVGRenderer) marker(sb *strings.Builder, c maze.Coord, cell int, px func(int) int, color string) {
	fmt.Fprintf(sb, `<circle cx="%d" cy="%d" r="%d" fill="%s"/>`,
		px(c.Col)+cell/2, px(c.Row)+cell/2, cell/3, color)
}

func line(sb *strings.Builder, x1, y1, x2, y2 int, color string) {
	fmt.Fprintf(sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2" stroke-linecap="square"/>`,
		x1, y1, x2, y2, color)
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
