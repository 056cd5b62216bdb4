package render_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/mazenv"
	"github.com/katalvlaran/lvlmaze/metrics"
	"github.com/katalvlaran/lvlmaze/render"
	"github.com/katalvlaran/lvlmaze/solver"
)

func solvedMaze(t *testing.T) (*maze.Maze, *solver.Result) {
	t.Helper()
	m, err := maze.Generate(6, 6, 42)
	require.NoError(t, err)
	env, err := mazenv.New(m)
	require.NoError(t, err)
	res, err := solver.BFS(env, metrics.NewRun("bfs", 6, 6, 42))
	require.NoError(t, err)

	return m, res
}

func TestRender_NilMaze(t *testing.T) {
	_, err := render.NewSVGRenderer().Render(nil, nil)
	assert.ErrorIs(t, err, render.ErrNilMaze)
}

func TestRender_BareMaze(t *testing.T) {
	m, err := maze.Generate(4, 4, 7)
	require.NoError(t, err)

	svg, err := render.NewSVGRenderer().Render(m, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.True(t, strings.HasSuffix(svg, `</svg>`))
	assert.NotContains(t, svg, "<polyline", "no result means no path layer")
	assert.Contains(t, svg, "<circle", "start and goal markers are always drawn")
	assert.Contains(t, svg, "<line")
}

func TestRender_SolvedMazeLayers(t *testing.T) {
	m, res := solvedMaze(t)

	svg, err := render.NewSVGRenderer().Render(m, res)
	require.NoError(t, err)

	assert.Contains(t, svg, "<polyline")
	assert.Equal(t, 2, strings.Count(svg, "<circle"))
	assert.GreaterOrEqual(t, strings.Count(svg, "<rect"), len(res.VisitedOrder),
		"one backdrop rect plus one per visited cell")
}

func TestRender_ZeroValueRendererUsesDefaults(t *testing.T) {
	m, res := solvedMaze(t)

	var r render.SVGRenderer
	svg, err := r.Render(m, res)
	require.NoError(t, err)
	assert.Contains(t, svg, `width="192"`, "6 cols + 2 margin cells at 24px")
}

func TestWriteFile(t *testing.T) {
	m, res := solvedMaze(t)
	path := filepath.Join(t.TempDir(), "images", "bfs_6x6_42.svg")

	require.NoError(t, render.NewSVGRenderer().WriteFile(path, m, res))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg"))
}
