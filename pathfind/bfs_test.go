package pathfind

import (
	"testing"

	"github.com/beka-birhanu/micromouse-arena/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockedCenter builds a 4x4 grid with a 2x2 obstacle block in the middle.
func blockedCenter(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.Parse("0000\n0110\n0110\n0000", maze.Position{X: 0, Y: 0}, maze.Position{X: 3, Y: 3})
	require.NoError(t, err)
	return m
}

func TestBFS(t *testing.T) {
	t.Run("finds the shortest path around obstacles", func(t *testing.T) {
		m := blockedCenter(t)
		res := BFS(m, m.Start, m.Goal)

		require.True(t, res.Found())
		assert.Len(t, res.Path, 7)
		assert.Equal(t, m.Start, res.Path[0])
		assert.Equal(t, m.Goal, res.Path[len(res.Path)-1])
	})

	t.Run("explores nodes in visitation order starting at the start", func(t *testing.T) {
		m := blockedCenter(t)
		res := BFS(m, m.Start, m.Goal)

		require.NotEmpty(t, res.Explored)
		assert.Equal(t, m.Start, res.Explored[0])
		assert.GreaterOrEqual(t, len(res.Explored), len(res.Path))
	})

	t.Run("start equal to goal yields a single cell path", func(t *testing.T) {
		m, err := maze.New(4)
		require.NoError(t, err)
		res := BFS(m, maze.Position{X: 2, Y: 1}, maze.Position{X: 2, Y: 1})

		assert.Len(t, res.Path, 1)
	})

	t.Run("unreachable goal is an empty path, not an error", func(t *testing.T) {
		m, err := maze.New(4)
		require.NoError(t, err)
		// Box in the corner cell (3,3).
		require.NoError(t, m.SetCell(maze.Position{X: 2, Y: 3}, maze.Obstacle))
		require.NoError(t, m.SetCell(maze.Position{X: 3, Y: 2}, maze.Obstacle))

		res := BFS(m, maze.Position{X: 0, Y: 0}, maze.Position{X: 3, Y: 3})
		assert.False(t, res.Found())
		assert.Empty(t, res.Path)
		assert.NotEmpty(t, res.Explored)
	})

	t.Run("malformed endpoints yield an empty path", func(t *testing.T) {
		m, err := maze.New(4)
		require.NoError(t, err)

		res := BFS(m, maze.Position{X: -1, Y: 0}, maze.Position{X: 3, Y: 3})
		assert.Empty(t, res.Path)

		res = BFS(nil, maze.Position{X: 0, Y: 0}, maze.Position{X: 1, Y: 1})
		assert.Empty(t, res.Path)
	})

	t.Run("repeated calls return identical paths", func(t *testing.T) {
		m := blockedCenter(t)
		first := BFS(m, m.Start, m.Goal)
		second := BFS(m, m.Start, m.Goal)

		assert.Equal(t, first.Path, second.Path)
		assert.Equal(t, first.Explored, second.Explored)
	})

	t.Run("path stays inside grid bounds", func(t *testing.T) {
		m := blockedCenter(t)
		res := BFS(m, m.Start, m.Goal)

		for _, p := range res.Path {
			assert.True(t, m.InBound(p), "waypoint (%d,%d) out of bounds", p.X, p.Y)
		}
	})
}
