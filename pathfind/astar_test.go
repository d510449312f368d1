package pathfind

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/micromouse-arena/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAStar(t *testing.T) {
	t.Run("matches BFS around the blocked center", func(t *testing.T) {
		m := blockedCenter(t)
		res := AStar(m, m.Start, m.Goal, Manhattan)

		require.True(t, res.Found())
		assert.Len(t, res.Path, 7)
		assert.Equal(t, m.Start, res.Path[0])
		assert.Equal(t, m.Goal, res.Path[len(res.Path)-1])
	})

	t.Run("unreachable goal is an empty path, not an error", func(t *testing.T) {
		m, err := maze.New(4)
		require.NoError(t, err)
		require.NoError(t, m.SetCell(maze.Position{X: 2, Y: 3}, maze.Obstacle))
		require.NoError(t, m.SetCell(maze.Position{X: 3, Y: 2}, maze.Obstacle))

		res := AStar(m, maze.Position{X: 0, Y: 0}, maze.Position{X: 3, Y: 3}, Euclidean)
		assert.Empty(t, res.Path)
		assert.NotEmpty(t, res.Explored)
	})

	t.Run("nil heuristic defaults instead of failing", func(t *testing.T) {
		m := blockedCenter(t)
		res := AStar(m, m.Start, m.Goal, nil)
		assert.Len(t, res.Path, 7)
	})

	t.Run("NaN heuristic values are clamped to zero", func(t *testing.T) {
		m := blockedCenter(t)
		poisoned := func(a, b maze.Position) float64 { return math.NaN() }

		// With h forced to 0, A* degrades to Dijkstra and stays optimal.
		res := AStar(m, m.Start, m.Goal, poisoned)
		assert.Len(t, res.Path, 7)
	})

	t.Run("repeated calls return identical paths", func(t *testing.T) {
		m := blockedCenter(t)
		first := AStar(m, m.Start, m.Goal, Diagonal)
		second := AStar(m, m.Start, m.Goal, Diagonal)

		assert.Equal(t, first.Path, second.Path)
		assert.Equal(t, first.Explored, second.Explored)
	})
}

// TestAStarOptimalOnAdmissibleHeuristics checks that A* path lengths equal the
// BFS shortest-path length on randomly generated mazes for all three
// heuristics, which are admissible under 4-directional unit-cost movement.
func TestAStarOptimalOnAdmissibleHeuristics(t *testing.T) {
	heuristics := map[string]Heuristic{
		HeuristicManhattan: Manhattan,
		HeuristicEuclidean: Euclidean,
		HeuristicDiagonal:  Diagonal,
	}

	for seed := int64(1); seed <= 3; seed++ {
		for _, rate := range []float64{0.1, 0.3, 0.5} {
			m, err := maze.Generate(maze.GenConfig{
				Size:         11,
				ObstacleRate: rate,
				Rand:         rand.New(rand.NewSource(seed)),
			})
			require.NoError(t, err)

			want := len(BFS(m, m.Start, m.Goal).Path)
			require.Greater(t, want, 0)

			for name, h := range heuristics {
				t.Run(fmt.Sprintf("seed %d rate %.1f %s", seed, rate, name), func(t *testing.T) {
					got := len(AStar(m, m.Start, m.Goal, h).Path)
					assert.Equal(t, want, got)
				})
			}
		}
	}
}
