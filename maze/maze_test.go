package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaze(t *testing.T) {
	t.Run("rejects degenerate dimensions", func(t *testing.T) {
		_, err := New(1)
		assert.ErrorIs(t, err, ErrInvalidDimension)

		_, err = New(0)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("marks start and goal cells", func(t *testing.T) {
		m, err := New(10)
		require.NoError(t, err)

		assert.Equal(t, Start, m.CellAt(m.Start))
		assert.Equal(t, Goal, m.CellAt(m.Goal))
		assert.Equal(t, Position{X: 5, Y: 5}, m.Goal)
	})

	t.Run("out of bounds reads as obstacle", func(t *testing.T) {
		m, err := New(4)
		require.NoError(t, err)

		assert.Equal(t, Obstacle, m.CellAt(Position{X: -1, Y: 0}))
		assert.Equal(t, Obstacle, m.CellAt(Position{X: 0, Y: 4}))
		assert.True(t, m.IsBlocked(Position{X: 4, Y: 4}))
		assert.ErrorIs(t, m.SetCell(Position{X: 9, Y: 9}, Empty), ErrOutOfBounds)
	})

	t.Run("clone is independent of the original", func(t *testing.T) {
		m, err := New(4)
		require.NoError(t, err)

		clone := m.Clone()
		require.NoError(t, m.SetCell(Position{X: 3, Y: 3}, Obstacle))

		assert.Equal(t, Obstacle, m.CellAt(Position{X: 3, Y: 3}))
		assert.Equal(t, Empty, clone.CellAt(Position{X: 3, Y: 3}))
	})

	t.Run("force empty never clears start or goal markers", func(t *testing.T) {
		m, err := New(4)
		require.NoError(t, err)

		m.ForceEmpty(m.Start)
		m.ForceEmpty(m.Goal)
		assert.Equal(t, Start, m.CellAt(m.Start))
		assert.Equal(t, Goal, m.CellAt(m.Goal))
	})
}

func TestPositionClamp(t *testing.T) {
	cases := []struct {
		name string
		in   Position
		want Position
	}{
		{"negative both axes", Position{X: -3, Y: -1}, Position{X: 0, Y: 0}},
		{"past the far edge", Position{X: 10, Y: 12}, Position{X: 9, Y: 9}},
		{"already inside", Position{X: 4, Y: 7}, Position{X: 4, Y: 7}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Clamp(10))
		})
	}
}
