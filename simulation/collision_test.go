package simulation

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/micromouse-arena/agent"
	"github.com/beka-birhanu/micromouse-arena/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMaze(t *testing.T, size int) *maze.Maze {
	t.Helper()
	m, err := maze.New(size)
	require.NoError(t, err)
	return m
}

func TestResolveCollisions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("lowest id keeps the cell and the other steps back", func(t *testing.T) {
		m := openMaze(t, 6)
		cell := maze.Position{X: 3, Y: 3}

		a2 := agent.New(2, cell, agent.StrategyGreedy, "auto", agent.AlgorithmBFS)
		a5 := agent.New(5, cell, agent.StrategyGreedy, "auto", agent.AlgorithmBFS)
		a5.SetPlan([]maze.Position{{X: 2, Y: 3}, cell}, nil, 0)
		a5.StepsTaken = 1

		Resolve([]*agent.Agent{a2, a5}, m, rng)

		assert.Equal(t, cell, a2.Pos, "priority agent must not move")
		assert.Equal(t, 0, a2.Collisions)

		assert.Equal(t, 1, a5.Collisions)
		assert.Equal(t, maze.Position{X: 2, Y: 3}, a5.Pos, "agent must back off to its previous waypoint")
		assert.Equal(t, 0, a5.StepsTaken)
	})

	t.Run("agent without progress escapes to a free neighbor", func(t *testing.T) {
		m := openMaze(t, 6)
		cell := maze.Position{X: 3, Y: 3}

		a1 := agent.New(1, cell, agent.StrategyGreedy, "auto", agent.AlgorithmBFS)
		a4 := agent.New(4, cell, agent.StrategyGreedy, "auto", agent.AlgorithmBFS)

		Resolve([]*agent.Agent{a1, a4}, m, rng)

		assert.Equal(t, cell, a1.Pos)
		assert.Equal(t, 1, a4.Collisions)
		assert.NotEqual(t, cell, a4.Pos)
		assert.True(t, m.InBound(a4.Pos))
		assert.False(t, m.IsBlocked(a4.Pos))
	})

	t.Run("boxed in agent stays in place", func(t *testing.T) {
		m := openMaze(t, 6)
		cell := maze.Position{X: 3, Y: 3}
		for _, n := range cell.Neighbors() {
			require.NoError(t, m.SetCell(n, maze.Obstacle))
		}

		a1 := agent.New(1, cell, agent.StrategyGreedy, "auto", agent.AlgorithmBFS)
		a2 := agent.New(2, cell, agent.StrategyGreedy, "auto", agent.AlgorithmBFS)

		Resolve([]*agent.Agent{a1, a2}, m, rng)

		assert.Equal(t, cell, a1.Pos)
		assert.Equal(t, cell, a2.Pos)
		assert.Equal(t, 1, a2.Collisions)
	})

	t.Run("escape cell avoids other active agents", func(t *testing.T) {
		m := openMaze(t, 6)
		cell := maze.Position{X: 3, Y: 3}
		// Wall two neighbors, occupy a third with an agent, leaving (3,4)
		// as the only escape cell.
		require.NoError(t, m.SetCell(maze.Position{X: 2, Y: 3}, maze.Obstacle))
		require.NoError(t, m.SetCell(maze.Position{X: 4, Y: 3}, maze.Obstacle))

		blocker := agent.New(1, maze.Position{X: 3, Y: 2}, agent.StrategyGreedy, "auto", agent.AlgorithmBFS)
		a2 := agent.New(2, cell, agent.StrategyGreedy, "auto", agent.AlgorithmBFS)
		a3 := agent.New(3, cell, agent.StrategyGreedy, "auto", agent.AlgorithmBFS)

		Resolve([]*agent.Agent{blocker, a2, a3}, m, rng)

		assert.Equal(t, maze.Position{X: 3, Y: 4}, a3.Pos)
	})

	t.Run("inactive agents never participate", func(t *testing.T) {
		m := openMaze(t, 6)
		cell := maze.Position{X: 3, Y: 3}

		a1 := agent.New(1, cell, agent.StrategyGreedy, "auto", agent.AlgorithmBFS)
		a1.Active = false
		a2 := agent.New(2, cell, agent.StrategyGreedy, "auto", agent.AlgorithmBFS)

		Resolve([]*agent.Agent{a1, a2}, m, rng)

		assert.Equal(t, 0, a1.Collisions)
		assert.Equal(t, 0, a2.Collisions)
		assert.Equal(t, cell, a2.Pos)
	})
}
