package simulation

import (
	"io"
	"log"
	"testing"

	"github.com/beka-birhanu/micromouse-arena/agent"
	"github.com/beka-birhanu/micromouse-arena/maze"
	"github.com/beka-birhanu/micromouse-arena/pathfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func greedyAgent() AgentConfig {
	return AgentConfig{Strategy: agent.StrategyGreedy, Heuristic: "auto", Algorithm: agent.AlgorithmBFS}
}

// runToStop ticks until the simulation stops or the bound is hit.
func runToStop(t *testing.T, s *Simulation, bound int) {
	t.Helper()
	for i := 0; i < bound && s.State() != StateStopped; i++ {
		s.Tick()
	}
	require.Equal(t, StateStopped, s.State(), "simulation did not terminate within %d ticks", bound)
}

func TestConfigValidation(t *testing.T) {
	base := Config{Size: 8, ObstacleRate: 0.2, Agents: []AgentConfig{greedyAgent()}, Logger: quietLogger()}

	t.Run("accepts a minimal config", func(t *testing.T) {
		cfg := base
		cfg.Seed = 1
		_, err := New(cfg)
		assert.NoError(t, err)
	})

	t.Run("rejects empty and oversized agent lists", func(t *testing.T) {
		cfg := base
		cfg.Agents = nil
		_, err := New(cfg)
		assert.ErrorIs(t, err, ErrNoAgents)

		cfg.Agents = make([]AgentConfig, 6)
		_, err = New(cfg)
		assert.ErrorIs(t, err, ErrTooManyAgents)
	})

	t.Run("rejects bad dimension and rate", func(t *testing.T) {
		cfg := base
		cfg.Size = 1
		_, err := New(cfg)
		assert.ErrorIs(t, err, maze.ErrInvalidDimension)

		cfg = base
		cfg.ObstacleRate = 1.2
		_, err = New(cfg)
		assert.ErrorIs(t, err, maze.ErrInvalidRate)
	})
}

// TestSingleAgentReachesCenterGoal is the end-to-end scenario: a 10x10 maze at
// obstacle rate 0.3 with one BFS agent from (0,0) to the center must
// terminate with the agent inactive on the goal, having taken exactly the
// shortest-path number of steps.
func TestSingleAgentReachesCenterGoal(t *testing.T) {
	s, err := New(Config{
		Size:         10,
		ObstacleRate: 0.3,
		Agents:       []AgentConfig{greedyAgent()},
		SharedStart:  true,
		Seed:         42,
		Logger:       quietLogger(),
	})
	require.NoError(t, err)

	shortest := len(pathfind.BFS(s.m, s.m.Start, s.m.Goal).Path)
	require.Greater(t, shortest, 0)

	runToStop(t, s, 500)

	snap := s.Snapshot()
	require.Len(t, snap.Agents, 1)
	a := snap.Agents[0]

	assert.False(t, a.Active)
	assert.Equal(t, maze.Position{X: 5, Y: 5}, snap.Goal)
	assert.Equal(t, snap.Goal, a.Pos)
	assert.Equal(t, shortest-1, a.StepsTaken, "undisturbed BFS agent walks the shortest path")
	assert.GreaterOrEqual(t, a.StepsTaken, 10, "Manhattan lower bound on an open grid")

	require.Len(t, snap.Ranking, 1)
	assert.Equal(t, 1, snap.Ranking[0].AgentID)
}

func TestTwoAgentRaceRankingAndStats(t *testing.T) {
	m, err := maze.New(6)
	require.NoError(t, err)

	s, err := NewWithMaze(m, Config{
		ObstacleRate: 0,
		Agents:       []AgentConfig{greedyAgent(), greedyAgent()},
		SharedStart:  true,
		Seed:         11,
		Logger:       quietLogger(),
	})
	require.NoError(t, err)

	runToStop(t, s, 100)

	snap := s.Snapshot()
	require.Len(t, snap.Ranking, 2, "both agents end on the goal")
	assert.Equal(t, 1, snap.Ranking[0].AgentID, "steps tie breaks by id")
	assert.Equal(t, 6, snap.Ranking[0].Steps)

	rows := s.Results()
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Runs)
	assert.Equal(t, 1, rows[0].Wins)
	assert.Equal(t, 0, rows[1].Wins)
	assert.GreaterOrEqual(t, snap.Agents[1].Collisions, 1, "shared start forces an early collision")
}

func TestAgentReplansWhenPathInvalidated(t *testing.T) {
	m, err := maze.New(6)
	require.NoError(t, err)

	s, err := NewWithMaze(m, Config{
		ObstacleRate: 0,
		Agents:       []AgentConfig{greedyAgent()},
		SharedStart:  true,
		Seed:         5,
		Logger:       quietLogger(),
	})
	require.NoError(t, err)

	a := s.agents[0]
	next, ok := a.NextPlanned()
	require.True(t, ok)
	require.NoError(t, s.m.SetCell(next, maze.Obstacle))

	s.Tick()

	assert.True(t, a.Active)
	assert.NotEqual(t, next, a.Pos, "agent must not walk into the new obstacle")
	assert.Greater(t, len(a.Path), 1, "cached path was replaced by a replan")
	assert.Equal(t, 1, a.StepsTaken)
}

func TestFullyBoxedAgentRetires(t *testing.T) {
	m, err := maze.New(5)
	require.NoError(t, err)
	require.NoError(t, m.SetCell(maze.Position{X: 1, Y: 0}, maze.Obstacle))
	require.NoError(t, m.SetCell(maze.Position{X: 0, Y: 1}, maze.Obstacle))

	s, err := NewWithMaze(m, Config{
		ObstacleRate: 0,
		Agents:       []AgentConfig{greedyAgent()},
		SharedStart:  true,
		Seed:         5,
		Logger:       quietLogger(),
	})
	require.NoError(t, err)

	s.Tick()

	assert.Equal(t, StateStopped, s.State())
	snap := s.Snapshot()
	assert.False(t, snap.Agents[0].Active)
	assert.Equal(t, maze.Position{X: 0, Y: 0}, snap.Agents[0].Pos)
	assert.Empty(t, snap.Ranking, "a stuck agent never ranks")
}

func TestPauseAndResume(t *testing.T) {
	s, err := New(Config{
		Size:         12,
		ObstacleRate: 0.2,
		Agents:       []AgentConfig{greedyAgent()},
		SharedStart:  true,
		Seed:         8,
		Logger:       quietLogger(),
	})
	require.NoError(t, err)

	s.Tick()
	require.Equal(t, 1, s.Snapshot().Ticks)

	s.Pause()
	assert.Equal(t, StatePaused, s.State())
	s.Tick()
	s.Tick()
	assert.Equal(t, 1, s.Snapshot().Ticks, "paused simulations drop ticks")

	s.Resume()
	s.Tick()
	assert.Equal(t, 2, s.Snapshot().Ticks)
}

func TestResetKeepsScoreboard(t *testing.T) {
	s, err := New(Config{
		Size:         8,
		ObstacleRate: 0.2,
		Agents:       []AgentConfig{greedyAgent()},
		SharedStart:  true,
		Seed:         13,
		Logger:       quietLogger(),
	})
	require.NoError(t, err)

	runToStop(t, s, 300)
	require.Len(t, s.Results(), 1)
	require.Equal(t, 1, s.Results()[0].Runs)

	require.NoError(t, s.Reset())

	assert.Equal(t, StateRunning, s.State())
	snap := s.Snapshot()
	assert.Equal(t, 0, snap.Ticks)
	assert.True(t, snap.Agents[0].Active)
	assert.Equal(t, 1, s.Results()[0].Runs, "rolling stats survive a reset")

	runToStop(t, s, 300)
	assert.Equal(t, 2, s.Results()[0].Runs)
}
