// Package agent defines the simulated mouse: its identity, live position,
// cached plan and the statistics counters the simulation maintains for it.
package agent

import (
	"errors"
	"time"

	"github.com/beka-birhanu/micromouse-arena/maze"
)

// Strategy is an agent's rule for choosing its next move beyond plain
// goal-directed path following.
type Strategy string

const (
	// StrategyGreedy follows the agent's own planned path toward the goal.
	StrategyGreedy Strategy = "greedy"
	// StrategyFollower shadows the leading agent's next step.
	StrategyFollower Strategy = "follower"
	// StrategyCompetitor plans toward an interception point a few steps
	// ahead on the leader's path.
	StrategyCompetitor Strategy = "competitor"
	// StrategyRandom occasionally wanders to a random neighbor.
	StrategyRandom Strategy = "random"
)

// Algorithm selects the search an agent plans with.
type Algorithm string

const (
	AlgorithmBFS   Algorithm = "bfs"
	AlgorithmAStar Algorithm = "astar"
)

var (
	ErrUnknownStrategy  = errors.New("unknown agent strategy")
	ErrUnknownAlgorithm = errors.New("unknown pathfinding algorithm")
)

// ParseStrategy validates a strategy name; empty defaults to greedy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyGreedy:
		return StrategyGreedy, nil
	case StrategyFollower, StrategyCompetitor, StrategyRandom:
		return Strategy(s), nil
	default:
		return "", ErrUnknownStrategy
	}
}

// ParseAlgorithm validates an algorithm name; empty defaults to BFS.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case "", AlgorithmBFS:
		return AlgorithmBFS, nil
	case AlgorithmAStar:
		return AlgorithmAStar, nil
	default:
		return "", ErrUnknownAlgorithm
	}
}

// Agent is one simulated maze-navigating entity. Agents are owned exclusively
// by their simulation's collection; IDs order collision priority.
type Agent struct {
	ID         int
	Pos        maze.Position
	Path       []maze.Position // cached plan; Path[0] is the plan's start
	StepsTaken int             // progress index along Path
	Active     bool
	Collisions int
	Strategy   Strategy
	Heuristic  string // auto|manhattan|euclidean|diagonal
	Algorithm  Algorithm
	Explored   []maze.Position // nodes expanded by the last planning call
	PlanTime   time.Duration   // wall-clock cost of the last planning call
}

// New creates an active agent at the given position with no plan yet.
func New(id int, pos maze.Position, strategy Strategy, heuristic string, algorithm Algorithm) *Agent {
	return &Agent{
		ID:        id,
		Pos:       pos,
		Active:    true,
		Strategy:  strategy,
		Heuristic: heuristic,
		Algorithm: algorithm,
	}
}

// NextPlanned returns the next waypoint on the cached path, if any.
func (a *Agent) NextPlanned() (maze.Position, bool) {
	idx := a.StepsTaken + 1
	if idx < 0 || idx >= len(a.Path) {
		return maze.Position{}, false
	}
	return a.Path[idx], true
}

// PrevPlanned returns the waypoint immediately before the agent's progress
// index, used to back out of a collision.
func (a *Agent) PrevPlanned() (maze.Position, bool) {
	idx := a.StepsTaken - 1
	if a.StepsTaken < 1 || idx >= len(a.Path) {
		return maze.Position{}, false
	}
	return a.Path[idx], true
}

// SetPlan replaces the cached path and resets progress along it.
func (a *Agent) SetPlan(path, explored []maze.Position, elapsed time.Duration) {
	a.Path = path
	a.StepsTaken = 0
	a.Explored = explored
	a.PlanTime = elapsed
}

// MoveTo advances the agent one step to p, clamped to grid bounds.
func (a *Agent) MoveTo(p maze.Position, size int) {
	a.Pos = p.Clamp(size)
	a.StepsTaken++
}
