package simulation

import (
	"github.com/beka-birhanu/micromouse-arena/agent"
	"github.com/beka-birhanu/micromouse-arena/maze"
)

// strategyCandidate asks the agent's strategy for a move override. A false
// return means no override was produced and the default path-following rules
// apply.
func (s *Simulation) strategyCandidate(a *agent.Agent, leader *agent.Agent, snap *maze.Maze) (maze.Position, bool) {
	switch a.Strategy {
	case agent.StrategyFollower:
		return s.followerCandidate(a, leader, snap)
	case agent.StrategyCompetitor:
		return s.competitorCandidate(a, leader, snap)
	case agent.StrategyRandom:
		if s.rng.Float64() < randomWanderChance {
			return randomFreeNeighbor(a.Pos, snap, s.rng)
		}
		return maze.Position{}, false
	default:
		return maze.Position{}, false
	}
}

// followerCandidate shadows the leader: if the leader has a valid next step
// on its own path, the follower adopts that absolute cell.
func (s *Simulation) followerCandidate(a *agent.Agent, leader *agent.Agent, snap *maze.Maze) (maze.Position, bool) {
	if leader == nil || leader.ID == a.ID {
		return maze.Position{}, false
	}
	next, ok := leader.NextPlanned()
	if !ok || snap.IsBlocked(next) {
		return maze.Position{}, false
	}
	return next, true
}

// competitorCandidate aims a few steps ahead on the leader's path. The
// leader's path to the goal is computed with the leader's own algorithm and
// heuristic; the interception plan uses the competitor's own.
func (s *Simulation) competitorCandidate(a *agent.Agent, leader *agent.Agent, snap *maze.Maze) (maze.Position, bool) {
	if leader == nil || leader.ID == a.ID {
		return maze.Position{}, false
	}

	lead := s.planWith(leader.Algorithm, leader.Heuristic, leader.Pos, snap.Goal, snap)
	if !lead.Found() {
		return maze.Position{}, false
	}

	idx := interceptLookahead
	if idx > len(lead.Path)-1 {
		idx = len(lead.Path) - 1
	}
	intercept := lead.Path[idx]

	mine := s.planWith(a.Algorithm, a.Heuristic, a.Pos, intercept, snap)
	if len(mine.Path) < 2 {
		return maze.Position{}, false
	}
	a.SetPlan(mine.Path, mine.Explored, mine.Elapsed)
	return mine.Path[1], true
}
