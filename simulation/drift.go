package simulation

import (
	"github.com/beka-birhanu/micromouse-arena/maze"
)

// Obstacle drift bounds.
const (
	driftMaxDelta = 0.05
	driftMinRate  = 0.10
	driftMaxRate  = 0.50
)

// drift perturbs the global obstacle rate by a uniform delta and moves the
// obstacle count toward the new target density, adding and removing obstacles
// at random non-start, non-goal cells. Cells under active agents are forced
// empty afterwards so no agent is entombed.
//
// Drift does not re-verify global solvability: a cut path surfaces through
// the per-tick path-validity check, which replans or retires the affected
// agent. Caller holds the simulation lock.
func (s *Simulation) drift() {
	delta := (s.rng.Float64()*2 - 1) * driftMaxDelta
	s.rate = clampRate(s.rate + delta)

	size := s.m.Size
	target := int(float64(size*size) * s.rate)
	count := s.m.ObstacleCount()

	// Bounded attempts: dense or tiny grids may not reach the target.
	for attempts := size * size * 4; attempts > 0 && count != target; attempts-- {
		p := maze.Position{X: s.rng.Intn(size), Y: s.rng.Intn(size)}
		if p == s.m.Start || p == s.m.Goal {
			continue
		}
		switch {
		case count < target && s.m.CellAt(p) == maze.Empty:
			_ = s.m.SetCell(p, maze.Obstacle)
			count++
		case count > target && s.m.CellAt(p) == maze.Obstacle:
			_ = s.m.SetCell(p, maze.Empty)
			count--
		}
	}

	for _, a := range s.agents {
		if a.Active && s.m.CellAt(a.Pos) == maze.Obstacle {
			s.m.ForceEmpty(a.Pos)
		}
	}

	s.logInfof("obstacle drift: rate now %.2f, %d obstacles", s.rate, s.m.ObstacleCount())
}

func clampRate(rate float64) float64 {
	if rate < driftMinRate {
		return driftMinRate
	}
	if rate > driftMaxRate {
		return driftMaxRate
	}
	return rate
}
