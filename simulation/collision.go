package simulation

import (
	"math/rand"
	"sort"

	"github.com/beka-birhanu/micromouse-arena/agent"
	"github.com/beka-birhanu/micromouse-arena/maze"
)

// Resolve detects cells occupied by two or more active agents after a tick
// and resolves each group deterministically: the lowest-id agent keeps its
// position, every other agent counts a collision and backs off.
//
// Backing off prefers the agent's previous path position; an agent that has
// not advanced yet moves to a random free orthogonal neighbor instead, and
// stays put when none exists. This is a best-effort scheme: a resolved agent
// may collide again on the next tick.
func Resolve(agents []*agent.Agent, m *maze.Maze, rng *rand.Rand) {
	groups := make(map[maze.Position][]*agent.Agent)
	for _, a := range agents {
		if !a.Active {
			continue
		}
		groups[a.Pos] = append(groups[a.Pos], a)
	}

	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })

		// group[0] has priority and is left untouched.
		for _, a := range group[1:] {
			a.Collisions++
			if prev, ok := a.PrevPlanned(); ok {
				a.StepsTaken--
				a.Pos = prev.Clamp(m.Size)
				continue
			}
			if free, ok := randomUnoccupiedNeighbor(a, agents, m, rng); ok {
				a.Pos = free.Clamp(m.Size)
			}
			// No escape cell: the agent stays in place.
		}
	}

	for _, a := range agents {
		a.Pos = a.Pos.Clamp(m.Size)
	}
}

// randomUnoccupiedNeighbor picks uniformly among orthogonal neighbors that
// are in bounds, not obstacles, and not occupied by another active agent.
func randomUnoccupiedNeighbor(a *agent.Agent, agents []*agent.Agent, m *maze.Maze, rng *rand.Rand) (maze.Position, bool) {
	occupied := make(map[maze.Position]struct{}, len(agents))
	for _, other := range agents {
		if other.Active && other.ID != a.ID {
			occupied[other.Pos] = struct{}{}
		}
	}

	var free []maze.Position
	for _, n := range a.Pos.Neighbors() {
		if m.IsBlocked(n) {
			continue
		}
		if _, taken := occupied[n]; taken {
			continue
		}
		free = append(free, n)
	}
	if len(free) == 0 {
		return maze.Position{}, false
	}
	return free[rng.Intn(len(free))], true
}
