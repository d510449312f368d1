package simulation

import (
	"strings"

	"github.com/beka-birhanu/micromouse-arena/agent"
	"github.com/beka-birhanu/micromouse-arena/maze"
)

// AgentView is a display copy of one agent's live state.
type AgentView struct {
	ID         int             `json:"id"`
	Pos        maze.Position   `json:"pos"`
	Path       []maze.Position `json:"path"`
	Explored   []maze.Position `json:"explored"`
	Active     bool            `json:"active"`
	StepsTaken int             `json:"steps_taken"`
	Collisions int             `json:"collisions"`
	Strategy   agent.Strategy  `json:"strategy"`
	Heuristic  string          `json:"heuristic"`
	Algorithm  agent.Algorithm `json:"algorithm"`
	PlanMillis float64         `json:"plan_millis"`
}

// Snapshot is a consistent copy of the simulation for the display layer,
// taken between ticks.
type Snapshot struct {
	State        State         `json:"state"`
	Ticks        int           `json:"ticks"`
	Size         int           `json:"size"`
	ObstacleRate float64       `json:"obstacle_rate"`
	Start        maze.Position `json:"start"`
	Goal         maze.Position `json:"goal"`
	Grid         []string      `json:"grid"` // one row per string, cells as in maze.Cell.String
	Agents       []AgentView   `json:"agents"`
	Ranking      []Rank        `json:"ranking"`
}

// Snapshot copies the live grid and agent list. Paths and explored sets are
// copied so the caller can never observe mid-tick mutation.
func (s *Simulation) Snapshot() Snapshot {
	s.RLock()
	defer s.RUnlock()

	grid := make([]string, s.m.Size)
	for y := 0; y < s.m.Size; y++ {
		var b strings.Builder
		for x := 0; x < s.m.Size; x++ {
			b.WriteString(s.m.Grid[y][x].String())
		}
		grid[y] = b.String()
	}

	agents := make([]AgentView, 0, len(s.agents))
	for _, a := range s.agents {
		agents = append(agents, AgentView{
			ID:         a.ID,
			Pos:        a.Pos,
			Path:       append([]maze.Position(nil), a.Path...),
			Explored:   append([]maze.Position(nil), a.Explored...),
			Active:     a.Active,
			StepsTaken: a.StepsTaken,
			Collisions: a.Collisions,
			Strategy:   a.Strategy,
			Heuristic:  a.Heuristic,
			Algorithm:  a.Algorithm,
			PlanMillis: float64(a.PlanTime.Microseconds()) / 1000,
		})
	}

	return Snapshot{
		State:        s.state,
		Ticks:        s.ticks,
		Size:         s.m.Size,
		ObstacleRate: s.rate,
		Start:        s.m.Start,
		Goal:         s.m.Goal,
		Grid:         grid,
		Agents:       agents,
		Ranking:      append([]Rank(nil), s.ranking...),
	}
}
