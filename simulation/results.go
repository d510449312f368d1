package simulation

import (
	"sort"

	"github.com/beka-birhanu/micromouse-arena/agent"
	"github.com/beka-birhanu/micromouse-arena/maze"
)

// Rank is one row of a finished run's ranking: agents that ended exactly on
// the goal cell, ordered by steps taken then id.
type Rank struct {
	AgentID int `json:"agent_id"`
	Steps   int `json:"steps"`
}

// CompetitionResult is the rolling aggregate record for one agent across
// runs. Read-only to the display layer.
type CompetitionResult struct {
	AgentID              int             `json:"agent_id"`
	Strategy             agent.Strategy  `json:"strategy"`
	Algorithm            agent.Algorithm `json:"algorithm"`
	Heuristic            string          `json:"heuristic"`
	Runs                 int             `json:"runs"`
	Wins                 int             `json:"wins"`
	AvgPathLength        float64         `json:"avg_path_length"`
	AvgExplored          float64         `json:"avg_explored"`
	AvgPlanMillis        float64         `json:"avg_plan_millis"`
	AvgCollisionsPerStep float64         `json:"avg_collisions_per_step"`
}

// Scoreboard accumulates per-agent rolling means across runs.
type Scoreboard struct {
	rows map[int]*CompetitionResult
}

// NewScoreboard creates an empty scoreboard.
func NewScoreboard() *Scoreboard {
	return &Scoreboard{rows: make(map[int]*CompetitionResult)}
}

// Record folds one finished run into the rolling statistics.
func (b *Scoreboard) Record(agents []*agent.Agent, winnerID int) {
	for _, a := range agents {
		row, ok := b.rows[a.ID]
		if !ok {
			row = &CompetitionResult{
				AgentID:   a.ID,
				Strategy:  a.Strategy,
				Algorithm: a.Algorithm,
				Heuristic: a.Heuristic,
			}
			b.rows[a.ID] = row
		}

		row.Runs++
		if a.ID == winnerID {
			row.Wins++
		}

		steps := a.StepsTaken
		if steps < 1 {
			steps = 1
		}
		n := float64(row.Runs)
		row.AvgPathLength += (float64(len(a.Path)) - row.AvgPathLength) / n
		row.AvgExplored += (float64(len(a.Explored)) - row.AvgExplored) / n
		row.AvgPlanMillis += (float64(a.PlanTime.Microseconds())/1000 - row.AvgPlanMillis) / n
		row.AvgCollisionsPerStep += (float64(a.Collisions)/float64(steps) - row.AvgCollisionsPerStep) / n
	}
}

// Rows returns the scoreboard ordered by agent id.
func (b *Scoreboard) Rows() []CompetitionResult {
	out := make([]CompetitionResult, 0, len(b.rows))
	for _, row := range b.rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AgentID < out[j].AgentID })
	return out
}

// rankFinishers orders the agents that ended on the goal cell by steps taken
// ascending, then id ascending. The first entry is the winner.
func rankFinishers(agents []*agent.Agent, goal maze.Position) []Rank {
	var ranks []Rank
	for _, a := range agents {
		if a.Pos == goal {
			ranks = append(ranks, Rank{AgentID: a.ID, Steps: a.StepsTaken})
		}
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Steps != ranks[j].Steps {
			return ranks[i].Steps < ranks[j].Steps
		}
		return ranks[i].AgentID < ranks[j].AgentID
	})
	return ranks
}
