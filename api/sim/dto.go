// Package simapi exposes simulation sessions over HTTP: creation from a
// configuration or an imported maze text, live snapshots, control commands
// and the statistics tables.
package simapi

import (
	"github.com/beka-birhanu/micromouse-arena/maze"
)

// AgentRequest configures one agent of a new session.
type AgentRequest struct {
	Strategy  string `json:"strategy"`  // greedy|follower|competitor|random, default greedy
	Heuristic string `json:"heuristic"` // auto|manhattan|euclidean|diagonal, default auto
	Algorithm string `json:"algorithm"` // bfs|astar, default bfs
}

// PositionRequest is an optional (x, y) coordinate in a request body.
type PositionRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CreateRequest configures a new simulation session. Omitted or zero fields
// fall back to the environment-driven defaults; a negative drift cadence
// disables obstacle drift.
type CreateRequest struct {
	Size         int              `json:"size"`
	ObstacleRate float64          `json:"obstacle_rate"`
	Agents       []AgentRequest   `json:"agents"`
	SharedStart  bool             `json:"shared_start"`
	Start        *PositionRequest `json:"start"`
	Goal         *PositionRequest `json:"goal"`
	Seed         int64            `json:"seed"`
	DriftEvery   int              `json:"drift_every_ticks"`
}

// ImportRequest configures a session on a maze imported from text. The text
// block must be size rows of size '0'/'1' characters; the grid dimension comes
// from the text itself. The remaining fields default like CreateRequest's.
type ImportRequest struct {
	MazeText     string           `json:"maze_text" binding:"required"`
	ObstacleRate float64          `json:"obstacle_rate"`
	Agents       []AgentRequest   `json:"agents"`
	SharedStart  bool             `json:"shared_start"`
	Start        *PositionRequest `json:"start"`
	Goal         *PositionRequest `json:"goal"`
	Seed         int64            `json:"seed"`
	DriftEvery   int              `json:"drift_every_ticks"`
}

// CreateResponse returns the id of a newly created session.
type CreateResponse struct {
	ID string `json:"id"`
}

// ExperimentRequest configures a heuristic-comparison batch run.
type ExperimentRequest struct {
	Size int   `json:"size" binding:"required"`
	Seed int64 `json:"seed"`
}

func (p *PositionRequest) toPosition() *maze.Position {
	if p == nil {
		return nil
	}
	return &maze.Position{X: p.X, Y: p.Y}
}
