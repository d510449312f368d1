// Package i holds the service-layer interfaces consumed by the API
// controllers.
package i

import (
	"github.com/beka-birhanu/micromouse-arena/simulation"
	"github.com/google/uuid"
)

// SimulationRunner manages the lifecycle of simulation sessions and exposes
// their live state to the display layer.
type SimulationRunner interface {
	// Create starts a new session from a configuration and returns its id.
	Create(cfg simulation.Config) (uuid.UUID, error)
	// CreateFromText starts a session on a maze imported from a text block.
	// Start and goal come from the configuration; defaults are the origin
	// and the grid center.
	CreateFromText(text string, cfg simulation.Config) (uuid.UUID, error)
	// Snapshot returns a consistent copy of a session's state.
	Snapshot(id uuid.UUID) (simulation.Snapshot, error)
	// Pause halts tick delivery for a session.
	Pause(id uuid.UUID) error
	// Resume continues a paused session.
	Resume(id uuid.UUID) error
	// Reset regenerates a session's maze and agents.
	Reset(id uuid.UUID) error
	// Stop terminates a session and releases its ticker.
	Stop(id uuid.UUID) error
	// Results returns a session's rolling competition statistics.
	Results(id uuid.UUID) ([]simulation.CompetitionResult, error)
}
