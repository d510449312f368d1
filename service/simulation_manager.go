// Package service wires simulation sessions to their tick schedulers. The
// core never owns a timer: each session gets a goroutine that delivers ticks
// at a fixed period until the session stops or is torn down.
package service

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/beka-birhanu/micromouse-arena/config"
	"github.com/beka-birhanu/micromouse-arena/maze"
	"github.com/beka-birhanu/micromouse-arena/simulation"
	"github.com/google/uuid"
)

var (
	ErrNoSession       = errors.New("no such simulation session")
	ErrTooManySessions = errors.New("session limit reached")
	ErrInvalidTickRate = errors.New("tick period must be positive")
)

// session pairs a simulation with its ticker control channel.
type session struct {
	sim  *simulation.Simulation
	stop chan struct{}
}

// SimulationManager owns all live simulation sessions, keyed by uuid.
type SimulationManager struct {
	sessions    map[uuid.UUID]*session
	tickPeriod  time.Duration
	maxSessions int
	logger      *log.Logger
	sync.RWMutex
}

// ManagerConfig configures a SimulationManager.
type ManagerConfig struct {
	TickPeriod  time.Duration
	MaxSessions int
	Logger      *log.Logger
}

// NewSimulationManager creates a manager with the given tick period.
func NewSimulationManager(c ManagerConfig) (*SimulationManager, error) {
	if c.TickPeriod <= 0 {
		return nil, ErrInvalidTickRate
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = 16
	}
	return &SimulationManager{
		sessions:    make(map[uuid.UUID]*session),
		tickPeriod:  c.TickPeriod,
		maxSessions: c.MaxSessions,
		logger:      c.Logger,
	}, nil
}

// Create starts a new session from a configuration and returns its id.
func (m *SimulationManager) Create(cfg simulation.Config) (uuid.UUID, error) {
	cfg.Logger = m.logger
	sim, err := simulation.New(cfg)
	if err != nil {
		return uuid.Nil, err
	}
	return m.saveSession(sim)
}

// CreateFromText starts a session on a maze imported from a text block.
func (m *SimulationManager) CreateFromText(text string, cfg simulation.Config) (uuid.UUID, error) {
	lines := len(splitRows(text))
	start := maze.Position{X: 0, Y: 0}
	if cfg.Start != nil {
		start = *cfg.Start
	}
	goal := maze.Position{X: lines / 2, Y: lines / 2}
	if cfg.Goal != nil {
		goal = *cfg.Goal
	}

	parsed, err := maze.Parse(text, start, goal)
	if err != nil {
		return uuid.Nil, err
	}

	cfg.Logger = m.logger
	sim, err := simulation.NewWithMaze(parsed, cfg)
	if err != nil {
		return uuid.Nil, err
	}
	return m.saveSession(sim)
}

// saveSession registers the simulation under a fresh id and starts its
// ticker goroutine.
func (m *SimulationManager) saveSession(sim *simulation.Simulation) (uuid.UUID, error) {
	m.Lock()
	defer m.Unlock()

	if len(m.sessions) >= m.maxSessions {
		return uuid.Nil, ErrTooManySessions
	}

	id := uuid.New()
	for {
		if _, taken := m.sessions[id]; !taken {
			break
		}
		id = uuid.New()
	}

	s := &session{sim: sim, stop: make(chan struct{})}
	m.sessions[id] = s
	go m.runTicker(id, s)

	m.logger.Printf("%s[INFO]%s started simulation session %s", config.LogInfoColor, config.LogColorReset, id)
	return id, nil
}

// runTicker delivers ticks until the session is torn down. Stopped sessions
// stay registered so their results remain queryable; their ticks are no-ops.
func (m *SimulationManager) runTicker(id uuid.UUID, s *session) {
	ticker := time.NewTicker(m.tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			m.logger.Printf("%s[INFO]%s released simulation session %s", config.LogInfoColor, config.LogColorReset, id)
			return
		case <-ticker.C:
			s.sim.Tick()
		}
	}
}

func (m *SimulationManager) get(id uuid.UUID) (*session, error) {
	m.RLock()
	defer m.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNoSession
	}
	return s, nil
}

// Snapshot returns a consistent copy of a session's state.
func (m *SimulationManager) Snapshot(id uuid.UUID) (simulation.Snapshot, error) {
	s, err := m.get(id)
	if err != nil {
		return simulation.Snapshot{}, err
	}
	return s.sim.Snapshot(), nil
}

// Pause halts tick processing for a session.
func (m *SimulationManager) Pause(id uuid.UUID) error {
	s, err := m.get(id)
	if err != nil {
		return err
	}
	s.sim.Pause()
	return nil
}

// Resume continues a paused session from its exact prior state.
func (m *SimulationManager) Resume(id uuid.UUID) error {
	s, err := m.get(id)
	if err != nil {
		return err
	}
	s.sim.Resume()
	return nil
}

// Reset regenerates a session's maze and agents from its configuration.
func (m *SimulationManager) Reset(id uuid.UUID) error {
	s, err := m.get(id)
	if err != nil {
		return err
	}
	return s.sim.Reset()
}

// Results returns a session's rolling competition statistics.
func (m *SimulationManager) Results(id uuid.UUID) ([]simulation.CompetitionResult, error) {
	s, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return s.sim.Results(), nil
}

// Stop tears a session down and stops its ticker.
func (m *SimulationManager) Stop(id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return ErrNoSession
	}
	close(s.stop)
	delete(m.sessions, id)
	return nil
}

// Shutdown tears down every session.
func (m *SimulationManager) Shutdown() {
	m.Lock()
	defer m.Unlock()
	for id, s := range m.sessions {
		close(s.stop)
		delete(m.sessions, id)
	}
}

func splitRows(text string) []string {
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}
