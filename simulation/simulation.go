/*
Package simulation advances a collection of agents through a maze in discrete
ticks. Each tick re-derives the leading agent, applies per-agent strategy and
path-following rules against an immutable grid snapshot, resolves collisions,
and detects termination. The package also owns obstacle drift and the rolling
competition statistics.
*/
package simulation

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/micromouse-arena/agent"
	"github.com/beka-birhanu/micromouse-arena/config"
	"github.com/beka-birhanu/micromouse-arena/maze"
	"github.com/beka-birhanu/micromouse-arena/pathfind"
)

// Simulation-related errors.
var (
	ErrTooManyAgents = errors.New("too many agents")
	ErrNoAgents      = errors.New("at least one agent is required")
)

const (
	minAgents = 1
	maxAgents = 5

	// randomWanderChance is the per-tick probability that a random-strategy
	// agent overrides its plan with a random neighbor move.
	randomWanderChance = 0.10

	// interceptLookahead is how far along the leader's path a competitor
	// aims its interception.
	interceptLookahead = 3
)

// State is the global lifecycle state of a simulation run.
type State string

const (
	StateRunning State = "running"
	StatePaused  State = "paused"
	StateStopped State = "stopped"
)

// AgentConfig configures one agent of a run.
type AgentConfig struct {
	Strategy  agent.Strategy
	Heuristic string // auto|manhattan|euclidean|diagonal
	Algorithm agent.Algorithm
}

// Config configures a simulation run.
type Config struct {
	Size         int
	ObstacleRate float64
	Agents       []AgentConfig
	SharedStart  bool
	Start        *maze.Position // nil defaults to the origin
	Goal         *maze.Position // nil defaults to the grid center
	Seed         int64          // 0 seeds from the current time
	DriftEvery   int            // ticks between obstacle drifts; 0 disables
	Logger       *log.Logger
}

// Simulation owns a maze and its agents. All mutation happens inside Tick or
// an explicit command; a tick is atomic under the lock and callers never see
// mid-tick state.
type Simulation struct {
	cfg     Config
	m       *maze.Maze
	agents  []*agent.Agent
	state   State
	ticks   int
	rate    float64
	rng     *rand.Rand
	logger  *log.Logger
	board   *Scoreboard
	ranking []Rank
	sync.RWMutex
}

// New generates a maze from the configuration and starts a run with it.
func New(cfg Config) (*Simulation, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	rng := newRand(cfg.Seed)
	m, err := maze.Generate(maze.GenConfig{
		Size:         cfg.Size,
		ObstacleRate: cfg.ObstacleRate,
		Start:        cfg.Start,
		Goal:         cfg.Goal,
		Rand:         rng,
	})
	if err != nil {
		return nil, err
	}
	return newSimulation(m, cfg, rng), nil
}

// NewWithMaze starts a run on an already-built maze, typically one imported
// from text. The maze must be solvable; resets regenerate from the
// configuration instead of reusing the import.
func NewWithMaze(m *maze.Maze, cfg Config) (*Simulation, error) {
	cfg.Size = m.Size
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return newSimulation(m, cfg, newRand(cfg.Seed)), nil
}

func validateConfig(cfg *Config) error {
	if cfg.Size < 2 {
		return maze.ErrInvalidDimension
	}
	if cfg.ObstacleRate < 0 || cfg.ObstacleRate > 1 {
		return maze.ErrInvalidRate
	}
	if len(cfg.Agents) < minAgents {
		return ErrNoAgents
	}
	if len(cfg.Agents) > maxAgents {
		return ErrTooManyAgents
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func newSimulation(m *maze.Maze, cfg Config, rng *rand.Rand) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		m:      m,
		state:  StateRunning,
		rate:   cfg.ObstacleRate,
		rng:    rng,
		logger: cfg.Logger,
		board:  NewScoreboard(),
	}
	s.spawnAgents()
	return s
}

// agentSpawnOffsets spreads non-shared-start agents over the grid corners,
// first agent at the maze start. Offsets are scaled to the grid size.
var agentSpawnOffsets = []maze.Position{
	{X: 0, Y: 0},
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: -2},
}

// spawnAgents creates the agent collection and plans each agent's initial
// path. Spawn cells are forced empty, which cannot break maze solvability.
func (s *Simulation) spawnAgents() {
	s.agents = s.agents[:0]
	s.ranking = nil

	for i, ac := range s.cfg.Agents {
		pos := s.m.Start
		if !s.cfg.SharedStart {
			off := agentSpawnOffsets[i%len(agentSpawnOffsets)]
			pos = maze.Position{
				X: ((off.X + s.m.Size) % s.m.Size),
				Y: ((off.Y + s.m.Size) % s.m.Size),
			}.Clamp(s.m.Size)
			if i == 0 {
				pos = s.m.Start
			}
			s.m.ForceEmpty(pos)
		}

		a := agent.New(i+1, pos, ac.Strategy, ac.Heuristic, ac.Algorithm)
		res := s.planWith(a.Algorithm, a.Heuristic, a.Pos, s.m.Goal, s.m)
		a.SetPlan(res.Path, res.Explored, res.Elapsed)
		s.agents = append(s.agents, a)
	}
}

// Tick advances every active agent by at most one step, then resolves
// collisions and checks for termination. Ticks delivered while paused or
// stopped are ignored.
func (s *Simulation) Tick() {
	s.Lock()
	defer s.Unlock()

	if s.state != StateRunning {
		return
	}
	s.ticks++

	// Drift runs between per-agent loops, never inside one.
	if s.cfg.DriftEvery > 0 && s.ticks%s.cfg.DriftEvery == 0 {
		s.drift()
	}

	// Every strategy decision within this tick sees the same grid.
	snap := s.m.Clone()
	leader := s.leadingAgent()

	for _, a := range s.agents {
		if !a.Active {
			continue
		}
		s.stepAgent(a, snap, leader)
	}

	Resolve(s.agents, s.m, s.rng)
	for _, a := range s.agents {
		a.Pos = a.Pos.Clamp(s.m.Size)
	}

	if s.allInactive() {
		s.finish()
	}
}

// stepAgent applies the per-tick rules for one agent: goal check, strategy
// candidate, cached-path validation with replanning, and the stuck fallback.
func (s *Simulation) stepAgent(a *agent.Agent, snap *maze.Maze, leader *agent.Agent) {
	if a.Pos == s.m.Goal {
		a.Active = false
		s.logInfof("agent %d reached the goal in %d steps", a.ID, a.StepsTaken)
		return
	}

	if cand, ok := s.strategyCandidate(a, leader, snap); ok {
		a.MoveTo(cand, s.m.Size)
		return
	}

	if next, ok := a.NextPlanned(); ok && !snap.IsBlocked(next) {
		a.MoveTo(next, s.m.Size)
		return
	}

	// Cached path is exhausted or invalidated: replan from here.
	res := s.planWith(a.Algorithm, a.Heuristic, a.Pos, s.m.Goal, snap)
	if len(res.Path) > 1 {
		a.SetPlan(res.Path, res.Explored, res.Elapsed)
		a.MoveTo(res.Path[1], s.m.Size)
		return
	}

	if cand, ok := randomFreeNeighbor(a.Pos, snap, s.rng); ok {
		a.MoveTo(cand, s.m.Size)
		return
	}

	a.Active = false
	s.logInfof("agent %d is stuck at (%d,%d) and retires", a.ID, a.Pos.X, a.Pos.Y)
}

// planWith runs the agent-selected search algorithm with its heuristic
// choice, resolving "auto" against the current obstacle rate.
func (s *Simulation) planWith(algo agent.Algorithm, heuristic string, from, to maze.Position, m *maze.Maze) pathfind.Result {
	if algo == agent.AlgorithmAStar {
		return pathfind.AStar(m, from, to, pathfind.Choose(heuristic, s.rate))
	}
	return pathfind.BFS(m, from, to)
}

// leadingAgent returns the active agent closest to the goal by Euclidean
// distance, ties broken by iteration order. Recomputed every tick.
func (s *Simulation) leadingAgent() *agent.Agent {
	var leader *agent.Agent
	best := math.Inf(1)
	for _, a := range s.agents {
		if !a.Active {
			continue
		}
		d := pathfind.Euclidean(a.Pos, s.m.Goal)
		if d < best {
			best = d
			leader = a
		}
	}
	return leader
}

func (s *Simulation) allInactive() bool {
	for _, a := range s.agents {
		if a.Active {
			return false
		}
	}
	return true
}

// finish stops the run, ranks the agents that ended on the goal cell and
// folds the outcome into the rolling scoreboard.
func (s *Simulation) finish() {
	s.state = StateStopped
	s.ranking = rankFinishers(s.agents, s.m.Goal)

	winnerID := 0
	if len(s.ranking) > 0 {
		winnerID = s.ranking[0].AgentID
		s.logInfof("run finished after %d ticks, winner: agent %d (%d steps)",
			s.ticks, winnerID, s.ranking[0].Steps)
	} else {
		s.logInfof("run finished after %d ticks with no agent on the goal", s.ticks)
	}
	s.board.Record(s.agents, winnerID)
}

// Pause halts tick processing. Ticks delivered while paused are dropped, so
// resuming continues from the exact prior state.
func (s *Simulation) Pause() {
	s.Lock()
	defer s.Unlock()
	if s.state == StateRunning {
		s.state = StatePaused
	}
}

// Resume continues a paused run.
func (s *Simulation) Resume() {
	s.Lock()
	defer s.Unlock()
	if s.state == StatePaused {
		s.state = StateRunning
	}
}

// Reset discards all agents, regenerates the maze from the stored
// configuration and starts a fresh run. The rolling scoreboard survives
// resets.
func (s *Simulation) Reset() error {
	s.Lock()
	defer s.Unlock()

	m, err := maze.Generate(maze.GenConfig{
		Size:         s.cfg.Size,
		ObstacleRate: s.cfg.ObstacleRate,
		Start:        s.cfg.Start,
		Goal:         s.cfg.Goal,
		Rand:         s.rng,
	})
	if err != nil {
		return err
	}
	s.m = m
	s.rate = s.cfg.ObstacleRate
	s.ticks = 0
	s.state = StateRunning
	s.spawnAgents()
	s.logInfof("simulation reset with a fresh %dx%d maze", s.cfg.Size, s.cfg.Size)
	return nil
}

// State returns the current lifecycle state.
func (s *Simulation) State() State {
	s.RLock()
	defer s.RUnlock()
	return s.state
}

// Results returns the rolling per-agent statistics rows.
func (s *Simulation) Results() []CompetitionResult {
	s.RLock()
	defer s.RUnlock()
	return s.board.Rows()
}

func (s *Simulation) logInfof(format string, args ...any) {
	s.logger.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, fmt.Sprintf(format, args...))
}

// randomFreeNeighbor picks uniformly among the in-bounds, non-obstacle
// orthogonal neighbors of pos.
func randomFreeNeighbor(pos maze.Position, m *maze.Maze, rng *rand.Rand) (maze.Position, bool) {
	var free []maze.Position
	for _, n := range pos.Neighbors() {
		if !m.IsBlocked(n) {
			free = append(free, n)
		}
	}
	if len(free) == 0 {
		return maze.Position{}, false
	}
	return free[rng.Intn(len(free))], true
}
