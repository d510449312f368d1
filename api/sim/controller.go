package simapi

import (
	"fmt"
	"net/http"

	"github.com/beka-birhanu/micromouse-arena/agent"
	"github.com/beka-birhanu/micromouse-arena/config"
	"github.com/beka-birhanu/micromouse-arena/pathfind"
	"github.com/beka-birhanu/micromouse-arena/service/i"
	"github.com/beka-birhanu/micromouse-arena/simulation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SimulationController serves the simulation session endpoints.
type SimulationController struct {
	runner i.SimulationRunner
}

// NewSimulationController initializes a SimulationController.
func NewSimulationController(runner i.SimulationRunner) (*SimulationController, error) {
	return &SimulationController{runner: runner}, nil
}

// Register registers the simulation routes.
func (sc *SimulationController) Register(route *gin.RouterGroup) {
	sims := route.Group("/simulations")
	{
		sims.POST("/", sc.create)
		sims.POST("/import", sc.createFromText)
		sims.GET("/:ID", sc.snapshot)
		sims.POST("/:ID/pause", sc.command((*SimulationController).pauseSession))
		sims.POST("/:ID/resume", sc.command((*SimulationController).resumeSession))
		sims.POST("/:ID/reset", sc.command((*SimulationController).resetSession))
		sims.DELETE("/:ID", sc.command((*SimulationController).stopSession))
		sims.GET("/:ID/results", sc.results)
	}
	route.POST("/experiments/heuristics", sc.compareHeuristics)
}

// create handles session creation from a configuration.
func (sc *SimulationController) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Size == 0 {
		request.Size = config.Envs.GridSize
	}
	if request.ObstacleRate == 0 {
		request.ObstacleRate = config.Envs.ObstacleRate
	}
	applyDefaults(&request.Agents, &request.Seed, &request.DriftEvery)

	cfg, err := simulationConfig(request.Size, request.ObstacleRate, request.Agents,
		request.SharedStart, request.Start, request.Goal, request.Seed, request.DriftEvery)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := sc.runner.Create(cfg)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, CreateResponse{ID: id.String()})
}

// createFromText handles session creation from an imported maze text block.
func (sc *SimulationController) createFromText(ctx *gin.Context) {
	var request ImportRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	applyDefaults(&request.Agents, &request.Seed, &request.DriftEvery)

	// Size comes from the parsed text; pass a placeholder through validation.
	cfg, err := simulationConfig(2, request.ObstacleRate, request.Agents,
		request.SharedStart, request.Start, request.Goal, request.Seed, request.DriftEvery)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := sc.runner.CreateFromText(request.MazeText, cfg)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, CreateResponse{ID: id.String()})
}

// snapshot returns the live state of a session.
func (sc *SimulationController) snapshot(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	snap, err := sc.runner.Snapshot(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// results returns the rolling competition statistics of a session.
func (sc *SimulationController) results(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	rows, err := sc.runner.Results(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// compareHeuristics runs the heuristic-comparison batch routine.
func (sc *SimulationController) compareHeuristics(ctx *gin.Context) {
	var request ExperimentRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := simulation.CompareHeuristics(request.Size, request.Seed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// command wraps the id-addressed control endpoints.
func (sc *SimulationController) command(fn func(*SimulationController, uuid.UUID) error) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := sessionID(ctx)
		if !ok {
			return
		}
		if err := fn(sc, id); err != nil {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.Status(http.StatusNoContent)
	}
}

func (sc *SimulationController) pauseSession(id uuid.UUID) error  { return sc.runner.Pause(id) }
func (sc *SimulationController) resumeSession(id uuid.UUID) error { return sc.runner.Resume(id) }
func (sc *SimulationController) resetSession(id uuid.UUID) error  { return sc.runner.Reset(id) }
func (sc *SimulationController) stopSession(id uuid.UUID) error   { return sc.runner.Stop(id) }

// applyDefaults fills the request fields shared by both creation endpoints
// from the environment-driven configuration. A zero drift cadence means "use
// the default"; callers pass a negative value to disable drift.
func applyDefaults(agents *[]AgentRequest, seed *int64, driftEvery *int) {
	if len(*agents) == 0 {
		n := config.Envs.AgentCount
		if n < 1 {
			n = 1
		}
		// Zero-valued requests parse to greedy BFS agents.
		*agents = make([]AgentRequest, n)
	}
	if *seed == 0 {
		*seed = config.Envs.RandSeed
	}
	if *driftEvery == 0 {
		*driftEvery = config.Envs.DriftEveryTicks
	}
}

// sessionID parses the :ID route parameter, replying 400 on failure.
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

// simulationConfig converts request fields into a core configuration,
// validating the agent enums up front so malformed input aborts before any
// state is touched.
func simulationConfig(size int, rate float64, agents []AgentRequest, sharedStart bool,
	start, goal *PositionRequest, seed int64, driftEvery int) (simulation.Config, error) {

	cfg := simulation.Config{
		Size:         size,
		ObstacleRate: rate,
		SharedStart:  sharedStart,
		Start:        start.toPosition(),
		Goal:         goal.toPosition(),
		Seed:         seed,
		DriftEvery:   driftEvery,
	}

	for _, ar := range agents {
		strategy, err := agent.ParseStrategy(ar.Strategy)
		if err != nil {
			return simulation.Config{}, err
		}
		algorithm, err := agent.ParseAlgorithm(ar.Algorithm)
		if err != nil {
			return simulation.Config{}, err
		}
		heuristic := ar.Heuristic
		if heuristic == "" {
			heuristic = pathfind.HeuristicAuto
		}
		if heuristic != pathfind.HeuristicAuto {
			if _, ok := pathfind.ByName(heuristic); !ok {
				return simulation.Config{}, fmt.Errorf("unknown heuristic %q", heuristic)
			}
		}
		cfg.Agents = append(cfg.Agents, simulation.AgentConfig{
			Strategy:  strategy,
			Heuristic: heuristic,
			Algorithm: algorithm,
		})
	}
	return cfg, nil
}
