package maze

import (
	"math/rand"
	"time"
)

// maxGenerationRetries bounds the generate-verify-retry loop before the
// deterministic fallback maze is used.
const maxGenerationRetries = 10

// GenConfig configures randomized maze generation.
type GenConfig struct {
	Size         int
	ObstacleRate float64
	Start        *Position  // nil defaults to the origin
	Goal         *Position  // nil defaults to the grid center
	Rand         *rand.Rand // nil seeds from the current time
}

// Generate produces a solvable maze at the requested obstacle density.
//
// The layout is carved by randomized depth-first backtracking over a stride-2
// lattice, the cells on one shortest start→goal path are protected, and the
// obstacle count is then adjusted toward floor(size²·rate): candidate cells
// are walled one at a time and reverted whenever the maze would become
// unsolvable. Generation retries a bounded number of times and finally falls
// back to a minimal L-shaped corridor, so the returned maze is always
// solvable.
func Generate(cfg GenConfig) (*Maze, error) {
	if cfg.Size < minDimension {
		return nil, ErrInvalidDimension
	}
	if cfg.ObstacleRate < 0 || cfg.ObstacleRate > 1 {
		return nil, ErrInvalidRate
	}

	start := Position{X: 0, Y: 0}
	if cfg.Start != nil {
		start = *cfg.Start
	}
	goal := Position{X: cfg.Size / 2, Y: cfg.Size / 2}
	if cfg.Goal != nil {
		goal = *cfg.Goal
	}
	if err := validatePosition(start, cfg.Size); err != nil {
		return nil, err
	}
	if err := validatePosition(goal, cfg.Size); err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for depth := 0; depth <= maxGenerationRetries; depth++ {
		m := attempt(cfg.Size, cfg.ObstacleRate, start, goal, rng)
		if m != nil {
			return m, nil
		}
	}
	return fallbackCorridor(cfg.Size, start, goal), nil
}

// attempt runs one full carve-protect-densify cycle. It returns nil when the
// result fails the final solvability check.
func attempt(size int, rate float64, start, goal Position, rng *rand.Rand) *Maze {
	m := carve(size, start, goal, rng)

	spine := m.bfsPath(start, goal)
	if spine == nil {
		return nil
	}
	protected := make(map[Position]struct{}, len(spine))
	for _, p := range spine {
		protected[p] = struct{}{}
	}

	adjustDensity(m, rate, protected, rng)

	if m.bfsPath(start, goal) == nil {
		return nil
	}

	m.Start = start
	m.Goal = goal
	m.markEndpoints()
	return m
}

// carve produces a spanning corridor tree over the stride-2 lattice rooted at
// start, knocking out the intermediate wall cell of every move. The goal cell
// is forced empty regardless of lattice parity.
func carve(size int, start, goal Position, rng *rand.Rand) *Maze {
	grid := make([][]Cell, size)
	for y := range grid {
		grid[y] = make([]Cell, size)
		for x := range grid[y] {
			grid[y][x] = Obstacle
		}
	}
	m := &Maze{Size: size, Grid: grid, Start: start, Goal: goal}

	m.Grid[start.Y][start.X] = Empty
	visited := map[Position]struct{}{start: {}}
	stack := []Position{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var moves []Position
		for _, d := range Directions {
			next := Position{X: cur.X + 2*d.X, Y: cur.Y + 2*d.Y}
			if !m.InBound(next) {
				continue
			}
			if _, seen := visited[next]; !seen {
				moves = append(moves, d)
			}
		}

		if len(moves) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := moves[rng.Intn(len(moves))]
		wall := cur.Add(d)
		next := Position{X: cur.X + 2*d.X, Y: cur.Y + 2*d.Y}
		m.Grid[wall.Y][wall.X] = Empty
		m.Grid[next.Y][next.X] = Empty
		visited[next] = struct{}{}
		stack = append(stack, next)
	}

	m.Grid[goal.Y][goal.X] = Empty
	return m
}

// adjustDensity moves the obstacle count toward floor(size²·rate). Adding an
// obstacle is tentative: the cell is reverted if it disconnects start from
// goal. Removing obstacles cannot break solvability, so removals are applied
// directly. Protected cells are never walled.
func adjustDensity(m *Maze, rate float64, protected map[Position]struct{}, rng *rand.Rand) {
	target := int(float64(m.Size*m.Size) * rate)
	count := m.ObstacleCount()

	switch {
	case count < target:
		var candidates []Position
		for y := 0; y < m.Size; y++ {
			for x := 0; x < m.Size; x++ {
				p := Position{X: x, Y: y}
				if m.Grid[y][x] != Empty {
					continue
				}
				if _, ok := protected[p]; ok {
					continue
				}
				candidates = append(candidates, p)
			}
		}
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, p := range candidates {
			if count >= target {
				break
			}
			m.Grid[p.Y][p.X] = Obstacle
			if m.bfsPath(m.Start, m.Goal) == nil {
				m.Grid[p.Y][p.X] = Empty
				continue
			}
			count++
		}

	case count > target:
		var walls []Position
		for y := 0; y < m.Size; y++ {
			for x := 0; x < m.Size; x++ {
				if m.Grid[y][x] == Obstacle {
					walls = append(walls, Position{X: x, Y: y})
				}
			}
		}
		rng.Shuffle(len(walls), func(i, j int) {
			walls[i], walls[j] = walls[j], walls[i]
		})
		for _, p := range walls {
			if count <= target {
				break
			}
			m.Grid[p.Y][p.X] = Empty
			count--
		}
	}
}

// fallbackCorridor builds the deterministic minimal maze used when randomized
// generation fails to converge: an L-shaped corridor from start to goal,
// fully walled elsewhere.
func fallbackCorridor(size int, start, goal Position) *Maze {
	grid := make([][]Cell, size)
	for y := range grid {
		grid[y] = make([]Cell, size)
		for x := range grid[y] {
			grid[y][x] = Obstacle
		}
	}
	m := &Maze{Size: size, Grid: grid, Start: start, Goal: goal}

	x := start.X
	for {
		m.Grid[start.Y][x] = Empty
		if x == goal.X {
			break
		}
		if x < goal.X {
			x++
		} else {
			x--
		}
	}
	y := start.Y
	for {
		m.Grid[y][goal.X] = Empty
		if y == goal.Y {
			break
		}
		if y < goal.Y {
			y++
		} else {
			y--
		}
	}

	m.markEndpoints()
	return m
}
