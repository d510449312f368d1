/*
Package maze provides the square cell grid the simulation runs on.

It defines the `Maze` structure, a size×size matrix of `Cell` values plus the
designated start and goal positions, together with bounds utilities, a
solvability-preserving randomized generator and a strict text importer.

The package maintains one invariant: a path always exists between start and
goal. Mutations that could violate it are verified and rolled back.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const minDimension = 2

var (
	ErrInvalidDimension = errors.New("maze dimension is not big enough")
	ErrInvalidRate      = errors.New("obstacle rate must be between 0 and 1")
	ErrOutOfBounds      = errors.New("position is out of the maze")
)

// Maze is a square grid of cells with fixed start and goal positions.
type Maze struct {
	Size  int
	Grid  [][]Cell
	Start Position
	Goal  Position
}

// New creates an all-empty maze of the given size. Start defaults to the
// origin and goal to the grid center.
func New(size int) (*Maze, error) {
	if size < minDimension {
		return nil, ErrInvalidDimension
	}

	grid := make([][]Cell, size)
	for y := range grid {
		grid[y] = make([]Cell, size)
	}

	m := &Maze{
		Size:  size,
		Grid:  grid,
		Start: Position{X: 0, Y: 0},
		Goal:  Position{X: size / 2, Y: size / 2},
	}
	m.markEndpoints()
	return m, nil
}

// InBound reports whether p lies inside the grid.
func (m *Maze) InBound(p Position) bool {
	return p.X >= 0 && p.X < m.Size && p.Y >= 0 && p.Y < m.Size
}

// CellAt returns the cell at p. Out-of-bounds positions read as Obstacle so
// that callers treat the grid boundary as impassable.
func (m *Maze) CellAt(p Position) Cell {
	if !m.InBound(p) {
		return Obstacle
	}
	return m.Grid[p.Y][p.X]
}

// SetCell writes the cell at p, rejecting out-of-bounds positions.
func (m *Maze) SetCell(p Position, c Cell) error {
	if !m.InBound(p) {
		return ErrOutOfBounds
	}
	m.Grid[p.Y][p.X] = c
	return nil
}

// IsBlocked reports whether p is outside the grid or an obstacle.
func (m *Maze) IsBlocked(p Position) bool {
	return !m.CellAt(p).Walkable()
}

// ObstacleCount returns the number of obstacle cells.
func (m *Maze) ObstacleCount() int {
	count := 0
	for _, row := range m.Grid {
		for _, c := range row {
			if c == Obstacle {
				count++
			}
		}
	}
	return count
}

// ForceEmpty clears the cell at p unless it is the start or goal marker.
func (m *Maze) ForceEmpty(p Position) {
	if !m.InBound(p) || p == m.Start || p == m.Goal {
		return
	}
	m.Grid[p.Y][p.X] = Empty
}

// Clone returns a deep copy. Used to take an immutable grid snapshot at the
// start of a tick so every agent's strategy sees a consistent maze.
func (m *Maze) Clone() *Maze {
	grid := make([][]Cell, m.Size)
	for y := range grid {
		grid[y] = make([]Cell, m.Size)
		copy(grid[y], m.Grid[y])
	}
	return &Maze{Size: m.Size, Grid: grid, Start: m.Start, Goal: m.Goal}
}

// markEndpoints stamps the start and goal cell types onto the grid.
func (m *Maze) markEndpoints() {
	m.Grid[m.Start.Y][m.Start.X] = Start
	m.Grid[m.Goal.Y][m.Goal.X] = Goal
}

// bfsPath runs a breadth-first search between two cells and returns the
// shortest path inclusive of both ends, or nil when disconnected. The maze
// generator and invariant checks use this internally; the instrumented
// searches that agents run live in the pathfind package.
func (m *Maze) bfsPath(from, to Position) []Position {
	if !m.InBound(from) || !m.InBound(to) || m.IsBlocked(from) || m.IsBlocked(to) {
		return nil
	}
	if from == to {
		return []Position{from}
	}

	parent := make(map[Position]Position, m.Size*m.Size)
	parent[from] = from
	queue := []Position{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range cur.Neighbors() {
			if m.IsBlocked(next) {
				continue
			}
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			if next == to {
				return m.assemblePath(parent, from, to)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

func (m *Maze) assemblePath(parent map[Position]Position, from, to Position) []Position {
	var rev []Position
	for cur := to; ; cur = parent[cur] {
		rev = append(rev, cur)
		if cur == from {
			break
		}
	}
	path := make([]Position, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

// Solvable reports whether a path exists between start and goal.
func (m *Maze) Solvable() bool {
	return len(m.bfsPath(m.Start, m.Goal)) > 0
}

// String provides a textual representation of the maze grid.
func (m *Maze) String() string {
	var b strings.Builder
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			b.WriteString(m.Grid[y][x].String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// validatePosition checks that p can serve as a start or goal coordinate.
func validatePosition(p Position, size int) error {
	if p.X < 0 || p.X >= size || p.Y < 0 || p.Y >= size {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, p.X, p.Y, size, size)
	}
	return nil
}
