package maze

import (
	"fmt"
	"strings"
)

// Parse imports a maze from a rectangular text block of '0' (empty) and '1'
// (obstacle) characters. Every row must have the same length as the row
// count. Start and goal must land on empty cells; the resulting maze must be
// solvable. Any mismatch is reported as a descriptive error without partial
// state.
func Parse(text string, start, goal Position) (*Maze, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	size := len(lines)
	if size < minDimension {
		return nil, fmt.Errorf("maze text has %d rows, need at least %d", size, minDimension)
	}

	grid := make([][]Cell, size)
	for y, line := range lines {
		if len(line) != size {
			return nil, fmt.Errorf("row %d has %d characters, expected %d", y, len(line), size)
		}
		grid[y] = make([]Cell, size)
		for x, ch := range line {
			switch ch {
			case '0':
				grid[y][x] = Empty
			case '1':
				grid[y][x] = Obstacle
			default:
				return nil, fmt.Errorf("row %d column %d: invalid character %q, expected '0' or '1'", y, x, ch)
			}
		}
	}

	if err := validatePosition(start, size); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := validatePosition(goal, size); err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	if grid[start.Y][start.X] == Obstacle {
		return nil, fmt.Errorf("start (%d,%d) is an obstacle", start.X, start.Y)
	}
	if grid[goal.Y][goal.X] == Obstacle {
		return nil, fmt.Errorf("goal (%d,%d) is an obstacle", goal.X, goal.Y)
	}

	m := &Maze{Size: size, Grid: grid, Start: start, Goal: goal}
	if !m.Solvable() {
		return nil, fmt.Errorf("imported maze has no path from (%d,%d) to (%d,%d)", start.X, start.Y, goal.X, goal.Y)
	}
	m.markEndpoints()
	return m, nil
}
