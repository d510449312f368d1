package pathfind

import (
	"time"

	"github.com/beka-birhanu/micromouse-arena/maze"
)

// Result carries the outcome of one planning call. Path runs from start to
// goal inclusive and is empty when the goal is unreachable or the input was
// invalid. Explored lists expanded nodes in visitation order; it exists for
// display and statistics only.
type Result struct {
	Path     []maze.Position
	Explored []maze.Position
	Elapsed  time.Duration
}

// Found reports whether the search reached the goal.
func (r Result) Found() bool {
	return len(r.Path) > 0
}

// validInput rejects degenerate grids and malformed endpoints before a search
// touches them. Blocked endpoints simply make the goal unreachable.
func validInput(m *maze.Maze, start, goal maze.Position) bool {
	if m == nil || m.Size < 2 {
		return false
	}
	return m.InBound(start) && m.InBound(goal)
}

// clampPath forces every reconstructed waypoint into grid bounds, defending
// against off-by-one mistakes in path assembly.
func clampPath(path []maze.Position, size int) []maze.Position {
	for i := range path {
		path[i] = path[i].Clamp(size)
	}
	return path
}
