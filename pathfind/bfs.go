package pathfind

import (
	"time"

	"github.com/beka-birhanu/micromouse-arena/maze"
)

// BFS finds the shortest path in step count between start and goal using a
// FIFO frontier with parent back-pointers for reconstruction.
func BFS(m *maze.Maze, start, goal maze.Position) Result {
	began := time.Now()
	res := Result{}

	if !validInput(m, start, goal) || m.IsBlocked(start) || m.IsBlocked(goal) {
		res.Elapsed = time.Since(began)
		return res
	}

	parent := make(map[maze.Position]maze.Position, m.Size*m.Size)
	parent[start] = start
	queue := []maze.Position{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Explored = append(res.Explored, cur)

		if cur == goal {
			res.Path = clampPath(reconstruct(parent, start, goal), m.Size)
			break
		}

		for _, next := range cur.Neighbors() {
			if m.IsBlocked(next) {
				continue
			}
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			queue = append(queue, next)
		}
	}

	res.Elapsed = time.Since(began)
	return res
}

// reconstruct walks parent pointers back from goal to start and reverses the
// chain into a start→goal path.
func reconstruct(parent map[maze.Position]maze.Position, start, goal maze.Position) []maze.Position {
	var rev []maze.Position
	for cur := goal; ; cur = parent[cur] {
		rev = append(rev, cur)
		if cur == start {
			break
		}
	}
	path := make([]maze.Position, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}
