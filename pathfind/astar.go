package pathfind

import (
	"container/heap"
	"math"
	"time"

	"github.com/beka-birhanu/micromouse-arena/maze"
)

// node is one entry in the A* open set.
type node struct {
	pos   maze.Position
	g     float64
	f     float64
	seq   int // insertion order, used as the stable tie-break
	index int // heap index, maintained by the queue
}

// openQueue is a min-heap over f, breaking ties by insertion order so equal-f
// expansions are deterministic.
type openQueue []*node

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openQueue) Push(x any) {
	n := x.(*node)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *openQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	n.index = -1
	*q = old[:len(old)-1]
	return n
}

// AStar finds a path between start and goal guided by h, with f = g + h and
// unit step cost. A node already open with a lower-or-equal g is left alone;
// a strictly lower g re-parents the open entry in place. Expanded nodes go to
// the closed set and are never re-expanded. A NaN heuristic value is clamped
// to 0 rather than propagated.
func AStar(m *maze.Maze, start, goal maze.Position, h Heuristic) Result {
	began := time.Now()
	res := Result{}

	if !validInput(m, start, goal) || m.IsBlocked(start) || m.IsBlocked(goal) {
		res.Elapsed = time.Since(began)
		return res
	}
	if h == nil {
		h = Manhattan
	}

	estimate := func(p maze.Position) float64 {
		v := h(p, goal)
		if math.IsNaN(v) {
			return 0
		}
		return v
	}

	seq := 0
	startNode := &node{pos: start, g: 0, f: estimate(start), seq: seq}
	open := openQueue{startNode}
	heap.Init(&open)

	inOpen := map[maze.Position]*node{start: startNode}
	parent := map[maze.Position]maze.Position{start: start}
	closed := make(map[maze.Position]struct{}, m.Size*m.Size)

	for open.Len() > 0 {
		cur := heap.Pop(&open).(*node)
		delete(inOpen, cur.pos)
		if _, done := closed[cur.pos]; done {
			continue
		}
		closed[cur.pos] = struct{}{}
		res.Explored = append(res.Explored, cur.pos)

		if cur.pos == goal {
			res.Path = clampPath(reconstruct(parent, start, goal), m.Size)
			break
		}

		for _, next := range cur.pos.Neighbors() {
			if m.IsBlocked(next) {
				continue
			}
			if _, done := closed[next]; done {
				continue
			}

			g := cur.g + 1
			if existing, ok := inOpen[next]; ok {
				if g >= existing.g {
					continue
				}
				existing.g = g
				existing.f = g + estimate(next)
				parent[next] = cur.pos
				heap.Fix(&open, existing.index)
				continue
			}

			seq++
			n := &node{pos: next, g: g, f: g + estimate(next), seq: seq}
			heap.Push(&open, n)
			inOpen[next] = n
			parent[next] = cur.pos
		}
	}

	res.Elapsed = time.Since(began)
	return res
}
