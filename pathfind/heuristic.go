/*
Package pathfind implements the two searches agents plan with: breadth-first
search as the unweighted baseline and A* guided by one of three interchangeable
distance heuristics.

Both searches share the same movement model: four-directional moves of unit
cost on a bounded grid with impassable obstacle cells. An unreachable goal is
a normal outcome represented by an empty path, never an error.
*/
package pathfind

import (
	"math"

	"github.com/beka-birhanu/micromouse-arena/maze"
)

// Heuristic names accepted from the configuration surface.
const (
	HeuristicAuto      = "auto"
	HeuristicManhattan = "manhattan"
	HeuristicEuclidean = "euclidean"
	HeuristicDiagonal  = "diagonal"
)

// Heuristic estimates the remaining distance between two positions. All three
// built-in heuristics are admissible for 4-directional unit-cost movement.
type Heuristic func(a, b maze.Position) float64

// Manhattan returns |dx| + |dy|.
func Manhattan(a, b maze.Position) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// Euclidean returns sqrt(dx² + dy²).
func Euclidean(a, b maze.Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Diagonal returns the octile distance D·(|dx|+|dy|) + (D2−2D)·min(|dx|,|dy|)
// with D = 1 and D2 = √2.
func Diagonal(a, b maze.Position) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	return (dx + dy) + (math.Sqrt2-2)*math.Min(dx, dy)
}

// ForRate maps an obstacle density to a heuristic. This is a tuning policy
// for estimate quality on denser mazes, not a correctness requirement: all
// three remain admissible.
func ForRate(rate float64) Heuristic {
	switch {
	case rate < 0.2:
		return Manhattan
	case rate < 0.4:
		return Euclidean
	default:
		return Diagonal
	}
}

// ByName resolves an explicit heuristic name. The second return is false for
// unknown names, including "auto" (which needs a rate; see Choose).
func ByName(name string) (Heuristic, bool) {
	switch name {
	case HeuristicManhattan:
		return Manhattan, true
	case HeuristicEuclidean:
		return Euclidean, true
	case HeuristicDiagonal:
		return Diagonal, true
	default:
		return nil, false
	}
}

// Choose resolves a heuristic by name, falling back to the density policy for
// "auto", empty or unknown names.
func Choose(name string, rate float64) Heuristic {
	if h, ok := ByName(name); ok {
		return h
	}
	return ForRate(rate)
}
