package maze

// Cell represents the authoritative state of a single grid cell.
type Cell uint8

const (
	// Empty is a walkable cell.
	Empty Cell = iota
	// Obstacle is an impassable cell.
	Obstacle
	// Start marks the designated start cell. Walkable.
	Start
	// Goal marks the designated goal cell. Walkable.
	Goal
)

// Walkable reports whether an agent may occupy the cell.
func (c Cell) Walkable() bool {
	return c != Obstacle
}

// String returns a single-character representation used by Maze.String.
func (c Cell) String() string {
	switch c {
	case Obstacle:
		return "#"
	case Start:
		return "S"
	case Goal:
		return "G"
	default:
		return "."
	}
}
