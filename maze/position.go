package maze

// Position is a 0-indexed (x, y) grid coordinate. X grows rightward, Y grows
// downward, matching Grid[y][x] indexing.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Directions lists the four orthogonal moves in up, right, down, left order.
var Directions = [4]Position{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// Add returns the position offset by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Clamp forces the position into [0, size) on both axes.
func (p Position) Clamp(size int) Position {
	if p.X < 0 {
		p.X = 0
	}
	if p.X >= size {
		p.X = size - 1
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y >= size {
		p.Y = size - 1
	}
	return p
}

// Neighbors returns the orthogonal neighbors of p, unfiltered.
func (p Position) Neighbors() [4]Position {
	var out [4]Position
	for i, d := range Directions {
		out[i] = p.Add(d)
	}
	return out
}
