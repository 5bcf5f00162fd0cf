package maze

import (
	"fmt"
)

// Grid holds the fixed dimensions every position and wall of a maze is validated against.
type Grid struct {
	Width  int // Number of columns (x runs 0..Width-1, left to right)
	Height int // Number of rows (y runs 0..Height-1, top to bottom)
}

// NewGrid returns a grid of the given dimensions.
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// Position is a cell coordinate inside a grid.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// MinDistance returns the Manhattan distance between p and q.
func (p Position) MinDistance(q Position) int {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

// MinDistance is the Manhattan heuristic used by the solver.
func MinDistance(p, q Position) int {
	return p.MinDistance(q)
}

// NewPosition validates x and y against the grid.
func (g Grid) NewPosition(x, y int) (Position, error) {
	if x < 0 || x >= g.Width {
		return Position{}, fmt.Errorf("%w: x coordinate %d for width %d", ErrOutOfBounds, x, g.Width)
	}
	if y < 0 || y >= g.Height {
		return Position{}, fmt.Errorf("%w: y coordinate %d for height %d", ErrOutOfBounds, y, g.Height)
	}
	return Position{X: x, Y: y}, nil
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// AdjacentPositions returns the in-bounds neighbours of p, ordered left, right, up, down.
func (g Grid) AdjacentPositions(p Position) []Position {
	positions := make([]Position, 0, 4)
	for _, d := range adjacencyOrder {
		if next, err := g.ShiftedBy(p, d); err == nil {
			positions = append(positions, next)
		}
	}
	return positions
}

// AdjacentTo reports whether q is a grid neighbour of p. A position is never adjacent to itself.
func (g Grid) AdjacentTo(p, q Position) bool {
	if !g.Contains(p) || !g.Contains(q) {
		return false
	}
	return p.MinDistance(q) == 1
}

// ShiftedBy returns the neighbour of p in direction d.
func (g Grid) ShiftedBy(p Position, d Direction) (Position, error) {
	delta, ok := directionDeltas[d]
	if !ok {
		return Position{}, fmt.Errorf("unknown direction %d", d)
	}
	next := Position{X: p.X + delta.X, Y: p.Y + delta.Y}
	if !g.Contains(next) {
		return Position{}, fmt.Errorf("%w: cannot move %s from position %s in a %dx%d maze", ErrCannotMove, d, p, g.Width, g.Height)
	}
	return next, nil
}

// Direction is one of the four cardinal moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var (
	// Directions lists every direction.
	Directions = []Direction{Up, Down, Left, Right}

	adjacencyOrder = []Direction{Left, Right, Up, Down}

	directionDeltas = map[Direction]Position{
		Up:    {X: 0, Y: -1},
		Down:  {X: 0, Y: 1},
		Left:  {X: -1, Y: 0},
		Right: {X: 1, Y: 0},
	}

	directionNames = map[Direction]string{
		Up:    "up",
		Down:  "down",
		Left:  "left",
		Right: "right",
	}
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
