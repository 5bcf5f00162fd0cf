package maze

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Orientation tells which pair of cells a wall separates.
type Orientation int

const (
	// Horizontal walls at (x, y) separate (x, y) from (x, y+1).
	Horizontal Orientation = iota
	// Vertical walls at (x, y) separate (x, y) from (x+1, y).
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// MarshalText encodes the orientation by name.
func (o Orientation) MarshalText() ([]byte, error) {
	if o != Horizontal && o != Vertical {
		return nil, fmt.Errorf("unknown orientation %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText accepts "horizontal" or "vertical" in any case.
func (o *Orientation) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "horizontal":
		*o = Horizontal
	case "vertical":
		*o = Vertical
	default:
		return fmt.Errorf("unknown orientation %q", text)
	}
	return nil
}

// Wall is a thin wall placed down (Horizontal) or right (Vertical) of the cell at X, Y.
type Wall struct {
	X           int         `json:"x"`
	Y           int         `json:"y"`
	Orientation Orientation `json:"orientation"`
}

func (w Wall) String() string {
	return fmt.Sprintf("%s wall at (%d, %d)", w.Orientation, w.X, w.Y)
}

// Cells returns the two cells the wall separates.
func (w Wall) Cells() [2]Position {
	from := Position{X: w.X, Y: w.Y}
	if w.Orientation == Vertical {
		return [2]Position{from, {X: w.X + 1, Y: w.Y}}
	}
	return [2]Position{from, {X: w.X, Y: w.Y + 1}}
}

// NewWall validates an interior wall. Walls on the outer edge of the grid are rejected.
func (g Grid) NewWall(x, y int, o Orientation) (Wall, error) {
	if o != Horizontal && o != Vertical {
		return Wall{}, fmt.Errorf("unknown orientation %d", int(o))
	}
	if _, err := g.NewPosition(x, y); err != nil {
		return Wall{}, err
	}
	if o == Vertical && x == g.Width-1 {
		return Wall{}, fmt.Errorf("%w: vertical wall at x %d for width %d", ErrOnExteriorBoundary, x, g.Width)
	}
	if o == Horizontal && y == g.Height-1 {
		return Wall{}, fmt.Errorf("%w: horizontal wall at y %d for height %d", ErrOnExteriorBoundary, y, g.Height)
	}
	return Wall{X: x, Y: y, Orientation: o}, nil
}

// WallFromPosition builds the wall down of or right of pos.
func (g Grid) WallFromPosition(pos Position, o Orientation) (Wall, error) {
	return g.NewWall(pos.X, pos.Y, o)
}

// WallBetween returns the unique wall slot between two adjacent positions.
func (g Grid) WallBetween(p, q Position) (Wall, error) {
	if p == q {
		return Wall{}, fmt.Errorf("%w: %s", ErrSamePosition, p)
	}
	if !g.AdjacentTo(p, q) {
		return Wall{}, fmt.Errorf("%w: %s and %s", ErrNotAdjacent, p, q)
	}
	if p.X != q.X {
		return g.NewWall(min(p.X, q.X), p.Y, Vertical)
	}
	return g.NewWall(p.X, min(p.Y, q.Y), Horizontal)
}

// WallSet is an unordered set of unique walls.
type WallSet map[Wall]struct{}

// Contains reports whether w is in the set.
func (ws WallSet) Contains(w Wall) bool {
	_, ok := ws[w]
	return ok
}

// Sorted returns the walls ordered by row, column and orientation.
func (ws WallSet) Sorted() []Wall {
	walls := make([]Wall, 0, len(ws))
	for w := range ws {
		walls = append(walls, w)
	}
	slices.SortFunc(walls, compareWalls)
	return walls
}

func compareWalls(a, b Wall) int {
	return cmp.Or(
		cmp.Compare(a.Y, b.Y),
		cmp.Compare(a.X, b.X),
		cmp.Compare(a.Orientation, b.Orientation),
	)
}

// SeparatedByWall reports whether the wall between the adjacent positions p and q is in walls.
func SeparatedByWall(g Grid, p, q Position, walls WallSet) (bool, error) {
	w, err := g.WallBetween(p, q)
	if err != nil {
		return false, err
	}
	return walls.Contains(w), nil
}
