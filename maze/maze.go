/*
Package maze provides rectangular mazes whose cells are separated by thin walls.

A WallMaze owns a start cell, an end cell and a set of interior walls. Walls
sit down of (Horizontal) or right of (Vertical) the cell they are placed at;
walls on the outer edge of the grid are not representable.

A WallMaze is always solvable. Every mutation that could break that (adding a
wall, moving the start or the end) is validated by searching for a path and is
rolled back when none exists, so a failed call leaves the maze untouched.

A WallMaze is not safe for concurrent use; callers sharing one must serialise
access to it.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/pathfinder"
)

// WallMaze is a solvable grid maze with thin interior walls.
type WallMaze struct {
	grid  Grid     // Fixed dimensions of the maze
	start Position // Cell the path starts from
	end   Position // Cell the path must reach
	walls WallSet  // Interior walls currently placed
}

var _ pathfinder.Graph[Position] = &WallMaze{}

// New creates a maze without walls.
func New(grid Grid, start, end Position) (*WallMaze, error) {
	if _, err := NewGrid(grid.Width, grid.Height); err != nil {
		return nil, err
	}
	if err := validateEndpoint(grid, start); err != nil {
		return nil, err
	}
	if err := validateEndpoint(grid, end); err != nil {
		return nil, err
	}
	if start == end {
		return nil, fmt.Errorf("%w: both at %s", ErrSameStartEnd, start)
	}

	return &WallMaze{
		grid:  grid,
		start: start,
		end:   end,
		walls: make(WallSet),
	}, nil
}

// NewWithWalls creates a maze with an initial set of walls.
// It fails if any wall is invalid or repeated, or if the walls leave no path from start to end.
func NewWithWalls(grid Grid, start, end Position, walls []Wall) (*WallMaze, error) {
	m, err := New(grid, start, end)
	if err != nil {
		return nil, err
	}

	for _, w := range walls {
		valid, err := grid.NewWall(w.X, w.Y, w.Orientation)
		if err != nil {
			return nil, err
		}
		if m.walls.Contains(valid) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWall, valid)
		}
		m.walls[valid] = struct{}{}
	}

	if _, err := m.Solve(); err != nil {
		if errors.Is(err, ErrNoPath) {
			return nil, fmt.Errorf("%w: from %s to %s", ErrUnsolvable, start, end)
		}
		return nil, err
	}
	return m, nil
}

func validateEndpoint(g Grid, p Position) error {
	_, err := g.NewPosition(p.X, p.Y)
	return err
}

// Grid returns the maze dimensions.
func (m *WallMaze) Grid() Grid { return m.grid }

// Start returns the start cell.
func (m *WallMaze) Start() Position { return m.start }

// End returns the end cell.
func (m *WallMaze) End() Position { return m.end }

// Walls returns a sorted copy of the placed walls.
func (m *WallMaze) Walls() []Wall { return m.walls.Sorted() }

// HasWall reports whether w is placed.
func (m *WallMaze) HasWall(w Wall) bool { return m.walls.Contains(w) }

// Clone returns an independent copy of the maze.
func (m *WallMaze) Clone() *WallMaze {
	walls := make(WallSet, len(m.walls))
	for w := range m.walls {
		walls[w] = struct{}{}
	}
	return &WallMaze{grid: m.grid, start: m.start, end: m.end, walls: walls}
}

// Cell returns the wall view of the cell at pos.
func (m *WallMaze) Cell(pos Position) (Cell, error) {
	if err := validateEndpoint(m.grid, pos); err != nil {
		return Cell{}, err
	}
	return cellAt(m.grid, m.walls, pos), nil
}

// Adjacent implements pathfinder.Graph.
func (m *WallMaze) Adjacent(p Position) []Position {
	return m.grid.AdjacentPositions(p)
}

// Separated implements pathfinder.Graph.
func (m *WallMaze) Separated(a, b Position) (bool, error) {
	return SeparatedByWall(m.grid, a, b, m.walls)
}

// Solve returns a shortest path from start to end, both inclusive.
func (m *WallMaze) Solve() ([]Position, error) {
	return pathfinder.BestFirst[Position](m, m.start, m.end, MinDistance)
}

func (m *WallMaze) solvable() bool {
	_, err := m.Solve()
	return err == nil
}

// AddWall places w if it is valid, not already present and keeps the maze solvable.
func (m *WallMaze) AddWall(w Wall) error {
	valid, err := m.grid.NewWall(w.X, w.Y, w.Orientation)
	if err != nil {
		return err
	}
	if m.walls.Contains(valid) {
		return fmt.Errorf("%w: %s", ErrDuplicateWall, valid)
	}

	m.walls[valid] = struct{}{}
	if _, err := m.Solve(); err != nil {
		delete(m.walls, valid)
		if errors.Is(err, ErrNoPath) {
			return fmt.Errorf("%w: %s", ErrWouldMakeUnsolvable, valid)
		}
		return err
	}
	return nil
}

// RemoveWall removes w. Removing a wall never breaks solvability.
func (m *WallMaze) RemoveWall(w Wall) error {
	if !m.walls.Contains(w) {
		return fmt.Errorf("%w: %s", ErrWallNotFound, w)
	}
	delete(m.walls, w)
	return nil
}

// MoveStart moves the start to p if p can reach the current start.
func (m *WallMaze) MoveStart(p Position) error {
	if err := validateEndpoint(m.grid, p); err != nil {
		return err
	}
	if p == m.start {
		return nil
	}
	if p == m.end {
		return fmt.Errorf("%w: %s", ErrSameStartEnd, p)
	}

	probe := &WallMaze{grid: m.grid, start: p, end: m.start, walls: m.walls}
	if !probe.solvable() {
		return fmt.Errorf("%w: new start %s", ErrWouldMakeUnsolvable, p)
	}
	m.start = p
	return nil
}

// MoveEnd moves the end to p if p can reach the current end.
func (m *WallMaze) MoveEnd(p Position) error {
	m.FlipStartEnd()
	defer m.FlipStartEnd()

	if err := m.MoveStart(p); err != nil {
		if errors.Is(err, ErrWouldMakeUnsolvable) {
			return fmt.Errorf("%w: new end %s", ErrWouldMakeUnsolvable, p)
		}
		return err
	}
	return nil
}

// FlipStartEnd swaps the start and the end. Walls are symmetric so the maze stays solvable.
func (m *WallMaze) FlipStartEnd() {
	m.start, m.end = m.end, m.start
}

// String provides a textual representation of the maze.
func (m *WallMaze) String() string {
	return m.Render(nil)
}

// Render draws the maze marking the start (S), the end (E) and the cells of path (*).
func (m *WallMaze) Render(path []Position) string {
	onPath := make(map[Position]struct{}, len(path))
	for _, p := range path {
		onPath[p] = struct{}{}
	}

	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.grid.Width) + "\n")

	for y := 0; y < m.grid.Height; y++ {
		cellRow := "|"
		wallRow := "+"
		for x := 0; x < m.grid.Width; x++ {
			pos := Position{X: x, Y: y}
			cell := cellAt(m.grid, m.walls, pos)

			switch _, marked := onPath[pos]; {
			case pos == m.start:
				cellRow += " S "
			case pos == m.end:
				cellRow += " E "
			case marked:
				cellRow += " * "
			default:
				cellRow += "   "
			}

			if cell.EastWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}

			if cell.SouthWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(cellRow + "\n")
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
