package maze

import (
	"errors"

	"github.com/beka-birhanu/vinom-maze/pathfinder"
)

// Coordinate and wall validation errors.
var (
	ErrInvalidDimensions  = errors.New("maze dimensions must be positive")
	ErrOutOfBounds        = errors.New("coordinate is out of bounds")
	ErrOnExteriorBoundary = errors.New("wall would be on the edge of the maze")
	ErrCannotMove         = errors.New("move would leave the maze")
	ErrNotAdjacent        = errors.New("positions are not adjacent")
	ErrSamePosition       = errors.New("positions are the same")
)

// Maze construction and mutation errors.
var (
	ErrSameStartEnd        = errors.New("start position cannot be the same as end position")
	ErrUnsolvable          = errors.New("maze has no path from start to end")
	ErrDuplicateWall       = errors.New("wall already exists in the maze")
	ErrWallNotFound        = errors.New("wall not found in the maze")
	ErrWouldMakeUnsolvable = errors.New("change would make the maze unsolvable")

	// ErrNoPath is what Solve reports when the end cannot be reached.
	ErrNoPath = pathfinder.ErrNoPath
)
