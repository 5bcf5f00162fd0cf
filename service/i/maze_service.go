package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// CreateMaze describes a maze to create.
type CreateMaze struct {
	Width  int
	Height int
	Start  maze.Position
	End    maze.Position
	Walls  []maze.Wall
}

// MazeService exposes the maze use-cases to transports.
type MazeService interface {
	// Create stores a new maze and returns it with an edit token for it.
	Create(ctx context.Context, req CreateMaze) (*MazeRecord, string, error)
	Get(ctx context.Context, id uuid.UUID) (*MazeRecord, error)
	// Solve returns the maze together with a shortest path from its start to its end.
	Solve(ctx context.Context, id uuid.UUID) (*MazeRecord, []maze.Position, error)
	AddWall(ctx context.Context, id uuid.UUID, w maze.Wall) (*MazeRecord, error)
	RemoveWall(ctx context.Context, id uuid.UUID, w maze.Wall) (*MazeRecord, error)
	MoveStart(ctx context.Context, id uuid.UUID, p maze.Position) (*MazeRecord, error)
	MoveEnd(ctx context.Context, id uuid.UUID, p maze.Position) (*MazeRecord, error)
	Flip(ctx context.Context, id uuid.UUID) (*MazeRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Events(ctx context.Context, id uuid.UUID, limit int64) ([]Event, error)
}
