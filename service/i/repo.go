package i

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

var (
	// ErrMazeNotFound is returned by repositories when no maze has the requested ID.
	ErrMazeNotFound = errors.New("maze not found")
)

// MazeRecord is a stored maze together with its bookkeeping.
type MazeRecord struct {
	ID        uuid.UUID
	Version   int64 // Incremented on every committed mutation
	Maze      *maze.WallMaze
	UpdatedAt time.Time
}

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or updates a maze in the repository.
	Save(ctx context.Context, record *MazeRecord) error

	// ByID retrieves a maze by its unique ID.
	// Returns ErrMazeNotFound if the maze does not exist.
	ByID(ctx context.Context, id uuid.UUID) (*MazeRecord, error)

	// Delete removes a maze.
	// Returns ErrMazeNotFound if the maze does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
