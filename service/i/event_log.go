package i

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// EventType names a committed maze change.
type EventType string

const (
	EventCreated     EventType = "created"
	EventWallAdded   EventType = "wall_added"
	EventWallRemoved EventType = "wall_removed"
	EventStartMoved  EventType = "start_moved"
	EventEndMoved    EventType = "end_moved"
	EventFlipped     EventType = "flipped"
)

// Event records one committed mutation.
type Event struct {
	Type     EventType      `json:"type"`
	Version  int64          `json:"version"`
	Wall     *maze.Wall     `json:"wall,omitempty"`
	Position *maze.Position `json:"position,omitempty"`
	At       time.Time      `json:"at"`
}

// EventLog keeps the recent mutation history of each maze.
type EventLog interface {
	// Append records e for the maze.
	Append(ctx context.Context, mazeID uuid.UUID, e Event) error

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, mazeID uuid.UUID, limit int64) ([]Event, error)

	// Drop forgets the history of the maze.
	Drop(ctx context.Context, mazeID uuid.UUID) error
}
