// Package mazeapi exposes mazes over HTTP.
package mazeapi

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

// PositionRequest is a cell coordinate. Fields are pointers so that zero is accepted while absence is not.
type PositionRequest struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

func (p PositionRequest) position() maze.Position {
	return maze.Position{X: *p.X, Y: *p.Y}
}

// WallRequest identifies a wall slot.
type WallRequest struct {
	X           *int   `json:"x" binding:"required"`
	Y           *int   `json:"y" binding:"required"`
	Orientation string `json:"orientation" binding:"required"`
}

func (w WallRequest) wall() (maze.Wall, error) {
	var o maze.Orientation
	if err := o.UnmarshalText([]byte(w.Orientation)); err != nil {
		return maze.Wall{}, err
	}
	return maze.Wall{X: *w.X, Y: *w.Y, Orientation: o}, nil
}

// CreateMazeRequest represents a request to create a maze.
type CreateMazeRequest struct {
	Width  int              `json:"width" binding:"required,gt=0"`
	Height int              `json:"height" binding:"required,gt=0"`
	Start  *PositionRequest `json:"start" binding:"required"`
	End    *PositionRequest `json:"end" binding:"required"`
	Walls  []WallRequest    `json:"walls" binding:"omitempty,dive"`
}

// MazeResponse describes the current state of a maze.
type MazeResponse struct {
	ID        uuid.UUID     `json:"id"`
	Version   int64         `json:"version"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Start     maze.Position `json:"start"`
	End       maze.Position `json:"end"`
	Walls     []maze.Wall   `json:"walls"`
	UpdatedAt time.Time     `json:"updated_at"`
	ASCII     string        `json:"ascii"`
}

// CreateMazeResponse is returned once, on creation, with the token needed to edit the maze.
type CreateMazeResponse struct {
	ID        uuid.UUID     `json:"id"`
	EditToken string        `json:"edit_token"`
	Maze      *MazeResponse `json:"maze"`
}

// SolutionResponse holds a shortest path through a maze.
type SolutionResponse struct {
	ID      uuid.UUID       `json:"id"`
	Version int64           `json:"version"`
	Length  int             `json:"length"`
	Path    []maze.Position `json:"path"`
	ASCII   string          `json:"ascii"`
}

// EventsResponse lists recent committed changes of a maze, newest first.
type EventsResponse struct {
	ID     uuid.UUID `json:"id"`
	Events []i.Event `json:"events"`
}

func newMazeResponse(r *i.MazeRecord) *MazeResponse {
	g := r.Maze.Grid()
	return &MazeResponse{
		ID:        r.ID,
		Version:   r.Version,
		Width:     g.Width,
		Height:    g.Height,
		Start:     r.Maze.Start(),
		End:       r.Maze.End(),
		Walls:     r.Maze.Walls(),
		UpdatedAt: r.UpdatedAt,
		ASCII:     r.Maze.String(),
	}
}
