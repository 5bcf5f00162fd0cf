package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 50
	defaultTokenTTL     = 24 * time.Hour
	defaultEventLimit   = 20
	maxEventLimit       = 200
	mazeLockKeyFmt      = "maze:%s:lock"
)

var (
	ErrMazeTooLarge = errors.New("maze dimensions exceed the configured maximum")
)

// Options tunes a MazeService.
type Options struct {
	MaxDimension int           // Largest accepted width or height
	TokenTTL     time.Duration // Lifetime of issued edit tokens
	Now          func() time.Time
}

// MazeService stores mazes and applies mutations to them one at a time per maze.
type MazeService struct {
	repo      i.MazeRepo
	locker    i.Locker
	events    i.EventLog
	tokenizer i.EditTokenizer
	logger    i.Logger
	opts      *Options
}

var _ i.MazeService = &MazeService{}

// NewMazeService creates a MazeService, filling unset options with defaults.
func NewMazeService(repo i.MazeRepo, locker i.Locker, events i.EventLog, tokenizer i.EditTokenizer, logger i.Logger, opts *Options) (*MazeService, error) {
	if repo == nil || locker == nil || events == nil || tokenizer == nil || logger == nil {
		return nil, errors.New("maze service dependencies must not be nil")
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.TokenTTL <= 0 {
		opts.TokenTTL = defaultTokenTTL
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &MazeService{
		repo:      repo,
		locker:    locker,
		events:    events,
		tokenizer: tokenizer,
		logger:    logger,
		opts:      opts,
	}, nil
}

// Create validates and stores a new maze, then issues an edit token for it.
func (s *MazeService) Create(ctx context.Context, req i.CreateMaze) (*i.MazeRecord, string, error) {
	if req.Width > s.opts.MaxDimension || req.Height > s.opts.MaxDimension {
		return nil, "", fmt.Errorf("%w: %dx%d, maximum is %d", ErrMazeTooLarge, req.Width, req.Height, s.opts.MaxDimension)
	}

	grid, err := maze.NewGrid(req.Width, req.Height)
	if err != nil {
		return nil, "", err
	}

	m, err := maze.NewWithWalls(grid, req.Start, req.End, req.Walls)
	if err != nil {
		return nil, "", err
	}

	record := &i.MazeRecord{
		ID:        uuid.New(),
		Version:   1,
		Maze:      m,
		UpdatedAt: s.opts.Now(),
	}
	// A maze is never stored without an edit token.
	token, err := s.tokenizer.Issue(record.ID, s.opts.TokenTTL)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to issue edit token for maze %s: %s", record.ID, err))
		return nil, "", err
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save new maze: %s", err))
		return nil, "", err
	}

	s.logger.Info(fmt.Sprintf("Maze created: ID=%s Size=%dx%d Walls=%d", record.ID, req.Width, req.Height, len(req.Walls)))
	s.journal(ctx, record, i.Event{Type: i.EventCreated})
	return record, token, nil
}

// Get loads a maze.
func (s *MazeService) Get(ctx context.Context, id uuid.UUID) (*i.MazeRecord, error) {
	return s.repo.ByID(ctx, id)
}

// Solve loads a maze and returns a shortest path through it.
func (s *MazeService) Solve(ctx context.Context, id uuid.UUID) (*i.MazeRecord, []maze.Position, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	path, err := record.Maze.Solve()
	if err != nil {
		// Stored mazes are validated on load, so this means the invariant was broken elsewhere.
		s.logger.Error(fmt.Sprintf("Stored maze %s has no path: %s", id, err))
		return nil, nil, err
	}
	return record, path, nil
}

// AddWall places a wall unless it would make the maze unsolvable.
func (s *MazeService) AddWall(ctx context.Context, id uuid.UUID, w maze.Wall) (*i.MazeRecord, error) {
	return s.mutate(ctx, id, i.Event{Type: i.EventWallAdded, Wall: &w}, func(m *maze.WallMaze) error {
		return m.AddWall(w)
	})
}

// RemoveWall removes a placed wall.
func (s *MazeService) RemoveWall(ctx context.Context, id uuid.UUID, w maze.Wall) (*i.MazeRecord, error) {
	return s.mutate(ctx, id, i.Event{Type: i.EventWallRemoved, Wall: &w}, func(m *maze.WallMaze) error {
		return m.RemoveWall(w)
	})
}

// MoveStart moves the start cell.
func (s *MazeService) MoveStart(ctx context.Context, id uuid.UUID, p maze.Position) (*i.MazeRecord, error) {
	return s.mutate(ctx, id, i.Event{Type: i.EventStartMoved, Position: &p}, func(m *maze.WallMaze) error {
		return m.MoveStart(p)
	})
}

// MoveEnd moves the end cell.
func (s *MazeService) MoveEnd(ctx context.Context, id uuid.UUID, p maze.Position) (*i.MazeRecord, error) {
	return s.mutate(ctx, id, i.Event{Type: i.EventEndMoved, Position: &p}, func(m *maze.WallMaze) error {
		return m.MoveEnd(p)
	})
}

// Flip swaps the start and end cells.
func (s *MazeService) Flip(ctx context.Context, id uuid.UUID) (*i.MazeRecord, error) {
	return s.mutate(ctx, id, i.Event{Type: i.EventFlipped}, func(m *maze.WallMaze) error {
		m.FlipStartEnd()
		return nil
	})
}

// Delete removes a maze and its history.
func (s *MazeService) Delete(ctx context.Context, id uuid.UUID) error {
	unlock, err := s.locker.Lock(ctx, lockKey(id))
	if err != nil {
		s.logger.Error(fmt.Sprintf("Obtaining lock for maze %s: %s", id, err))
		return err
	}
	defer unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.events.Drop(ctx, id); err != nil {
		s.logger.Warning(fmt.Sprintf("Failed to drop history of maze %s: %s", id, err))
	}

	s.logger.Info(fmt.Sprintf("Maze deleted: ID=%s", id))
	return nil
}

// Events returns the most recent committed changes of a maze, newest first.
func (s *MazeService) Events(ctx context.Context, id uuid.UUID, limit int64) ([]i.Event, error) {
	if _, err := s.repo.ByID(ctx, id); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultEventLimit
	}
	limit = min(limit, maxEventLimit)

	return s.events.Recent(ctx, id, limit)
}

// mutate applies change to the stored maze while holding the maze lock.
// Nothing is saved when change fails; the maze rejects the change without modifying itself.
func (s *MazeService) mutate(ctx context.Context, id uuid.UUID, event i.Event, change func(*maze.WallMaze) error) (*i.MazeRecord, error) {
	unlock, err := s.locker.Lock(ctx, lockKey(id))
	if err != nil {
		s.logger.Error(fmt.Sprintf("Obtaining lock for maze %s: %s", id, err))
		return nil, err
	}
	defer unlock()

	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := change(record.Maze); err != nil {
		s.logger.Info(fmt.Sprintf("Rejected %s on maze %s: %s", event.Type, id, err))
		return nil, err
	}

	record.Version++
	record.UpdatedAt = s.opts.Now()
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save maze %s after %s: %s", id, event.Type, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Committed %s on maze %s: Version=%d", event.Type, id, record.Version))
	s.journal(ctx, record, event)
	return record, nil
}

// journal records a committed change. The change is already saved, so failures are only logged.
func (s *MazeService) journal(ctx context.Context, record *i.MazeRecord, event i.Event) {
	event.Version = record.Version
	event.At = record.UpdatedAt
	if err := s.events.Append(ctx, record.ID, event); err != nil {
		s.logger.Warning(fmt.Sprintf("Failed to journal %s on maze %s: %s", event.Type, record.ID, err))
	}
}

func lockKey(id uuid.UUID) string {
	return fmt.Sprintf(mazeLockKeyFmt, id)
}
