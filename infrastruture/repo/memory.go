package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

// MemoryMazeRepo keeps mazes in process memory. Records are copied on the
// way in and out so callers never share a maze with the store.
type MemoryMazeRepo struct {
	records map[uuid.UUID]i.MazeRecord
	sync.RWMutex
}

var _ i.MazeRepo = &MemoryMazeRepo{}

// NewMemoryMazeRepo creates an empty in-memory repository.
func NewMemoryMazeRepo() *MemoryMazeRepo {
	return &MemoryMazeRepo{records: make(map[uuid.UUID]i.MazeRecord)}
}

// Save inserts or updates a maze.
func (r *MemoryMazeRepo) Save(_ context.Context, record *i.MazeRecord) error {
	r.Lock()
	defer r.Unlock()

	stored := *record
	stored.Maze = record.Maze.Clone()
	r.records[record.ID] = stored
	return nil
}

// ByID retrieves a copy of a maze.
func (r *MemoryMazeRepo) ByID(_ context.Context, id uuid.UUID) (*i.MazeRecord, error) {
	r.RLock()
	defer r.RUnlock()

	stored, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", i.ErrMazeNotFound, id)
	}
	stored.Maze = stored.Maze.Clone()
	return &stored, nil
}

// Delete removes a maze.
func (r *MemoryMazeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("%w: %s", i.ErrMazeNotFound, id)
	}
	delete(r.records, id)
	return nil
}

// Len reports how many mazes are stored.
func (r *MemoryMazeRepo) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.records)
}
