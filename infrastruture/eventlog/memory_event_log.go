package eventlog

import (
	"context"
	"slices"
	"sync"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

// MemoryEventLog keeps histories in process memory without expiry.
type MemoryEventLog struct {
	events map[uuid.UUID][]i.Event
	sync.RWMutex
}

var _ i.EventLog = &MemoryEventLog{}

// NewMemoryEventLog creates an empty in-memory event log.
func NewMemoryEventLog() *MemoryEventLog {
	return &MemoryEventLog{events: make(map[uuid.UUID][]i.Event)}
}

// Append adds an event to the maze's history.
func (l *MemoryEventLog) Append(_ context.Context, mazeID uuid.UUID, e i.Event) error {
	l.Lock()
	defer l.Unlock()
	l.events[mazeID] = append(l.events[mazeID], e)
	return nil
}

// Recent returns up to limit events, newest first.
func (l *MemoryEventLog) Recent(_ context.Context, mazeID uuid.UUID, limit int64) ([]i.Event, error) {
	l.RLock()
	defer l.RUnlock()

	history := l.events[mazeID]
	n := min(int64(len(history)), max(limit, 0))
	recent := slices.Clone(history[int64(len(history))-n:])
	slices.Reverse(recent)
	return recent, nil
}

// Drop forgets the maze's history.
func (l *MemoryEventLog) Drop(_ context.Context, mazeID uuid.UUID) error {
	l.Lock()
	defer l.Unlock()
	delete(l.events, mazeID)
	return nil
}
