package lock

import (
	"context"
	"sync"

	"github.com/beka-birhanu/vinom-maze/service/i"
)

// LocalLocker serialises access within one process.
type LocalLocker struct {
	slots map[string]chan struct{}
	mu    sync.Mutex
}

var _ i.Locker = &LocalLocker{}

// NewLocalLocker creates an in-process locker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[string]chan struct{})}
}

// Lock waits for key to be free or for ctx to be done.
func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	slot := l.slot(key)
	select {
	case slot <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-slot }) }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[key] = slot
	}
	return slot
}
