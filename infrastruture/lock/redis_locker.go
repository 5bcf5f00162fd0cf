// Package lock provides the exclusive per-maze locks mutations are serialised with.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultExpiry = 8 * time.Second
	unlockTimeout = time.Second
)

// RedisLocker hands out redsync mutexes so that replicas sharing a redis
// server never mutate the same maze at the same time.
type RedisLocker struct {
	locker *redsync.Redsync
	expiry time.Duration
	logger i.Logger
}

var _ i.Locker = &RedisLocker{}

// NewRedisLocker creates a locker backed by client. Locks expire after
// expiry if their holder dies; zero selects a default.
func NewRedisLocker(client *redis.Client, expiry time.Duration, logger i.Logger) *RedisLocker {
	if expiry <= 0 {
		expiry = defaultExpiry
	}
	pool := goredis.NewPool(client)
	return &RedisLocker{
		locker: redsync.New(pool),
		expiry: expiry,
		logger: logger,
	}
}

// Lock acquires the mutex named key.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.locker.NewMutex(key, redsync.WithExpiry(l.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("obtaining lock %s: %w", key, err)
	}

	return func() {
		// The caller's context may already be done; releasing must still happen.
		ctx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
		defer cancel()

		ok, err := mutex.UnlockContext(ctx)
		if err != nil {
			l.logger.Error(fmt.Sprintf("error while releasing lock %s: %s", key, err))
			return
		}
		if !ok {
			l.logger.Warning(fmt.Sprintf("lock %s had already expired when released", key))
		}
	}, nil
}
