// Package eventlog keeps the recent history of committed maze mutations.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	eventsKeyFmt = "maze:%s:events"
	defaultTTL   = 24 * time.Hour
)

// RedisEventLog stores events in one sorted set per maze, scored by commit time.
type RedisEventLog struct {
	client *redis.Client
	ttl    time.Duration
}

var _ i.EventLog = &RedisEventLog{}

// NewRedisEventLog initializes a RedisEventLog. A maze's history expires ttl
// after its last event; zero selects a default.
func NewRedisEventLog(client *redis.Client, ttl time.Duration) *RedisEventLog {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisEventLog{
		client: client,
		ttl:    ttl,
	}
}

// Append adds an event to the maze's history and refreshes its expiry.
func (l *RedisEventLog) Append(ctx context.Context, mazeID uuid.UUID, e i.Event) error {
	member, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", e.Type, err)
	}

	key := eventsKey(mazeID)
	_, err = l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(e.At.UnixNano()), Member: member})
		pipe.Expire(ctx, key, l.ttl)
		return nil
	})
	return err
}

// Recent returns up to limit events, newest first.
func (l *RedisEventLog) Recent(ctx context.Context, mazeID uuid.UUID, limit int64) ([]i.Event, error) {
	if limit <= 0 {
		return []i.Event{}, nil
	}

	members, err := l.client.ZRevRange(ctx, eventsKey(mazeID), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	return decodeEvents(members)
}

// Drop deletes the maze's history.
func (l *RedisEventLog) Drop(ctx context.Context, mazeID uuid.UUID) error {
	return l.client.Del(ctx, eventsKey(mazeID)).Err()
}

func decodeEvents(members []string) ([]i.Event, error) {
	events := make([]i.Event, 0, len(members))
	for _, raw := range members {
		var e i.Event
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("decoding event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}

func eventsKey(mazeID uuid.UUID) string {
	return fmt.Sprintf(eventsKeyFmt, mazeID)
}
