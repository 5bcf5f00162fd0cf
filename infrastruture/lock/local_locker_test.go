package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	t.Run("same key is exclusive", func(t *testing.T) {
		l := NewLocalLocker()
		unlock, err := l.Lock(context.Background(), "maze:a:lock")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = l.Lock(ctx, "maze:a:lock")
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		unlock()
		again, err := l.Lock(context.Background(), "maze:a:lock")
		require.NoError(t, err)
		again()
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		l := NewLocalLocker()
		unlockA, err := l.Lock(context.Background(), "maze:a:lock")
		require.NoError(t, err)
		defer unlockA()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		unlockB, err := l.Lock(ctx, "maze:b:lock")
		require.NoError(t, err)
		unlockB()
	})

	t.Run("unlock is idempotent", func(t *testing.T) {
		l := NewLocalLocker()
		unlock, err := l.Lock(context.Background(), "k")
		require.NoError(t, err)
		unlock()
		unlock()

		again, err := l.Lock(context.Background(), "k")
		require.NoError(t, err)
		again()
	})

	t.Run("serialises concurrent holders", func(t *testing.T) {
		l := NewLocalLocker()
		var (
			wg      sync.WaitGroup
			holders int
			maxSeen int
			mu      sync.Mutex
		)

		for n := 0; n < 16; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := l.Lock(context.Background(), "shared")
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				holders++
				maxSeen = max(maxSeen, holders)
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				holders--
				mu.Unlock()
				unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxSeen)
	})
}
