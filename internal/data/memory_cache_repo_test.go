package data

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestMemoryCacheRepo(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2000, 4, 27, 0, 0, 0, 0, time.UTC)}
	repo := NewMemoryCacheRepo(clock.Now)

	t.Run("set and get", func(t *testing.T) {
		value := []byte("png bytes")
		require.NoError(t, repo.Set(ctx, "colormap:a", value, time.Minute))

		// The stored value is a copy.
		value[0] = 'X'

		got, err := repo.Get(ctx, "colormap:a")
		require.NoError(t, err)
		assert.Equal(t, []byte("png bytes"), got)

		// So is the returned one.
		got[0] = 'Y'
		again, err := repo.Get(ctx, "colormap:a")
		require.NoError(t, err)
		assert.Equal(t, []byte("png bytes"), again)
	})

	t.Run("get non-existent key", func(t *testing.T) {
		got, err := repo.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "short", []byte("v"), time.Second))
		clock.Advance(time.Second)

		got, err := repo.Get(ctx, "short")
		require.NoError(t, err)
		assert.Nil(t, got)

		deleted, err := repo.Delete(ctx, "short")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "forever", []byte("v"), 0))
		clock.Advance(24 * 365 * time.Hour)

		got, err := repo.Get(ctx, "forever")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "gone", []byte("v"), time.Minute))

		deleted, err := repo.Delete(ctx, "gone")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "gone")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("empty key", func(t *testing.T) {
		require.ErrorIs(t, repo.Set(ctx, "", nil, 0), errEmptyKey)
		_, err := repo.Get(ctx, "")
		require.ErrorIs(t, err, errEmptyKey)
		_, err = repo.Delete(ctx, "")
		require.ErrorIs(t, err, errEmptyKey)
	})

	t.Run("delete matching", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "colormap:b", []byte("v"), time.Minute))
		require.NoError(t, repo.Set(ctx, "colormap:old", []byte("v"), time.Second))
		clock.Advance(time.Second)

		n, err := repo.DeleteMatching(ctx, "colormap:*")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n, "expired entries are dropped but not counted")

		got, err := repo.Get(ctx, "colormap:a")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.Get(ctx, "forever")
		require.NoError(t, err)
		assert.NotNil(t, got)

		_, err = repo.DeleteMatching(ctx, "")
		require.ErrorIs(t, err, errEmptyKey)
		_, err = repo.DeleteMatching(ctx, "[")
		require.Error(t, err)
	})

	t.Run("health", func(t *testing.T) {
		require.NoError(t, repo.Health(ctx))
	})
}

func TestMemoryCacheRepo_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepo(nil)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := string(rune('a' + i%4))
			_ = repo.Set(ctx, key, []byte{byte(i)}, time.Minute)
			_, _ = repo.Get(ctx, key)
		}()
	}
	wg.Wait()

	for _, key := range []string{"a", "b", "c", "d"} {
		got, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
}
