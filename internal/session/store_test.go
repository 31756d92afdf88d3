package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	// Test connection
	ctx := context.Background()
	err = client.Ping(ctx).Err()
	require.NoError(t, err)

	return client, mr
}

func TestStore_CreateAndGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := NewStore(client, time.Hour)
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		created, err := store.Create(ctx, "user123", "alice")
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.True(t, created.ExpiresAt.After(created.CreatedAt))

		got, err := store.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "user123", got.UserID)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Get(ctx, "no-such-session")
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestStore_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := NewStore(client, time.Hour)
	ctx := context.Background()

	created, err := store.Create(ctx, "user123", "alice")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))

	_, err = store.Get(ctx, created.ID)
	assert.Equal(t, ErrNotFound, err)

	count, err := store.CountForUser(ctx, "user123")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStore_DeleteAllForUser(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := NewStore(client, time.Hour)
	ctx := context.Background()

	s1, err := store.Create(ctx, "user123", "alice")
	require.NoError(t, err)
	s2, err := store.Create(ctx, "user123", "alice")
	require.NoError(t, err)
	other, err := store.Create(ctx, "user456", "bob")
	require.NoError(t, err)

	require.NoError(t, store.DeleteAllForUser(ctx, "user123"))

	_, err = store.Get(ctx, s1.ID)
	assert.Equal(t, ErrNotFound, err)
	_, err = store.Get(ctx, s2.ID)
	assert.Equal(t, ErrNotFound, err)

	// Other user's session survives.
	_, err = store.Get(ctx, other.ID)
	assert.NoError(t, err)
}

func TestStore_CountForUser(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := NewStore(client, time.Hour)
	ctx := context.Background()

	count, err := store.CountForUser(ctx, "user123")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = store.Create(ctx, "user123", "alice")
	require.NoError(t, err)
	_, err = store.Create(ctx, "user123", "alice")
	require.NoError(t, err)

	count, err = store.CountForUser(ctx, "user123")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStore_TTLExpiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := NewStore(client, time.Hour)
	ctx := context.Background()

	created, err := store.Create(ctx, "user123", "alice")
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Get(ctx, created.ID)
	assert.Equal(t, ErrNotFound, err)
}

func TestStore_Sweep(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := NewStore(client, time.Hour)
	ctx := context.Background()

	stale, err := store.Create(ctx, "user123", "alice")
	require.NoError(t, err)
	live, err := store.Create(ctx, "user123", "alice")
	require.NoError(t, err)

	// Drop one session value directly, leaving its set member stale.
	require.NoError(t, client.Del(ctx, sessionKeyPrefix+stale.ID).Err())

	removed, err := store.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	count, err := store.CountForUser(ctx, "user123")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = store.Get(ctx, live.ID)
	assert.NoError(t, err)
}
