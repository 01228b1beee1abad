package sqlite_test

import (
	"context"
	"testing"

	"github.com/redefinechurch/kidzpolicy/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestKVService(t *testing.T) {
	t.Parallel()

	t.Run("round-trips values", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewKVService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, "ratelimit", "alice", `{"dailyCount":3}`))

		value, ok, err := s.Get(ctx, "ratelimit", "alice")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"dailyCount":3}`, value)
	})

	t.Run("reports missing keys without error", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewKVService(mustOpenDB(t))

		_, ok, err := s.Get(context.Background(), "ratelimit", "nobody")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("put replaces existing values", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewKVService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, "ratelimit", "alice", "one"))
		require.NoError(t, s.Put(ctx, "ratelimit", "alice", "two"))

		value, ok, err := s.Get(ctx, "ratelimit", "alice")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "two", value)
	})

	t.Run("namespaces are isolated", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewKVService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, "ratelimit", "alice", "limits"))
		require.NoError(t, s.Put(ctx, "prefs", "alice", "settings"))

		value, ok, err := s.Get(ctx, "prefs", "alice")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "settings", value)

		keys, err := s.Keys(ctx, "ratelimit")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, keys)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewKVService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, "ratelimit", "alice", "x"))
		require.NoError(t, s.Delete(ctx, "ratelimit", "alice"))
		require.NoError(t, s.Delete(ctx, "ratelimit", "alice"))

		_, ok, err := s.Get(ctx, "ratelimit", "alice")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("keys lists a namespace in order", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewKVService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.Put(ctx, "ratelimit", "bob", "x"))
		require.NoError(t, s.Put(ctx, "ratelimit", "alice", "y"))

		keys, err := s.Keys(ctx, "ratelimit")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob"}, keys)
	})
}
