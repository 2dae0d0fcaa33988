package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/glyphlang/glyph/internal/cache"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *cache.Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "cache.sqlite")
	store, err := cache.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestHashContentDeterministic(t *testing.T) {
	require.Equal(t, cache.HashContent("abc"), cache.HashContent("abc"))
	require.NotEqual(t, cache.HashContent("abc"), cache.HashContent("abd"))
}

func TestHasUnknownPathReturnsFalse(t *testing.T) {
	store := openTestStore(t)
	ok, err := store.Has("foo", cache.HashContent("x"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRecordThenHas(t *testing.T) {
	store := openTestStore(t)
	hash := cache.HashContent("content")
	require.NoError(t, store.Record("a/b", hash, 100))

	ok, err := store.Has("a/b", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.Has("a/b", cache.HashContent("other"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRecordUpdatesExisting(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Record("a/b", cache.HashContent("v1"), 1))
	require.NoError(t, store.Record("a/b", cache.HashContent("v2"), 2))

	ok, err := store.Has("a/b", cache.HashContent("v1"))
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = store.Has("a/b", cache.HashContent("v2"))
	require.NoError(t, err)
	require.True(t, ok)
}
