package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	return store
}

func TestSetAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("token", "abc123"))

	value, err := store.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "abc123", value)
}

func TestGet_MissingKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetBatch_AllKeysVisible(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SetBatch(map[string]string{
		"token":  "abc123",
		"userId": "user-1",
		"user":   `{"id":"user-1"}`,
	}))

	for key, want := range map[string]string{
		"token":  "abc123",
		"userId": "user-1",
		"user":   `{"id":"user-1"}`,
	} {
		value, err := store.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, value)
	}
}

func TestSetBatch_OverwritesLastWriterWins(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("token", "old"))
	require.NoError(t, store.SetBatch(map[string]string{"token": "new"}))

	value, err := store.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "new", value)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("token", "abc123"))
	require.NoError(t, store.Set("userId", "user-1"))

	require.NoError(t, store.Delete("token", "userId"))

	_, err := store.Get("token")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get("userId")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_MissingKeyIsNoOp(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Delete("token"))
}

func TestNew_EmptyDir(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}
