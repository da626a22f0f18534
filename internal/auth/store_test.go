package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_SetAndClear(t *testing.T) {
	store := NewMemStore()
	assert.Equal(t, "", store.Token())

	require.NoError(t, store.SetToken("abc123"))
	assert.Equal(t, "abc123", store.Token())

	require.NoError(t, store.ClearToken())
	assert.Equal(t, "", store.Token())
}

func TestFileStore_PersistsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, "", store.Token())

	require.NoError(t, store.SetToken("bearer-xyz"))
	assert.Equal(t, "bearer-xyz", store.Token())

	// A fresh store reads the persisted token back.
	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, "bearer-xyz", reloaded.Token())
}

func TestFileStore_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("to-be-cleared"))

	require.NoError(t, store.ClearToken())
	assert.Equal(t, "", store.Token())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Clearing twice is not an error.
	assert.NoError(t, store.ClearToken())
}

func TestFileStore_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("tok-1\n"), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", store.Token())
}
