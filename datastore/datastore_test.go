package datastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGetDelete(t *testing.T) {
	ds, err := New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	defer ds.Close()

	ds.Add("k", map[string]any{"v": "1"})
	got, ok := ds.Get("k")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"v": "1"}, got)

	ds.Delete("k")
	_, ok = ds.Get("k")
	assert.False(t, ok)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	ds, err := New(path)
	require.NoError(t, err)
	ds.Add("greeting", "hello")
	require.NoError(t, ds.Close())

	ds2, err := New(path)
	require.NoError(t, err)
	defer ds2.Close()

	got, ok := ds2.Get("greeting")
	require.True(t, ok)
	assert.Equal(t, "hello", got)
}

func TestNewCreatesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "store.json")

	ds, err := New(path)
	require.NoError(t, err)
	defer ds.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(data))
}

func TestNewRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := New(path)
	assert.Error(t, err)
}

func TestOperationsAfterCloseAreNoops(t *testing.T) {
	ds, err := New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	require.NoError(t, ds.Close())

	ds.Add("k", "v")
	_, ok := ds.Get("k")
	assert.False(t, ok)
	assert.Error(t, ds.SaveToFile())
	assert.NoError(t, ds.Close(), "double close is safe")
}
