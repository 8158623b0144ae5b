package storage

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datastore.json")
	s, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestProfileRoundTrip(t *testing.T) {
	s, _ := newTestStorage(t)

	profile := Profile{
		Name:           "Sam",
		FavoriteColor:  "teal",
		FavoriteAnimal: "red panda",
		FavoriteFood:   "ramen",
		Interests:      "homelab tinkering",
	}
	require.NoError(t, s.SetProfile("42", profile))

	got, ok := s.GetProfile("42")
	require.True(t, ok)
	assert.Equal(t, profile, *got)
}

func TestGetProfileUnknownUser(t *testing.T) {
	s, _ := newTestStorage(t)

	_, ok := s.GetProfile("999")
	assert.False(t, ok)
}

func TestDeleteProfile(t *testing.T) {
	s, _ := newTestStorage(t)

	require.NoError(t, s.SetProfile("42", Profile{Name: "Sam"}))
	require.NoError(t, s.DeleteProfile("42"))

	_, ok := s.GetProfile("42")
	assert.False(t, ok)

	assert.NoError(t, s.DeleteProfile("42"), "deleting an unknown user is a no-op")
}

func TestProfileSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datastore.json")

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.SetProfile("42", Profile{Name: "Sam", FavoriteColor: "teal"}))
	require.NoError(t, s.Close())

	s2, err := New(path)
	require.NoError(t, err)
	defer s2.Close()

	got, ok := s2.GetProfile("42")
	require.True(t, ok)
	assert.Equal(t, "Sam", got.Name)
	assert.Equal(t, "teal", got.FavoriteColor)
}

func TestCommandHistoryBounded(t *testing.T) {
	s, _ := newTestStorage(t)

	for i := 0; i < commandHistoryLimit+5; i++ {
		require.NoError(t, s.AppendCommandToHistory(CommandHistoryRecord{
			Command:  fmt.Sprintf("cmd-%d", i),
			Datetime: time.Now(),
		}))
	}

	history, err := s.FetchCommandHistory()
	require.NoError(t, err)
	require.Len(t, history, commandHistoryLimit)
	assert.Equal(t, "cmd-5", history[0].Command, "oldest entries evicted first")
	assert.Equal(t, fmt.Sprintf("cmd-%d", commandHistoryLimit+4), history[len(history)-1].Command)
}
