package response

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResponses(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "responses.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return New(path)
}

func TestGetKnownEventType(t *testing.T) {
	s := writeResponses(t, `{"fire": ["Oh no! {message}"], "kuma": ["All good~"]}`)

	assert.Equal(t, "Oh no! \n\n(disk failing)", s.Get("fire", "disk failing"))
	assert.Equal(t, "All good~", s.Get("kuma", "ignored detail"))
}

func TestGetUnknownEventTypeFallsBack(t *testing.T) {
	s := writeResponses(t, `{"fire": ["Oh no!"]}`)

	assert.Equal(t, Fallback, s.Get("nonexistent_event", "x"))
}

func TestGetEmptyTemplateListFallsBack(t *testing.T) {
	s := writeResponses(t, `{"fire": []}`)

	assert.Equal(t, Fallback, s.Get("fire", ""))
}

func TestGetMissingFileFallsBack(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"))

	assert.Equal(t, Fallback, s.Get("fire", "x"))
}

func TestGetMalformedFileFallsBack(t *testing.T) {
	s := writeResponses(t, `{"fire": not json`)

	assert.Equal(t, Fallback, s.Get("fire", "x"))
}

func TestGetEmptyDetailDropsPlaceholder(t *testing.T) {
	s := writeResponses(t, `{"backup": ["Backup done!{message}"]}`)

	assert.Equal(t, "Backup done!", s.Get("backup", ""))
}

func TestGetUnescapesNewlines(t *testing.T) {
	s := writeResponses(t, `{"wake": ["line one\\nline two"]}`)

	assert.Equal(t, "line one\nline two", s.Get("wake", ""))
}
