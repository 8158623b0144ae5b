package commands

import (
	"testing"
	"time"

	"netchan/internal/art"
	"netchan/internal/timers"

	"github.com/stretchr/testify/assert"
)

func newTestArtCommand(t *testing.T) *ArtCommand {
	t.Helper()
	cmd := NewArtCommand(art.NewClient("key"), timers.New(t.TempDir()))
	now := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	cmd.now = func() time.Time { return now }
	return cmd
}

func TestArtBudgetExhausts(t *testing.T) {
	cmd := newTestArtCommand(t)

	for i := 0; i < artDailyBudget; i++ {
		assert.True(t, cmd.take(), "piece %d should be within budget", i+1)
	}
	assert.False(t, cmd.take(), "budget is spent")
}

func TestArtBudgetResetsOnNewDay(t *testing.T) {
	cmd := newTestArtCommand(t)

	for i := 0; i < artDailyBudget; i++ {
		cmd.take()
	}
	assert.False(t, cmd.take())

	now := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)
	cmd.now = func() time.Time { return now }
	assert.True(t, cmd.take(), "date change reopens the budget")
}

func TestArtRefund(t *testing.T) {
	cmd := newTestArtCommand(t)

	for i := 0; i < artDailyBudget; i++ {
		cmd.take()
	}
	assert.False(t, cmd.take())

	cmd.refund()
	assert.True(t, cmd.take(), "a failed generation gives the piece back")
}

func TestArtRollover(t *testing.T) {
	cmd := newTestArtCommand(t)

	for i := 0; i < artDailyBudget; i++ {
		cmd.take()
	}
	cmd.Rollover()
	assert.Equal(t, artDailyBudget, cmd.remaining())
}
