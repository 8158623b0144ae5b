package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want Category
	}{
		{"embed title up", Event{HasEmbed: true, EmbedTitle: "Service is Up"}, CategoryRecovered},
		{"embed title down", Event{HasEmbed: true, EmbedTitle: "Host DOWN"}, CategoryFailure},
		{"embed title neutral", Event{HasEmbed: true, EmbedTitle: "Scheduled maintenance"}, CategoryNeutral},
		{"embed title wins over body", Event{HasEmbed: true, EmbedTitle: "back up", Content: "errors everywhere"}, CategoryRecovered},
		{"body error keyword", Event{Content: "Disk errors detected"}, CategoryFailure},
		{"body down keyword", Event{Content: "server went down"}, CategoryFailure},
		{"body up", Event{Content: "service is up again"}, CategoryRecovered},
		{"body neutral", Event{Content: "nightly sync finished"}, CategoryNeutral},
		{"empty", Event{}, CategoryNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ev))
		})
	}
}

func TestCategoryMapping(t *testing.T) {
	assert.Equal(t, "fire", CategoryFailure.ResponseKey())
	assert.Equal(t, "kuma", CategoryRecovered.ResponseKey())
	assert.Equal(t, "unraid", CategoryNeutral.ResponseKey())

	assert.Equal(t, 0xE74C3C, CategoryFailure.Color())
	assert.Equal(t, 0x2ECC71, CategoryRecovered.Color())
	assert.Equal(t, 0x9B59B6, CategoryNeutral.Color())
}
