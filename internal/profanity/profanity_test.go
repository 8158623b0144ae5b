package profanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaughty(t *testing.T) {
	f := New()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"clean text", "I like trains and sparkles", false},
		{"plain profanity", "what the fuck", true},
		{"leet substitution", "sh1t happens", true},
		{"spaced out letters", "f u c k this", true},
		{"empty string", "", false},
		{"clean with punctuation", "blue! green! pink!!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Naughty(tt.text))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ae o ls", normalize("43 0 1$"))
	assert.Equal(t, "hello world", normalize("  Hello,   World!! "))
}
