// Package profanity screens free-text profile fields before they are stored.
package profanity

import (
	"regexp"
	"strings"

	goaway "github.com/TwiN/go-away"
)

var (
	leet       = strings.NewReplacer("4", "a", "3", "e", "0", "o", "1", "l", "$", "s", "@", "a", "!", "i")
	nonAlnum   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespace = regexp.MustCompile(`\s+`)
	spacedRun  = regexp.MustCompile(`\b([a-z])\s+([a-z])\s+([a-z])\s+([a-z])(?:\s+([a-z]))*\b`)
)

type Filter struct {
	detector *goaway.ProfanityDetector
}

func New() *Filter {
	return &Filter{
		detector: goaway.NewProfanityDetector().
			WithSanitizeLeetSpeak(true).
			WithSanitizeSpecialCharacters(true).
			WithSanitizeAccents(true),
	}
}

// Naughty reports whether text contains content that must not be stored.
// The text is normalised first, and a second pass collapses runs of single
// spaced-out letters so "b a d w o r d" spellings are caught too.
func (f *Filter) Naughty(text string) bool {
	cleaned := normalize(text)

	if f.detector.IsProfane(cleaned) {
		return true
	}

	collapsed := spacedRun.ReplaceAllStringFunc(cleaned, func(run string) string {
		return whitespace.ReplaceAllString(run, "")
	})
	return collapsed != cleaned && f.detector.IsProfane(collapsed)
}

func normalize(text string) string {
	text = leet.Replace(strings.ToLower(text))
	text = nonAlnum.ReplaceAllString(text, "")
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}
