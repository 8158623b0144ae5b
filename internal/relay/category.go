package relay

import "strings"

// Category is the closed set of reply classes the relay can produce for a
// monitoring event.
type Category int

const (
	CategoryNeutral Category = iota
	CategoryFailure
	CategoryRecovered
)

func (c Category) String() string {
	switch c {
	case CategoryFailure:
		return "failure"
	case CategoryRecovered:
		return "recovered"
	default:
		return "neutral"
	}
}

// ResponseKey is the event type looked up in the response store. The keys
// match the template files: "kuma" for uptime recoveries, "fire" for
// failures, "unraid" for everything else.
func (c Category) ResponseKey() string {
	switch c {
	case CategoryFailure:
		return "fire"
	case CategoryRecovered:
		return "kuma"
	default:
		return "unraid"
	}
}

// Color is the embed border colour for the category: red for failures,
// green for recoveries, purple for neutral chatter.
func (c Category) Color() int {
	switch c {
	case CategoryFailure:
		return 0xE74C3C
	case CategoryRecovered:
		return 0x2ECC71
	default:
		return 0x9B59B6
	}
}

var failureKeywords = []string{"error", "down", "errors"}

// Classify buckets a monitoring event. A structured embed title wins over
// the free-text body; both are matched case-insensitively.
func Classify(ev Event) Category {
	if ev.HasEmbed {
		title := strings.ToLower(ev.EmbedTitle)
		switch {
		case strings.Contains(title, "up"):
			return CategoryRecovered
		case strings.Contains(title, "down"):
			return CategoryFailure
		default:
			return CategoryNeutral
		}
	}

	content := strings.ToLower(strings.TrimSpace(ev.Content))
	for _, kw := range failureKeywords {
		if strings.Contains(content, kw) {
			return CategoryFailure
		}
	}
	if strings.Contains(content, "up") {
		return CategoryRecovered
	}
	return CategoryNeutral
}
