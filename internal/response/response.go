// Package response picks reply templates for named event types.
package response

import (
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"strings"
	"sync"
)

// Fallback is used whenever an event type has no usable templates.
const Fallback = "🌸 **Net-chan Update!** 🌸"

const placeholder = "{message}"

// Store reads templates from a JSON file mapping event type to a list of
// template strings. The file is read on demand so it can be edited without
// restarting the bot; a missing or broken file degrades to the fallback.
type Store struct {
	path string

	mu  sync.Mutex
	rng *rand.Rand
}

func New(path string) *Store {
	return &Store{path: path, rng: rand.New(rand.NewSource(rand.Int63()))}
}

// Get returns a rendered response for eventType. It never fails: unknown
// event types, empty template lists and unreadable files all yield the
// generic fallback. When the chosen template carries the {message}
// placeholder and detail is non-empty, the detail is interpolated.
func (s *Store) Get(eventType, detail string) string {
	templates := s.load(eventType)

	var reply string
	if len(templates) == 0 {
		reply = Fallback
	} else {
		s.mu.Lock()
		reply = templates[s.rng.Intn(len(templates))]
		s.mu.Unlock()
	}

	if strings.Contains(reply, placeholder) {
		insert := ""
		if detail != "" {
			insert = "\n\n(" + detail + ")"
		}
		reply = strings.ReplaceAll(reply, placeholder, insert)
	}

	return strings.ReplaceAll(reply, `\n`, "\n")
}

func (s *Store) load(eventType string) []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] Failed to read responses file %s: %v", s.path, err)
		}
		return nil
	}

	var byType map[string][]string
	if err := json.Unmarshal(data, &byType); err != nil {
		log.Printf("[WARN] Responses file %s contains invalid JSON: %v", s.path, err)
		return nil
	}

	return byType[eventType]
}
