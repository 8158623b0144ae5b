// Package timers persists last-fired timestamps for named timers, one small
// JSON file per timer. Anything wrong with a backing file means "no prior
// timestamp" — never an error that stops the caller.
package timers

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
)

type delayFile struct {
	LastTime string `json:"last_time"`
}

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Load returns the last saved timestamp for name. The second return is
// false when there is no usable prior timestamp: file missing, empty,
// malformed, or the key absent.
func (s *Store) Load(name string) (time.Time, bool) {
	path := s.path(name)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] Failed to read timer file %s: %v", path, err)
		}
		return time.Time{}, false
	}
	if len(data) == 0 {
		log.Printf("[WARN] Timer file %s is empty", path)
		return time.Time{}, false
	}

	var df delayFile
	if err := json.Unmarshal(data, &df); err != nil {
		log.Printf("[WARN] Timer file %s contains invalid JSON: %v", path, err)
		return time.Time{}, false
	}
	if df.LastTime == "" {
		log.Printf("[WARN] Key 'last_time' not found in %s", path)
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339Nano, df.LastTime)
	if err != nil {
		log.Printf("[WARN] Timer file %s holds an unparseable timestamp: %v", path, err)
		return time.Time{}, false
	}
	return t, true
}

// Save records t as the last-fired time for name, atomically.
func (s *Store) Save(name string, t time.Time) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(delayFile{LastTime: t.Format(time.RFC3339Nano)})
	if err != nil {
		return err
	}
	return atomic.WriteFile(s.path(name), bytes.NewReader(data))
}

// IsNewDay reports whether the local calendar date has advanced past last.
// A zero last counts as a new day.
func IsNewDay(last, now time.Time) bool {
	if last.IsZero() {
		return true
	}
	ly, lm, ld := last.Date()
	ny, nm, nd := now.Date()
	if ny != ly {
		return ny > ly
	}
	if nm != lm {
		return nm > lm
	}
	return nd > ld
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+"_delay.json")
}
