// Package jukebox tells everyone what Net-chan is listening to.
package jukebox

import (
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"sync"
)

type Song struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Link   string `json:"link"`
	Image  string `json:"image"`
}

// Box picks a random song from the music file. Like the response store it
// reads on demand so the playlist can be refreshed without a restart.
type Box struct {
	path string

	mu  sync.Mutex
	rng *rand.Rand
}

func New(path string) *Box {
	return &Box{path: path, rng: rand.New(rand.NewSource(rand.Int63()))}
}

// Pick returns a random song, or false when the playlist is missing,
// malformed or empty.
func (b *Box) Pick() (*Song, bool) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] Failed to read music file %s: %v", b.path, err)
		}
		return nil, false
	}

	var songs []Song
	if err := json.Unmarshal(data, &songs); err != nil {
		log.Printf("[WARN] Music file %s contains invalid JSON: %v", b.path, err)
		return nil, false
	}
	if len(songs) == 0 {
		return nil, false
	}

	b.mu.Lock()
	song := songs[b.rng.Intn(len(songs))]
	b.mu.Unlock()
	return &song, true
}
