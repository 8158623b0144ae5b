// /internal/storage/storage.go
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"netchan/datastore"
)

const (
	recordKey           = "netchan"
	commandHistoryLimit = 20
)

type Storage struct {
	ds *datastore.DataStore
}

// Profile is what Net-chan remembers about a registered user. All fields
// are free text and must pass the profanity filter before they get here.
type Profile struct {
	Name           string `json:"name"`
	FavoriteColor  string `json:"favorite_color"`
	FavoriteAnimal string `json:"favorite_animal"`
	FavoriteFood   string `json:"favorite_food"`
	Interests      string `json:"interests"`
}

type CommandHistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Datetime  time.Time `json:"datetime"`
}

type Record struct {
	Profiles            map[string]Profile     `json:"profiles"`
	CommandsHistoryList []CommandHistoryRecord `json:"cmd_history"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateRecord loads the bot record, tolerating the datastore handing
// back a plain decoded map after a restart.
func (s *Storage) getOrCreateRecord() (*Record, error) {
	data, exists := s.ds.Get(recordKey)
	if !exists {
		newRecord := &Record{
			Profiles:            map[string]Profile{},
			CommandsHistoryList: []CommandHistoryRecord{},
		}
		s.ds.Add(recordKey, newRecord)
		return newRecord, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}

	if record.Profiles == nil {
		record.Profiles = map[string]Profile{}
	}

	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}

	return &record, nil
}
