package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jesswhitlock/verdant/internal/models"
)

type fileStore struct {
	Version   int                     `json:"version"`
	Plants    []models.PlantRecord    `json:"plants"`
	History   []models.HistoryEntry   `json:"history"`
	Graveyard []models.GraveyardEntry `json:"graveyard,omitempty"`
}

// JSONStore persists the whole collection as a single JSON file. Every save
// rewrites the file, which matches the last-write-wins contract.
type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &fileStore{
		Version: 1,
		Plants:  []models.PlantRecord{},
		History: []models.HistoryEntry{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'verdant init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Plants == nil {
		s.store.Plants = []models.PlantRecord{}
	}
	if s.store.History == nil {
		s.store.History = []models.HistoryEntry{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) ReadPlants() ([]models.PlantRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return models.NormalizeAll(s.store.Plants), nil
}

func (s *JSONStore) WritePlants(records []models.PlantRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	next := make([]models.PlantRecord, len(records))
	copy(next, records)
	s.store.Plants = next
	return s.save()
}

func (s *JSONStore) ReadHistory() ([]models.HistoryEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	history := make([]models.HistoryEntry, len(s.store.History))
	copy(history, s.store.History)
	return history, nil
}

func (s *JSONStore) AppendHistory(entry models.HistoryEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.History = append(s.store.History, entry)
	return s.save()
}

func (s *JSONStore) AppendGraveyard(entry models.GraveyardEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Graveyard = append(s.store.Graveyard, entry)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
