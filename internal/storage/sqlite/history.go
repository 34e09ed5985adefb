package sqlite

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jesswhitlock/verdant/internal/models"
)

func (s *Store) ReadHistory() ([]models.HistoryEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT plant_name, acquired_on, watered_on
		FROM watering_history ORDER BY watered_on, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []models.HistoryEntry
	for rows.Next() {
		var entry models.HistoryEntry
		if err := rows.Scan(&entry.PlantName, &entry.AcquisitionDate, &entry.WateredOn); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

func (s *Store) AppendHistory(entry models.HistoryEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO watering_history (id, plant_name, acquired_on, watered_on)
		VALUES (?, ?, ?, ?)`,
		uuid.New().String(), entry.PlantName, entry.AcquisitionDate, entry.WateredOn)
	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	return nil
}

func (s *Store) AppendGraveyard(entry models.GraveyardEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO graveyard (id, plant_name, acquired_on, rip_on, reason)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), entry.PlantName, entry.AcquisitionDate, entry.RIPDate, entry.Reason)
	if err != nil {
		return fmt.Errorf("failed to append graveyard entry: %w", err)
	}
	return nil
}
