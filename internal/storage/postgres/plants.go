package postgres

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jesswhitlock/verdant/internal/models"
)

func (s *Store) ReadPlants() ([]models.PlantRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT name, acquired_on, last_watered_on, frequency_days, snooze_until, dismissed_gap_days
		FROM plants ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.PlantRecord
	for rows.Next() {
		var rec models.PlantRecord
		err := rows.Scan(&rec.Name, &rec.AcquisitionDate, &rec.LastWatered, &rec.FrequencyDays, &rec.SnoozeUntil, &rec.DismissedGap)
		if err != nil {
			return nil, err
		}
		records = append(records, rec.Normalize())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *Store) WritePlants(records []models.PlantRecord) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM plants"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear plants: %w", err)
	}

	for i, rec := range records {
		_, err := tx.Exec(`
			INSERT INTO plants (position, name, acquired_on, last_watered_on, frequency_days, snooze_until, dismissed_gap_days)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			i, rec.Name, rec.AcquisitionDate, rec.LastWatered, rec.FrequencyDays, rec.SnoozeUntil, rec.DismissedGap)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert plant %s: %w", rec.ID(), err)
		}
	}

	return tx.Commit()
}

func (s *Store) ReadHistory() ([]models.HistoryEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT plant_name, acquired_on, watered_on
		FROM watering_history ORDER BY watered_on, id`)
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
		VALUES ($1, $2, $3, $4)`,
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
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.New().String(), entry.PlantName, entry.AcquisitionDate, entry.RIPDate, entry.Reason)
	if err != nil {
		return fmt.Errorf("failed to append graveyard entry: %w", err)
	}
	return nil
}
