package sqlite

import (
	"fmt"

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

// WritePlants replaces the whole collection inside one transaction. The
// position column preserves insertion order, which is the stable display
// tiebreak.
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
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, rec.Name, rec.AcquisitionDate, rec.LastWatered, rec.FrequencyDays, rec.SnoozeUntil, rec.DismissedGap)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert plant %s: %w", rec.ID(), err)
		}
	}

	return tx.Commit()
}
