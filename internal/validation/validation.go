// Package validation checks the plant collection and history log for
// inconsistencies worth surfacing to the user. Conflicts are advisory; the
// engines themselves absorb malformed data via documented fallbacks.
package validation

import (
	"fmt"

	"github.com/jesswhitlock/verdant/internal/models"
	"github.com/jesswhitlock/verdant/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateIdentity  ConflictType = "duplicate_identity"
	ConflictInvalidDate        ConflictType = "invalid_date"
	ConflictInvalidFrequency   ConflictType = "invalid_frequency"
	ConflictWateredBeforeOwned ConflictType = "watered_before_owned"
	ConflictOrphanedHistory    ConflictType = "orphaned_history"
)

// Conflict represents a detected inconsistency.
type Conflict struct {
	Type        ConflictType
	Description string
	Plant       models.PlantID
}

// Result contains all detected conflicts.
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts.
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts.
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates the plant collection.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidatePlants checks the record set for duplicate identities and
// malformed stored values.
func (v *Validator) ValidatePlants(records []models.PlantRecord) Result {
	result := Result{Conflicts: []Conflict{}}

	seen := make(map[models.PlantID]int)
	for _, rec := range records {
		seen[rec.ID()]++
	}
	for id, count := range seen {
		if count > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateIdentity,
				Description: fmt.Sprintf("Duplicate plant identity: %s (%d records)", id, count),
				Plant:       id,
			})
		}
	}

	for _, rec := range records {
		id := rec.ID()

		if !utils.ValidDate(rec.AcquisitionDate) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Plant %q has invalid acquisition date: %s", rec.Name, rec.AcquisitionDate),
				Plant:       id,
			})
		}
		if rec.LastWatered != "" && !utils.ValidDate(rec.LastWatered) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Plant %s has invalid last-watered date: %s", id, rec.LastWatered),
				Plant:       id,
			})
		}
		if rec.SnoozeUntil != "" && !utils.ValidDate(rec.SnoozeUntil) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Plant %s has invalid snooze date: %s", id, rec.SnoozeUntil),
				Plant:       id,
			})
		}

		if rec.FrequencyDays < 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidFrequency,
				Description: fmt.Sprintf("Plant %s has non-positive frequency: %d", id, rec.FrequencyDays),
				Plant:       id,
			})
		}

		if utils.ValidDate(rec.AcquisitionDate) && utils.ValidDate(rec.LastWatered) {
			if days, err := utils.DaysBetween(rec.AcquisitionDate, rec.LastWatered); err == nil && days < 0 {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictWateredBeforeOwned,
					Description: fmt.Sprintf("Plant %s was last watered before it was acquired", id),
					Plant:       id,
				})
			}
		}
	}

	return result
}

// ValidateHistory flags history entries that no longer correlate to a
// record. Orphaned history is tolerated by the inference engine, but the
// user may want to know it exists.
func (v *Validator) ValidateHistory(history []models.HistoryEntry, records []models.PlantRecord) Result {
	result := Result{Conflicts: []Conflict{}}

	known := make(map[models.PlantID]bool, len(records))
	for _, rec := range records {
		known[rec.ID()] = true
	}

	orphans := make(map[models.PlantID]int)
	for _, entry := range history {
		if !known[entry.PlantID()] {
			orphans[entry.PlantID()]++
		}
	}

	for id, count := range orphans {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictOrphanedHistory,
			Description: fmt.Sprintf("History has %d entries for removed plant %s", count, id),
			Plant:       id,
		})
	}

	return result
}
