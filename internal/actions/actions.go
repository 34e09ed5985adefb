// Package actions applies user actions to the plant collection.
//
// Every operation is a pure transformation: it copies the input record set,
// returns the next state, and leaves persistence to the caller. A failed
// store write therefore never corrupts the state already computed.
package actions

import (
	"fmt"
	"strings"

	"github.com/jesswhitlock/verdant/internal/constants"
	"github.com/jesswhitlock/verdant/internal/models"
	"github.com/jesswhitlock/verdant/internal/utils"
)

// NotFoundError is returned when an action references an identity absent
// from the record set.
type NotFoundError struct {
	ID models.PlantID
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("plant not found: %s", e.ID)
}

// ValidationError is returned for malformed input. The action is aborted
// and the record set is unchanged.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid plant: %s", e.Reason)
}

// Config holds the policy knobs observed to vary between deployments.
type Config struct {
	// SnoozeDays is how far Snooze pushes the reminder out.
	SnoozeDays int
	// ResetDismissedOnWater clears the remembered dismissed suggestion
	// whenever the plant is watered.
	ResetDismissedOnWater bool
}

// DefaultConfig returns the default action policy.
func DefaultConfig() Config {
	return Config{SnoozeDays: constants.DefaultSnoozeDays}
}

// Processor applies actions to a plant collection under a fixed policy.
type Processor struct {
	cfg Config
}

// New creates a Processor with the given policy.
func New(cfg Config) *Processor {
	if cfg.SnoozeDays < 0 {
		cfg.SnoozeDays = constants.DefaultSnoozeDays
	}
	return &Processor{cfg: cfg}
}

// MarkWatered records a watering for the identified plant: last-watered
// becomes today and any pending snooze is cancelled. The returned history
// entry must be appended to the history log by the caller.
func (p *Processor) MarkWatered(records []models.PlantRecord, id models.PlantID, today string) ([]models.PlantRecord, models.HistoryEntry, error) {
	idx := indexOf(records, id)
	if idx < 0 {
		return records, models.HistoryEntry{}, NotFoundError{ID: id}
	}

	next := clone(records)
	next[idx].LastWatered = today
	next[idx].SnoozeUntil = ""
	if p.cfg.ResetDismissedOnWater {
		next[idx].DismissedGap = 0
	}

	entry := models.HistoryEntry{
		PlantName:       id.Name,
		AcquisitionDate: id.AcquisitionDate,
		WateredOn:       today,
	}
	return next, entry, nil
}

// Snooze suppresses the plant's due state until today plus the configured
// snooze interval.
func (p *Processor) Snooze(records []models.PlantRecord, id models.PlantID, today string) ([]models.PlantRecord, error) {
	return p.SnoozeFor(records, id, today, p.cfg.SnoozeDays)
}

// SnoozeFor suppresses the plant's due state until today plus the given
// number of days.
func (p *Processor) SnoozeFor(records []models.PlantRecord, id models.PlantID, today string, days int) ([]models.PlantRecord, error) {
	idx := indexOf(records, id)
	if idx < 0 {
		return records, NotFoundError{ID: id}
	}

	until, err := utils.AddDays(today, days)
	if err != nil {
		return records, ValidationError{Reason: fmt.Sprintf("invalid date %q", today)}
	}

	next := clone(records)
	next[idx].SnoozeUntil = until
	return next, nil
}

// AddPlant appends a new record. The name must be non-empty, the
// (name, acquisition date) identity must not already exist, and a missing or
// invalid frequency defaults to the standard interval. Snooze and dismissed
// state always start unset.
func (p *Processor) AddPlant(records []models.PlantRecord, rec models.PlantRecord) ([]models.PlantRecord, error) {
	if strings.TrimSpace(rec.Name) == "" {
		return records, ValidationError{Reason: "name cannot be empty"}
	}
	if rec.AcquisitionDate != "" && !utils.ValidDate(rec.AcquisitionDate) {
		return records, ValidationError{Reason: fmt.Sprintf("invalid acquisition date %q", rec.AcquisitionDate)}
	}
	if indexOf(records, rec.ID()) >= 0 {
		return records, ValidationError{Reason: fmt.Sprintf("%s already exists", rec.ID())}
	}

	rec = rec.Normalize()
	rec.SnoozeUntil = ""
	rec.DismissedGap = 0

	next := clone(records)
	next = append(next, rec)
	return next, nil
}

// RemovePlant removes the identified record and returns it so the caller
// can log a graveyard entry. History for the plant is intentionally left
// intact.
func (p *Processor) RemovePlant(records []models.PlantRecord, id models.PlantID) ([]models.PlantRecord, models.PlantRecord, error) {
	idx := indexOf(records, id)
	if idx < 0 {
		return records, models.PlantRecord{}, NotFoundError{ID: id}
	}

	removed := records[idx]
	next := make([]models.PlantRecord, 0, len(records)-1)
	next = append(next, records[:idx]...)
	next = append(next, records[idx+1:]...)
	return next, removed, nil
}

// AcceptSuggestion adopts a suggested interval as the plant's frequency and
// forgets any previously dismissed value.
func (p *Processor) AcceptSuggestion(records []models.PlantRecord, id models.PlantID, averageGapDays int) ([]models.PlantRecord, error) {
	if averageGapDays < 1 {
		return records, ValidationError{Reason: fmt.Sprintf("invalid interval %d", averageGapDays)}
	}

	idx := indexOf(records, id)
	if idx < 0 {
		return records, NotFoundError{ID: id}
	}

	next := clone(records)
	next[idx].FrequencyDays = averageGapDays
	next[idx].DismissedGap = 0
	return next, nil
}

// DismissSuggestion remembers a rejected interval so the same value is not
// suggested again until the observed average changes.
func (p *Processor) DismissSuggestion(records []models.PlantRecord, id models.PlantID, averageGapDays int) ([]models.PlantRecord, error) {
	idx := indexOf(records, id)
	if idx < 0 {
		return records, NotFoundError{ID: id}
	}

	next := clone(records)
	next[idx].DismissedGap = averageGapDays
	return next, nil
}

func indexOf(records []models.PlantRecord, id models.PlantID) int {
	for i, rec := range records {
		if rec.ID() == id {
			return i
		}
	}
	return -1
}

func clone(records []models.PlantRecord) []models.PlantRecord {
	next := make([]models.PlantRecord, len(records))
	copy(next, records)
	return next
}
