package cli

import (
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/jesswhitlock/verdant/internal/actions"
	"github.com/jesswhitlock/verdant/internal/backup"
	"github.com/jesswhitlock/verdant/internal/logger"
	"github.com/jesswhitlock/verdant/internal/models"
	"github.com/jesswhitlock/verdant/internal/storage"
	"github.com/jesswhitlock/verdant/internal/utils"
)

// Context carries the collaborators every command needs: the store, the
// clock, and the action processor with its configured policy.
type Context struct {
	Store   storage.Provider
	Clock   clockwork.Clock
	Actions *actions.Processor
}

// Today returns the current date string from the injected clock.
func (c *Context) Today() string {
	return utils.Today(c.Clock)
}

// SavePlants writes the record set, treating persistence failure as a
// warning rather than an error: the computed state is already correct in
// memory and the caller has reported it, so a busy or failing store must
// not take the result down with it.
func (c *Context) SavePlants(records []models.PlantRecord) {
	if err := c.Store.WritePlants(records); err != nil {
		logger.Warn("Failed to persist plant records", "error", err)
		fmt.Printf("Warning: changes could not be saved (%v); they are applied for this session only\n", err)
	}
}

// AppendHistory appends a watering event with the same non-fatal policy as
// SavePlants.
func (c *Context) AppendHistory(entry models.HistoryEntry) {
	if err := c.Store.AppendHistory(entry); err != nil {
		logger.Warn("Failed to append watering history", "error", err)
		fmt.Printf("Warning: watering history could not be recorded (%v)\n", err)
	}
}

// PerformAutomaticBackup snapshots file-backed stores before a destructive
// operation and silently tolerates failure.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if path == "postgresql" {
		return // nothing on local disk to snapshot
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolvePlant maps a user-supplied name (and optional acquisition date)
// to a plant identity. When two plants share a name the acquisition date
// is required to disambiguate.
func ResolvePlant(records []models.PlantRecord, name, acquired string) (models.PlantID, error) {
	if acquired != "" {
		if !utils.ValidDate(acquired) {
			return models.PlantID{}, fmt.Errorf("invalid acquisition date %q (expected YYYY-MM-DD)", acquired)
		}
		return models.PlantID{Name: name, AcquisitionDate: acquired}, nil
	}

	var matches []models.PlantID
	for _, rec := range records {
		if rec.Name == name {
			matches = append(matches, rec.ID())
		}
	}

	switch len(matches) {
	case 0:
		return models.PlantID{Name: name}, nil // let the action report not-found
	case 1:
		return matches[0], nil
	default:
		var dates []string
		for _, id := range matches {
			dates = append(dates, id.AcquisitionDate)
		}
		return models.PlantID{}, fmt.Errorf("multiple plants named %q (acquired: %s); use --acquired to pick one",
			name, strings.Join(dates, ", "))
	}
}

// FormatPlant renders one record for list output.
func FormatPlant(rec models.PlantRecord) string {
	last := rec.LastWatered
	if last == "" {
		last = "never"
	}
	line := fmt.Sprintf("%s - every %d days, last watered %s", rec.ID(), rec.FrequencyDays, last)
	if rec.SnoozeUntil != "" {
		line += fmt.Sprintf(", snoozed until %s", rec.SnoozeUntil)
	}
	return line
}
