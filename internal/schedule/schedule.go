// Package schedule decides which plants need water on a given day.
//
// The engine is pure: it performs no I/O, never mutates its inputs, and
// absorbs every parse failure internally. Ambiguous or corrupt per-record
// data resolves toward "due": the engine may over-report a plant but never
// silently hides one.
package schedule

import (
	"sort"

	"github.com/jesswhitlock/verdant/internal/models"
	"github.com/jesswhitlock/verdant/internal/utils"
)

// IsDue reports whether the plant needs water on the given day.
//
// A snooze date strictly after today suppresses the due state regardless of
// elapsed time; a snooze that fails to parse is ignored. A plant that has
// never been watered (or whose last-watered date fails to parse) is always
// due. Otherwise the plant is due once the elapsed days meet or exceed its
// configured frequency (boundary inclusive).
func IsDue(rec models.PlantRecord, today string) bool {
	if !utils.ValidDate(today) {
		return true
	}

	if rec.SnoozeUntil != "" {
		snooze, err := utils.ParseDate(rec.SnoozeUntil)
		if err == nil {
			now, _ := utils.ParseDate(today)
			if snooze.After(now) {
				return false
			}
		}
		// Unparseable snooze values fail open toward due.
	}

	if rec.LastWatered == "" {
		return true
	}

	daysSince, err := utils.DaysBetween(rec.LastWatered, today)
	if err != nil {
		return true
	}

	return daysSince >= rec.FrequencyDays
}

// DueList returns the records due on the given day, sorted by name
// ascending. Records sharing a name keep their insertion order, so repeated
// evaluation produces a stable display.
func DueList(records []models.PlantRecord, today string) []models.PlantRecord {
	due := make([]models.PlantRecord, 0, len(records))
	for _, rec := range records {
		if IsDue(rec, today) {
			due = append(due, rec)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Name < due[j].Name
	})

	return due
}
