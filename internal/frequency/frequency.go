// Package frequency derives watering-interval suggestions from the
// observed watering history.
package frequency

import (
	"sort"

	"github.com/jesswhitlock/verdant/internal/constants"
	"github.com/jesswhitlock/verdant/internal/models"
	"github.com/jesswhitlock/verdant/internal/utils"
)

// SuggestFrequencies computes an interval suggestion per plant from its
// watering history.
//
// A plant needs at least three parseable watering events before a
// suggestion is computed. The suggestion is the truncated arithmetic mean
// of the consecutive gaps between waterings, and is only emitted when it
// differs from both the plant's configured frequency and the value the user
// last dismissed. History for plants that no longer exist is skipped;
// orphaned history is not an error.
//
// Results follow the record set's insertion order so repeated evaluation is
// deterministic.
func SuggestFrequencies(history []models.HistoryEntry, records []models.PlantRecord) []models.Suggestion {
	grouped := make(map[models.PlantID][]string)
	for _, entry := range history {
		if !utils.ValidDate(entry.WateredOn) {
			continue
		}
		id := entry.PlantID()
		grouped[id] = append(grouped[id], entry.WateredOn)
	}

	var suggestions []models.Suggestion
	for _, rec := range records {
		dates := grouped[rec.ID()]
		if len(dates) < constants.MinHistoryForSuggestion {
			continue
		}

		avg, ok := averageGap(dates)
		if !ok {
			continue
		}

		if avg == rec.FrequencyDays || avg == rec.DismissedGap {
			continue
		}

		suggestions = append(suggestions, models.Suggestion{
			Name:                 rec.Name,
			AcquisitionDate:      rec.AcquisitionDate,
			AverageGapDays:       avg,
			CurrentFrequencyDays: rec.FrequencyDays,
		})
	}

	return suggestions
}

// averageGap returns the truncated mean of the consecutive day gaps between
// the given dates. All dates have been validated by the caller.
func averageGap(dates []string) (int, bool) {
	sorted := make([]string, len(dates))
	copy(sorted, dates)
	sort.Strings(sorted) // canonical dates sort chronologically as strings

	total := 0
	for i := 1; i < len(sorted); i++ {
		gap, err := utils.DaysBetween(sorted[i-1], sorted[i])
		if err != nil {
			return 0, false
		}
		total += gap
	}

	gaps := len(sorted) - 1
	if gaps < 1 {
		return 0, false
	}
	return total / gaps, true
}
