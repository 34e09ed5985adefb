package models

import (
	"fmt"

	"github.com/jesswhitlock/verdant/internal/constants"
)

// PlantID is the stable identity of a plant. Names are not unique on their
// own; two plants may share a name if they were acquired on different dates.
type PlantID struct {
	Name            string `json:"name"`
	AcquisitionDate string `json:"acquisition_date"` // YYYY-MM-DD
}

func (id PlantID) String() string {
	return fmt.Sprintf("%s (%s)", id.Name, id.AcquisitionDate)
}

// PlantRecord is one tracked plant. All dates are YYYY-MM-DD strings; an
// empty string means "unset".
type PlantRecord struct {
	Name            string `json:"name"`
	AcquisitionDate string `json:"acquisition_date"`
	LastWatered     string `json:"last_watered,omitempty"`
	FrequencyDays   int    `json:"frequency_days"`
	SnoozeUntil     string `json:"snooze_until,omitempty"`
	DismissedGap    int    `json:"dismissed_gap_days"`
}

// ID returns the plant's identity key.
func (p PlantRecord) ID() PlantID {
	return PlantID{Name: p.Name, AcquisitionDate: p.AcquisitionDate}
}

// Normalize coerces invalid stored values to their documented defaults.
// It is applied once at the store-read boundary, never scattered through
// consumers.
func (p PlantRecord) Normalize() PlantRecord {
	if p.FrequencyDays < 1 {
		p.FrequencyDays = constants.DefaultFrequencyDays
	}
	if p.DismissedGap < 0 {
		p.DismissedGap = 0
	}
	return p
}

// NormalizeAll returns a normalized copy of the record set.
func NormalizeAll(records []PlantRecord) []PlantRecord {
	out := make([]PlantRecord, len(records))
	for i, r := range records {
		out[i] = r.Normalize()
	}
	return out
}

// HistoryEntry is one watering event. Entries are append-only and are never
// mutated or deleted, even when the plant itself is removed.
type HistoryEntry struct {
	PlantName       string `json:"plant_name"`
	AcquisitionDate string `json:"acquisition_date"`
	WateredOn       string `json:"watered_on"` // YYYY-MM-DD
}

// PlantID returns the identity of the plant this entry belongs to.
func (h HistoryEntry) PlantID() PlantID {
	return PlantID{Name: h.PlantName, AcquisitionDate: h.AcquisitionDate}
}

// GraveyardEntry marks a removed plant. Written on removal, never read back.
type GraveyardEntry struct {
	PlantName       string `json:"plant_name"`
	AcquisitionDate string `json:"acquisition_date"`
	RIPDate         string `json:"rip_date"`
	Reason          string `json:"reason,omitempty"`
}

// Suggestion proposes a watering interval derived from observed history.
type Suggestion struct {
	Name                 string `json:"name"`
	AcquisitionDate      string `json:"acquisition_date"`
	AverageGapDays       int    `json:"average_gap_days"`
	CurrentFrequencyDays int    `json:"current_frequency_days"`
}

// PlantID returns the identity of the plant this suggestion applies to.
func (s Suggestion) PlantID() PlantID {
	return PlantID{Name: s.Name, AcquisitionDate: s.AcquisitionDate}
}
