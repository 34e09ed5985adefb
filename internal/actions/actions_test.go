package actions

import (
	"errors"
	"testing"

	"github.com/jesswhitlock/verdant/internal/models"
)

func testRecords() []models.PlantRecord {
	return []models.PlantRecord{
		{Name: "Aloe", AcquisitionDate: "2024-01-01", LastWatered: "2024-05-25", FrequencyDays: 7, SnoozeUntil: "2024-06-03", DismissedGap: 5},
		{Name: "Fern", AcquisitionDate: "2024-02-01", FrequencyDays: 3},
	}
}

func id(name, acquired string) models.PlantID {
	return models.PlantID{Name: name, AcquisitionDate: acquired}
}

func TestMarkWatered(t *testing.T) {
	p := New(DefaultConfig())
	records := testRecords()

	next, entry, err := p.MarkWatered(records, id("Aloe", "2024-01-01"), "2024-06-01")
	if err != nil {
		t.Fatalf("MarkWatered() error = %v", err)
	}

	if next[0].LastWatered != "2024-06-01" {
		t.Errorf("LastWatered = %q, want 2024-06-01", next[0].LastWatered)
	}
	if next[0].SnoozeUntil != "" {
		t.Errorf("SnoozeUntil = %q, want cleared", next[0].SnoozeUntil)
	}
	if next[0].DismissedGap != 5 {
		t.Errorf("DismissedGap = %d, want 5 (kept by default)", next[0].DismissedGap)
	}

	if entry.PlantName != "Aloe" || entry.WateredOn != "2024-06-01" {
		t.Errorf("history entry = %+v", entry)
	}

	// Input is untouched.
	if records[0].LastWatered != "2024-05-25" || records[0].SnoozeUntil != "2024-06-03" {
		t.Errorf("input records mutated: %+v", records[0])
	}
}

func TestMarkWateredResetsDismissedWhenConfigured(t *testing.T) {
	p := New(Config{SnoozeDays: 2, ResetDismissedOnWater: true})

	next, _, err := p.MarkWatered(testRecords(), id("Aloe", "2024-01-01"), "2024-06-01")
	if err != nil {
		t.Fatalf("MarkWatered() error = %v", err)
	}
	if next[0].DismissedGap != 0 {
		t.Errorf("DismissedGap = %d, want 0", next[0].DismissedGap)
	}
}

func TestMarkWateredNotFound(t *testing.T) {
	p := New(DefaultConfig())

	_, _, err := p.MarkWatered(testRecords(), id("Cactus", "2024-01-01"), "2024-06-01")
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("MarkWatered() error = %v, want NotFoundError", err)
	}
}

func TestSnooze(t *testing.T) {
	p := New(DefaultConfig())

	next, err := p.Snooze(testRecords(), id("Fern", "2024-02-01"), "2024-06-01")
	if err != nil {
		t.Fatalf("Snooze() error = %v", err)
	}
	if next[1].SnoozeUntil != "2024-06-03" {
		t.Errorf("SnoozeUntil = %q, want 2024-06-03", next[1].SnoozeUntil)
	}
}

func TestSnoozeFor(t *testing.T) {
	tests := []struct {
		name    string
		days    int
		today   string
		want    string
		wantErr bool
	}{
		{name: "five days", days: 5, today: "2024-06-01", want: "2024-06-06"},
		{name: "zero days lands on today", days: 0, today: "2024-06-01", want: "2024-06-01"},
		{name: "crosses month boundary", days: 2, today: "2024-06-30", want: "2024-07-02"},
		{name: "invalid today", days: 2, today: "whenever", wantErr: true},
	}

	p := New(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := p.SnoozeFor(testRecords(), id("Fern", "2024-02-01"), tt.today, tt.days)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SnoozeFor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && next[1].SnoozeUntil != tt.want {
				t.Errorf("SnoozeUntil = %q, want %q", next[1].SnoozeUntil, tt.want)
			}
		})
	}
}

func TestAddPlant(t *testing.T) {
	p := New(DefaultConfig())

	next, err := p.AddPlant(testRecords(), models.PlantRecord{
		Name:            "Cactus",
		AcquisitionDate: "2024-06-01",
		FrequencyDays:   14,
		SnoozeUntil:     "2024-06-10", // must be discarded
		DismissedGap:    3,            // must be discarded
	})
	if err != nil {
		t.Fatalf("AddPlant() error = %v", err)
	}

	if len(next) != 3 {
		t.Fatalf("len(next) = %d, want 3", len(next))
	}
	added := next[2]
	if added.Name != "Cactus" || added.FrequencyDays != 14 {
		t.Errorf("added = %+v", added)
	}
	if added.SnoozeUntil != "" || added.DismissedGap != 0 {
		t.Errorf("snooze/dismissed state not cleared: %+v", added)
	}
}

func TestAddPlantValidation(t *testing.T) {
	tests := []struct {
		name string
		rec  models.PlantRecord
	}{
		{name: "empty name", rec: models.PlantRecord{Name: "", AcquisitionDate: "2024-06-01"}},
		{name: "whitespace name", rec: models.PlantRecord{Name: "   ", AcquisitionDate: "2024-06-01"}},
		{name: "bad acquisition date", rec: models.PlantRecord{Name: "Cactus", AcquisitionDate: "June 1st"}},
	}

	p := New(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.AddPlant(testRecords(), tt.rec)
			var invalid ValidationError
			if !errors.As(err, &invalid) {
				t.Errorf("AddPlant() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestAddPlantRejectsDuplicateIdentity(t *testing.T) {
	p := New(DefaultConfig())
	records := testRecords()

	// The stores key plants by (name, acquired); a second identical identity
	// would make the whole collection unwritable.
	next, err := p.AddPlant(records, models.PlantRecord{Name: "Aloe", AcquisitionDate: "2024-01-01", FrequencyDays: 10})
	var invalid ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("AddPlant() error = %v, want ValidationError", err)
	}
	if len(next) != len(records) {
		t.Errorf("len(next) = %d, want %d (unchanged)", len(next), len(records))
	}

	// Same name under a different acquisition date is a distinct plant.
	next, err = p.AddPlant(records, models.PlantRecord{Name: "Aloe", AcquisitionDate: "2024-06-01", FrequencyDays: 10})
	if err != nil {
		t.Fatalf("AddPlant() error = %v", err)
	}
	if len(next) != 3 {
		t.Errorf("len(next) = %d, want 3", len(next))
	}
}

func TestAddPlantDefaultsFrequency(t *testing.T) {
	p := New(DefaultConfig())

	next, err := p.AddPlant(nil, models.PlantRecord{Name: "Cactus", AcquisitionDate: "2024-06-01"})
	if err != nil {
		t.Fatalf("AddPlant() error = %v", err)
	}
	if next[0].FrequencyDays != 7 {
		t.Errorf("FrequencyDays = %d, want 7", next[0].FrequencyDays)
	}
}

func TestRemovePlant(t *testing.T) {
	p := New(DefaultConfig())
	records := testRecords()

	next, removed, err := p.RemovePlant(records, id("Aloe", "2024-01-01"))
	if err != nil {
		t.Fatalf("RemovePlant() error = %v", err)
	}
	if removed.Name != "Aloe" {
		t.Errorf("removed = %+v", removed)
	}
	if len(next) != 1 || next[0].Name != "Fern" {
		t.Errorf("next = %+v", next)
	}
	if len(records) != 2 {
		t.Errorf("input records mutated: %+v", records)
	}
}

func TestAcceptSuggestion(t *testing.T) {
	p := New(DefaultConfig())

	next, err := p.AcceptSuggestion(testRecords(), id("Aloe", "2024-01-01"), 10)
	if err != nil {
		t.Fatalf("AcceptSuggestion() error = %v", err)
	}
	if next[0].FrequencyDays != 10 {
		t.Errorf("FrequencyDays = %d, want 10", next[0].FrequencyDays)
	}
	if next[0].DismissedGap != 0 {
		t.Errorf("DismissedGap = %d, want 0", next[0].DismissedGap)
	}
}

func TestAcceptSuggestionRejectsBadInterval(t *testing.T) {
	p := New(DefaultConfig())

	_, err := p.AcceptSuggestion(testRecords(), id("Aloe", "2024-01-01"), 0)
	var invalid ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("AcceptSuggestion() error = %v, want ValidationError", err)
	}
}

func TestDismissSuggestion(t *testing.T) {
	p := New(DefaultConfig())

	next, err := p.DismissSuggestion(testRecords(), id("Fern", "2024-02-01"), 6)
	if err != nil {
		t.Fatalf("DismissSuggestion() error = %v", err)
	}
	if next[1].DismissedGap != 6 {
		t.Errorf("DismissedGap = %d, want 6", next[1].DismissedGap)
	}
}
