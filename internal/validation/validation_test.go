package validation

import (
	"testing"

	"github.com/jesswhitlock/verdant/internal/models"
)

func TestValidatePlants(t *testing.T) {
	tests := []struct {
		name      string
		records   []models.PlantRecord
		wantTypes []ConflictType
	}{
		{
			name: "clean collection",
			records: []models.PlantRecord{
				{Name: "Aloe", AcquisitionDate: "2024-01-01", LastWatered: "2024-06-01", FrequencyDays: 7},
			},
			wantTypes: nil,
		},
		{
			name: "duplicate identity",
			records: []models.PlantRecord{
				{Name: "Aloe", AcquisitionDate: "2024-01-01", FrequencyDays: 7},
				{Name: "Aloe", AcquisitionDate: "2024-01-01", FrequencyDays: 7},
			},
			wantTypes: []ConflictType{ConflictDuplicateIdentity},
		},
		{
			name: "same name different acquisition is fine",
			records: []models.PlantRecord{
				{Name: "Aloe", AcquisitionDate: "2024-01-01", FrequencyDays: 7},
				{Name: "Aloe", AcquisitionDate: "2024-03-01", FrequencyDays: 7},
			},
			wantTypes: nil,
		},
		{
			name: "invalid acquisition date",
			records: []models.PlantRecord{
				{Name: "Aloe", AcquisitionDate: "spring", FrequencyDays: 7},
			},
			wantTypes: []ConflictType{ConflictInvalidDate},
		},
		{
			name: "non-positive frequency",
			records: []models.PlantRecord{
				{Name: "Aloe", AcquisitionDate: "2024-01-01", FrequencyDays: 0},
			},
			wantTypes: []ConflictType{ConflictInvalidFrequency},
		},
		{
			name: "watered before acquired",
			records: []models.PlantRecord{
				{Name: "Aloe", AcquisitionDate: "2024-06-01", LastWatered: "2024-01-01", FrequencyDays: 7},
			},
			wantTypes: []ConflictType{ConflictWateredBeforeOwned},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidatePlants(tt.records)
			if len(result.Conflicts) != len(tt.wantTypes) {
				t.Fatalf("got %d conflicts, want %d: %+v", len(result.Conflicts), len(tt.wantTypes), result.Conflicts)
			}
			for i, want := range tt.wantTypes {
				if result.Conflicts[i].Type != want {
					t.Errorf("conflict[%d].Type = %s, want %s", i, result.Conflicts[i].Type, want)
				}
			}
		})
	}
}

func TestValidateHistory(t *testing.T) {
	records := []models.PlantRecord{
		{Name: "Aloe", AcquisitionDate: "2024-01-01", FrequencyDays: 7},
	}
	history := []models.HistoryEntry{
		{PlantName: "Aloe", AcquisitionDate: "2024-01-01", WateredOn: "2024-06-01"},
		{PlantName: "Gone", AcquisitionDate: "2023-01-01", WateredOn: "2024-05-01"},
		{PlantName: "Gone", AcquisitionDate: "2023-01-01", WateredOn: "2024-05-08"},
	}

	v := New()
	result := v.ValidateHistory(history, records)
	if len(result.Conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1: %+v", len(result.Conflicts), result.Conflicts)
	}
	c := result.Conflicts[0]
	if c.Type != ConflictOrphanedHistory {
		t.Errorf("Type = %s, want %s", c.Type, ConflictOrphanedHistory)
	}
	if c.Plant.Name != "Gone" {
		t.Errorf("Plant = %+v", c.Plant)
	}
}

func TestFormatReport(t *testing.T) {
	r := Result{}
	if got := r.FormatReport(); got != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", got)
	}

	r.Conflicts = append(r.Conflicts, Conflict{Description: "something is off"})
	report := r.FormatReport()
	if report == "No conflicts detected." {
		t.Error("FormatReport() ignored conflicts")
	}
}
