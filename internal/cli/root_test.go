package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jesswhitlock/verdant/internal/models"
)

func TestResolvePlant(t *testing.T) {
	records := []models.PlantRecord{
		{Name: "Aloe", AcquisitionDate: "2024-01-01", FrequencyDays: 7},
		{Name: "Pothos", AcquisitionDate: "2024-01-01", FrequencyDays: 7},
		{Name: "Pothos", AcquisitionDate: "2024-03-01", FrequencyDays: 7},
	}

	tests := []struct {
		name     string
		plant    string
		acquired string
		want     models.PlantID
		wantErr  string
	}{
		{
			name:  "unique name resolves",
			plant: "Aloe",
			want:  models.PlantID{Name: "Aloe", AcquisitionDate: "2024-01-01"},
		},
		{
			name:    "ambiguous name needs acquisition date",
			plant:   "Pothos",
			wantErr: "--acquired",
		},
		{
			name:     "acquisition date disambiguates",
			plant:    "Pothos",
			acquired: "2024-03-01",
			want:     models.PlantID{Name: "Pothos", AcquisitionDate: "2024-03-01"},
		},
		{
			name:  "unknown name passes through for not-found reporting",
			plant: "Cactus",
			want:  models.PlantID{Name: "Cactus"},
		},
		{
			name:     "invalid acquisition date",
			plant:    "Pothos",
			acquired: "spring",
			wantErr:  "invalid acquisition date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePlant(records, tt.plant, tt.acquired)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ResolvePlant() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolvePlant() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolvePlant() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContextToday(t *testing.T) {
	ctx := &Context{
		Clock: clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)),
	}
	if got := ctx.Today(); got != "2024-06-01" {
		t.Errorf("Today() = %q, want 2024-06-01", got)
	}
}

func TestFormatPlant(t *testing.T) {
	tests := []struct {
		name string
		rec  models.PlantRecord
		want string
	}{
		{
			name: "watered plant",
			rec:  models.PlantRecord{Name: "Aloe", AcquisitionDate: "2024-01-01", LastWatered: "2024-05-25", FrequencyDays: 7},
			want: "Aloe (2024-01-01) - every 7 days, last watered 2024-05-25",
		},
		{
			name: "never watered",
			rec:  models.PlantRecord{Name: "Fern", AcquisitionDate: "2024-02-01", FrequencyDays: 3},
			want: "Fern (2024-02-01) - every 3 days, last watered never",
		},
		{
			name: "snoozed",
			rec:  models.PlantRecord{Name: "Aloe", AcquisitionDate: "2024-01-01", LastWatered: "2024-05-25", FrequencyDays: 7, SnoozeUntil: "2024-06-03"},
			want: "Aloe (2024-01-01) - every 7 days, last watered 2024-05-25, snoozed until 2024-06-03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPlant(tt.rec); got != tt.want {
				t.Errorf("FormatPlant() = %q, want %q", got, tt.want)
			}
		})
	}
}
