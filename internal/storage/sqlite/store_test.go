package sqlite

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jesswhitlock/verdant/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "verdant.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "verdant.db"))
	err := store.Load()
	if err == nil {
		t.Fatal("Load() succeeded on missing database")
	}
	if !strings.Contains(err.Error(), "verdant init") {
		t.Errorf("Load() error = %v, want a hint to run init", err)
	}
}

func TestWriteReadPlantsPreservesOrder(t *testing.T) {
	store := newTestStore(t)

	records := []models.PlantRecord{
		{Name: "Zebra", AcquisitionDate: "2024-03-01", FrequencyDays: 10},
		{Name: "Aloe", AcquisitionDate: "2024-01-01", LastWatered: "2024-05-25", FrequencyDays: 7, SnoozeUntil: "2024-06-03", DismissedGap: 5},
		{Name: "Fern", AcquisitionDate: "2024-02-01", FrequencyDays: 3},
	}
	if err := store.WritePlants(records); err != nil {
		t.Fatalf("WritePlants() error = %v", err)
	}

	got, err := store.ReadPlants()
	if err != nil {
		t.Fatalf("ReadPlants() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ReadPlants() returned %d records, want 3", len(got))
	}
	for i := range records {
		if got[i] != records[i] {
			t.Errorf("record[%d] = %+v, want %+v", i, got[i], records[i])
		}
	}
}

func TestWritePlantsReplacesCollection(t *testing.T) {
	store := newTestStore(t)

	if err := store.WritePlants([]models.PlantRecord{
		{Name: "Aloe", AcquisitionDate: "2024-01-01", FrequencyDays: 7},
		{Name: "Fern", AcquisitionDate: "2024-02-01", FrequencyDays: 3},
	}); err != nil {
		t.Fatalf("WritePlants() error = %v", err)
	}

	if err := store.WritePlants([]models.PlantRecord{
		{Name: "Fern", AcquisitionDate: "2024-02-01", FrequencyDays: 3},
	}); err != nil {
		t.Fatalf("WritePlants() error = %v", err)
	}

	got, err := store.ReadPlants()
	if err != nil {
		t.Fatalf("ReadPlants() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Fern" {
		t.Errorf("ReadPlants() = %+v", got)
	}
}

func TestReadPlantsNormalizes(t *testing.T) {
	store := newTestStore(t)

	// Write a malformed frequency directly; the read boundary must repair
	// it.
	if _, err := store.db.Exec(
		`INSERT INTO plants (position, name, acquired_on, frequency_days, dismissed_gap_days) VALUES (0, 'Aloe', '2024-01-01', 0, -2)`,
	); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	got, err := store.ReadPlants()
	if err != nil {
		t.Fatalf("ReadPlants() error = %v", err)
	}
	if got[0].FrequencyDays != 7 || got[0].DismissedGap != 0 {
		t.Errorf("ReadPlants() = %+v, want normalized defaults", got[0])
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	store := newTestStore(t)

	entries := []models.HistoryEntry{
		{PlantName: "Aloe", AcquisitionDate: "2024-01-01", WateredOn: "2024-05-25"},
		{PlantName: "Aloe", AcquisitionDate: "2024-01-01", WateredOn: "2024-06-01"},
	}
	for _, e := range entries {
		if err := store.AppendHistory(e); err != nil {
			t.Fatalf("AppendHistory() error = %v", err)
		}
	}

	got, err := store.ReadHistory()
	if err != nil {
		t.Fatalf("ReadHistory() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ReadHistory() returned %d entries, want 2", len(got))
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Errorf("entry[%d] = %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestAppendGraveyard(t *testing.T) {
	store := newTestStore(t)

	if err := store.AppendGraveyard(models.GraveyardEntry{
		PlantName:       "Aloe",
		AcquisitionDate: "2024-01-01",
		RIPDate:         "2024-06-02",
		Reason:          "gifted away",
	}); err != nil {
		t.Fatalf("AppendGraveyard() error = %v", err)
	}

	var count int
	if err := store.db.QueryRow(`SELECT COUNT(*) FROM graveyard`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("graveyard rows = %d, want 1", count)
	}
}

func TestReopenExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verdant.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.WritePlants([]models.PlantRecord{
		{Name: "Aloe", AcquisitionDate: "2024-01-01", FrequencyDays: 7},
	}); err != nil {
		t.Fatalf("WritePlants() error = %v", err)
	}
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.ReadPlants()
	if err != nil {
		t.Fatalf("ReadPlants() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Aloe" {
		t.Errorf("ReadPlants() = %+v", got)
	}
}
