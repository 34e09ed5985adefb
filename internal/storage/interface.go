package storage

import "github.com/jesswhitlock/verdant/internal/models"

// Provider is the persistence collaborator for the plant collection and the
// watering-history log. The plant collection uses whole-collection replace
// semantics: no partial updates, no optimistic concurrency control, last
// write wins. The history log is append-only.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Plants. ReadPlants returns records normalized per the documented
	// defaulting rules; WritePlants replaces the whole collection and
	// preserves the given order.
	ReadPlants() ([]models.PlantRecord, error)
	WritePlants([]models.PlantRecord) error

	// Watering history
	ReadHistory() ([]models.HistoryEntry, error)
	AppendHistory(models.HistoryEntry) error

	// Graveyard. Written on plant removal, never read back by the core.
	AppendGraveyard(models.GraveyardEntry) error

	// Utils
	GetConfigPath() string
}
