package constants

const (
	AppName            = "verdant"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/verdant/verdant.json"
	Version            = "v0.2.0"

	// DefaultFrequencyDays is the watering interval applied when a record
	// carries a missing or invalid frequency.
	DefaultFrequencyDays = 7

	// DefaultSnoozeDays is how far a snooze pushes the reminder out.
	DefaultSnoozeDays = 2

	// MinHistoryForSuggestion is the minimum number of watering events a
	// plant needs before an interval suggestion is computed.
	MinHistoryForSuggestion = 3

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "verdant-"

	// History log name used by the SQL stores
	HistoryTableName = "watering_history"
)

// SessionState represents the current state of the TUI application
type SessionState int

const (
	StateDue SessionState = iota
	StatePlants
	StateSuggestions
	StateAddPlant
	StateConfirmRemove
)
