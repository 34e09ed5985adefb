package storage

import (
	"errors"
	"strings"

	"github.com/jesswhitlock/verdant/internal/storage/postgres"
	"github.com/jesswhitlock/verdant/internal/storage/sqlite"
)

// NewSQLiteStore creates a SQLite-backed provider.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a PostgreSQL-backed provider.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// IsPostgresConnString reports whether the config value looks like a
// PostgreSQL connection string rather than a file path.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// embeds a password. Such strings are rejected outright.
func HasEmbeddedCredentials(connStr string) bool {
	ok, err := postgres.ValidateConnString(connStr)
	return !ok && errors.Is(err, postgres.ErrEmbeddedCredentials)
}
