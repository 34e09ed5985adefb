package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jesswhitlock/verdant/internal/cli"
	"github.com/jesswhitlock/verdant/internal/storage"
	"github.com/jesswhitlock/verdant/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing store before initialization."`
	Source string `help:"Source store path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		storePath := ctx.Store.GetConfigPath()
		if storePath == "postgresql" {
			return fmt.Errorf("--force is not supported for PostgreSQL stores; drop the schema manually instead")
		}
		if c.Source != "" {
			absStorePath, err := filepath.Abs(storePath)
			if err == nil {
				storePath = absStorePath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == storePath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", storePath)
			}
		}
		if _, err := os.Stat(storePath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if err := os.Remove(storePath); err != nil {
				return fmt.Errorf("failed to delete existing store: %w", err)
			}
			fmt.Printf("Deleted existing store at: %s\n", storePath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing store: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized verdant storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

// migrateData copies the plant collection and watering history out of
// another store into the freshly initialized one.
func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	var sourceStore storage.Provider
	switch {
	case storage.IsPostgresConnString(sourcePath):
		if valid, err := postgres.ValidateConnString(sourcePath); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return err
		}
		sourceStore = storage.NewPostgresStore(sourcePath)
	case strings.HasSuffix(sourcePath, ".db"):
		sourceStore = storage.NewSQLiteStore(sourcePath)
	default:
		sourceStore = storage.NewJSONStore(sourcePath)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source store: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating plants...")
	records, err := sourceStore.ReadPlants()
	if err != nil {
		return fmt.Errorf("failed to read plants from source: %w", err)
	}
	if err := ctx.Store.WritePlants(records); err != nil {
		return fmt.Errorf("failed to write plants to destination: %w", err)
	}
	fmt.Printf("    Migrated %d plants\n", len(records))

	fmt.Println("  Migrating watering history...")
	history, err := sourceStore.ReadHistory()
	if err != nil {
		return fmt.Errorf("failed to read history from source: %w", err)
	}
	for _, entry := range history {
		if err := ctx.Store.AppendHistory(entry); err != nil {
			return fmt.Errorf("failed to append history for %s: %w", entry.PlantID(), err)
		}
	}
	fmt.Printf("    Migrated %d watering events\n", len(history))

	return nil
}
