package system

import (
	"database/sql"
	"fmt"
	"io/fs"
	"time"

	"github.com/jesswhitlock/verdant/internal/backup"
	"github.com/jesswhitlock/verdant/internal/cli"
	"github.com/jesswhitlock/verdant/internal/migration"
	"github.com/jesswhitlock/verdant/internal/validation"
	"github.com/jesswhitlock/verdant/migrations"
)

type DoctorCmd struct{}

// dbStore is satisfied by the SQL-backed stores; file stores skip the
// schema checks.
type dbStore interface {
	GetDB() *sql.DB
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeReachable = true
	}

	if storeReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (store not reachable)\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	if storeReachable {
		if err := checkDataConsistency(ctx); err != nil {
			fmt.Printf("❌ Data consistency: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data consistency: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data consistency: SKIPPED (store not reachable)\n")
	}

	if err := checkClockSanity(ctx); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	if store, ok := ctx.Store.(dbStore); ok {
		db := store.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	store, ok := ctx.Store.(dbStore)
	if !ok {
		// The JSON store carries no schema version.
		return nil
	}

	db := store.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	dialect := "sqlite"
	if ctx.Store.GetConfigPath() == "postgresql" {
		dialect = "postgres"
	}
	subFS, err := fs.Sub(migrations.FS, dialect)
	if err != nil {
		return fmt.Errorf("failed to access %s migrations: %w", dialect, err)
	}

	runner := migration.NewRunner(db, subFS)
	current, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latest, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if current > latest {
		return fmt.Errorf("schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}

	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	if path == "postgresql" {
		// Server-side stores are backed up out of band.
		return nil
	}

	mgr := backup.NewManager(path)
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'verdant backup create'")
	}

	return nil
}

func checkDataConsistency(ctx *cli.Context) error {
	records, err := ctx.Store.ReadPlants()
	if err != nil {
		return fmt.Errorf("failed to read plants: %w", err)
	}
	history, err := ctx.Store.ReadHistory()
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	v := validation.New()
	result := v.ValidatePlants(records)
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found - run 'verdant validate' for details", len(result.Conflicts))
	}

	// Orphaned history is informational only; the suggestion engine skips
	// it.
	orphans := v.ValidateHistory(history, records)
	if orphans.HasConflicts() {
		fmt.Printf("   Note: %d plant(s) have history but no record\n", len(orphans.Conflicts))
	}

	return nil
}

func checkClockSanity(ctx *cli.Context) error {
	now := ctx.Clock.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
