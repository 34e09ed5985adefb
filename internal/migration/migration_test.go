package migration

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte(`CREATE TABLE plants (name TEXT NOT NULL);`),
		},
		"002_add_notes.sql": &fstest.MapFile{
			Data: []byte(`ALTER TABLE plants ADD COLUMN notes TEXT;`),
		},
	}
}

func TestApplyFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if applied != 2 {
		t.Errorf("Apply() applied %d migrations, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 2 {
		t.Errorf("CurrentVersion() = %d, want 2", version)
	}

	// Schema from both migrations must be present.
	if _, err := db.Exec(`INSERT INTO plants (name, notes) VALUES ('Aloe', 'sunny window')`); err != nil {
		t.Errorf("schema incomplete after Apply: %v", err)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("second Apply() applied %d migrations, want 0", applied)
	}
}

func TestApplyPartialUpgrade(t *testing.T) {
	db := openTestDB(t)

	// Start with only the first migration available.
	first := fstest.MapFS{"001_init.sql": testFS()["001_init.sql"]}
	if _, err := NewRunner(db, first).Apply(nil); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	runner := NewRunner(db, testFS())
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if applied != 1 {
		t.Errorf("Apply() applied %d migrations, want 1", applied)
	}
}

func TestApplyRejectsNewerSchema(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// Pretend a future build wrote a higher version.
	if _, err := db.Exec(`DELETE FROM schema_version`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (99)`); err != nil {
		t.Fatal(err)
	}

	if _, err := runner.Apply(nil); err == nil {
		t.Error("Apply() accepted a database newer than this build")
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() accepted a database newer than this build")
	}
}

func TestReadMigrationFiles(t *testing.T) {
	tests := []struct {
		name    string
		fs      fstest.MapFS
		wantErr bool
	}{
		{
			name:    "well formed",
			fs:      testFS(),
			wantErr: false,
		},
		{
			name: "missing underscore",
			fs: fstest.MapFS{
				"001init.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
			},
			wantErr: true,
		},
		{
			name: "non numeric version",
			fs: fstest.MapFS{
				"abc_init.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
			},
			wantErr: true,
		},
		{
			name: "duplicate version",
			fs: fstest.MapFS{
				"001_a.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
				"001_b.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
			},
			wantErr: true,
		},
		{
			name: "non sql files ignored",
			fs: fstest.MapFS{
				"001_init.sql": &fstest.MapFile{Data: []byte(`SELECT 1;`)},
				"README.md":    &fstest.MapFile{Data: []byte(`docs`)},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(nil, tt.fs)
			_, err := runner.ReadMigrationFiles()
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadMigrationFiles() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
