package postgres

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestMigrationFilesSortedSQLOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.SQL", "README.md", "010_c.sql"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "999_dir.sql"), 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := migrationFiles(dir)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	want := []string{"001_a.SQL", "002_b.sql", "010_c.sql"}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("expected %v, got %v", want, files)
	}
}

func TestMigrationFilesMissingDirectory(t *testing.T) {
	if _, err := migrationFiles(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRepositoryMigrationsAreOrdered(t *testing.T) {
	files, err := migrationFiles(filepath.Join("..", "..", "..", "..", "migrations"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(files) == 0 || files[0] != "001_create_ledger_reports.sql" {
		t.Fatalf("expected ledger reports migration first, got %v", files)
	}
}

func TestRunMigrationsFailsBeforeConnectingWhenDirectoryMissing(t *testing.T) {
	_, err := RunMigrations(t.Context(), "host=127.0.0.1 port=1 sslmode=disable", filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error")
	}
}
