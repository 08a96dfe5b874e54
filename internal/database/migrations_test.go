package database

import (
	"context"
	"testing"

	_ "modernc.org/sqlite"
)

func TestMigrationsAreIdempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	// setupTestDB already ran migrations once; a second run must not fail
	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	// The schema is still usable afterwards
	_, err := db.Exec(
		`INSERT INTO projects (project_name, estimated_hours) VALUES (?, ?)`,
		"Smoke Test", 1,
	)
	if err != nil {
		t.Fatalf("Schema unusable after repeated migrations: %v", err)
	}
}

func TestDefaultCategoriesSeededOnce(t *testing.T) {
	db, err := openBareTestDB()
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	seeded := countTestRows(t, db, "category")
	if seeded == 0 {
		t.Fatal("Expected default categories to be seeded into an empty table")
	}

	// Seeding is guarded by emptiness, not idempotent inserts: a second
	// run against a non-empty table must not add or restore rows
	if _, err := db.Exec(`DELETE FROM category WHERE category_name = 'Repairs'`); err != nil {
		t.Fatalf("Failed to delete category: %v", err)
	}
	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}
	if count := countTestRows(t, db, "category"); count != seeded-1 {
		t.Errorf("Expected %d categories after re-run, got %d", seeded-1, count)
	}
}

func TestForeignKeysAreEnforced(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	// A material pointing at a project that does not exist must be rejected
	_, err := db.Exec(
		`INSERT INTO material (project_id, material_name) VALUES (?, ?)`,
		9999, "Orphaned lumber",
	)
	if err == nil {
		t.Fatal("Expected a foreign key violation for an orphaned material")
	}

	_, err = db.Exec(
		`INSERT INTO project_category (project_id, category_id) VALUES (?, ?)`,
		9999, 9999,
	)
	if err == nil {
		t.Fatal("Expected a foreign key violation for an orphaned category link")
	}
}
