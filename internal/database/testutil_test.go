package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations.
// This is the unified test database setup used by all tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Enable foreign key constraints
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	// A second connection to :memory: would see a different, empty
	// database, so pin the pool to one connection. This also matches
	// how InitDB configures the real handle.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Clear seeded data for fresh tests
	_, err = db.Exec("DELETE FROM category")
	if err != nil {
		t.Fatalf("Failed to clear categories: %v", err)
	}

	return db
}

// openBareTestDB opens an in-memory database with foreign keys on but
// without running migrations, for tests that exercise migration and
// seeding behavior themselves.
func openBareTestDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "obra-test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	tmpfile.Close()

	db, err := sql.Open("sqlite", tmpfile.Name())
	if err != nil {
		os.Remove(tmpfile.Name())
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Enable foreign key constraints
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		db.Close()
		os.Remove(tmpfile.Name())
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := runMigrations(context.Background(), db); err != nil {
		db.Close()
		os.Remove(tmpfile.Name())
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Clear default seeded categories for fresh tests
	_, err = db.Exec("DELETE FROM category")
	if err != nil {
		db.Close()
		os.Remove(tmpfile.Name())
		t.Fatalf("Failed to clear categories: %v", err)
	}

	return db, tmpfile.Name()
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}

	// Enable foreign key constraints
	_, err = newDB.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	newDB.SetMaxOpenConns(1)
	newDB.SetMaxIdleConns(1)

	return newDB
}

// ============================================================================
// ROW SEEDING HELPERS
// Child rows are owned by the schema, not the store, so tests seed them
// with direct SQL the same way the demo data script does.
// ============================================================================

// insertTestMaterial inserts a material row and returns its generated ID
func insertTestMaterial(t *testing.T, db *sql.DB, projectID int, name string, numRequired *int, cost *decimal.Decimal) int {
	t.Helper()
	result, err := db.Exec(
		`INSERT INTO material (project_id, material_name, num_required, cost) VALUES (?, ?, ?, ?)`,
		projectID, name, numRequired, cost,
	)
	if err != nil {
		t.Fatalf("Failed to insert material %q: %v", name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get material ID: %v", err)
	}
	return int(id)
}

// insertTestStep inserts a step row and returns its generated ID
func insertTestStep(t *testing.T, db *sql.DB, projectID int, text string, order int) int {
	t.Helper()
	result, err := db.Exec(
		`INSERT INTO step (project_id, step_text, step_order) VALUES (?, ?, ?)`,
		projectID, text, order,
	)
	if err != nil {
		t.Fatalf("Failed to insert step %q: %v", text, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get step ID: %v", err)
	}
	return int(id)
}

// insertTestCategory inserts a category row and returns its generated ID
func insertTestCategory(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	result, err := db.Exec(
		`INSERT INTO category (category_name) VALUES (?)`,
		name,
	)
	if err != nil {
		t.Fatalf("Failed to insert category %q: %v", name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get category ID: %v", err)
	}
	return int(id)
}

// linkTestCategory associates a category with a project
func linkTestCategory(t *testing.T, db *sql.DB, projectID, categoryID int) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO project_category (project_id, category_id) VALUES (?, ?)`,
		projectID, categoryID,
	)
	if err != nil {
		t.Fatalf("Failed to link category %d to project %d: %v", categoryID, projectID, err)
	}
}

// countTestRows returns the row count of a table
func countTestRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var count int
	err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
}

// ============================================================================
// VALUE HELPERS
// ============================================================================

// dec parses a decimal literal, panicking on malformed test data
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decPtr parses a decimal literal and returns a pointer to it
func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// intPtr returns a pointer to v
func intPtr(v int) *int {
	return &v
}
