package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/obra/internal/database"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// TestAppKey carries a pre-built app through a command context so
// commands under test run against an in-memory database.
const TestAppKey ContextKey = "testApp"

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB creates an in-memory database with the full schema.
// The default categories stay seeded, matching what a fresh install sees.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

// CreateTestProject creates a project row and returns its ID
func CreateTestProject(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO projects (project_name, estimated_hours) VALUES (?, ?)",
		name, decimal.NewFromInt(8))
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	projectID, _ := result.LastInsertId()
	return int(projectID)
}

// CreateTestMaterial creates a material row for a project and returns its ID
func CreateTestMaterial(t *testing.T, db *sql.DB, projectID int, name string, numRequired int, cost decimal.Decimal) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO material (project_id, material_name, num_required, cost) VALUES (?, ?, ?, ?)",
		projectID, name, numRequired, cost)
	if err != nil {
		t.Fatalf("Failed to create test material: %v", err)
	}
	materialID, _ := result.LastInsertId()
	return int(materialID)
}

// CreateTestStep creates a step row for a project and returns its ID
func CreateTestStep(t *testing.T, db *sql.DB, projectID int, text string, order int) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO step (project_id, step_text, step_order) VALUES (?, ?, ?)",
		projectID, text, order)
	if err != nil {
		t.Fatalf("Failed to create test step: %v", err)
	}
	stepID, _ := result.LastInsertId()
	return int(stepID)
}

// CreateTestCategory creates a category row and returns its ID.
// Names must not collide with the seeded defaults.
func CreateTestCategory(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO category (category_name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	categoryID, _ := result.LastInsertId()
	return int(categoryID)
}

// LinkTestCategory associates a category with a project
func LinkTestCategory(t *testing.T, db *sql.DB, projectID, categoryID int) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO project_category (project_id, category_id) VALUES (?, ?)",
		projectID, categoryID)
	if err != nil {
		t.Fatalf("Failed to link category %d to project %d: %v", categoryID, projectID, err)
	}
}
