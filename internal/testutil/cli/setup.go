package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/obra/internal/app"
	"github.com/thenoetrevino/obra/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db)
}

// CreateTestProject wraps testutil.CreateTestProject for CLI tests
func CreateTestProject(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	return testutil.CreateTestProject(t, db, name)
}

// CreateTestCategory wraps testutil.CreateTestCategory for CLI tests
func CreateTestCategory(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	return testutil.CreateTestCategory(t, db, name)
}

// LinkTestCategory wraps testutil.LinkTestCategory for CLI tests
func LinkTestCategory(t *testing.T, db *sql.DB, projectID, categoryID int) {
	t.Helper()
	testutil.LinkTestCategory(t, db, projectID, categoryID)
}
