package app

import (
	"database/sql"

	"github.com/thenoetrevino/obra/internal/database"
	projectservice "github.com/thenoetrevino/obra/internal/services/project"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Database handle, owned by the App once constructed
	db *sql.DB

	// Store layer (direct database access)
	store *database.ProjectStore

	// Service layer (business logic)
	ProjectService projectservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB) *App {
	store := database.NewProjectStore(db)
	return &App{
		db:             db,
		store:          store,
		ProjectService: projectservice.NewService(store),
	}
}

// Store returns the underlying project store for direct database access.
// Seeding scripts use this; application code should go through the service.
func (a *App) Store() *database.ProjectStore {
	return a.store
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}
