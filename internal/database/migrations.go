package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema and seeds default data if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create projects table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS projects (
			project_id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_name TEXT NOT NULL,
			estimated_hours NUMERIC NOT NULL,
			actual_hours NUMERIC,
			difficulty INTEGER,
			notes TEXT
		)
	`)
	if err != nil {
		return err
	}

	// Create material table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS material (
			material_id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			material_name TEXT NOT NULL,
			num_required INTEGER,
			cost NUMERIC,
			FOREIGN KEY (project_id) REFERENCES projects(project_id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create step table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS step (
			step_id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			step_text TEXT NOT NULL,
			step_order INTEGER NOT NULL,
			FOREIGN KEY (project_id) REFERENCES projects(project_id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create category table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS category (
			category_id INTEGER PRIMARY KEY AUTOINCREMENT,
			category_name TEXT NOT NULL UNIQUE
		)
	`)
	if err != nil {
		return err
	}

	// Create project_category join table. Both foreign keys cascade so
	// deleting either side removes only the association rows.
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS project_category (
			project_id INTEGER NOT NULL,
			category_id INTEGER NOT NULL,
			PRIMARY KEY (project_id, category_id),
			FOREIGN KEY (project_id) REFERENCES projects(project_id) ON DELETE CASCADE,
			FOREIGN KEY (category_id) REFERENCES category(category_id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create indexes for the child lookups FetchByID performs
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_material_project
		ON material(project_id)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_step_project
		ON step(project_id, step_order)
	`)
	if err != nil {
		return err
	}

	// Seed default categories if the table is empty
	if err := seedDefaultCategories(ctx, db); err != nil {
		return err
	}

	return nil
}

// seedDefaultCategories inserts default categories if the category table is empty
func seedDefaultCategories(ctx context.Context, db *sql.DB) error {
	// Check if category table is empty
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM category").Scan(&count)
	if err != nil {
		return err
	}

	// If categories exist, don't seed
	if count > 0 {
		return nil
	}

	defaultCategories := []string{
		"Woodworking",
		"Electrical",
		"Plumbing",
		"Gardening",
		"Repairs",
	}

	for _, name := range defaultCategories {
		_, err := db.ExecContext(ctx,
			"INSERT INTO category (category_name) VALUES (?)",
			name,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
