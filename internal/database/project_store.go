package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/thenoetrevino/obra/internal/models"
)

// projectColumns is the select list shared by every project query, in
// the order scanProject expects.
const projectColumns = `project_id, project_name, estimated_hours, actual_hours, difficulty, notes`

// ProjectStore handles all project-related database operations.
//
// Every public method runs in its own transaction, reads included, so
// each call observes and produces a consistent snapshot. A method either
// commits and returns a result, or rolls back and returns a *StoreError
// wrapping whatever went wrong. Absence is never an error: lookups that
// match nothing report it through their return values.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore returns a store backed by the given database handle.
// The handle stays owned by the caller; the store never closes it.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// withTx runs fn inside a transaction labeled op. It handles begin,
// rollback on failure, and commit, converting any error along the way
// into a *StoreError. The deferred rollback is a no-op after a
// successful commit (sql.ErrTxDone); if beginning the transaction
// itself fails there is nothing to roll back.
func (s *ProjectStore) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StoreError{Op: op, Err: fmt.Errorf("failed to begin transaction: %w", err)}
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return &StoreError{Op: op, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &StoreError{Op: op, Err: fmt.Errorf("failed to commit transaction: %w", err)}
	}

	return nil
}

// Insert stores a new project and returns the same struct with the
// generated ID filled in. Child collections on the argument are
// ignored; materials, steps, and category links are seeded separately.
func (s *ProjectStore) Insert(ctx context.Context, project *models.Project) (*models.Project, error) {
	err := s.withTx(ctx, "insert project", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO projects (project_name, estimated_hours, actual_hours, difficulty, notes)
			 VALUES (?, ?, ?, ?, ?)`,
			project.Name,
			project.EstimatedHours,
			project.ActualHours,
			project.Difficulty,
			stringToNull(project.Notes),
		)
		if err != nil {
			return fmt.Errorf("failed to insert project '%s': %w", project.Name, err)
		}

		projectID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get project ID after insert: %w", err)
		}
		project.ID = int(projectID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// FetchAll returns a summary of every project ordered by name. The
// summaries carry scalar columns only; list views never pay for
// materials, steps, or categories.
func (s *ProjectStore) FetchAll(ctx context.Context) ([]*models.Project, error) {
	projects := make([]*models.Project, 0, 10)
	err := s.withTx(ctx, "fetch all projects", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT `+projectColumns+` FROM projects ORDER BY project_name`)
		if err != nil {
			return fmt.Errorf("failed to query projects: %w", err)
		}
		defer func() {
			if err := rows.Close(); err != nil {
				log.Printf("failed to close rows: %v", err)
			}
		}()

		for rows.Next() {
			project, err := scanProject(rows)
			if err != nil {
				return fmt.Errorf("failed to scan project row: %w", err)
			}
			projects = append(projects, project)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating project rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// FetchByID loads one project together with its materials, steps in
// build order, and linked categories. All four queries run on the same
// transaction, so the aggregate is a consistent snapshot. The boolean
// reports whether the project exists; asking for a missing ID is not
// an error.
func (s *ProjectStore) FetchByID(ctx context.Context, projectID int) (*models.Project, bool, error) {
	var project *models.Project
	err := s.withTx(ctx, "fetch project by id", func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT `+projectColumns+` FROM projects WHERE project_id = ?`,
			projectID,
		)

		found, err := scanProject(row)
		if err == sql.ErrNoRows {
			// No such project: skip the child queries and let the
			// empty read commit.
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to scan project %d: %w", projectID, err)
		}

		if found.Materials, err = fetchMaterials(ctx, tx, projectID); err != nil {
			return err
		}
		if found.Steps, err = fetchSteps(ctx, tx, projectID); err != nil {
			return err
		}
		if found.Categories, err = fetchCategories(ctx, tx, projectID); err != nil {
			return err
		}

		project = found
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if project == nil {
		return nil, false, nil
	}
	return project, true, nil
}

// Update rewrites every scalar column of an existing project row and
// reports whether exactly one row was affected. False with a nil error
// means the ID matched nothing. Child rows are untouched either way.
func (s *ProjectStore) Update(ctx context.Context, project *models.Project) (bool, error) {
	var updated bool
	err := s.withTx(ctx, "update project", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE projects
			 SET project_name = ?, estimated_hours = ?, actual_hours = ?, difficulty = ?, notes = ?
			 WHERE project_id = ?`,
			project.Name,
			project.EstimatedHours,
			project.ActualHours,
			project.Difficulty,
			stringToNull(project.Notes),
			project.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update project %d: %w", project.ID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected for project %d: %w", project.ID, err)
		}
		updated = affected == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// Delete removes a project row and reports whether one was actually
// deleted. It issues the single DELETE only; clearing materials, steps,
// and category links is the schema's job via ON DELETE CASCADE.
func (s *ProjectStore) Delete(ctx context.Context, projectID int) (bool, error) {
	var deleted bool
	err := s.withTx(ctx, "delete project", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`DELETE FROM projects WHERE project_id = ?`,
			projectID,
		)
		if err != nil {
			return fmt.Errorf("failed to delete project %d: %w", projectID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected for project %d: %w", projectID, err)
		}
		deleted = affected == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// ============================================================================
// Child fetches (same-transaction only)
// ============================================================================

// fetchMaterials loads the material list for a project on the caller's
// transaction.
func fetchMaterials(ctx context.Context, tx *sql.Tx, projectID int) ([]*models.Material, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT material_id, project_id, material_name, num_required, cost
		 FROM material
		 WHERE project_id = ?
		 ORDER BY material_id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query materials for project %d: %w", projectID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var materials []*models.Material
	for rows.Next() {
		material, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material row: %w", err)
		}
		materials = append(materials, material)
	}
	return materials, rows.Err()
}

// fetchSteps loads a project's steps ordered by their build position,
// not by insertion order.
func fetchSteps(ctx context.Context, tx *sql.Tx, projectID int) ([]*models.Step, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT step_id, project_id, step_text, step_order
		 FROM step
		 WHERE project_id = ?
		 ORDER BY step_order`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query steps for project %d: %w", projectID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var steps []*models.Step
	for rows.Next() {
		step, err := scanStep(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan step row: %w", err)
		}
		steps = append(steps, step)
	}
	return steps, rows.Err()
}

// fetchCategories loads the categories linked to a project through the
// project_category join table.
func fetchCategories(ctx context.Context, tx *sql.Tx, projectID int) ([]*models.Category, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT c.category_id, c.category_name
		 FROM category c
		 INNER JOIN project_category pc ON c.category_id = pc.category_id
		 WHERE pc.project_id = ?
		 ORDER BY c.category_name`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for project %d: %w", projectID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var categories []*models.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}
