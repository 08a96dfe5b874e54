package database

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/obra/internal/models"
)

// rowScanner is the subset of *sql.Row and *sql.Rows the scan helpers
// need, so each entity has exactly one mapping regardless of whether it
// came from QueryRow or a rows loop.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProject maps one row of the projects table onto a model. The
// column order must match projectColumns.
func scanProject(row rowScanner) (*models.Project, error) {
	var (
		project     models.Project
		actualHours decimal.NullDecimal
		difficulty  sql.NullInt64
		notes       sql.NullString
	)
	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.EstimatedHours,
		&actualHours,
		&difficulty,
		&notes,
	)
	if err != nil {
		return nil, err
	}
	project.ActualHours = nullDecimalToPtr(actualHours)
	project.Difficulty = nullInt64ToPtr(difficulty)
	project.Notes = nullStringToString(notes)
	return &project, nil
}

func scanMaterial(row rowScanner) (*models.Material, error) {
	var (
		material    models.Material
		numRequired sql.NullInt64
		cost        decimal.NullDecimal
	)
	err := row.Scan(
		&material.ID,
		&material.ProjectID,
		&material.Name,
		&numRequired,
		&cost,
	)
	if err != nil {
		return nil, err
	}
	material.NumRequired = nullInt64ToPtr(numRequired)
	material.Cost = nullDecimalToPtr(cost)
	return &material, nil
}

func scanStep(row rowScanner) (*models.Step, error) {
	var step models.Step
	err := row.Scan(
		&step.ID,
		&step.ProjectID,
		&step.Text,
		&step.Order,
	)
	if err != nil {
		return nil, err
	}
	return &step, nil
}

func scanCategory(row rowScanner) (*models.Category, error) {
	var category models.Category
	err := row.Scan(
		&category.ID,
		&category.Name,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}
