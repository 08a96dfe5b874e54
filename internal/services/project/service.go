package project

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/obra/internal/models"
)

// MaxNameLength caps project names at the widest value the schema's
// name column is sized for. Form validators reuse it.
const MaxNameLength = 128

// Service defines all project-related business operations
type Service interface {
	// Read operations
	FetchAllProjects(ctx context.Context) ([]*models.Project, error)
	FetchProjectByID(ctx context.Context, id int) (*models.Project, error)

	// Write operations
	AddProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	ModifyProjectDetails(ctx context.Context, req UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id int) error
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name           string
	EstimatedHours decimal.Decimal
	ActualHours    *decimal.Decimal
	Difficulty     *int
	Notes          string
}

// UpdateProjectRequest encapsulates data for updating a project.
// Nil fields keep the stored value, matching the "press enter to keep"
// behavior of the interactive forms.
type UpdateProjectRequest struct {
	ID             int
	Name           *string
	EstimatedHours *decimal.Decimal
	ActualHours    *decimal.Decimal
	Difficulty     *int
	Notes          *string
}

// store defines the data access methods needed by the project service.
// This interface is private to the service layer; the database package's
// ProjectStore satisfies it. Transaction handling lives entirely behind
// it, so the service never sees a *sql.Tx.
type store interface {
	Insert(ctx context.Context, project *models.Project) (*models.Project, error)
	FetchAll(ctx context.Context) ([]*models.Project, error)
	FetchByID(ctx context.Context, id int) (*models.Project, bool, error)
	Update(ctx context.Context, project *models.Project) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// service implements Service with a private store
type service struct {
	store store
}

// NewService creates a new project service backed by the given store
func NewService(store store) Service {
	return &service{store: store}
}

// FetchAllProjects retrieves summaries of every project, ordered by name
func (s *service) FetchAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.store.FetchAll(ctx)
}

// FetchProjectByID retrieves one project with its materials, steps, and
// categories. A missing ID becomes ErrProjectNotFound here; the store
// itself treats absence as a plain result.
func (s *service) FetchProjectByID(ctx context.Context, id int) (*models.Project, error) {
	if id <= 0 {
		return nil, ErrInvalidProjectID
	}

	project, found, err := s.store.FetchByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	if !found {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

// AddProject validates the request and stores a new project
func (s *service) AddProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if req.EstimatedHours.Sign() <= 0 {
		return nil, ErrInvalidHours
	}
	if err := validateOptionalHours(req.ActualHours); err != nil {
		return nil, err
	}
	if err := validateDifficulty(req.Difficulty); err != nil {
		return nil, err
	}

	project, err := s.store.Insert(ctx, &models.Project{
		Name:           req.Name,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
		Difficulty:     req.Difficulty,
		Notes:          req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add project: %w", err)
	}
	return project, nil
}

// ModifyProjectDetails updates a project's scalar fields. Fields left nil
// in the request keep their stored values; child collections are never
// touched. Returns the project as stored after the update.
func (s *service) ModifyProjectDetails(ctx context.Context, req UpdateProjectRequest) (*models.Project, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidProjectID
	}

	// Validate fields if provided
	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.EstimatedHours != nil && req.EstimatedHours.Sign() <= 0 {
		return nil, ErrInvalidHours
	}
	if err := validateOptionalHours(req.ActualHours); err != nil {
		return nil, err
	}
	if err := validateDifficulty(req.Difficulty); err != nil {
		return nil, err
	}

	// Get the existing project to fill in missing fields
	existing, found, err := s.store.FetchByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	if !found {
		return nil, ErrProjectNotFound
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.EstimatedHours != nil {
		existing.EstimatedHours = *req.EstimatedHours
	}
	if req.ActualHours != nil {
		existing.ActualHours = req.ActualHours
	}
	if req.Difficulty != nil {
		existing.Difficulty = req.Difficulty
	}
	if req.Notes != nil {
		existing.Notes = *req.Notes
	}

	updated, err := s.store.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if !updated {
		// The row vanished between the fetch and the update
		return nil, ErrProjectNotFound
	}
	return existing, nil
}

// DeleteProject removes a project and, through the schema's cascade, its
// materials, steps, and category links
func (s *service) DeleteProject(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidProjectID
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if !deleted {
		return ErrProjectNotFound
	}
	return nil
}

// ============================================================================
// VALIDATION
// ============================================================================

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateDifficulty(difficulty *int) error {
	if difficulty == nil {
		return nil
	}
	if *difficulty < 1 || *difficulty > 5 {
		return ErrInvalidDifficulty
	}
	return nil
}

func validateOptionalHours(hours *decimal.Decimal) error {
	if hours == nil {
		return nil
	}
	if hours.Sign() < 0 {
		return ErrInvalidHours
	}
	return nil
}
