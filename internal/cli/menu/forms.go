package menu

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/models"
	projectservice "github.com/thenoetrevino/obra/internal/services/project"
)

// Action identifies a main menu entry
type Action int

const (
	ActionAdd Action = iota
	ActionList
	ActionView
	ActionUpdate
	ActionDelete
	ActionQuit
)

// MainMenuForm creates the top-level action select
func MainMenuForm(choice *Action) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[Action]().
			Key("action").
			Title("What would you like to do?").
			Options(
				huh.NewOption("Add a project", ActionAdd),
				huh.NewOption("List projects", ActionList),
				huh.NewOption("View project details", ActionView),
				huh.NewOption("Update project details", ActionUpdate),
				huh.NewOption("Delete a project", ActionDelete),
				huh.NewOption("Quit", ActionQuit),
			).
			Value(choice),
	))
}

// DifficultyOptions returns the selectable difficulty ratings. Zero means
// unrated and becomes a NULL difficulty.
func DifficultyOptions() []huh.Option[int] {
	return []huh.Option[int]{
		huh.NewOption("Unrated", 0),
		huh.NewOption("1 - beginner", 1),
		huh.NewOption("2 - easy", 2),
		huh.NewOption("3 - moderate", 3),
		huh.NewOption("4 - hard", 4),
		huh.NewOption("5 - expert", 5),
	}
}

// CreateProjectForm creates a huh form for adding or editing a project.
// The form uses pointers to update values in place; hour fields stay
// strings until submit so decimal parsing happens exactly once.
func CreateProjectForm(
	name *string,
	estimatedHours *string,
	actualHours *string,
	difficulty *int,
	notes *string,
	confirm *bool,
	isEdit bool,
) *huh.Form {
	confirmTitle := "Create this project?"
	if isEdit {
		confirmTitle = "Save these changes?"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Project Name").
			Placeholder("Enter project name...").
			Validate(validateName).
			Value(name),

		huh.NewInput().
			Key("estimated_hours").
			Title("Estimated Hours").
			Placeholder("e.g. 12.5").
			Validate(validateRequiredHours).
			Value(estimatedHours),

		huh.NewInput().
			Key("actual_hours").
			Title("Actual Hours (optional)").
			Placeholder("Leave blank if not started...").
			Validate(validateOptionalHours).
			Value(actualHours),

		huh.NewSelect[int]().
			Key("difficulty").
			Title("Difficulty").
			Options(DifficultyOptions()...).
			Value(difficulty),

		huh.NewText().
			Key("notes").
			Title("Notes (markdown, optional)").
			Placeholder("Enter project notes...").
			CharLimit(5000).
			Lines(5).
			Value(notes),

		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// SelectProjectForm creates a picker over existing projects; the chosen
// project ID lands in id
func SelectProjectForm(title string, projects []*models.Project, id *int) *huh.Form {
	options := make([]huh.Option[int], 0, len(projects))
	for _, p := range projects {
		options = append(options, huh.NewOption(fmt.Sprintf("#%d  %s", p.ID, p.Name), p.ID))
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Key("project").
			Title(title).
			Options(options...).
			Value(id),
	))
}

// ConfirmDeleteForm creates the delete confirmation. Deleting cascades,
// so the description spells out what goes with the project.
func ConfirmDeleteForm(projectName string, confirm *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(fmt.Sprintf("Delete '%s'?", projectName)).
			Description("Its materials, steps, and category links go with it.").
			Affirmative("Delete").
			Negative("Keep").
			Value(confirm),
	))
}

// ============================================================================
// Field validation
// ============================================================================

func validateName(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errors.New("name is required")
	}
	if len(trimmed) > projectservice.MaxNameLength {
		return fmt.Errorf("name cannot exceed %d characters", projectservice.MaxNameLength)
	}
	return nil
}

func validateRequiredHours(value string) error {
	hours, err := cli.ParseDecimal(value)
	if err != nil {
		return err
	}
	if hours.Sign() <= 0 {
		return errors.New("estimated hours must be positive")
	}
	return nil
}

func validateOptionalHours(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	hours, err := cli.ParseDecimal(value)
	if err != nil {
		return err
	}
	if hours.Sign() < 0 {
		return errors.New("hours cannot be negative")
	}
	return nil
}

// ============================================================================
// Request building
// ============================================================================

// BuildCreateRequest converts submitted form values into a service
// request. The field validators have already vetted the strings, so this
// is conversion, not a second validation pass.
func BuildCreateRequest(name, estimatedHours, actualHours string, difficulty int, notes string) (projectservice.CreateProjectRequest, error) {
	req := projectservice.CreateProjectRequest{
		Name:  strings.TrimSpace(name),
		Notes: strings.TrimSpace(notes),
	}

	hours, err := cli.ParseDecimal(estimatedHours)
	if err != nil {
		return req, err
	}
	req.EstimatedHours = hours

	if strings.TrimSpace(actualHours) != "" {
		actual, err := cli.ParseDecimal(actualHours)
		if err != nil {
			return req, err
		}
		req.ActualHours = &actual
	}
	if difficulty != 0 {
		req.Difficulty = &difficulty
	}

	return req, nil
}

// BuildUpdateRequest converts submitted form values into an update
// request for the given project. The form was prefilled with stored
// values, so every scalar is set outright; blank optional fields stay
// nil and keep whatever the row holds.
func BuildUpdateRequest(id int, name, estimatedHours, actualHours string, difficulty int, notes string) (projectservice.UpdateProjectRequest, error) {
	trimmedName := strings.TrimSpace(name)
	trimmedNotes := strings.TrimSpace(notes)
	req := projectservice.UpdateProjectRequest{
		ID:    id,
		Name:  &trimmedName,
		Notes: &trimmedNotes,
	}

	hours, err := cli.ParseDecimal(estimatedHours)
	if err != nil {
		return req, err
	}
	req.EstimatedHours = &hours

	if strings.TrimSpace(actualHours) != "" {
		actual, err := cli.ParseDecimal(actualHours)
		if err != nil {
			return req, err
		}
		req.ActualHours = &actual
	}
	if difficulty != 0 {
		req.Difficulty = &difficulty
	}

	return req, nil
}
