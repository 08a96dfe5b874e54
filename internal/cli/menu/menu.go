// Package menu implements the interactive front door: a looping action
// select with huh forms for input and the shared lipgloss card styles
// for output.
package menu

import (
	"context"
	"errors"
	"fmt"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/cli/styles"
	"github.com/thenoetrevino/obra/internal/models"
)

// Run drives the menu until the user quits. Esc inside a form backs out
// to the menu; quitting the menu itself returns nil.
func Run(ctx context.Context, c *cli.CLI) error {
	theme := CreateObraTheme(c.Config.ColorScheme)
	formKeys := CreateKeyMapWithShiftEnter(c.Config.KeyMappings)
	menuKeys := MenuKeyMap(c.Config.KeyMappings)

	for {
		var choice Action
		form := MainMenuForm(&choice).WithTheme(theme).WithKeyMap(menuKeys)
		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		var err error
		switch choice {
		case ActionAdd:
			err = runAdd(ctx, c, theme, formKeys)
		case ActionList:
			err = runList(ctx, c)
		case ActionView:
			err = runView(ctx, c, theme)
		case ActionUpdate:
			err = runUpdate(ctx, c, theme, formKeys)
		case ActionDelete:
			err = runDelete(ctx, c, theme)
		case ActionQuit:
			return nil
		}
		if err != nil {
			// Esc inside an action's form backs out to the menu
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			return err
		}
	}
}

func runAdd(ctx context.Context, c *cli.CLI, theme huh.Theme, keys *huh.KeyMap) error {
	var (
		name           string
		estimatedHours string
		actualHours    string
		difficulty     int
		notes          string
		confirm        bool
	)

	form := CreateProjectForm(&name, &estimatedHours, &actualHours, &difficulty, &notes, &confirm, false).
		WithTheme(theme).
		WithKeyMap(keys)
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}
	if !confirm {
		fmt.Println(styles.SubtitleStyle.Render("Cancelled"))
		return nil
	}

	req, err := BuildCreateRequest(name, estimatedHours, actualHours, difficulty, notes)
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
		return nil
	}

	project, err := c.App.ProjectService.AddProject(ctx, req)
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
		return nil
	}

	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Project '%s' created (ID: %d)", project.Name, project.ID)))
	return nil
}

func runList(ctx context.Context, c *cli.CLI) error {
	projects, err := c.App.ProjectService.FetchAllProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		fmt.Println(styles.SubtitleStyle.Render("No projects found"))
		return nil
	}

	fmt.Printf("Found %d projects:\n\n", len(projects))
	for _, p := range projects {
		fmt.Println("  " + styles.RenderProjectLine(p))
	}
	fmt.Println()
	return nil
}

func runView(ctx context.Context, c *cli.CLI, theme huh.Theme) error {
	picked, err := pickProject(ctx, c, theme, "View which project?")
	if err != nil || picked == nil {
		return err
	}

	project, err := c.App.ProjectService.FetchProjectByID(ctx, picked.ID)
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
		return nil
	}

	fmt.Println(styles.RenderProjectCard(project, c.Config.GlamourStyle))
	return nil
}

func runUpdate(ctx context.Context, c *cli.CLI, theme huh.Theme, keys *huh.KeyMap) error {
	picked, err := pickProject(ctx, c, theme, "Update which project?")
	if err != nil || picked == nil {
		return err
	}

	// Prefill with stored values so submitting unchanged fields keeps them
	name := picked.Name
	estimatedHours := picked.EstimatedHours.String()
	var actualHours string
	if picked.ActualHours != nil {
		actualHours = picked.ActualHours.String()
	}
	difficulty := 0
	if picked.Difficulty != nil {
		difficulty = *picked.Difficulty
	}
	notes := picked.Notes
	confirm := true

	form := CreateProjectForm(&name, &estimatedHours, &actualHours, &difficulty, &notes, &confirm, true).
		WithTheme(theme).
		WithKeyMap(keys)
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}
	if !confirm {
		fmt.Println(styles.SubtitleStyle.Render("Cancelled"))
		return nil
	}

	req, err := BuildUpdateRequest(picked.ID, name, estimatedHours, actualHours, difficulty, notes)
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
		return nil
	}

	project, err := c.App.ProjectService.ModifyProjectDetails(ctx, req)
	if err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
		return nil
	}

	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Project '%s' updated", project.Name)))
	return nil
}

func runDelete(ctx context.Context, c *cli.CLI, theme huh.Theme) error {
	picked, err := pickProject(ctx, c, theme, "Delete which project?")
	if err != nil || picked == nil {
		return err
	}

	confirm := false
	form := ConfirmDeleteForm(picked.Name, &confirm).WithTheme(theme)
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}
	if !confirm {
		fmt.Println(styles.SubtitleStyle.Render("Cancelled"))
		return nil
	}

	if err := c.App.ProjectService.DeleteProject(ctx, picked.ID); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ " + err.Error()))
		return nil
	}

	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Project '%s' deleted", picked.Name)))
	return nil
}

// pickProject runs the project select form. A nil project with nil error
// means there was nothing to pick from.
func pickProject(ctx context.Context, c *cli.CLI, theme huh.Theme, title string) (*models.Project, error) {
	projects, err := c.App.ProjectService.FetchAllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		fmt.Println(styles.SubtitleStyle.Render("No projects yet - add one first"))
		return nil, nil
	}

	id := projects[0].ID
	form := SelectProjectForm(title, projects, &id).WithTheme(theme)
	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}

	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
