package project

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/cli/styles"
	"github.com/thenoetrevino/obra/internal/models"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show project details",
		Long:  "Display a project with its materials, steps, categories, and rendered notes.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	// Flags
	cmd.Flags().Int("id", 0, "Project ID (can also be provided as positional argument)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Parse project ID from positional arg or flag
	projectID, err := cli.ParseProjectIDArg(cmd, args)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_PROJECT_ID",
			err.Error(),
			"Usage: obra project show <id> or obra project show --id=<id>"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	// Get project with materials, steps, and categories
	project, err := cliInstance.App.ProjectService.FetchProjectByID(ctx, projectID)
	if err != nil {
		if fmtErr := formatter.Error("PROJECT_NOT_FOUND", fmt.Sprintf("project %d not found", projectID)); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	// Output in appropriate format
	if quietMode {
		fmt.Printf("%d\n", project.ID)
		return nil
	}

	if jsonOutput {
		return outputJSON(project)
	}

	// Human-readable output with lipgloss
	fmt.Println(styles.RenderProjectCard(project, cliInstance.Config.GlamourStyle))
	return nil
}

func outputJSON(project *models.Project) error {
	materials := make([]map[string]interface{}, 0, len(project.Materials))
	for _, m := range project.Materials {
		materials = append(materials, map[string]interface{}{
			"id":           m.ID,
			"name":         m.Name,
			"num_required": m.NumRequired,
			"cost":         m.Cost,
		})
	}

	steps := make([]map[string]interface{}, 0, len(project.Steps))
	for _, s := range project.Steps {
		steps = append(steps, map[string]interface{}{
			"id":    s.ID,
			"order": s.Order,
			"text":  s.Text,
		})
	}

	categories := make([]string, 0, len(project.Categories))
	for _, c := range project.Categories {
		categories = append(categories, c.Name)
	}

	return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
		"success": true,
		"project": map[string]interface{}{
			"id":              project.ID,
			"name":            project.Name,
			"estimated_hours": project.EstimatedHours,
			"actual_hours":    project.ActualHours,
			"difficulty":      project.Difficulty,
			"notes":           project.Notes,
			"materials":       materials,
			"steps":           steps,
			"categories":      categories,
		},
	})
}
