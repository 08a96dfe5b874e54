// Package project holds all cli commands related to projects
//
// e.g., obra project ...
package project

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
	projectservice "github.com/thenoetrevino/obra/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project with specified attributes.

Examples:
  # Simple project (human-readable output)
  obra project create --name="Garden Bench" --hours=12

  # JSON output for agents
  obra project create --name="Garden Bench" --hours=12 --json

  # Quiet mode for bash capture
  PROJECT_ID=$(obra project create --name="Garden Bench" --hours=12 --quiet)

  # With rating and notes
  obra project create \
    --name="Garden Bench" \
    --hours=12.5 \
    --difficulty=3 \
    --notes="Use cedar, it weathers better"
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Project name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("hours", "", "Estimated hours, e.g. 12.5 (required)")
	if err := cmd.MarkFlagRequired("hours"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("actual-hours", "", "Actual hours worked so far")
	cmd.Flags().String("difficulty", "", "Difficulty rating from 1 (easy) to 5 (hard)")
	cmd.Flags().String("notes", "", "Project notes (markdown)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	projectName, _ := cmd.Flags().GetString("name")
	estimatedHoursStr, _ := cmd.Flags().GetString("hours")
	notes, _ := cmd.Flags().GetString("notes")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Validate name is not empty
	if strings.TrimSpace(projectName) == "" {
		if fmtErr := formatter.Error("VALIDATION_ERROR", "project name cannot be empty"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	estimatedHours, err := cli.ParseDecimal(estimatedHoursStr)
	if err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	actualHours, err := cli.DecimalFlag(cmd, "actual-hours")
	if err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	difficulty, err := cli.DifficultyFlag(cmd, "difficulty")
	if err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
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

	// Create project
	project, err := cliInstance.App.ProjectService.AddProject(ctx, projectservice.CreateProjectRequest{
		Name:           projectName,
		EstimatedHours: estimatedHours,
		ActualHours:    actualHours,
		Difficulty:     difficulty,
		Notes:          notes,
	})
	if err != nil {
		if fmtErr := formatter.Error("PROJECT_CREATE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%d\n", project.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"project": map[string]interface{}{
				"id":              project.ID,
				"name":            project.Name,
				"estimated_hours": project.EstimatedHours,
				"actual_hours":    project.ActualHours,
				"difficulty":      project.Difficulty,
				"notes":           project.Notes,
			},
		})
	}

	// Human-readable output
	fmt.Printf("✓ Project '%s' created successfully (ID: %d)\n", project.Name, project.ID)
	fmt.Printf("  Estimated: %sh\n", project.EstimatedHours)
	if project.Difficulty != nil {
		fmt.Printf("  Difficulty: %d/5\n", *project.Difficulty)
	}

	return nil
}
