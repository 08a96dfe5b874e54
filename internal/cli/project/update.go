package project

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/cli"
	projectservice "github.com/thenoetrevino/obra/internal/services/project"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a project",
		Long: `Update a project's name, hours, difficulty, or notes.

Only the flags you pass change; everything else keeps its stored value.

Examples:
  # Rename
  obra project update 3 --name="Garden Bench v2"

  # Log the hours it actually took
  obra project update 3 --actual-hours=14.5

  # Several fields at once
  obra project update --id=3 --hours=10 --difficulty=4
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	// ID can come from the positional argument or this flag
	cmd.Flags().Int("id", 0, "Project ID")

	// Optional update flags
	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().String("hours", "", "New estimated hours")
	cmd.Flags().String("actual-hours", "", "Actual hours worked")
	cmd.Flags().String("difficulty", "", "Difficulty rating from 1 (easy) to 5 (hard)")
	cmd.Flags().String("notes", "", "New project notes (markdown)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Parse project ID from positional arg or flag
	projectID, err := cli.ParseProjectIDArg(cmd, args)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_PROJECT_ID",
			err.Error(),
			"Usage: obra project update <id> --name=... or obra project update --id=<id> --name=..."); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

	// At least one update field must be provided
	nameFlag := cmd.Flags().Lookup("name")
	hoursFlag := cmd.Flags().Lookup("hours")
	actualFlag := cmd.Flags().Lookup("actual-hours")
	difficultyFlag := cmd.Flags().Lookup("difficulty")
	notesFlag := cmd.Flags().Lookup("notes")

	if !nameFlag.Changed && !hoursFlag.Changed && !actualFlag.Changed && !difficultyFlag.Changed && !notesFlag.Changed {
		if fmtErr := formatter.Error("NO_UPDATES",
			"at least one of --name, --hours, --actual-hours, --difficulty, or --notes must be specified"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

	req := projectservice.UpdateProjectRequest{ID: projectID}

	if nameFlag.Changed {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if notesFlag.Changed {
		notes, _ := cmd.Flags().GetString("notes")
		req.Notes = &notes
	}

	req.EstimatedHours, err = cli.DecimalFlag(cmd, "hours")
	if err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}
	req.ActualHours, err = cli.DecimalFlag(cmd, "actual-hours")
	if err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}
	req.Difficulty, err = cli.DifficultyFlag(cmd, "difficulty")
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

	// Apply the update
	project, err := cliInstance.App.ProjectService.ModifyProjectDetails(ctx, req)
	if err != nil {
		if fmtErr := formatter.Error("UPDATE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	// Output success
	if quietMode {
		fmt.Printf("%d\n", project.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":    true,
			"project_id": project.ID,
		})
	}

	fmt.Printf("✓ Project %d updated successfully\n", project.ID)
	return nil
}
