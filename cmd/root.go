package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/cli/menu"
	"github.com/thenoetrevino/obra/internal/cli/project"
)

var rootCmd = &cobra.Command{
	Use:   "obra",
	Short: "Obra - a terminal DIY project tracker",
	Long: `Obra tracks DIY projects with their materials, build steps, and categories.

Run it bare for the interactive menu, or script it through the project
subcommands with --json and --quiet output.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.AddCommand(project.ProjectCmd())
}

// runMenu is the bare-invocation path: no subcommand opens the
// interactive menu loop
func runMenu(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return menu.Run(ctx, cliInstance)
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
