package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/obra/internal/app"
	"github.com/thenoetrevino/obra/internal/cli/styles"
	"github.com/thenoetrevino/obra/internal/config"
	"github.com/thenoetrevino/obra/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App       // Application container with services
	Config *config.Config // User configuration (theme, database path)
	ctx    context.Context

	// ownsApp is false when the app was injected by a test; Close then
	// leaves the test database open for the caller's assertions.
	ownsApp bool
}

// NewCLI loads configuration, opens the database, and wires the
// application container. Styles are initialized from the configured
// color scheme so every command renders consistently.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	return &CLI{
		App:     app.New(db),
		Config:  cfg,
		ctx:     ctx,
		ownsApp: true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.ownsApp {
		return nil
	}
	return c.App.Close()
}
