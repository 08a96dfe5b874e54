package cli

import (
	"context"

	"github.com/thenoetrevino/obra/internal/app"
	"github.com/thenoetrevino/obra/internal/cli/styles"
	"github.com/thenoetrevino/obra/internal/config"
	"github.com/thenoetrevino/obra/internal/testutil"
)

// GetCLIFromContext returns the CLI instance for a command invocation.
// Tests inject a pre-built app through the command context; in that case
// the CLI borrows the app and Close leaves its database open. Outside of
// tests this falls through to NewCLI.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok {
		cfg := config.Default()
		styles.Init(cfg.ColorScheme)
		return &CLI{
			App:    testApp,
			Config: cfg,
			ctx:    ctx,
		}, nil
	}

	return NewCLI(ctx)
}
