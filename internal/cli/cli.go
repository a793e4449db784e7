// Package cli holds what every boardview command shares: the application
// handle carried in the command context, output formatting, exit codes and
// lookups of boards, items and buckets by name.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/boardview/internal/app"
	"github.com/thenoetrevino/boardview/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
}

// NewCLI loads the application for a command run
func NewCLI(ctx context.Context, cfg *config.Config, opts ...app.Option) (*CLI, error) {
	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &CLI{App: application}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

type cliKey struct{}

// ErrNoCLI means a command ran without the root command's setup
var ErrNoCLI = errors.New("cli not initialized")

// WithCLI stores the CLI in a context
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI stored by the root command
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, fmt.Errorf("%w: run through the root command", ErrNoCLI)
	}
	return c, nil
}
