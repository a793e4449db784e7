// Package launcher runs the interactive board
package launcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/boardview/internal/app"
	"github.com/thenoetrevino/boardview/internal/tui"
	"github.com/thenoetrevino/boardview/internal/types"
)

// shutdownGrace is how long an interrupted board gets to finish in-flight writes
const shutdownGrace = 2 * time.Second

// Options configures Launch. Nil streams use the terminal.
type Options struct {
	BoardID types.BoardID
	Input   io.Reader
	Output  io.Writer
}

// Launch runs the board until the user quits or the process is interrupted
func Launch(ctx context.Context, a *app.App, opts Options) error {
	// Create a context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model := tui.New(ctx, tui.Options{
		BoardID:  opts.BoardID,
		Service:  a.BoardService,
		Prefs:    a.Preferences,
		Config:   a.Config,
		Location: a.Location,
	})

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	p := tea.NewProgram(model, programOpts...)

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running board: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up", "board_id", opts.BoardID)
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
		}
	}
	return nil
}
