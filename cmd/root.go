// Package cmd wires the boardview command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/app"
	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/cli/board"
	"github.com/thenoetrevino/boardview/internal/cli/item"
	"github.com/thenoetrevino/boardview/internal/cli/prefs"
	"github.com/thenoetrevino/boardview/internal/cli/view"
	"github.com/thenoetrevino/boardview/internal/config"
	"github.com/thenoetrevino/boardview/internal/logging"
	"github.com/thenoetrevino/boardview/internal/user"
)

// skipApp marks commands that run without opening the database
const skipApp = "skip-app"

// session owns what the root command opens for one run
type session struct {
	cli      *cli.CLI
	closeLog func() error
}

func (s *session) close() {
	if s.cli != nil {
		if err := s.cli.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
		s.cli = nil
	}
	if s.closeLog != nil {
		_ = s.closeLog()
		s.closeLog = nil
	}
}

func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "boardview",
		Short: "Calendar, kanban and timeline views over a board of items",
		Long: `boardview projects the items of a board into calendar, kanban and
timeline views, and moves them between buckets and days.

Every view command accepts --json for machine readable output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.open(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/boardview/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Database file (overrides the config and "+config.EnvDatabase+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log to stderr at debug level")

	rootCmd.AddCommand(
		view.CalendarCmd(),
		view.KanbanCmd(),
		view.TimelineCmd(),
		item.MoveCmd(),
		item.RescheduleCmd(),
		prefs.PrefsCmd(),
		board.BoardCmd(),
		board.ImportCmd(),
		configCmd(),
	)
	return rootCmd
}

// open loads the config, starts logging and puts a CLI in the command's
// context. A context that already carries a CLI is left alone.
func (s *session) open(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := cli.GetCLIFromContext(ctx); err == nil {
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Annotations[skipApp] == "true" {
		cmd.SetContext(withConfig(ctx, cfg))
		return nil
	}

	level, _ := cfg.Level()
	logOpts := logging.Options{Level: level}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logOpts.Level = slog.LevelDebug
		logOpts.Console = cmd.ErrOrStderr()
	}
	closeLog, err := logging.Init(logOpts)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	}
	s.closeLog = closeLog

	c, err := cli.NewCLI(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", cfg.DatabasePath, err)
	}
	s.cli = c
	slog.Debug("command started", "command", cmd.CommandPath(), "user", user.Name(), "db", cfg.DatabasePath)

	cmd.SetContext(cli.WithCLI(ctx, c))
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DatabasePath = db
	}
	return cfg, nil
}

// Execute runs the command tree with os.Args
func Execute() error {
	return ExecuteContext(context.Background(), os.Args[1:])
}

// ExecuteContext runs the command tree with args. Errors that a command has
// not already reported are printed to stderr.
func ExecuteContext(ctx context.Context, args []string) error {
	return run(ctx, args, nil, nil)
}

// run executes with explicit streams; nil streams use the terminal
func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	s := &session{}
	defer s.close()

	rootCmd := newRootCmd(s)
	rootCmd.SetArgs(args)
	if out != nil {
		rootCmd.SetOut(out)
	}
	if errOut != nil {
		rootCmd.SetErr(errOut)
	}
	err := rootCmd.ExecuteContext(ctx)

	var coded *cli.CodedError
	if err != nil && !errors.As(err, &coded) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
