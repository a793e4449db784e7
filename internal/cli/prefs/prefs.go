// Package prefs holds the commands that read and change a board's saved
// view preferences
package prefs

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/preferences"
	"github.com/thenoetrevino/boardview/internal/types"
)

// PrefsCmd returns the prefs parent command with its subcommands
func PrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read and change a board's view preferences",
		Long: `Read and change the per-board view preferences the calendar, kanban and
timeline views start from.

Keys:
  ` + strings.Join(preferences.Keys(), "\n  ") + `

Examples:
  boardview prefs show
  boardview prefs get calendar_mode
  boardview prefs set swimlane_by owner
  boardview prefs set wip_limit.in-progress 3
`,
	}

	cmd.AddCommand(showCmd(), getCmd(), setCmd())
	return cmd
}

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"export"},
		Short:   "Print all preferences of the board",
		Args:    cobra.NoArgs,
		RunE:    runShow,
	}
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func getCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print one preference",
		Args:  cobra.ExactArgs(1),
		RunE:  runGet,
	}
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one preference",
		Long: `Change one preference. An empty value resets a column or mode preference;
a WIP limit of 0 removes the limit.`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

// load resolves the board and reads its preferences
func load(ctx context.Context, cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, types.BoardID, models.ViewPreferences, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, "", models.ViewPreferences{}, formatter.Fail(err)
	}
	boardID, err := cli.ResolveBoardID(ctx, cmd, cliInstance)
	if err != nil {
		return nil, "", models.ViewPreferences{}, formatter.Fail(err)
	}
	if _, err := cliInstance.App.BoardService.GetBoard(ctx, boardID); err != nil {
		return nil, "", models.ViewPreferences{}, formatter.Fail(err)
	}
	p, err := cliInstance.App.Preferences.Load(ctx, boardID)
	if err != nil {
		return nil, "", models.ViewPreferences{}, formatter.Fail(err)
	}
	return cliInstance, boardID, p, nil
}

func runShow(cmd *cobra.Command, _ []string) error {
	formatter := cli.NewFormatter(cmd)
	_, _, p, err := load(cmd.Context(), cmd, formatter)
	if err != nil {
		return err
	}
	return formatter.YAML(p)
}

func runGet(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)
	_, _, p, err := load(cmd.Context(), cmd, formatter)
	if err != nil {
		return err
	}

	value, err := preferences.Get(p, args[0])
	if err != nil {
		return formatter.FailWithSuggestion(err, "Run 'boardview prefs --help' for the list of keys")
	}
	return formatter.Success(map[string]string{"key": args[0], "value": value}, value, value)
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	c, boardID, p, err := load(ctx, cmd, formatter)
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := preferences.Set(&p, key, value); err != nil {
		return formatter.Fail(err)
	}
	if err := c.App.Preferences.Save(ctx, boardID, p); err != nil {
		return formatter.Fail(fmt.Errorf("failed to save preferences: %w", err))
	}

	stored, _ := preferences.Get(p, key)
	return formatter.Success(
		map[string]string{"key": key, "value": stored},
		fmt.Sprintf("Set %s = %s", key, stored),
		stored,
	)
}
