// Package view holds the read-only projection commands: calendar, kanban
// and timeline
package view

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/cli"
)

// setup returns the formatter, CLI and board data every view command needs
func setup(cmd *cobra.Command) (*cli.OutputFormatter, *cli.CLI, *cli.BoardData, error) {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter, nil, nil, formatter.Fail(err)
	}
	data, err := load(ctx, cmd, cliInstance)
	if err != nil {
		return formatter, nil, nil, formatter.Fail(err)
	}
	return formatter, cliInstance, data, nil
}

func load(ctx context.Context, cmd *cobra.Command, c *cli.CLI) (*cli.BoardData, error) {
	boardID, err := cli.ResolveBoardID(ctx, cmd, c)
	if err != nil {
		return nil, err
	}
	return c.LoadBoard(ctx, boardID)
}
