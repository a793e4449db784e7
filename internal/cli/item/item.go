// Package item holds the commands that move and reschedule board items.
// Both run a whole drag and drop gesture through the mutation controller,
// so the CLI and the board share one write path.
package item

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/mutation"
	"github.com/thenoetrevino/boardview/internal/notify"
	"github.com/thenoetrevino/boardview/internal/types"
)

// session is the state a gesture command works against
type session struct {
	formatter *cli.OutputFormatter
	cli       *cli.CLI
	data      *cli.BoardData
	ctrl      *mutation.Controller
	queue     *notify.Queue
}

func open(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, formatter.Fail(err)
	}
	boardID, err := cli.ResolveBoardID(ctx, cmd, cliInstance)
	if err != nil {
		return nil, formatter.Fail(err)
	}
	data, err := cliInstance.LoadBoard(ctx, boardID)
	if err != nil {
		return nil, formatter.Fail(err)
	}

	queue := notify.NewQueue()
	ctrl, err := cliInstance.App.Controller(ctx, boardID, queue)
	if err != nil {
		return nil, formatter.Fail(err)
	}
	return &session{formatter: formatter, cli: cliInstance, data: data, ctrl: ctrl, queue: queue}, nil
}

// result is the JSON form of an applied gesture
type result struct {
	ItemID  types.ItemID           `json:"itemId"`
	Name    string                 `json:"name"`
	Changed bool                   `json:"changed"`
	Target  string                 `json:"target"`
	Cells   map[types.ColumnID]any `json:"cells,omitempty"`
	Status  *string                `json:"status,omitempty"`
}
