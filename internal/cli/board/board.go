// Package board holds the board level commands: the interactive board,
// listing boards and importing them from JSON
package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/launcher"
)

// BoardCmd returns the board command. Without a subcommand it opens the
// interactive kanban board.
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive kanban board",
		Long: `Open the interactive kanban board.

Move with h/j/k/l (or the arrow keys), press space to pick a card up,
move to another bucket and press space again to drop it there. esc
cancels a move. A failed save puts the card back where it was.

Examples:
  boardview board
  boardview board --board roadmap
  boardview board list
`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}

	cli.AddBoardFlag(cmd)
	cmd.AddCommand(listCmd())
	return cmd
}

func runBoard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	boardID, err := cli.ResolveBoardID(ctx, cmd, cliInstance)
	if err != nil {
		return formatter.Fail(err)
	}
	if _, err := cliInstance.App.BoardService.GetBoard(ctx, boardID); err != nil {
		return formatter.Fail(err)
	}

	return launcher.Launch(ctx, cliInstance.App, launcher.Options{BoardID: boardID})
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List boards",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	boards, err := cliInstance.App.BoardService.ListBoards(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if len(boards) == 0 {
		return formatter.Success(boards, "No boards yet. Import one with 'boardview import <file>'.", "")
	}

	st := cliInstance.Styles()
	var text, quiet strings.Builder
	for i, b := range boards {
		if i > 0 {
			text.WriteString("\n")
			quiet.WriteString("\n")
		}
		fmt.Fprintf(&text, "%s  %s", st.Accent.Render(string(b.ID)), b.Name)
		quiet.WriteString(string(b.ID))
	}
	return formatter.Success(boards, text.String(), quiet.String())
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Create a board from a JSON document",
		Long: `Create a board, its columns, items and view preferences from a JSON
document. The document is validated before anything is written.

Examples:
  boardview import roadmap.json
  boardview import roadmap.json --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	res, err := cliInstance.App.Importer.ImportFile(ctx, args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	text := fmt.Sprintf("Imported board %s (%d columns, %d items)", res.BoardID, res.Columns, res.Items)
	return formatter.Success(res, text, string(res.BoardID))
}
