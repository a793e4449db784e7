package item

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/mutation"
	"github.com/thenoetrevino/boardview/internal/types"
)

// RescheduleCmd returns the reschedule command
func RescheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reschedule <item> <date>",
		Short: "Move an item's date to another day",
		Long: `Move an item's date to another day.

The date is written at midday in the configured timezone. When the item
also has an end date, the end moves by the same number of days so the
duration is kept.

Examples:
  boardview reschedule Launch 2024-02-01
  boardview reschedule C +7 --end-column end
  boardview reschedule Launch tomorrow --column due
`,
		Args: cobra.ExactArgs(2),
		RunE: runReschedule,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("column", "", "Date column ID (defaults to the first date column)")
	cmd.Flags().String("end-column", "", "End date column ID that moves along")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runReschedule(cmd *cobra.Command, args []string) error {
	s, err := open(cmd)
	if err != nil {
		return err
	}

	item, err := cli.FindItem(s.data.Items, args[0])
	if err != nil {
		return s.formatter.Fail(err)
	}
	day, err := cli.ParseDay(args[1], s.cli.Now(), s.cli.App.Location)
	if err != nil {
		return s.formatter.Fail(err)
	}

	target := mutation.DayTarget{Day: day, EndColumn: s.data.Prefs.EndDateColumn}
	if v, _ := cmd.Flags().GetString("column"); v != "" {
		target.Column = types.ColumnID(v)
	}
	if v, _ := cmd.Flags().GetString("end-column"); v != "" {
		target.EndColumn = types.ColumnID(v)
	}

	m, err := s.ctrl.Apply(cmd.Context(), mutation.Payload{ItemID: item.ID}, target)
	if err != nil {
		return s.formatter.Fail(fmt.Errorf("failed to reschedule %s: %w", item.Name, err))
	}

	key := daterange.DayKey(day)
	out := result{ItemID: item.ID, Name: item.Name, Changed: m != nil, Target: key}
	if m == nil {
		return s.formatter.Success(out, fmt.Sprintf("%s is already on %s", item.Name, key), string(item.ID))
	}
	out.Cells = m.Cells
	return s.formatter.Success(out, fmt.Sprintf("Rescheduled %s to %s", item.Name, key), string(item.ID))
}
