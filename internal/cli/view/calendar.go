package view

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/calendar"
	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/render"
	"github.com/thenoetrevino/boardview/internal/types"
)

// CalendarCmd returns the calendar command
func CalendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show items on a month, week, day or agenda calendar",
		Long: `Show the board's dated items on a calendar.

Mode, date columns and working-day filtering default to the board's saved
preferences.

Examples:
  # This month
  boardview calendar

  # The week containing a date, Monday to Friday only
  boardview calendar --mode week --date 2024-01-10 --working-days

  # Two date columns side by side
  boardview calendar --columns start,due

  # JSON output for agents
  boardview calendar --mode agenda --json
`,
		Args: cobra.NoArgs,
		RunE: runCalendar,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("mode", "", "month, week, day or agenda")
	cmd.Flags().String("date", "today", "Anchor date (YYYY-MM-DD, today, +3d)")
	cmd.Flags().String("columns", "", "Comma separated date column IDs")
	cmd.Flags().String("end-column", "", "End date column ID")
	cmd.Flags().Bool("working-days", false, "Hide weekends")
	cmd.Flags().Bool("time-slots", false, "Group day and week views by hour")
	cli.AddOutputFlags(cmd)

	return cmd
}

// calendarOutput is the JSON form of a calendar projection
type calendarOutput struct {
	BoardID  types.BoardID    `json:"boardId"`
	Mode     calendar.Mode    `json:"mode"`
	Start    string           `json:"start"`
	End      string           `json:"end"`
	Outcome  string           `json:"outcome"`
	Guidance string           `json:"guidance,omitempty"`
	Columns  []calendarColumn `json:"columns"`
}

type calendarColumn struct {
	ColumnID types.ColumnID `json:"columnId"`
	Name     string         `json:"name"`
	Days     []calendarDay  `json:"days"`
}

type calendarDay struct {
	Date  string        `json:"date"`
	Items []cli.ItemRef `json:"items"`
}

func runCalendar(cmd *cobra.Command, _ []string) error {
	formatter, c, data, err := setup(cmd)
	if err != nil {
		return err
	}

	modeName, _ := cmd.Flags().GetString("mode")
	if modeName == "" {
		modeName = data.Prefs.CalendarMode
	}
	mode, err := calendar.ParseMode(modeName)
	if err != nil {
		return formatter.FailWithSuggestion(err, "Use month, week, day or agenda")
	}

	dateFlag, _ := cmd.Flags().GetString("date")
	anchor, err := cli.ParseDay(dateFlag, c.Now(), c.App.Location)
	if err != nil {
		return formatter.Fail(err)
	}

	workingDays := data.Prefs.WorkingDaysOnly
	if cmd.Flags().Changed("working-days") {
		workingDays, _ = cmd.Flags().GetBool("working-days")
	}
	timeSlots := data.Prefs.ShowTimeSlots
	if cmd.Flags().Changed("time-slots") {
		timeSlots, _ = cmd.Flags().GetBool("time-slots")
	}

	input := calendar.Input{
		Items:       data.Items,
		Columns:     data.Columns,
		DateColumns: data.Prefs.DateColumns,
		EndColumn:   data.Prefs.EndDateColumn,
	}
	if cols, _ := cmd.Flags().GetString("columns"); cols != "" {
		input.DateColumns = cli.SplitColumns(cols)
	}
	if end, _ := cmd.Flags().GetString("end-column"); end != "" {
		input.EndColumn = types.ColumnID(end)
	}

	projector := calendar.NewProjector(calendar.Options{
		WeekStart:       c.App.Config.Weekday(),
		WorkingDaysOnly: workingDays,
		ShowTimeSlots:   timeSlots,
		Location:        c.App.Location,
		Now:             c.Now,
	})
	projector.SetMode(mode)
	projector.SetCurrentDate(anchor)
	proj := projector.Project(input)

	if formatter.JSON {
		return formatter.Success(calendarJSON(data.BoardID, proj), "", "")
	}
	text := render.Calendar(proj, c.Styles(), render.CalendarOptions{WeekStart: c.App.Config.Weekday()})
	return formatter.Success(nil, text, "")
}

func calendarJSON(boardID types.BoardID, proj calendar.Projection) calendarOutput {
	out := calendarOutput{
		BoardID:  boardID,
		Mode:     proj.Mode,
		Start:    daterange.DayKey(proj.Interval.Start),
		End:      daterange.DayKey(proj.Interval.End),
		Outcome:  proj.Outcome.String(),
		Guidance: proj.Outcome.Guidance(),
		Columns:  []calendarColumn{},
	}

	for _, cp := range proj.Columns {
		col := calendarColumn{ColumnID: cp.Column.ID, Name: cp.Column.Name, Days: []calendarDay{}}
		if proj.Mode == calendar.ModeAgenda {
			for _, day := range cp.Agenda {
				col.Days = append(col.Days, calendarDay{Date: day.Key, Items: cli.Refs(day.Items)})
			}
		} else {
			for _, d := range proj.Days {
				if items := cp.ItemsOn(d.Key); len(items) > 0 {
					col.Days = append(col.Days, calendarDay{Date: d.Key, Items: cli.Refs(items)})
				}
			}
		}
		out.Columns = append(out.Columns, col)
	}
	return out
}
