package view

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/render"
	"github.com/thenoetrevino/boardview/internal/timeline"
	"github.com/thenoetrevino/boardview/internal/types"
)

// TimelineCmd returns the timeline command
func TimelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show dated items as bars with dependencies and the critical path",
		Long: `Print one row per dated item with its bar on a time axis.

The summary lists the critical path, dependency conflicts (an item starting
before something it depends on has ended) and items left out because of a
dependency cycle.

Examples:
  # Eight weeks starting this week
  boardview timeline

  # Six months starting in March
  boardview timeline --zoom month --date 2024-03-01

  # An explicit range
  boardview timeline --from 2024-01-01 --to 2024-02-15
`,
		Args: cobra.NoArgs,
		RunE: runTimeline,
	}

	cli.AddBoardFlag(cmd)
	cmd.Flags().String("zoom", "", "day, week or month")
	cmd.Flags().String("date", "today", "Date inside the first unit of the window")
	cmd.Flags().String("from", "", "Custom range start (needs --to)")
	cmd.Flags().String("to", "", "Custom range end (needs --from)")
	cmd.Flags().Int("width", 60, "Track width in characters")
	cmd.Flags().String("column", "", "Date or timeline column ID")
	cmd.Flags().String("end-column", "", "End date column ID")
	cmd.Flags().String("dep-column", "", "Dependency column ID")
	cli.AddOutputFlags(cmd)

	return cmd
}

type timelineOutput struct {
	BoardID      types.BoardID  `json:"boardId"`
	Zoom         timeline.Zoom  `json:"zoom"`
	Start        string         `json:"start"`
	End          string         `json:"end"`
	Outcome      string         `json:"outcome"`
	Guidance     string         `json:"guidance,omitempty"`
	Items        []timelineItem `json:"items"`
	CriticalPath []types.ItemID `json:"criticalPath"`
	CriticalDays int            `json:"criticalDays"`
	Excluded     []types.ItemID `json:"excluded,omitempty"`
	Conflicts    []conflictJSON `json:"conflicts"`
	Edges        []edgeJSON     `json:"edges"`
}

type timelineItem struct {
	ID       types.ItemID `json:"id"`
	Name     string       `json:"name"`
	Row      int          `json:"row"`
	Start    string       `json:"start"`
	End      string       `json:"end"`
	Bar      *barJSON     `json:"bar,omitempty"`
	Critical bool         `json:"critical"`
}

// barJSON places a bar as fractions of the track width
type barJSON struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

type edgeJSON struct {
	Source types.ItemID `json:"source"`
	Target types.ItemID `json:"target"`
}

type conflictJSON struct {
	Source      types.ItemID `json:"source"`
	Target      types.ItemID `json:"target"`
	OverlapDays int          `json:"overlapDays"`
}

func runTimeline(cmd *cobra.Command, _ []string) error {
	formatter, c, data, err := setup(cmd)
	if err != nil {
		return err
	}
	loc := c.App.Location

	zoomName, _ := cmd.Flags().GetString("zoom")
	if zoomName == "" {
		zoomName = data.Prefs.TimelineZoom
	}
	zoom, err := timeline.ParseZoom(zoomName)
	if err != nil {
		return formatter.FailWithSuggestion(err, "Use day, week or month")
	}

	dateFlag, _ := cmd.Flags().GetString("date")
	anchor, err := cli.ParseDay(dateFlag, c.Now(), loc)
	if err != nil {
		return formatter.Fail(err)
	}

	vp := timeline.NewViewport(timeline.ViewportOptions{
		Zoom:      zoom,
		Spans:     c.App.Config.Spans(),
		WeekStart: c.App.Config.Weekday(),
		Location:  loc,
		Now:       func() time.Time { return anchor },
	})

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	if from != "" || to != "" {
		if err := customRange(vp, from, to, c.Now(), loc); err != nil {
			return formatter.Fail(err)
		}
	}

	in := timeline.Input{
		Items:            data.Items,
		Columns:          data.Columns,
		EndColumn:        data.Prefs.EndDateColumn,
		DependencyColumn: data.Prefs.DependencyColumn,
	}
	if v, _ := cmd.Flags().GetString("column"); v != "" {
		in.DateColumn = types.ColumnID(v)
	}
	if v, _ := cmd.Flags().GetString("end-column"); v != "" {
		in.EndColumn = types.ColumnID(v)
	}
	if v, _ := cmd.Flags().GetString("dep-column"); v != "" {
		in.DependencyColumn = types.ColumnID(v)
	}
	layout := timeline.Build(in, loc)
	axis := vp.Axis(c.App.Config.Timeline.MinBarWidth)

	if formatter.JSON {
		return formatter.Success(timelineJSON(data.BoardID, vp.Zoom(), layout, axis), "", "")
	}

	width, _ := cmd.Flags().GetInt("width")
	text := render.Timeline(layout, axis, c.Styles(), render.TimelineOptions{
		TrackWidth: width,
		Ticks:      vp.Ticks(),
	})
	return formatter.Success(nil, text, "")
}

func customRange(vp *timeline.Viewport, from, to string, now time.Time, loc *time.Location) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: --from and --to go together", cli.ErrInvalidDate)
	}
	start, err := cli.ParseDay(from, now, loc)
	if err != nil {
		return err
	}
	end, err := cli.ParseDay(to, now, loc)
	if err != nil {
		return err
	}
	return vp.SetCustomRange(start, end)
}

func timelineJSON(boardID types.BoardID, zoom timeline.Zoom, l *timeline.Layout, axis timeline.Axis) timelineOutput {
	out := timelineOutput{
		BoardID:      boardID,
		Zoom:         zoom,
		Start:        daterange.DayKey(axis.Range.Start),
		End:          daterange.DayKey(axis.Range.End),
		Outcome:      l.Outcome.String(),
		Guidance:     l.Outcome.Guidance(),
		Items:        []timelineItem{},
		CriticalPath: append([]types.ItemID{}, l.CriticalPath.Items...),
		CriticalDays: l.CriticalPath.TotalDays,
		Excluded:     l.CriticalPath.Excluded,
		Conflicts:    []conflictJSON{},
		Edges:        []edgeJSON{},
	}
	for _, ti := range l.Items {
		out.Items = append(out.Items, timelineItem{
			ID:       ti.Item.ID,
			Name:     ti.Item.Name,
			Row:      ti.Row,
			Start:    daterange.DayKey(ti.Start),
			End:      daterange.DayKey(ti.End),
			Bar:      position(axis, ti),
			Critical: l.CriticalPath.Contains(ti.Item.ID),
		})
	}
	for _, cf := range l.Conflicts {
		out.Conflicts = append(out.Conflicts, conflictJSON{Source: cf.Edge.Source, Target: cf.Edge.Target, OverlapDays: cf.OverlapDays})
	}
	if l.Graph != nil {
		for _, e := range l.Graph.Edges {
			out.Edges = append(out.Edges, edgeJSON{Source: e.Source, Target: e.Target})
		}
	}
	return out
}

func position(axis timeline.Axis, ti models.TimelineItem) *barJSON {
	bar := axis.Position(ti)
	if bar == nil {
		return nil
	}
	return &barJSON{Left: bar.Left, Width: bar.Width}
}
