package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardview/internal/calendar"
	"github.com/thenoetrevino/boardview/internal/config/colors"
	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/kanban"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/notify"
	"github.com/thenoetrevino/boardview/internal/testutil"
	"github.com/thenoetrevino/boardview/internal/timeline"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func testStyles() Styles {
	return NewStyles(*colors.Default())
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func limit(n int) *int { return &n }

// ============================================================================
// KANBAN
// ============================================================================

func TestBucketHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		col  models.KanbanColumn
		want string
	}{
		{"no limit", models.KanbanColumn{Name: "Todo", Items: []models.Item{{ID: "1"}}}, "Todo (1)"},
		{"under limit", models.KanbanColumn{Name: "Doing", WIPLimit: limit(2), Items: []models.Item{{ID: "1"}}}, "Doing (1/2)"},
		{"over limit", models.KanbanColumn{Name: "Doing", WIPLimit: limit(1), Items: []models.Item{{ID: "1"}, {ID: "2"}}}, "Doing (2/1) !"},
		{"zero limit is off", models.KanbanColumn{Name: "Done", WIPLimit: limit(0)}, "Done (0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BucketHeader(tt.col))
		})
	}
}

func TestKanban_SelectionAndGrab(t *testing.T) {
	t.Parallel()
	board := &kanban.Board{Columns: []models.KanbanColumn{
		{ID: "todo", Name: "Todo", Items: []models.Item{{ID: "A", Name: "Design"}, {ID: "B", Name: "Build"}}},
		{ID: "done", Name: "Done"},
	}}

	out := Kanban(board, testStyles(), KanbanOptions{Cursor: &Cursor{Bucket: 0, Item: 1}})
	assert.Contains(t, out, "Todo (2)")
	assert.Contains(t, out, "Done (0)")
	assert.Contains(t, out, "> Build")
	assert.Contains(t, out, "No items")

	out = Kanban(board, testStyles(), KanbanOptions{Cursor: &Cursor{Bucket: 1}, Grabbed: "A"})
	assert.Contains(t, out, "≡ Design")
	assert.Contains(t, out, "╔", "drop target uses the double border")
}

func TestKanban_SwimlanesAndGuidance(t *testing.T) {
	t.Parallel()
	board := &kanban.Board{
		Outcome: models.OutcomeNoStatusColumn,
		Swimlanes: []models.Swimlane{
			{ID: "ana", Name: "ana", Columns: []models.KanbanColumn{{ID: "pending", Name: "Pending", Items: []models.Item{{ID: "A", Name: "Design"}}}}},
			{ID: "ben", Name: "ben", Columns: []models.KanbanColumn{{ID: "pending", Name: "Pending"}}},
		},
	}

	out := Kanban(board, testStyles(), KanbanOptions{})
	assert.Contains(t, out, models.OutcomeNoStatusColumn.Guidance())
	assert.Contains(t, out, "ana (1)")
	assert.Contains(t, out, "ben (0)")
	assert.Less(t, strings.Index(out, "ana (1)"), strings.Index(out, "ben (0)"))
}

// ============================================================================
// CALENDAR
// ============================================================================

func newProjector(mode calendar.Mode) *calendar.Projector {
	p := calendar.NewProjector(calendar.Options{
		Location: time.UTC,
		Now:      func() time.Time { return day(10) },
	})
	p.SetMode(mode)
	return p
}

func TestCalendar_MonthGrid(t *testing.T) {
	t.Parallel()
	proj := newProjector(calendar.ModeMonth).Project(calendar.Input{
		Items:     testutil.SampleItems(),
		Columns:   testutil.SampleColumns(),
		EndColumn: "end",
	})

	out := Calendar(proj, testStyles(), CalendarOptions{MaxPerCell: 1})
	assert.Contains(t, out, "January 2024")
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "Design")
	assert.Contains(t, out, "+1 more", "Jan 1 holds Design and Docs")
	assert.NotContains(t, out, "Backlog idea")
}

func TestCalendar_Agenda(t *testing.T) {
	t.Parallel()
	proj := newProjector(calendar.ModeAgenda).Project(calendar.Input{
		Items:     testutil.SampleItems(),
		Columns:   testutil.SampleColumns(),
		EndColumn: "end",
	})

	out := Calendar(proj, testStyles(), CalendarOptions{})
	assert.Contains(t, out, "Mon Jan 1")
	assert.Contains(t, out, "• Design")
	assert.Contains(t, out, "• Launch")
}

func TestCalendar_NoDateColumn(t *testing.T) {
	t.Parallel()
	proj := newProjector(calendar.ModeMonth).Project(calendar.Input{
		Items:   testutil.SampleItems(),
		Columns: []models.Column{{ID: "status", Name: "Status", Type: models.ColumnTypeStatus}},
	})

	out := Calendar(proj, testStyles(), CalendarOptions{})
	assert.Contains(t, out, models.OutcomeNoDateColumn.Guidance())
}

func TestCalendarTitle(t *testing.T) {
	t.Parallel()
	week := newProjector(calendar.ModeWeek).Project(calendar.Input{Columns: testutil.SampleColumns()})
	assert.Equal(t, "Jan 7 - Jan 13 2024", CalendarTitle(week))

	d := newProjector(calendar.ModeDay).Project(calendar.Input{Columns: testutil.SampleColumns()})
	assert.Equal(t, "Wednesday, January 10 2024", CalendarTitle(d))
}

// ============================================================================
// TIMELINE
// ============================================================================

func sampleLayout(t *testing.T) *timeline.Layout {
	t.Helper()
	l := timeline.Build(timeline.Input{
		Items:     testutil.SampleItems(),
		Columns:   testutil.SampleColumns(),
		EndColumn: "end",
	}, time.UTC)
	require.Equal(t, models.OutcomeReady, l.Outcome)
	return l
}

func TestBarCells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bar       *timeline.Bar
		width     int
		wantStart int
		wantN     int
	}{
		{"nil", nil, 10, 0, 0},
		{"full", &timeline.Bar{Left: 0, Width: 1}, 10, 0, 10},
		{"middle", &timeline.Bar{Left: 0.25, Width: 0.5}, 20, 5, 10},
		{"tiny bar keeps a cell", &timeline.Bar{Left: 0.5, Width: 0.001}, 10, 5, 1},
		{"at the right edge", &timeline.Bar{Left: 1, Width: 0.001}, 10, 9, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			start, n := BarCells(tt.bar, tt.width)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantN, n)
		})
	}
}

func TestRuler_SkipsOverlappingLabels(t *testing.T) {
	t.Parallel()
	axis := timeline.Axis{Range: daterange.Span{Start: day(1), End: daterange.EndOfDay(day(31))}}

	r := Ruler(axis, []time.Time{day(1), day(2), day(15)}, 40, "Jan 2")
	assert.True(t, strings.HasPrefix(r, "Jan 1"))
	assert.NotContains(t, r, "Jan 2 ")
	assert.Contains(t, r, "Jan 15")
}

func TestTimeline_CriticalPathSummary(t *testing.T) {
	t.Parallel()
	l := sampleLayout(t)
	axis := timeline.Axis{
		Range:     daterange.Span{Start: day(1), End: daterange.EndOfDay(day(14))},
		WholeDays: true,
	}

	out := Timeline(l, axis, testStyles(), TimelineOptions{TrackWidth: 28})
	assert.Contains(t, out, "Design")
	assert.Contains(t, out, "Docs")
	assert.Contains(t, out, "█")
	assert.NotContains(t, out, "Backlog idea")
	assert.Contains(t, out, "Critical path: Design → Build → Launch (6 days)")
}

func TestTimeline_ItemsBeforeWindowPointLeft(t *testing.T) {
	t.Parallel()
	l := sampleLayout(t)
	feb := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	axis := timeline.Axis{Range: daterange.Span{Start: feb, End: daterange.EndOfDay(feb.AddDate(0, 0, 13))}}

	out := Timeline(l, axis, testStyles(), TimelineOptions{})
	assert.Contains(t, out, "‹")
	assert.NotContains(t, out, "█")
}

func TestSummary_Conflicts(t *testing.T) {
	t.Parallel()
	items := testutil.SampleItems()
	items[1].Cells["start"] = "2024-01-01" // Build now starts the day Design ends
	l := timeline.Build(timeline.Input{Items: items, Columns: testutil.SampleColumns(), EndColumn: "end"}, time.UTC)

	assert.Contains(t, Summary(l), "Conflict: Build starts before Design ends (1 day overlap)")
}

func TestTimeline_NoDateColumn(t *testing.T) {
	t.Parallel()
	l := timeline.Build(timeline.Input{Items: testutil.SampleItems()}, time.UTC)
	out := Timeline(l, timeline.Axis{}, testStyles(), TimelineOptions{})
	assert.Contains(t, out, models.OutcomeNoDateColumn.Guidance())
}

// ============================================================================
// NOTIFICATIONS
// ============================================================================

func TestNotification(t *testing.T) {
	t.Parallel()
	st := testStyles()
	assert.Contains(t, Notification(notify.Notification{Level: notify.LevelError, Message: "rolled back"}, st), "✗ rolled back")
	assert.Contains(t, Notification(notify.Notification{Level: notify.LevelWarning, Message: "stale"}, st), "! stale")
	assert.Contains(t, Notification(notify.Notification{Level: notify.LevelInfo, Message: "saved"}, st), "i saved")
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Design", truncate("Design", 6))
	assert.Equal(t, "Des…", truncate("Design", 4))
	assert.Equal(t, "", truncate("Design", 0))
	assert.Equal(t, "ab  ", pad("ab", 4))
}
