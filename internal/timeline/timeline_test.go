package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var columns = []models.Column{
	{ID: "name", Name: "Name", Type: models.ColumnTypeText},
	{ID: "start", Name: "Start", Type: models.ColumnTypeDate},
	{ID: "end", Name: "End", Type: models.ColumnTypeDate},
	{ID: "deps", Name: "Blocked by", Type: models.ColumnTypeDependency},
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func task(id, start, end string, deps any) models.Item {
	cells := map[types.ColumnID]any{}
	if start != "" {
		cells["start"] = start
	}
	if end != "" {
		cells["end"] = end
	}
	if deps != nil {
		cells["deps"] = deps
	}
	return models.Item{ID: types.ItemID(id), Name: "Task " + id, Cells: cells}
}

func build(t *testing.T, items ...models.Item) *Layout {
	t.Helper()
	layout := Build(Input{Items: items, Columns: columns, EndColumn: "end"}, time.UTC)
	require.Equal(t, models.OutcomeReady, layout.Outcome)
	return layout
}

func ids(values ...string) []types.ItemID {
	out := make([]types.ItemID, 0, len(values))
	for _, v := range values {
		out = append(out, types.ItemID(v))
	}
	return out
}

// ============================================================================
// Build and rows
// ============================================================================

func TestBuild_RowsSkipUndatedAndIncrease(t *testing.T) {
	t.Parallel()

	layout := build(t,
		task("A", "2024-01-01", "", nil),
		task("B", "", "", nil),
		task("C", "2024-01-03", "2024-01-05", nil),
		task("D", "not a date", "", nil),
		task("E", "2024-01-02", "", nil),
	)

	require.Equal(t, 3, layout.Rows())
	for i, ti := range layout.Items {
		assert.Equal(t, i, ti.Row)
	}
	assert.Equal(t, types.ItemID("A"), layout.Items[0].Item.ID)
	assert.Equal(t, types.ItemID("C"), layout.Items[1].Item.ID)
	assert.Equal(t, types.ItemID("E"), layout.Items[2].Item.ID)
	assert.True(t, layout.Items[0].Start.Equal(layout.Items[0].End))
}

func TestBuild_Outcomes(t *testing.T) {
	t.Parallel()

	noDates := Build(Input{
		Items:   []models.Item{task("A", "2024-01-01", "", nil)},
		Columns: []models.Column{{ID: "name", Type: models.ColumnTypeText}},
	}, time.UTC)
	assert.Equal(t, models.OutcomeNoDateColumn, noDates.Outcome)

	noItems := Build(Input{Items: []models.Item{task("A", "", "", nil)}, Columns: columns}, time.UTC)
	assert.Equal(t, models.OutcomeNoItems, noItems.Outcome)
}

func TestBuild_ExplicitDependencyColumnMustBeDependencyOrLink(t *testing.T) {
	t.Parallel()

	layout := Build(Input{
		Items:            []models.Item{task("A", "2024-01-01", "", nil)},
		Columns:          columns,
		DependencyColumn: "name",
	}, time.UTC)

	require.NotNil(t, layout.DepColumn)
	assert.Equal(t, types.ColumnID("deps"), layout.DepColumn.ID)
}

// ============================================================================
// Dependency graph
// ============================================================================

func TestBuildGraph_DropsSelfUnknownAndDuplicates(t *testing.T) {
	t.Parallel()

	layout := build(t,
		task("A", "2024-01-01", "", nil),
		task("B", "2024-01-02", "", []any{"A", "A", "B", "ghost", map[string]any{"id": "A"}}),
		task("U", "", "", nil),
		task("C", "2024-01-03", "", "U, B"),
	)

	assert.Equal(t, []models.DependencyEdge{
		{Source: "A", Target: "B"},
		{Source: "B", Target: "C"},
	}, layout.Graph.Edges)
	assert.Equal(t, ids("B"), layout.Graph.Dependents("A"))
	assert.Equal(t, ids("B"), layout.Graph.Dependencies("C"))
	assert.Equal(t, ids("A"), layout.Graph.Roots())
}

func TestBuildGraph_MalformedCellIgnored(t *testing.T) {
	t.Parallel()

	layout := build(t,
		task("A", "2024-01-01", "", nil),
		task("B", "2024-01-02", "", `["A",`),
	)

	assert.Empty(t, layout.Graph.Edges)
}

// ============================================================================
// Critical path
// ============================================================================

func TestCriticalPath_LongestChain(t *testing.T) {
	t.Parallel()

	layout := build(t,
		task("A", "2024-01-01", "2024-01-01", nil),
		task("B", "2024-01-02", "2024-01-03", "A"),
		task("C", "2024-01-04", "2024-01-06", `["B"]`),
		task("D", "2024-01-01", "2024-01-02", nil),
	)

	path := layout.CriticalPath
	assert.Equal(t, ids("A", "B", "C"), path.Items)
	assert.Equal(t, 6, path.TotalDays)
	assert.True(t, path.Contains("B"))
	assert.False(t, path.Contains("D"))
	assert.Empty(t, path.Excluded)
}

func TestCriticalPath_TieGoesToEarliestItem(t *testing.T) {
	t.Parallel()

	layout := build(t,
		task("X", "2024-01-01", "2024-01-02", nil),
		task("Y", "2024-01-01", "2024-01-02", nil),
	)

	assert.Equal(t, ids("X"), layout.CriticalPath.Items)
	assert.Equal(t, 2, layout.CriticalPath.TotalDays)
}

func TestCriticalPath_CycleTerminatesWithoutRepeats(t *testing.T) {
	t.Parallel()

	layout := build(t,
		task("A", "2024-01-01", "2024-01-10", "B"),
		task("B", "2024-01-01", "2024-01-10", "A"),
		task("E", "2024-01-11", "2024-01-20", "A"),
		task("C", "2024-01-01", "2024-01-01", nil),
	)

	path := layout.CriticalPath
	assert.Equal(t, ids("C"), path.Items)
	assert.Equal(t, ids("A", "B", "E"), path.Excluded)

	seen := map[types.ItemID]bool{}
	for _, id := range path.Items {
		assert.False(t, seen[id], "item %s repeated", id)
		seen[id] = true
	}
}

func TestCriticalPath_EmptyGraph(t *testing.T) {
	t.Parallel()

	path := FindCriticalPath(nil, nil)
	assert.Empty(t, path.Items)
	assert.Zero(t, path.TotalDays)
}

// ============================================================================
// Conflicts
// ============================================================================

func TestFindConflicts(t *testing.T) {
	t.Parallel()

	layout := build(t,
		task("A", "2024-01-01", "2024-01-03", nil),
		task("B", "2024-01-02", "2024-01-04", "A"),
		task("C", "2024-01-05", "2024-01-06", "B"),
	)

	require.Len(t, layout.Conflicts, 1)
	assert.Equal(t, models.DependencyEdge{Source: "A", Target: "B"}, layout.Conflicts[0].Edge)
	assert.Equal(t, 2, layout.Conflicts[0].OverlapDays)
}

// ============================================================================
// Axis
// ============================================================================

func TestAxis_Position(t *testing.T) {
	t.Parallel()

	axis := Axis{Range: daterange.Span{Start: day(2024, 1, 1), End: day(2024, 1, 11)}, MinWidth: 0.01}
	at := func(start, end time.Time) models.TimelineItem {
		return models.TimelineItem{Start: start, End: end}
	}

	assert.Nil(t, axis.Position(at(day(2024, 1, 20), day(2024, 1, 21))))
	assert.Nil(t, axis.Position(at(day(2023, 12, 25), day(2023, 12, 30))))

	clipped := axis.Position(at(day(2023, 12, 30), day(2024, 1, 3)))
	require.NotNil(t, clipped)
	assert.InDelta(t, 0, clipped.Left, 1e-9)
	assert.InDelta(t, 0.2, clipped.Width, 1e-9)

	point := axis.Position(at(day(2024, 1, 6), day(2024, 1, 6)))
	require.NotNil(t, point)
	assert.InDelta(t, 0.5, point.Left, 1e-9)
	assert.InDelta(t, 0.01, point.Width, 1e-9)

	edge := axis.Position(at(day(2024, 1, 11), day(2024, 1, 11)))
	require.NotNil(t, edge)
	assert.InDelta(t, 0.99, edge.Left, 1e-9)
}

func TestAxis_WholeDays(t *testing.T) {
	t.Parallel()

	axis := Axis{Range: daterange.Span{Start: day(2024, 1, 1), End: day(2024, 1, 11)}, WholeDays: true}
	bar := axis.Position(models.TimelineItem{Start: day(2024, 1, 2), End: day(2024, 1, 2)})

	require.NotNil(t, bar)
	assert.InDelta(t, 0.1, bar.Left, 1e-9)
	assert.InDelta(t, 0.1, bar.Width, 1e-6)
}

// ============================================================================
// Viewport
// ============================================================================

func newViewport() *Viewport {
	return NewViewport(ViewportOptions{
		WeekStart: time.Monday,
		Location:  time.UTC,
		Now:       func() time.Time { return time.Date(2024, 1, 17, 15, 0, 0, 0, time.UTC) },
	})
}

func TestViewport_DefaultWeekWindow(t *testing.T) {
	t.Parallel()

	v := newViewport()
	r := v.Range()

	assert.Equal(t, ZoomWeek, v.Zoom())
	assert.True(t, r.Start.Equal(day(2024, 1, 15)))
	assert.True(t, r.End.Equal(day(2024, 3, 11).Add(-time.Nanosecond)))

	v.Next()
	assert.True(t, v.Range().Start.Equal(day(2024, 1, 22)))
	v.Prev()
	v.Prev()
	assert.True(t, v.Range().Start.Equal(day(2024, 1, 8)))
}

func TestViewport_SetZoomReanchors(t *testing.T) {
	t.Parallel()

	v := newViewport()
	v.Next()

	v.SetZoom(ZoomMonth)
	assert.True(t, v.Range().Start.Equal(day(2024, 1, 1)))
	assert.True(t, v.Range().End.Equal(day(2024, 7, 1).Add(-time.Nanosecond)))

	v.SetZoom(ZoomDay)
	assert.True(t, v.Range().Start.Equal(day(2024, 1, 1)))
	assert.True(t, v.Range().End.Equal(day(2024, 1, 15).Add(-time.Nanosecond)))
}

func TestViewport_CustomRange(t *testing.T) {
	t.Parallel()

	v := newViewport()
	require.ErrorIs(t, v.SetCustomRange(day(2024, 2, 10), day(2024, 2, 1)), ErrInvalidRange)

	require.NoError(t, v.SetCustomRange(day(2024, 2, 1), day(2024, 2, 10)))
	assert.True(t, v.IsCustom())

	v.Next()
	r := v.Range()
	assert.True(t, r.Start.Equal(day(2024, 2, 11)))
	assert.True(t, daterange.SameDay(r.End, day(2024, 2, 20)))

	v.SetZoom(ZoomWeek)
	assert.False(t, v.IsCustom())
	assert.True(t, v.Range().Start.Equal(day(2024, 2, 5)))
}

func TestViewport_Ticks(t *testing.T) {
	t.Parallel()

	v := NewViewport(ViewportOptions{
		Zoom:     ZoomDay,
		Spans:    Spans{Days: 3},
		Location: time.UTC,
		Now:      func() time.Time { return day(2024, 1, 17) },
	})

	assert.Equal(t, []time.Time{day(2024, 1, 17), day(2024, 1, 18), day(2024, 1, 19)}, v.Ticks())
}

func TestParseZoom(t *testing.T) {
	t.Parallel()

	z, err := ParseZoom(" Month ")
	require.NoError(t, err)
	assert.Equal(t, ZoomMonth, z)

	_, err = ParseZoom("year")
	assert.ErrorIs(t, err, ErrUnknownZoom)
}
