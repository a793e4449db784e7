// Package timeline lays dated items out on rows along a zoomable time axis
// and analyses the dependency graph between them.
package timeline

import (
	"time"

	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// Input is the board data a timeline is computed from
type Input struct {
	Items            []models.Item
	Columns          []models.Column
	DateColumn       types.ColumnID // empty picks the first date column
	EndColumn        types.ColumnID
	DependencyColumn types.ColumnID // empty picks the first DEPENDENCY column
}

// Layout is a computed timeline
type Layout struct {
	Items        []models.TimelineItem
	Graph        *Graph
	CriticalPath CriticalPath
	Conflicts    []Conflict
	DateColumn   *models.Column
	DepColumn    *models.Column
	Outcome      models.Outcome
}

// Rows returns the number of rows, which equals the number of dated items
func (l *Layout) Rows() int {
	return len(l.Items)
}

// Find returns the timeline item of an id
func (l *Layout) Find(id types.ItemID) (models.TimelineItem, bool) {
	for _, ti := range l.Items {
		if ti.Item.ID == id {
			return ti, true
		}
	}
	return models.TimelineItem{}, false
}

// Build resolves, rows and analyses the items. A board without a usable
// date column yields OutcomeNoDateColumn.
func Build(in Input, loc *time.Location) *Layout {
	layout := &Layout{}

	dateCol := pickColumn(in.Columns, in.DateColumn, models.ColumnType.IsDate, models.ColumnType.IsDate)
	if dateCol == nil {
		layout.Outcome = models.OutcomeNoDateColumn
		return layout
	}
	layout.DateColumn = dateCol

	var endCol *models.Column
	if in.EndColumn != "" {
		endCol = models.FindColumn(in.Columns, in.EndColumn)
	}

	resolver := daterange.NewResolver(*dateCol, endCol, loc)
	layout.Items = AssignRows(resolver.ResolveAll(in.Items))
	if len(layout.Items) == 0 {
		layout.Outcome = models.OutcomeNoItems
		return layout
	}

	layout.DepColumn = pickColumn(in.Columns, in.DependencyColumn, isDependencyType, func(t models.ColumnType) bool {
		return t == models.ColumnTypeDependency
	})
	if layout.DepColumn != nil {
		layout.Graph = BuildGraph(layout.Items, layout.DepColumn.ID)
		layout.CriticalPath = FindCriticalPath(layout.Graph, layout.Items)
		layout.Conflicts = FindConflicts(layout.Graph, layout.Items)
	}

	layout.Outcome = models.OutcomeReady
	return layout
}

// AssignRows gives every dated entry the next row number in input order.
// Rows are never reused.
func AssignRows(entries []daterange.Entry) []models.TimelineItem {
	var out []models.TimelineItem
	row := 0
	for _, e := range entries {
		if !e.Range.IsDated() {
			continue
		}
		end := *e.Range.Start
		if e.Range.End != nil {
			end = *e.Range.End
		}
		out = append(out, models.TimelineItem{
			Item:  e.Item,
			Start: *e.Range.Start,
			End:   end,
			Row:   row,
		})
		row++
	}
	return out
}

// pickColumn returns the requested column when its type is acceptable, else
// the first visible column matching fallback
func pickColumn(columns []models.Column, id types.ColumnID, acceptable, fallback func(models.ColumnType) bool) *models.Column {
	if id != "" {
		if col := models.FindColumn(columns, id); col != nil && acceptable(col.Type) {
			return col
		}
	}
	return models.FirstColumnOfType(columns, fallback)
}

func isDependencyType(t models.ColumnType) bool {
	return t == models.ColumnTypeDependency || t == models.ColumnTypeLink
}
