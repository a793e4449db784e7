package mutation

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/boardview/internal/cells"
	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/kanban"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// plan computes the edit a drop makes to item, or nil for a no-op
func (c *Controller) plan(item models.Item, target Target) (*Mutation, error) {
	switch t := target.(type) {
	case DayTarget:
		return c.planDay(item, t)
	case BucketTarget:
		return planBucket(item, t), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownTarget, target)
	}
}

func (c *Controller) planDay(item models.Item, t DayTarget) (*Mutation, error) {
	col, err := c.dateColumn(t.Column)
	if err != nil {
		return nil, err
	}
	var endCol *models.Column
	if t.EndColumn != "" && t.EndColumn != col.ID {
		if endCol, err = c.dateColumn(t.EndColumn); err != nil {
			return nil, err
		}
	}

	loc := c.opts.Location
	old := daterange.NewResolver(*col, endCol, loc).Resolve(item)
	newStart := daterange.AtHour(t.Day.In(loc), c.opts.DropHour, loc)
	if old.Start != nil && daterange.SameDay(*old.Start, newStart) {
		return nil, nil
	}

	shift := func(end time.Time) time.Time {
		if old.Start == nil {
			return newStart
		}
		return end.AddDate(0, 0, dayDelta(*old.Start, newStart))
	}

	m := &Mutation{ItemID: item.ID, Cells: map[types.ColumnID]any{}, Previous: item}

	if col.Type == models.ColumnTypeTimeline {
		newEnd := newStart
		if old.End != nil {
			newEnd = shift(*old.End)
		}
		m.Cells[col.ID] = map[string]any{"from": formatDate(newStart), "to": formatDate(newEnd)}
	} else {
		m.Cells[col.ID] = formatDate(newStart)
	}

	// only an end cell that already holds a date moves along
	if endCol != nil && old.End != nil {
		if raw, ok := item.Cell(endCol.ID); ok && cells.ParseDate(raw, loc).Ok() {
			m.Cells[endCol.ID] = formatDate(shift(*old.End))
		}
	}

	m.Applied = applyCells(item, m.Cells)
	return m, nil
}

func planBucket(item models.Item, t BucketTarget) *Mutation {
	var options []string
	if t.StatusColumn != nil {
		options = t.StatusColumn.Settings.OptionLabels()
	}
	value := kanban.ResolveStatusValue(t.Bucket, options)
	if kanban.LooselyEqual(kanban.StatusOf(item, t.StatusColumn), value) {
		return nil
	}

	m := &Mutation{ItemID: item.ID, Previous: item}
	if t.StatusColumn == nil {
		m.Status = &value
		m.Applied = item.Clone()
		m.Applied.Status = value
		return m
	}

	var cell any = value
	if value == "" {
		cell = nil
	}
	m.Cells = map[types.ColumnID]any{t.StatusColumn.ID: cell}
	m.Applied = applyCells(item, m.Cells)
	return m
}

// dateColumn returns the named date column, or the first one when id is empty
func (c *Controller) dateColumn(id types.ColumnID) (*models.Column, error) {
	if id == "" {
		col := models.FirstColumnOfType(c.columns, models.ColumnType.IsDate)
		if col == nil {
			return nil, ErrNoDateColumn
		}
		return col, nil
	}
	col := models.FindColumn(c.columns, id)
	if col == nil || !col.Type.IsDate() {
		return nil, fmt.Errorf("%w: %s", ErrNotDateColumn, id)
	}
	return col, nil
}

func applyCells(item models.Item, changes map[types.ColumnID]any) models.Item {
	out := item.Clone()
	if out.Cells == nil {
		out.Cells = make(map[types.ColumnID]any, len(changes))
	}
	for id, v := range changes {
		if v == nil {
			delete(out.Cells, id)
			continue
		}
		out.Cells[id] = v
	}
	return out
}

func formatDate(t time.Time) string {
	return t.Format(time.RFC3339)
}

// dayDelta counts calendar days from a to b
func dayDelta(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
