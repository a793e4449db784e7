package models

import (
	"time"

	"github.com/thenoetrevino/boardview/internal/types"
)

// DateRange is the resolved schedule of an item. Either bound may be nil.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsDated reports whether the range has a start
func (r DateRange) IsDated() bool {
	return r.Start != nil
}

// KanbanColumn is one bucket of a kanban classification
type KanbanColumn struct {
	ID        types.BucketID
	Name      string
	StatusKey string
	Color     string
	Items     []Item
	WIPLimit  *int
}

// Count returns the number of items in the bucket
func (c KanbanColumn) Count() int {
	return len(c.Items)
}

// OverLimit reports whether the bucket exceeds its advisory WIP limit
func (c KanbanColumn) OverLimit() bool {
	return c.WIPLimit != nil && *c.WIPLimit > 0 && len(c.Items) > *c.WIPLimit
}

// Swimlane is a full copy of the bucket partition restricted to one value
// of the swimlane column
type Swimlane struct {
	ID      string
	Name    string
	Columns []KanbanColumn
}

// TimelineItem is an item placed on a timeline row
type TimelineItem struct {
	Item  Item
	Start time.Time
	End   time.Time
	Row   int
}

// DependencyEdge means Source must complete before Target starts
type DependencyEdge struct {
	Source types.ItemID
	Target types.ItemID
}

// Outcome tells callers whether a projection had usable input. It is not an
// error: a board without a date column is a normal state with guidance to show.
type Outcome int

const (
	// OutcomeReady means the projection has content
	OutcomeReady Outcome = iota
	// OutcomeNoItems means usable columns exist but no item qualified
	OutcomeNoItems
	// OutcomeNoDateColumn means the board has no usable date column
	OutcomeNoDateColumn
	// OutcomeNoStatusColumn means the board has no usable grouping column
	OutcomeNoStatusColumn
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReady:
		return "ready"
	case OutcomeNoItems:
		return "no-items"
	case OutcomeNoDateColumn:
		return "no-date-column"
	case OutcomeNoStatusColumn:
		return "no-status-column"
	default:
		return "unknown"
	}
}

// Guidance returns the message a view shows for a non-ready outcome
func (o Outcome) Guidance() string {
	switch o {
	case OutcomeNoItems:
		return "No items to show."
	case OutcomeNoDateColumn:
		return "This board has no date column. Add a DATE, DATETIME or TIMELINE column to use this view."
	case OutcomeNoStatusColumn:
		return "This board has no status column. Items are grouped into Pending, In Progress and Done."
	default:
		return ""
	}
}
