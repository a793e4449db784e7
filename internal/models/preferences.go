package models

import "github.com/thenoetrevino/boardview/internal/types"

// SortDirection orders cards within a bucket
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ViewPreferences is the per-board view state persisted between sessions
type ViewPreferences struct {
	DateColumns        []types.ColumnID       `json:"dateColumns" yaml:"date_columns"`
	WorkingDaysOnly    bool                   `json:"workingDaysOnly" yaml:"working_days_only"`
	ShowTimeSlots      bool                   `json:"showTimeSlots" yaml:"show_time_slots"`
	GroupBy            types.ColumnID         `json:"groupBy,omitempty" yaml:"group_by,omitempty"`
	SwimlaneBy         types.ColumnID         `json:"swimlaneBy,omitempty" yaml:"swimlane_by,omitempty"`
	WIPLimits          map[types.BucketID]int `json:"wipLimits,omitempty" yaml:"wip_limits,omitempty"`
	CardOrder          types.ColumnID         `json:"cardOrder,omitempty" yaml:"card_order,omitempty"`
	CardOrderDirection SortDirection          `json:"cardOrderDirection,omitempty" yaml:"card_order_direction,omitempty"`
	CalendarMode       string                 `json:"calendarMode,omitempty" yaml:"calendar_mode,omitempty"`
	TimelineZoom       string                 `json:"timelineZoom,omitempty" yaml:"timeline_zoom,omitempty"`
	DependencyColumn   types.ColumnID         `json:"dependencyColumn,omitempty" yaml:"dependency_column,omitempty"`
	EndDateColumn      types.ColumnID         `json:"endDateColumn,omitempty" yaml:"end_date_column,omitempty"`
}

// DefaultViewPreferences returns the preferences of a board nobody has configured
func DefaultViewPreferences() ViewPreferences {
	return ViewPreferences{
		DateColumns:        []types.ColumnID{},
		CardOrderDirection: SortAscending,
		CalendarMode:       "month",
		TimelineZoom:       "week",
	}
}
