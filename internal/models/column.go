package models

import (
	"encoding/json"
	"strings"

	"github.com/thenoetrevino/boardview/internal/types"
)

// ColumnType tells the engine how to interpret the cells of a column
type ColumnType string

const (
	ColumnTypeText       ColumnType = "TEXT"
	ColumnTypeDate       ColumnType = "DATE"
	ColumnTypeDateTime   ColumnType = "DATETIME"
	ColumnTypeTimeline   ColumnType = "TIMELINE"
	ColumnTypeStatus     ColumnType = "STATUS"
	ColumnTypeLink       ColumnType = "LINK"
	ColumnTypeDropdown   ColumnType = "DROPDOWN"
	ColumnTypeCheckbox   ColumnType = "CHECKBOX"
	ColumnTypeNumber     ColumnType = "NUMBER"
	ColumnTypeCurrency   ColumnType = "CURRENCY"
	ColumnTypePerson     ColumnType = "PERSON"
	ColumnTypeDependency ColumnType = "DEPENDENCY"
)

// ParseColumnType normalizes a backend type name. Unknown names are kept
// verbatim (uppercased) so they behave like text columns.
func ParseColumnType(s string) ColumnType {
	return ColumnType(strings.ToUpper(strings.TrimSpace(s)))
}

// IsDate reports whether cells of this type carry calendar dates
func (t ColumnType) IsDate() bool {
	return t == ColumnTypeDate || t == ColumnTypeDateTime || t == ColumnTypeTimeline
}

// IsNumeric reports whether cells of this type compare as numbers
func (t ColumnType) IsNumeric() bool {
	return t == ColumnTypeNumber || t == ColumnTypeCurrency
}

// IsGrouping reports whether the column can drive kanban buckets
func (t ColumnType) IsGrouping() bool {
	return t == ColumnTypeStatus || t == ColumnTypeDropdown
}

// Column describes how the cells of one board column are interpreted
type Column struct {
	ID       types.ColumnID `json:"id"`
	Name     string         `json:"name"`
	Type     ColumnType     `json:"type"`
	IsHidden bool           `json:"isHidden,omitempty"`
	Settings ColumnSettings `json:"settings,omitempty"`
}

// ColumnSettings holds the parts of a column's settings the engine reads.
// Anything else the backend stores is kept in Extra untouched.
type ColumnSettings struct {
	Options []Option          `json:"options,omitempty"`
	Colors  map[string]string `json:"colors,omitempty"`
	Extra   map[string]any    `json:"-"`
}

// OptionLabels returns the display labels of the configured options in order
func (s ColumnSettings) OptionLabels() []string {
	labels := make([]string, 0, len(s.Options))
	for _, o := range s.Options {
		labels = append(labels, o.Label)
	}
	return labels
}

// Option is a single configured choice of a STATUS or DROPDOWN column.
// Backends send either bare strings or {label, value, color} objects.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
	Color string `json:"color,omitempty"`
}

// UnmarshalJSON accepts both the string and the object form
func (o *Option) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = Option{Label: s}
		return nil
	}

	type plain Option
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Label == "" {
		p.Label = p.Value
	}
	*o = Option(p)
	return nil
}

// UnmarshalJSON keeps unknown settings keys in Extra
func (s *ColumnSettings) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = ColumnSettings{}
	for key, value := range raw {
		switch key {
		case "options":
			if err := json.Unmarshal(value, &s.Options); err != nil {
				return err
			}
		case "colors":
			if err := json.Unmarshal(value, &s.Colors); err != nil {
				return err
			}
		default:
			var v any
			if err := json.Unmarshal(value, &v); err != nil {
				return err
			}
			if s.Extra == nil {
				s.Extra = make(map[string]any)
			}
			s.Extra[key] = v
		}
	}
	return nil
}

// MarshalJSON writes Extra back next to the known keys
func (s ColumnSettings) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+2)
	for k, v := range s.Extra {
		out[k] = v
	}
	if len(s.Options) > 0 {
		out["options"] = s.Options
	}
	if len(s.Colors) > 0 {
		out["colors"] = s.Colors
	}
	return json.Marshal(out)
}

// FindColumn returns the column with the given id, or nil
func FindColumn(columns []Column, id types.ColumnID) *Column {
	for i := range columns {
		if columns[i].ID == id {
			return &columns[i]
		}
	}
	return nil
}

// FirstColumnOfType returns the first visible column whose type matches, or nil
func FirstColumnOfType(columns []Column, match func(ColumnType) bool) *Column {
	for i := range columns {
		if columns[i].IsHidden {
			continue
		}
		if match(columns[i].Type) {
			return &columns[i]
		}
	}
	return nil
}
