package models

import (
	"fmt"
	"maps"

	"github.com/thenoetrevino/boardview/internal/types"
)

// Item represents a single record on a board
type Item struct {
	ID     types.ItemID           `json:"id"`
	Name   string                 `json:"name"`
	Status string                 `json:"status,omitempty"`
	Cells  map[types.ColumnID]any `json:"cells,omitempty"`
}

// Cell returns the unwrapped value stored for a column and whether the
// column has a cell at all
func (i Item) Cell(columnID types.ColumnID) (any, bool) {
	if i.Cells == nil {
		return nil, false
	}
	v, ok := i.Cells[columnID]
	if !ok {
		return nil, false
	}
	return Unwrap(v), true
}

// CellString returns the unwrapped cell value rendered as a string.
// Missing and nil cells yield "".
func (i Item) CellString(columnID types.ColumnID) string {
	v, ok := i.Cell(columnID)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Clone copies the item and its cell map. Cell values themselves are shared.
func (i Item) Clone() Item {
	out := i
	if i.Cells != nil {
		out.Cells = maps.Clone(i.Cells)
	}
	return out
}

// WrappedValue is the {value} form of a cell
type WrappedValue struct {
	Value any `json:"value"`
}

// Unwrap returns the scalar inside a {value} wrapper. Bare scalars are
// returned unchanged.
func Unwrap(v any) any {
	switch w := v.(type) {
	case WrappedValue:
		return w.Value
	case *WrappedValue:
		if w == nil {
			return nil
		}
		return w.Value
	case map[string]any:
		if inner, ok := w["value"]; ok {
			return inner
		}
		return w
	default:
		return v
	}
}

// FindItem returns the index of the item with the given id, or -1
func FindItem(items []Item, id types.ItemID) int {
	for idx := range items {
		if items[idx].ID == id {
			return idx
		}
	}
	return -1
}
