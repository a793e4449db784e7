package kanban

import (
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/boardview/internal/cells"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// NameSortKey sorts by item name when no column with that id exists
const NameSortKey types.ColumnID = "name"

// sortValue is the comparable form of a cell. null marks an empty or
// unreadable cell.
type sortValue struct {
	null bool
	num  float64
	str  string
}

// Comparator returns a three-way comparator ordering items by the given
// column. Nulls sort last ascending and first descending. Dates compare by
// epoch milliseconds, numbers numerically, everything else as case-insensitive
// strings.
func Comparator(columns []models.Column, sortBy types.ColumnID, dir models.SortDirection) func(a, b models.Item) int {
	col := models.FindColumn(columns, sortBy)
	extract := valueExtractor(col, sortBy)
	desc := dir == models.SortDescending

	return func(a, b models.Item) int {
		va, vb := extract(a), extract(b)
		switch {
		case va.null && vb.null:
			return 0
		case va.null:
			if desc {
				return -1
			}
			return 1
		case vb.null:
			if desc {
				return 1
			}
			return -1
		}

		c := compareValues(va, vb)
		if desc {
			return -c
		}
		return c
	}
}

func valueExtractor(col *models.Column, sortBy types.ColumnID) func(models.Item) sortValue {
	if col == nil {
		if sortBy == NameSortKey {
			return func(it models.Item) sortValue {
				return stringValue(it.Name)
			}
		}
		return func(models.Item) sortValue { return sortValue{null: true} }
	}

	switch {
	case col.Type.IsDate():
		return func(it models.Item) sortValue {
			raw, _ := it.Cell(col.ID)
			var res cells.DateResult
			if col.Type == models.ColumnTypeTimeline {
				res, _ = cells.ParseRange(raw, time.UTC)
			} else {
				res = cells.ParseDate(raw, time.UTC)
			}
			if !res.Ok() {
				return sortValue{null: true}
			}
			return sortValue{num: float64(res.Value.UnixMilli())}
		}
	case col.Type.IsNumeric():
		return func(it models.Item) sortValue {
			raw, _ := it.Cell(col.ID)
			n, ok := cells.ParseNumber(raw)
			if !ok {
				return sortValue{null: true}
			}
			return sortValue{num: n}
		}
	default:
		return func(it models.Item) sortValue {
			return stringValue(it.CellString(col.ID))
		}
	}
}

func stringValue(s string) sortValue {
	if strings.TrimSpace(s) == "" {
		return sortValue{null: true}
	}
	return sortValue{str: strings.ToLower(s)}
}

func compareValues(a, b sortValue) int {
	if a.str != "" || b.str != "" {
		return strings.Compare(a.str, b.str)
	}
	switch {
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	default:
		return 0
	}
}

// SortItems stably sorts items in place by the given column
func SortItems(items []models.Item, columns []models.Column, sortBy types.ColumnID, dir models.SortDirection) {
	if sortBy == "" {
		return
	}
	slices.SortStableFunc(items, Comparator(columns, sortBy, dir))
}
