// Package kanban partitions board items into status buckets, optionally
// split into swimlanes, with per-bucket ordering and advisory WIP limits.
package kanban

import (
	"log/slog"
	"strings"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// UnassignedLane is the lane of items without a swimlane value
const UnassignedLane = "Unassigned"

// Config selects grouping, lanes, ordering and limits for a classification
type Config struct {
	GroupBy       types.ColumnID
	SwimlaneBy    types.ColumnID
	SortBy        types.ColumnID
	SortDirection models.SortDirection
	WIPLimits     map[types.BucketID]int
	Filter        string // case-insensitive substring on item names
}

// ConfigFromPreferences maps persisted view preferences onto a Config
func ConfigFromPreferences(p models.ViewPreferences) Config {
	return Config{
		GroupBy:       p.GroupBy,
		SwimlaneBy:    p.SwimlaneBy,
		SortBy:        p.CardOrder,
		SortDirection: p.CardOrderDirection,
		WIPLimits:     p.WIPLimits,
	}
}

// Board is the result of a classification run. Exactly one of Columns and
// Swimlanes is populated.
type Board struct {
	Columns      []models.KanbanColumn
	Swimlanes    []models.Swimlane
	StatusColumn *models.Column
	Outcome      models.Outcome
}

// HasSwimlanes reports whether the board is split into lanes
func (b *Board) HasSwimlanes() bool {
	return b.Swimlanes != nil
}

// Buckets returns the bucket definitions of the board (from the first lane
// when lanes are used)
func (b *Board) Buckets() []models.KanbanColumn {
	if b.HasSwimlanes() {
		if len(b.Swimlanes) == 0 {
			return nil
		}
		return b.Swimlanes[0].Columns
	}
	return b.Columns
}

// AllItems flattens every bucket of every lane
func (b *Board) AllItems() []models.Item {
	var out []models.Item
	if b.HasSwimlanes() {
		for _, lane := range b.Swimlanes {
			for _, col := range lane.Columns {
				out = append(out, col.Items...)
			}
		}
		return out
	}
	for _, col := range b.Columns {
		out = append(out, col.Items...)
	}
	return out
}

// BucketOf returns the id of the bucket holding the item
func (b *Board) BucketOf(id types.ItemID) (types.BucketID, bool) {
	check := func(cols []models.KanbanColumn) (types.BucketID, bool) {
		for _, col := range cols {
			if models.FindItem(col.Items, id) >= 0 {
				return col.ID, true
			}
		}
		return "", false
	}
	if b.HasSwimlanes() {
		for _, lane := range b.Swimlanes {
			if bid, ok := check(lane.Columns); ok {
				return bid, true
			}
		}
		return "", false
	}
	return check(b.Columns)
}

// Classifier partitions items according to the board's columns
type Classifier struct {
	columns []models.Column
}

// NewClassifier creates a classifier over a board's column metadata
func NewClassifier(columns []models.Column) *Classifier {
	return &Classifier{columns: columns}
}

// StatusColumn returns the grouping column for a config: the GroupBy column
// when it is a STATUS or DROPDOWN column, else the first visible STATUS column
func (c *Classifier) StatusColumn(cfg Config) *models.Column {
	if cfg.GroupBy != "" {
		if col := models.FindColumn(c.columns, cfg.GroupBy); col != nil && col.Type.IsGrouping() {
			return col
		}
	}
	return models.FirstColumnOfType(c.columns, func(t models.ColumnType) bool {
		return t == models.ColumnTypeStatus
	})
}

// Classify runs a full classification. Every item that passes the filter
// lands in exactly one bucket (of exactly one lane).
func (c *Classifier) Classify(items []models.Item, cfg Config) *Board {
	board := &Board{StatusColumn: c.StatusColumn(cfg)}

	var template []models.KanbanColumn
	if board.StatusColumn != nil {
		template = StatusBuckets(*board.StatusColumn)
	} else {
		template = DefaultBuckets()
	}

	filtered := filterItems(items, cfg.Filter)

	laneCol := c.swimlaneColumn(cfg)
	if laneCol == nil {
		board.Columns = c.partition(filtered, template, board.StatusColumn, cfg)
	} else {
		board.Swimlanes = c.swimlanes(filtered, template, board.StatusColumn, laneCol, cfg)
	}

	switch {
	case board.StatusColumn == nil:
		board.Outcome = models.OutcomeNoStatusColumn
	case len(filtered) == 0:
		board.Outcome = models.OutcomeNoItems
	default:
		board.Outcome = models.OutcomeReady
	}
	return board
}

func (c *Classifier) swimlaneColumn(cfg Config) *models.Column {
	if cfg.SwimlaneBy == "" {
		return nil
	}
	col := models.FindColumn(c.columns, cfg.SwimlaneBy)
	if col == nil {
		slog.Debug("swimlane column not found", "column_id", cfg.SwimlaneBy)
	}
	return col
}

// partition assigns items to a fresh copy of the template buckets
func (c *Classifier) partition(items []models.Item, template []models.KanbanColumn, statusCol *models.Column, cfg Config) []models.KanbanColumn {
	buckets := emptyCopy(template)

	index := make(map[string]int, len(buckets))
	for i, b := range buckets {
		if _, dup := index[b.StatusKey]; !dup {
			index[b.StatusKey] = i
		}
	}

	for _, item := range items {
		key := NormalizeKey(StatusOf(item, statusCol))
		i, ok := index[key]
		if !ok {
			i = 0
		}
		buckets[i].Items = append(buckets[i].Items, item)
	}

	for i := range buckets {
		if cfg.SortBy != "" {
			SortItems(buckets[i].Items, c.columns, cfg.SortBy, cfg.SortDirection)
		}
		if limit, ok := cfg.WIPLimits[buckets[i].ID]; ok && limit > 0 {
			l := limit
			buckets[i].WIPLimit = &l
		}
	}
	return buckets
}

// swimlanes recomputes the partition once per distinct lane value, in first
// seen order, with the Unassigned lane last
func (c *Classifier) swimlanes(items []models.Item, template []models.KanbanColumn, statusCol, laneCol *models.Column, cfg Config) []models.Swimlane {
	var order []string
	groups := make(map[string][]models.Item)
	names := make(map[string]string)
	unassigned := NormalizeKey(UnassignedLane)

	for _, item := range items {
		name := strings.TrimSpace(item.CellString(laneCol.ID))
		if name == "" {
			name = UnassignedLane
		}
		id := NormalizeKey(name)
		if _, seen := groups[id]; !seen {
			if id != unassigned {
				order = append(order, id)
			}
			names[id] = name
		}
		groups[id] = append(groups[id], item)
	}
	if _, ok := groups[unassigned]; ok {
		order = append(order, unassigned)
	}

	lanes := make([]models.Swimlane, 0, len(order))
	for _, id := range order {
		lanes = append(lanes, models.Swimlane{
			ID:      id,
			Name:    names[id],
			Columns: c.partition(groups[id], template, statusCol, cfg),
		})
	}
	return lanes
}

// StatusOf returns the status an item is classified by: the status cell
// when set, else the item's own status field
func StatusOf(item models.Item, statusCol *models.Column) string {
	if statusCol != nil {
		if s := item.CellString(statusCol.ID); strings.TrimSpace(s) != "" {
			return s
		}
	}
	return item.Status
}

func filterItems(items []models.Item, query string) []models.Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	var out []models.Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			out = append(out, item)
		}
	}
	return out
}
