package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/boardview/internal/kanban"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

const defaultBucketWidth = 26

// Cursor addresses a card: lane, bucket and item index within the bucket
type Cursor struct {
	Lane   int
	Bucket int
	Item   int
}

// KanbanOptions configures Kanban
type KanbanOptions struct {
	BucketWidth int
	// Cursor marks the selected bucket and card. Nil renders no selection.
	Cursor *Cursor
	// Grabbed is the card being dragged. While set, the bucket under the
	// cursor is drawn as the drop target.
	Grabbed types.ItemID
}

// Kanban renders the buckets side by side, one row per swimlane
func Kanban(b *kanban.Board, st Styles, opts KanbanOptions) string {
	if opts.BucketWidth <= 0 {
		opts.BucketWidth = defaultBucketWidth
	}

	var sections []string
	if b.Outcome == models.OutcomeNoStatusColumn {
		sections = append(sections, st.Subtle.Render(b.Outcome.Guidance()))
	}

	if !b.HasSwimlanes() {
		sections = append(sections, bucketRow(b.Columns, 0, st, opts))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	for i, lane := range b.Swimlanes {
		header := fmt.Sprintf("%s (%d)", lane.Name, laneCount(lane))
		sections = append(sections, st.Title.Render(header), bucketRow(lane.Columns, i, st, opts))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func laneCount(lane models.Swimlane) int {
	n := 0
	for _, col := range lane.Columns {
		n += col.Count()
	}
	return n
}

func bucketRow(cols []models.KanbanColumn, lane int, st Styles, opts KanbanOptions) string {
	rendered := make([]string, 0, len(cols))
	for j, col := range cols {
		selected := opts.Cursor != nil && opts.Cursor.Lane == lane && opts.Cursor.Bucket == j
		item := -1
		if selected {
			item = opts.Cursor.Item
		}
		rendered = append(rendered, Bucket(col, st, BucketState{
			Width:    opts.BucketWidth,
			Selected: selected,
			Item:     item,
			Grabbed:  opts.Grabbed,
		}))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// BucketState is the selection state of one bucket
type BucketState struct {
	Width    int
	Selected bool
	Item     int // selected card index, -1 for none
	Grabbed  types.ItemID
}

// BucketHeader returns "Name (count)" or "Name (count/limit)", flagged with
// "!" when the advisory limit is exceeded
func BucketHeader(col models.KanbanColumn) string {
	header := fmt.Sprintf("%s (%d)", col.Name, col.Count())
	if col.WIPLimit != nil && *col.WIPLimit > 0 {
		header = fmt.Sprintf("%s (%d/%d)", col.Name, col.Count(), *col.WIPLimit)
	}
	if col.OverLimit() {
		header += " !"
	}
	return header
}

// Bucket renders one bucket with its cards
func Bucket(col models.KanbanColumn, st Styles, state BucketState) string {
	inner := max(state.Width-4, 4)

	header := truncate(BucketHeader(col), inner)
	var b strings.Builder
	if col.OverLimit() {
		b.WriteString(st.OverLimit.Render(header))
	} else {
		b.WriteString(st.Title.Render(header))
	}
	b.WriteByte('\n')

	if len(col.Items) == 0 {
		b.WriteString(st.Subtle.Italic(true).Render("No items"))
	}
	for i, item := range col.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(card(item, inner, i == state.Item, item.ID == state.Grabbed, st))
	}

	style := st.Bucket
	switch {
	case state.Selected && state.Grabbed != "":
		style = st.DropTarget
	case state.Selected:
		style = st.BucketSelected
	}
	return style.Width(state.Width).Render(b.String())
}

func card(item models.Item, width int, selected, grabbed bool, st Styles) string {
	name := truncate(item.Name, width-2)
	switch {
	case grabbed:
		return st.CardGrabbed.Render("≡ " + name)
	case selected:
		return st.CardSelected.Render("> " + name)
	default:
		return st.Card.Render("  " + name)
	}
}
