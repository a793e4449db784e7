package tui

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/render"
	"github.com/thenoetrevino/boardview/internal/types"
)

// View renders the board, the newest notification and the help footer
func (m *Model) View() string {
	if m.loading {
		return "Loading board...\n"
	}
	if m.fatalErr != nil {
		return m.styles.Error.Render(fmt.Sprintf("Could not load board %s: %v", m.boardID, m.fatalErr)) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(string(m.boardID)))
	if p, dragging := m.ctrl.Dragging(); dragging {
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("  moving %s: pick a bucket and drop", m.itemName(p.ItemID))))
	}
	b.WriteString("\n")

	opts := render.KanbanOptions{Cursor: &m.cursor}
	if p, dragging := m.ctrl.Dragging(); dragging {
		opts.Grabbed = p.ItemID
	}
	if m.width > 0 {
		if n := len(m.board.Buckets()); n > 0 {
			opts.BucketWidth = max(m.width/n-2, 16)
		}
	}
	b.WriteString(render.Kanban(m.board, m.styles, opts))
	b.WriteString("\n")

	if all := m.queue.All(); len(all) > 0 {
		// newest
		b.WriteString(render.Notification(all[len(all)-1], m.styles))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) itemName(id types.ItemID) string {
	items := m.ctrl.Items()
	if idx := models.FindItem(items, id); idx >= 0 {
		return items[idx].Name
	}
	return string(id)
}

// selectItem moves the cursor onto the card with the given id
func (m *Model) selectItem(id types.ItemID) {
	for l, buckets := range m.lanes() {
		for bi, col := range buckets {
			if idx := models.FindItem(col.Items, id); idx >= 0 {
				m.cursor = render.Cursor{Lane: l, Bucket: bi, Item: idx}
				return
			}
		}
	}
}
