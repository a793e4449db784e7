package tui

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/boardview/internal/kanban"
	"github.com/thenoetrevino/boardview/internal/mutation"
	"github.com/thenoetrevino/boardview/internal/notify"
)

// Update handles messages and key presses
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case boardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			slog.Error("failed to load board", "board_id", m.boardID, "error", msg.err)
			m.fatalErr = msg.err
			return m, nil
		}
		m.fatalErr = nil
		m.cfg = kanban.ConfigFromPreferences(msg.prefs)
		m.ctrl.SetData(msg.items, msg.columns)
		m.reclassify()
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, mutation.ErrStaleResult) {
			slog.Debug("mutation finished with error", "gesture_id", msg.gestureID, "error", msg.err)
		}
		m.reclassify()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.queue.Clear()
		return m, m.load()
	case key.Matches(msg, m.keys.Cancel):
		if _, dragging := m.ctrl.Dragging(); dragging {
			m.ctrl.Cancel()
		}
		m.queue.Clear()
		return m, nil
	case key.Matches(msg, m.keys.Grab):
		return m, m.grabOrDrop()
	case key.Matches(msg, m.keys.PrevBucket):
		m.cursor.Bucket--
	case key.Matches(msg, m.keys.NextBucket):
		m.cursor.Bucket++
	case key.Matches(msg, m.keys.PrevItem):
		m.cursor.Item--
	case key.Matches(msg, m.keys.NextItem):
		m.cursor.Item++
	case key.Matches(msg, m.keys.PrevLane):
		m.cursor.Lane--
	case key.Matches(msg, m.keys.NextLane):
		m.cursor.Lane++
	default:
		return m, nil
	}
	m.clampCursor()
	return m, nil
}

// grabOrDrop starts a drag on the selected card, or drops the dragged card
// on the bucket under the cursor
func (m *Model) grabOrDrop() tea.Cmd {
	if _, dragging := m.ctrl.Dragging(); !dragging {
		item, _, ok := m.selected()
		if !ok {
			return nil
		}
		payload := mutation.Payload{ItemID: item.ID}
		if m.board != nil && m.board.StatusColumn != nil {
			payload.CurrentColumnID = m.board.StatusColumn.ID
		}
		if _, err := m.ctrl.Dispatch(m.ctx, mutation.GestureStart{Payload: payload}); err != nil {
			m.queue.Notify(notify.LevelWarning, err.Error())
		}
		return nil
	}

	buckets := m.currentBuckets()
	if m.cursor.Bucket >= len(buckets) {
		m.ctrl.Cancel()
		return nil
	}
	target := mutation.BucketTarget{Bucket: buckets[m.cursor.Bucket], StatusColumn: m.board.StatusColumn}
	mut, err := m.ctrl.Dispatch(m.ctx, mutation.DropOnTarget{Target: target})
	if err != nil {
		m.queue.Notify(notify.LevelError, err.Error())
		m.reclassify()
		return nil
	}
	m.reclassify()
	if mut == nil {
		return nil
	}
	m.selectItem(mut.ItemID)
	return m.commit(mut)
}
