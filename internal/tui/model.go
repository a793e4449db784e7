// Package tui is the interactive kanban board: cards are grabbed and dropped
// into other buckets, the change shows immediately and is rolled back when
// the write fails.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/boardview/internal/config"
	"github.com/thenoetrevino/boardview/internal/kanban"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/mutation"
	"github.com/thenoetrevino/boardview/internal/notify"
	"github.com/thenoetrevino/boardview/internal/preferences"
	"github.com/thenoetrevino/boardview/internal/render"
	"github.com/thenoetrevino/boardview/internal/services/board"
	"github.com/thenoetrevino/boardview/internal/types"
)

// Options wires a Model to its board
type Options struct {
	BoardID  types.BoardID
	Service  board.Service
	Prefs    preferences.Store
	Config   *config.Config
	Location *time.Location
}

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	boardID types.BoardID
	svc     board.Service
	prefs   preferences.Store

	ctrl   *mutation.Controller
	queue  *notify.Queue
	cfg    kanban.Config
	board  *kanban.Board
	cursor render.Cursor

	keys     KeyMap
	help     help.Model
	styles   render.Styles
	width    int
	loading  bool
	fatalErr error
}

// New creates a model. The board is loaded by Init.
func New(ctx context.Context, opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	queue := notify.NewQueue()
	return &Model{
		ctx:     ctx,
		boardID: opts.BoardID,
		svc:     opts.Service,
		prefs:   opts.Prefs,
		ctrl:    mutation.NewController(opts.BoardID, opts.Service, queue, mutation.Options{Location: opts.Location}),
		queue:   queue,
		board:   &kanban.Board{},
		keys:    NewKeyMap(cfg.KeyMappings),
		help:    help.New(),
		styles:  render.NewStyles(cfg.ColorScheme),
		loading: true,
	}
}

// Init loads the board
func (m *Model) Init() tea.Cmd {
	return m.load()
}

func (m *Model) load() tea.Cmd {
	ctx, svc, prefs, boardID := m.ctx, m.svc, m.prefs, m.boardID
	return func() tea.Msg {
		columns, err := svc.FetchColumns(ctx, boardID)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		items, err := svc.FetchAllItems(ctx, boardID)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		p := models.DefaultViewPreferences()
		if prefs != nil {
			if p, err = prefs.Load(ctx, boardID); err != nil {
				return boardLoadedMsg{err: err}
			}
		}
		return boardLoadedMsg{columns: columns, items: items, prefs: p}
	}
}

// commit writes a dropped card in the background and feeds the result
// back to the controller, which keeps or reverts the optimistic change
func (m *Model) commit(mut *mutation.Mutation) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		err := ctrl.Commit(ctx, mut)
		_, completeErr := ctrl.Dispatch(ctx, mutation.MutationResult{GestureID: mut.GestureID, Err: err})
		if completeErr != nil {
			return mutationDoneMsg{gestureID: mut.GestureID, err: completeErr}
		}
		return mutationDoneMsg{gestureID: mut.GestureID, err: err}
	}
}

// reclassify rebuilds the buckets from the controller's items
func (m *Model) reclassify() {
	m.board = kanban.NewClassifier(m.ctrl.Columns()).Classify(m.ctrl.Items(), m.cfg)
	m.clampCursor()
}

// Board returns the current classification
func (m *Model) Board() *kanban.Board {
	return m.board
}

// Cursor returns the selected lane, bucket and card
func (m *Model) Cursor() render.Cursor {
	return m.cursor
}

// Notifications returns the pending notifications
func (m *Model) Notifications() []notify.Notification {
	return m.queue.All()
}

// Controller exposes the drag state machine
func (m *Model) Controller() *mutation.Controller {
	return m.ctrl
}

func (m *Model) lanes() [][]models.KanbanColumn {
	if m.board.HasSwimlanes() {
		out := make([][]models.KanbanColumn, len(m.board.Swimlanes))
		for i, lane := range m.board.Swimlanes {
			out[i] = lane.Columns
		}
		return out
	}
	return [][]models.KanbanColumn{m.board.Columns}
}

func (m *Model) currentBuckets() []models.KanbanColumn {
	lanes := m.lanes()
	if m.cursor.Lane >= len(lanes) {
		return nil
	}
	return lanes[m.cursor.Lane]
}

// selected returns the card under the cursor
func (m *Model) selected() (models.Item, models.KanbanColumn, bool) {
	buckets := m.currentBuckets()
	if m.cursor.Bucket >= len(buckets) {
		return models.Item{}, models.KanbanColumn{}, false
	}
	col := buckets[m.cursor.Bucket]
	if m.cursor.Item < 0 || m.cursor.Item >= len(col.Items) {
		return models.Item{}, col, false
	}
	return col.Items[m.cursor.Item], col, true
}

func (m *Model) clampCursor() {
	lanes := m.lanes()
	m.cursor.Lane = clamp(m.cursor.Lane, 0, len(lanes)-1)
	buckets := m.currentBuckets()
	m.cursor.Bucket = clamp(m.cursor.Bucket, 0, len(buckets)-1)
	if m.cursor.Bucket < len(buckets) {
		m.cursor.Item = clamp(m.cursor.Item, 0, len(buckets[m.cursor.Bucket].Items)-1)
	} else {
		m.cursor.Item = 0
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
