// Package mutation turns drag and drop gestures into optimistic edits that
// are saved through the board service and rolled back when saving fails.
package mutation

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/notify"
	"github.com/thenoetrevino/boardview/internal/services/board"
	"github.com/thenoetrevino/boardview/internal/types"
)

// Backend is the part of the board service the controller writes through
type Backend interface {
	UpdateItemCell(ctx context.Context, boardID types.BoardID, itemID types.ItemID, columnID types.ColumnID, value any) error
	UpdateItem(ctx context.Context, itemID types.ItemID, req board.UpdateItemRequest) error
	FetchAllItems(ctx context.Context, boardID types.BoardID) ([]models.Item, error)
}

// Options configures a Controller
type Options struct {
	Location *time.Location
	// DropHour is the hour of day written by a DayTarget; zero means midday
	DropHour int
}

// Mutation is a planned edit of one item
type Mutation struct {
	GestureID string
	ItemID    types.ItemID
	Cells     map[types.ColumnID]any
	Status    *string
	Previous  models.Item
	Applied   models.Item
}

type gesture struct {
	id       string
	payload  Payload
	captured models.Item
}

// Controller owns the board's working copy of items and the drag state.
// All methods are safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	boardID  types.BoardID
	backend  Backend
	notifier notify.Notifier
	opts     Options

	columns []models.Column
	items   []models.Item
	state   State
	gesture *gesture
	pending *Mutation
}

// NewController creates an idle controller for a board
func NewController(boardID types.BoardID, backend Backend, notifier notify.Notifier, opts Options) *Controller {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.DropHour == 0 {
		opts.DropHour = daterange.MiddayHour
	}
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Controller{
		boardID:  boardID,
		backend:  backend,
		notifier: notifier,
		opts:     opts,
	}
}

// SetData replaces the working copy, e.g. after a fetch
func (c *Controller) SetData(items []models.Item, columns []models.Column) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = cloneItems(items)
	c.columns = slices.Clone(columns)
}

// Items returns a copy of the working items, optimistic edits included
func (c *Controller) Items() []models.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneItems(c.items)
}

// Columns returns the board columns
func (c *Controller) Columns() []models.Column {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.columns)
}

// State returns the current lifecycle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dragging returns the payload of the active gesture
func (c *Controller) Dragging() (Payload, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gesture == nil {
		return Payload{}, false
	}
	return c.gesture.payload, true
}

// Dispatch feeds one event to the state machine. A DropOnTarget that
// changes something returns the mutation to Commit.
func (c *Controller) Dispatch(ctx context.Context, ev Event) (*Mutation, error) {
	switch e := ev.(type) {
	case GestureStart:
		return nil, c.StartDrag(e.Payload)
	case DropOnTarget:
		return c.Drop(e.Target)
	case MutationResult:
		return nil, c.Complete(ctx, e.GestureID, e.Err)
	default:
		return nil, fmt.Errorf("unknown event %T", ev)
	}
}

// StartDrag captures the dragged item as it is now. Starting a new drag
// while one is active replaces the stale one.
func (c *Controller) StartDrag(p Payload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateCommitting || c.state == StateReverting {
		return ErrBusy
	}
	idx := models.FindItem(c.items, p.ItemID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownItem, p.ItemID)
	}

	c.gesture = &gesture{
		id:       uuid.NewString(),
		payload:  p,
		captured: c.items[idx].Clone(),
	}
	c.state = StateDragging
	slog.Debug("drag started", "gesture_id", c.gesture.id, "item_id", p.ItemID)
	return nil
}

// Cancel abandons an active drag without changes
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateDragging {
		c.reset()
	}
}

// Drop plans the edit for target and applies it to the working copy. It
// returns nil when the drop changes nothing; the controller is then idle.
func (c *Controller) Drop(target Target) (*Mutation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateDragging || c.gesture == nil {
		return nil, ErrNotDragging
	}

	m, err := c.plan(c.gesture.captured, target)
	if err != nil {
		c.reset()
		return nil, err
	}
	if m == nil {
		slog.Debug("drop changes nothing", "gesture_id", c.gesture.id, "target", target.String())
		c.reset()
		return nil, nil
	}
	m.GestureID = c.gesture.id

	if idx := models.FindItem(c.items, m.ItemID); idx >= 0 {
		c.items[idx] = m.Applied.Clone()
	}
	c.pending = m
	c.state = StateCommitting
	slog.Info("drop applied", "gesture_id", m.GestureID, "item_id", m.ItemID, "target", target.String())
	return m, nil
}

// Commit sends a mutation to the backend. It does not touch the controller
// state, so it can run off the UI goroutine; report its error through
// Complete.
func (c *Controller) Commit(ctx context.Context, m *Mutation) error {
	if m.Status == nil && len(m.Cells) == 1 {
		var columnID types.ColumnID
		var value any
		for id, v := range m.Cells {
			columnID, value = id, v
		}
		return c.backend.UpdateItemCell(ctx, c.boardID, m.ItemID, columnID, value)
	}
	return c.backend.UpdateItem(ctx, m.ItemID, board.UpdateItemRequest{Status: m.Status, Cells: m.Cells})
}

// Complete finishes the pending mutation. Success refetches the board;
// failure restores the captured item and notifies the user. Either way the
// drag state is cleared.
func (c *Controller) Complete(ctx context.Context, gestureID string, commitErr error) error {
	c.mu.Lock()
	if c.state != StateCommitting || c.pending == nil || c.pending.GestureID != gestureID {
		c.mu.Unlock()
		return ErrStaleResult
	}
	m := c.pending

	if commitErr != nil {
		c.state = StateReverting
		if idx := models.FindItem(c.items, m.ItemID); idx >= 0 {
			c.items[idx] = m.Previous.Clone()
		}
		c.reset()
		c.mu.Unlock()

		slog.Error("mutation failed, reverted", "gesture_id", gestureID, "item_id", m.ItemID, "error", commitErr)
		c.notifier.Notify(notify.LevelError, fmt.Sprintf("Could not update %q; the change was reverted", m.Previous.Name))
		return nil
	}
	c.mu.Unlock()

	items, err := c.backend.FetchAllItems(ctx, c.boardID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		slog.Warn("refetch after mutation failed", "gesture_id", gestureID, "error", err)
		c.notifier.Notify(notify.LevelWarning, "Saved, but the board could not be refreshed")
	} else {
		c.items = items
	}
	c.reset()
	slog.Debug("mutation committed", "gesture_id", gestureID, "item_id", m.ItemID)
	return nil
}

// Apply runs a whole gesture synchronously: drag, drop, commit, complete.
// It returns the commit error after the rollback has happened, and a nil
// mutation when the drop changed nothing.
func (c *Controller) Apply(ctx context.Context, p Payload, target Target) (*Mutation, error) {
	if err := c.StartDrag(p); err != nil {
		return nil, err
	}
	m, err := c.Drop(target)
	if err != nil || m == nil {
		return nil, err
	}
	commitErr := c.Commit(ctx, m)
	if err := c.Complete(ctx, m.GestureID, commitErr); err != nil {
		return m, err
	}
	return m, commitErr
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.gesture = nil
	c.pending = nil
}

func cloneItems(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
