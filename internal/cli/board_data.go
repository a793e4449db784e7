package cli

import (
	"context"
	"time"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/render"
	"github.com/thenoetrevino/boardview/internal/types"
)

// BoardData is everything a view command projects
type BoardData struct {
	BoardID types.BoardID
	Columns []models.Column
	Items   []models.Item
	Prefs   models.ViewPreferences
}

// LoadBoard fetches columns, all items and view preferences of a board
func (c *CLI) LoadBoard(ctx context.Context, boardID types.BoardID) (*BoardData, error) {
	columns, err := c.App.BoardService.FetchColumns(ctx, boardID)
	if err != nil {
		return nil, err
	}
	items, err := c.App.BoardService.FetchAllItems(ctx, boardID)
	if err != nil {
		return nil, err
	}
	prefs, err := c.App.Preferences.Load(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return &BoardData{BoardID: boardID, Columns: columns, Items: items, Prefs: prefs}, nil
}

// Styles returns the render styles of the configured theme
func (c *CLI) Styles() render.Styles {
	return render.NewStyles(c.App.Config.ColorScheme)
}

// Now returns the current time in the configured timezone
func (c *CLI) Now() time.Time {
	return time.Now().In(c.App.Location)
}

// ItemRef is the short item form used in JSON output
type ItemRef struct {
	ID   types.ItemID `json:"id"`
	Name string       `json:"name"`
}

// Refs converts items to ItemRefs
func Refs(items []models.Item) []ItemRef {
	out := make([]ItemRef, len(items))
	for i, it := range items {
		out[i] = ItemRef{ID: it.ID, Name: it.Name}
	}
	return out
}
