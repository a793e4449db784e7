package database

import (
	"context"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// BoardRepository defines board operations.
type BoardRepository interface {
	CreateBoard(ctx context.Context, id types.BoardID, name string) (*models.Board, error)
	GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)
	DeleteBoard(ctx context.Context, id types.BoardID) error
}

// ColumnRepository defines column operations.
type ColumnRepository interface {
	SaveColumns(ctx context.Context, boardID types.BoardID, columns []models.Column) error
	GetColumnsByBoard(ctx context.Context, boardID types.BoardID) ([]models.Column, error)
}

// ItemReader defines read operations for items.
type ItemReader interface {
	GetItemsByBoard(ctx context.Context, boardID types.BoardID, limit, offset int) ([]models.Item, error)
	CountItems(ctx context.Context, boardID types.BoardID) (int, error)
	GetItem(ctx context.Context, itemID types.ItemID) (*models.Item, error)
	GetItemBoard(ctx context.Context, itemID types.ItemID) (types.BoardID, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	CreateItem(ctx context.Context, boardID types.BoardID, item models.Item) error
	SetCell(ctx context.Context, itemID types.ItemID, columnID types.ColumnID, value any) error
	UpdateItem(ctx context.Context, itemID types.ItemID, status *string, cells map[types.ColumnID]any) error
	DeleteItem(ctx context.Context, itemID types.ItemID) error
}

// ItemRepository combines all item-related operations.
type ItemRepository interface {
	ItemReader
	ItemWriter
}

// PreferenceRepository defines persisted view preference operations.
type PreferenceRepository interface {
	GetPreferences(ctx context.Context, boardID types.BoardID) (*models.ViewPreferences, error)
	SavePreferences(ctx context.Context, boardID types.BoardID, prefs models.ViewPreferences) error
}

// DataStore defines the unified interface for all data operations.
// It is composed of the smaller domain-specific interfaces so consumers can
// depend on just the part they need.
type DataStore interface {
	BoardRepository
	ColumnRepository
	ItemRepository
	PreferenceRepository
}
