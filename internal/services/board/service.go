package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/boardview/internal/cells"
	"github.com/thenoetrevino/boardview/internal/database"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

const (
	// DefaultPageSize is used when a page asks for no limit
	DefaultPageSize = 100
	// MaxPageSize caps a single fetch
	MaxPageSize = 500

	maxNameLength = 255
)

// Service defines all board-related business operations
type Service interface {
	// Boards
	CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error)
	GetBoard(ctx context.Context, boardID types.BoardID) (*models.Board, error)
	ListBoards(ctx context.Context) ([]*models.Board, error)

	// Read operations
	FetchColumns(ctx context.Context, boardID types.BoardID) ([]models.Column, error)
	FetchItems(ctx context.Context, boardID types.BoardID, page Page) ([]models.Item, error)
	FetchAllItems(ctx context.Context, boardID types.BoardID) ([]models.Item, error)

	// Write operations
	SaveColumns(ctx context.Context, boardID types.BoardID, columns []models.Column) error
	CreateItem(ctx context.Context, boardID types.BoardID, req CreateItemRequest) (*models.Item, error)
	UpdateItemCell(ctx context.Context, boardID types.BoardID, itemID types.ItemID, columnID types.ColumnID, value any) error
	UpdateItem(ctx context.Context, itemID types.ItemID, req UpdateItemRequest) error
}

// Page selects a slice of a board's items. Pages start at 1; a zero Limit
// means DefaultPageSize.
type Page struct {
	Page  int
	Limit int
}

// CreateBoardRequest encapsulates all data needed to create a board
type CreateBoardRequest struct {
	ID      types.BoardID
	Name    string
	Columns []models.Column
}

// CreateItemRequest encapsulates all data needed to create an item.
// Cells may be in any shape cells.Normalize accepts.
type CreateItemRequest struct {
	ID     types.ItemID
	Name   string
	Status string
	Cells  any
}

// UpdateItemRequest encapsulates an item update.
// A nil Status means don't update; a nil cell value clears that cell.
type UpdateItemRequest struct {
	Status *string
	Cells  map[types.ColumnID]any
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new board service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// CreateBoard validates and stores a board with its columns
func (s *service) CreateBoard(ctx context.Context, req CreateBoardRequest) (*models.Board, error) {
	if req.ID == "" {
		return nil, ErrInvalidBoardID
	}
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if err := validateColumns(req.Columns); err != nil {
		return nil, err
	}

	b, err := s.repo.CreateBoard(ctx, req.ID, strings.TrimSpace(req.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	if len(req.Columns) > 0 {
		if err := s.repo.SaveColumns(ctx, req.ID, req.Columns); err != nil {
			return nil, fmt.Errorf("failed to save columns: %w", err)
		}
	}
	slog.Info("board created", "board_id", b.ID, "columns", len(req.Columns))
	return b, nil
}

// GetBoard returns a board by id
func (s *service) GetBoard(ctx context.Context, boardID types.BoardID) (*models.Board, error) {
	if boardID == "" {
		return nil, ErrInvalidBoardID
	}
	b, err := s.repo.GetBoard(ctx, boardID)
	if err != nil {
		return nil, translate(err, ErrBoardNotFound)
	}
	return b, nil
}

// ListBoards returns every board
func (s *service) ListBoards(ctx context.Context) ([]*models.Board, error) {
	return s.repo.ListBoards(ctx)
}

// FetchColumns returns the board's columns in display order
func (s *service) FetchColumns(ctx context.Context, boardID types.BoardID) ([]models.Column, error) {
	if _, err := s.GetBoard(ctx, boardID); err != nil {
		return nil, err
	}
	return s.repo.GetColumnsByBoard(ctx, boardID)
}

// FetchItems returns one page of the board's items
func (s *service) FetchItems(ctx context.Context, boardID types.BoardID, page Page) ([]models.Item, error) {
	if page.Page < 1 {
		return nil, ErrInvalidPage
	}
	if _, err := s.GetBoard(ctx, boardID); err != nil {
		return nil, err
	}

	limit := page.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	limit = min(limit, MaxPageSize)

	items, err := s.repo.GetItemsByBoard(ctx, boardID, limit, (page.Page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}
	return items, nil
}

// FetchAllItems walks every page of the board's items
func (s *service) FetchAllItems(ctx context.Context, boardID types.BoardID) ([]models.Item, error) {
	var all []models.Item
	for n := 1; ; n++ {
		items, err := s.FetchItems(ctx, boardID, Page{Page: n, Limit: DefaultPageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < DefaultPageSize {
			return all, nil
		}
	}
}

// SaveColumns replaces the board's columns
func (s *service) SaveColumns(ctx context.Context, boardID types.BoardID, columns []models.Column) error {
	if _, err := s.GetBoard(ctx, boardID); err != nil {
		return err
	}
	if err := validateColumns(columns); err != nil {
		return err
	}
	return s.repo.SaveColumns(ctx, boardID, columns)
}

// CreateItem normalizes the cells payload and stores a new item
func (s *service) CreateItem(ctx context.Context, boardID types.BoardID, req CreateItemRequest) (*models.Item, error) {
	if req.ID == "" {
		return nil, ErrInvalidItemID
	}
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if _, err := s.GetBoard(ctx, boardID); err != nil {
		return nil, err
	}

	normalized, err := cells.Normalize(req.Cells)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", req.ID, err)
	}

	item := models.Item{ID: req.ID, Name: strings.TrimSpace(req.Name), Status: req.Status, Cells: normalized}
	if err := s.repo.CreateItem(ctx, boardID, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &item, nil
}

// UpdateItemCell writes one cell of an item that must live on boardID
func (s *service) UpdateItemCell(ctx context.Context, boardID types.BoardID, itemID types.ItemID, columnID types.ColumnID, value any) error {
	switch {
	case boardID == "":
		return ErrInvalidBoardID
	case itemID == "":
		return ErrInvalidItemID
	case columnID == "":
		return ErrInvalidColumnID
	}

	owner, err := s.repo.GetItemBoard(ctx, itemID)
	if err != nil {
		return translate(err, ErrItemNotFound)
	}
	if owner != boardID {
		return fmt.Errorf("%w: item %s is on board %s", ErrItemNotOnBoard, itemID, owner)
	}

	columns, err := s.repo.GetColumnsByBoard(ctx, boardID)
	if err != nil {
		return fmt.Errorf("failed to load columns: %w", err)
	}
	if models.FindColumn(columns, columnID) == nil {
		return fmt.Errorf("%w: %s", ErrColumnNotFound, columnID)
	}

	if err := s.repo.SetCell(ctx, itemID, columnID, value); err != nil {
		return translate(err, ErrItemNotFound)
	}
	slog.Debug("cell updated", "item_id", itemID, "column_id", columnID)
	return nil
}

// UpdateItem changes an item's status and cells together
func (s *service) UpdateItem(ctx context.Context, itemID types.ItemID, req UpdateItemRequest) error {
	if itemID == "" {
		return ErrInvalidItemID
	}
	if req.Status == nil && len(req.Cells) == 0 {
		return ErrEmptyUpdate
	}
	for columnID := range req.Cells {
		if columnID == "" {
			return ErrInvalidColumnID
		}
	}

	if err := s.repo.UpdateItem(ctx, itemID, req.Status, req.Cells); err != nil {
		return translate(err, ErrItemNotFound)
	}
	slog.Debug("item updated", "item_id", itemID, "cells", len(req.Cells))
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateColumns(columns []models.Column) error {
	seen := make(map[types.ColumnID]bool, len(columns))
	for _, col := range columns {
		if col.ID == "" {
			return ErrInvalidColumnID
		}
		if seen[col.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateColumn, col.ID)
		}
		seen[col.ID] = true
	}
	return nil
}

// translate replaces a repository not-found error with the service sentinel
func translate(err, sentinel error) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	return err
}
