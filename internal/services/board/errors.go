package board

import "errors"

// Board-related errors
var (
	// Validation errors
	ErrInvalidBoardID  = errors.New("invalid board ID")
	ErrInvalidItemID   = errors.New("invalid item ID")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNameTooLong     = errors.New("name cannot exceed 255 characters")
	ErrInvalidPage     = errors.New("invalid page: pages start at 1")
	ErrDuplicateColumn = errors.New("duplicate column ID")

	// Business logic errors
	ErrBoardNotFound  = errors.New("board not found")
	ErrItemNotFound   = errors.New("item not found")
	ErrColumnNotFound = errors.New("column not found on board")
	ErrItemNotOnBoard = errors.New("item does not belong to board")
	ErrEmptyUpdate    = errors.New("update changes nothing")
)
