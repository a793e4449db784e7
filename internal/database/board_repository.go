package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db *sql.DB
}

// CreateBoard inserts a new board
func (r *BoardRepo) CreateBoard(ctx context.Context, id types.BoardID, name string) (*models.Board, error) {
	_, err := r.db.ExecContext(ctx, `INSERT INTO boards (id, name) VALUES (?, ?)`, id, name)
	if err != nil {
		return nil, fmt.Errorf("inserting board %s: %w", id, err)
	}
	return r.GetBoard(ctx, id)
}

// GetBoard retrieves a board by its ID
func (r *BoardRepo) GetBoard(ctx context.Context, id types.BoardID) (*models.Board, error) {
	board := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM boards WHERE id = ?`, id,
	).Scan(&board.ID, &board.Name, &board.CreatedAt)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("board %s", id))
	}
	return board, nil
}

// ListBoards returns every board ordered by name
func (r *BoardRepo) ListBoards(ctx context.Context) ([]*models.Board, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM boards ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("querying boards: %w", err)
	}
	defer rows.Close()

	var boards []*models.Board
	for rows.Next() {
		b := &models.Board{}
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning board row: %w", err)
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

// DeleteBoard removes a board with its columns, items and preferences
func (r *BoardRepo) DeleteBoard(ctx context.Context, id types.BoardID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting board %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("board %s: %w", id, ErrNotFound)
	}
	return nil
}
