package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	db *sql.DB
}

// SaveColumns replaces the column set of a board. Slice order becomes the
// column position.
func (r *ColumnRepo) SaveColumns(ctx context.Context, boardID types.BoardID, columns []models.Column) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM columns WHERE board_id = ?`, boardID); err != nil {
			return fmt.Errorf("clearing columns: %w", err)
		}
		for pos, col := range columns {
			settings, err := json.Marshal(col.Settings)
			if err != nil {
				return fmt.Errorf("encoding settings of column %s: %w", col.ID, err)
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO columns (board_id, id, name, type, position, hidden, settings) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				boardID, col.ID, col.Name, string(col.Type), pos, col.IsHidden, string(settings),
			)
			if err != nil {
				return fmt.Errorf("inserting column %s: %w", col.ID, err)
			}
		}
		return nil
	})
}

// GetColumnsByBoard retrieves the columns of a board in position order
func (r *ColumnRepo) GetColumnsByBoard(ctx context.Context, boardID types.BoardID) ([]models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, type, hidden, settings FROM columns WHERE board_id = ? ORDER BY position`,
		boardID)
	if err != nil {
		return nil, fmt.Errorf("querying columns for board: %w", err)
	}
	defer rows.Close()

	columns := []models.Column{}
	for rows.Next() {
		var (
			col      models.Column
			colType  string
			settings string
		)
		if err := rows.Scan(&col.ID, &col.Name, &colType, &col.IsHidden, &settings); err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		col.Type = models.ParseColumnType(colType)
		if err := json.Unmarshal([]byte(settings), &col.Settings); err != nil {
			return nil, fmt.Errorf("decoding settings of column %s: %w", col.ID, err)
		}
		columns = append(columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column rows: %w", err)
	}
	return columns, nil
}
