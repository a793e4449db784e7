package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// ItemRepo handles all item and cell database operations.
type ItemRepo struct {
	db *sql.DB
}

// CreateItem appends an item with its cells to the end of a board
func (r *ItemRepo) CreateItem(ctx context.Context, boardID types.BoardID, item models.Item) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var next int
		err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position), -1) + 1 FROM items WHERE board_id = ?`, boardID,
		).Scan(&next)
		if err != nil {
			return fmt.Errorf("finding next position: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO items (id, board_id, name, status, position) VALUES (?, ?, ?, ?, ?)`,
			item.ID, boardID, item.Name, item.Status, next,
		)
		if err != nil {
			return fmt.Errorf("inserting item %s: %w", item.ID, err)
		}

		for columnID, value := range item.Cells {
			if err := setCell(ctx, tx, item.ID, columnID, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetItemsByBoard returns one page of a board's items in position order.
// A limit of zero or less returns every item from offset on.
func (r *ItemRepo) GetItemsByBoard(ctx context.Context, boardID types.BoardID, limit, offset int) ([]models.Item, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, status FROM items WHERE board_id = ? ORDER BY position, id LIMIT ? OFFSET ?`,
		boardID, limit, max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("querying items for board: %w", err)
	}

	items := []models.Item{}
	index := make(map[types.ItemID]int)
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Status); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		it.Cells = map[types.ColumnID]any{}
		index[it.ID] = len(items)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}
	rows.Close()

	if len(items) == 0 {
		return items, nil
	}

	args := make([]any, 0, len(items))
	for _, it := range items {
		args = append(args, it.ID)
	}
	cellRows, err := r.db.QueryContext(ctx,
		`SELECT item_id, column_id, value FROM cells WHERE item_id IN (`+placeholders(len(args))+`)`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("querying cells: %w", err)
	}
	defer cellRows.Close()

	for cellRows.Next() {
		var (
			itemID   types.ItemID
			columnID types.ColumnID
			raw      string
		)
		if err := cellRows.Scan(&itemID, &columnID, &raw); err != nil {
			return nil, fmt.Errorf("scanning cell row: %w", err)
		}
		value, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("item %s column %s: %w", itemID, columnID, err)
		}
		items[index[itemID]].Cells[columnID] = value
	}
	return items, cellRows.Err()
}

// CountItems returns the number of items on a board
func (r *ItemRepo) CountItems(ctx context.Context, boardID types.BoardID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE board_id = ?`, boardID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return count, nil
}

// GetItem retrieves a single item with its cells
func (r *ItemRepo) GetItem(ctx context.Context, itemID types.ItemID) (*models.Item, error) {
	it := &models.Item{Cells: map[types.ColumnID]any{}}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, status FROM items WHERE id = ?`, itemID,
	).Scan(&it.ID, &it.Name, &it.Status)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("item %s", itemID))
	}

	rows, err := r.db.QueryContext(ctx, `SELECT column_id, value FROM cells WHERE item_id = ?`, itemID)
	if err != nil {
		return nil, fmt.Errorf("querying cells: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			columnID types.ColumnID
			raw      string
		)
		if err := rows.Scan(&columnID, &raw); err != nil {
			return nil, fmt.Errorf("scanning cell row: %w", err)
		}
		value, err := decodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("item %s column %s: %w", itemID, columnID, err)
		}
		it.Cells[columnID] = value
	}
	return it, rows.Err()
}

// GetItemBoard returns the board an item belongs to
func (r *ItemRepo) GetItemBoard(ctx context.Context, itemID types.ItemID) (types.BoardID, error) {
	var boardID types.BoardID
	err := r.db.QueryRowContext(ctx, `SELECT board_id FROM items WHERE id = ?`, itemID).Scan(&boardID)
	if err != nil {
		return "", notFound(err, fmt.Sprintf("item %s", itemID))
	}
	return boardID, nil
}

// SetCell writes one cell. A nil value removes the cell.
func (r *ItemRepo) SetCell(ctx context.Context, itemID types.ItemID, columnID types.ColumnID, value any) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := touchItem(ctx, tx, itemID); err != nil {
			return err
		}
		return setCell(ctx, tx, itemID, columnID, value)
	})
}

// UpdateItem changes the status (when non-nil) and the given cells of an
// item atomically
func (r *ItemRepo) UpdateItem(ctx context.Context, itemID types.ItemID, status *string, cells map[types.ColumnID]any) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := touchItem(ctx, tx, itemID); err != nil {
			return err
		}
		if status != nil {
			if _, err := tx.ExecContext(ctx, `UPDATE items SET status = ? WHERE id = ?`, *status, itemID); err != nil {
				return fmt.Errorf("updating status: %w", err)
			}
		}
		for columnID, value := range cells {
			if err := setCell(ctx, tx, itemID, columnID, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteItem removes an item and its cells
func (r *ItemRepo) DeleteItem(ctx context.Context, itemID types.ItemID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("deleting item %s: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("item %s: %w", itemID, ErrNotFound)
	}
	return nil
}

// touchItem bumps updated_at and reports ErrNotFound for unknown items
func touchItem(ctx context.Context, tx *sql.Tx, itemID types.ItemID) error {
	res, err := tx.ExecContext(ctx, `UPDATE items SET updated_at = CURRENT_TIMESTAMP WHERE id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("updating item %s: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("item %s: %w", itemID, ErrNotFound)
	}
	return nil
}

func setCell(ctx context.Context, tx *sql.Tx, itemID types.ItemID, columnID types.ColumnID, value any) error {
	if value == nil {
		_, err := tx.ExecContext(ctx, `DELETE FROM cells WHERE item_id = ? AND column_id = ?`, itemID, columnID)
		if err != nil {
			return fmt.Errorf("clearing cell %s: %w", columnID, err)
		}
		return nil
	}

	encoded, err := encodeValue(value)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO cells (item_id, column_id, value) VALUES (?, ?, ?)
		 ON CONFLICT(item_id, column_id) DO UPDATE SET value = excluded.value`,
		itemID, columnID, encoded,
	)
	if err != nil {
		return fmt.Errorf("writing cell %s: %w", columnID, err)
	}
	return nil
}
