package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// PreferenceRepo persists per-board view preferences as a JSON document.
type PreferenceRepo struct {
	db *sql.DB
}

// GetPreferences loads the stored preferences of a board. ErrNotFound means
// nothing was saved yet.
func (r *PreferenceRepo) GetPreferences(ctx context.Context, boardID types.BoardID) (*models.ViewPreferences, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM view_preferences WHERE board_id = ?`, boardID).Scan(&data)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("preferences of board %s", boardID))
	}

	prefs := models.DefaultViewPreferences()
	if err := json.Unmarshal([]byte(data), &prefs); err != nil {
		return nil, fmt.Errorf("decoding preferences of board %s: %w", boardID, err)
	}
	return &prefs, nil
}

// SavePreferences replaces the stored preferences of a board
func (r *PreferenceRepo) SavePreferences(ctx context.Context, boardID types.BoardID, prefs models.ViewPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO view_preferences (board_id, data) VALUES (?, ?)
		 ON CONFLICT(board_id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		boardID, string(data))
	if err != nil {
		return fmt.Errorf("saving preferences of board %s: %w", boardID, err)
	}
	return nil
}
