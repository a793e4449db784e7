package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenMemory(context.Background())
	require.NoError(t, err, "open test database")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedBoard creates a board with a status and a date column
func seedBoard(t *testing.T, repo *Repository, id types.BoardID) {
	t.Helper()
	ctx := context.Background()

	_, err := repo.CreateBoard(ctx, id, "Board "+string(id))
	require.NoError(t, err)

	err = repo.SaveColumns(ctx, id, []models.Column{
		{ID: "status", Name: "Status", Type: models.ColumnTypeStatus, Settings: models.ColumnSettings{
			Options: []models.Option{{Label: "Todo"}, {Label: "Done"}},
			Colors:  map[string]string{"Done": "#00ff00"},
		}},
		{ID: "due", Name: "Due", Type: models.ColumnTypeDate},
	})
	require.NoError(t, err)
}
