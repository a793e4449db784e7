package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// ============================================================================
// Boards
// ============================================================================

func TestBoards_CreateGetList(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	b, err := repo.CreateBoard(ctx, "b2", "Second")
	require.NoError(t, err)
	assert.Equal(t, "Second", b.Name)
	assert.False(t, b.CreatedAt.IsZero())

	_, err = repo.CreateBoard(ctx, "b1", "First")
	require.NoError(t, err)

	boards, err := repo.ListBoards(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, types.BoardID("b1"), boards[0].ID)

	_, err = repo.GetBoard(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoards_DeleteCascades(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedBoard(t, repo, "b")

	require.NoError(t, repo.CreateItem(ctx, "b", models.Item{ID: "i1", Name: "One", Cells: map[types.ColumnID]any{"due": "2024-01-01"}}))
	require.NoError(t, repo.DeleteBoard(ctx, "b"))

	_, err := repo.GetItem(ctx, "i1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteBoard(ctx, "b"), ErrNotFound)
}

// ============================================================================
// Columns
// ============================================================================

func TestColumns_RoundTripSettingsAndOrder(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedBoard(t, repo, "b")

	cols, err := repo.GetColumnsByBoard(ctx, "b")
	require.NoError(t, err)
	require.Len(t, cols, 2)
	assert.Equal(t, types.ColumnID("status"), cols[0].ID)
	assert.Equal(t, models.ColumnTypeStatus, cols[0].Type)
	assert.Equal(t, []string{"Todo", "Done"}, cols[0].Settings.OptionLabels())
	assert.Equal(t, "#00ff00", cols[0].Settings.Colors["Done"])
	assert.Equal(t, models.ColumnTypeDate, cols[1].Type)

	require.NoError(t, repo.SaveColumns(ctx, "b", []models.Column{{ID: "due", Name: "Due", Type: models.ColumnTypeDate}}))
	cols, err = repo.GetColumnsByBoard(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, cols, 1)
}

// ============================================================================
// Items and cells
// ============================================================================

func TestItems_PaginationKeepsInsertOrder(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedBoard(t, repo, "b")

	for i := range 5 {
		require.NoError(t, repo.CreateItem(ctx, "b", models.Item{
			ID:   types.ItemID(fmt.Sprintf("i%d", i)),
			Name: fmt.Sprintf("Item %d", i),
		}))
	}

	page, err := repo.GetItemsByBoard(ctx, "b", 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, types.ItemID("i2"), page[0].ID)
	assert.Equal(t, types.ItemID("i3"), page[1].ID)

	all, err := repo.GetItemsByBoard(ctx, "b", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	count, err := repo.CountItems(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestItems_CellValuesSurviveStorage(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedBoard(t, repo, "b")

	require.NoError(t, repo.CreateItem(ctx, "b", models.Item{
		ID:     "i1",
		Name:   "One",
		Status: "Todo",
		Cells: map[types.ColumnID]any{
			"due":    models.WrappedValue{Value: "2024-03-01"},
			"points": 3,
			"deps":   []string{"a", "b"},
		},
	}))

	it, err := repo.GetItem(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "Todo", it.Status)
	assert.Equal(t, "2024-03-01", it.CellString("due"))
	assert.Equal(t, float64(3), it.Cells["points"])
	assert.Equal(t, []any{"a", "b"}, it.Cells["deps"])

	board, err := repo.GetItemBoard(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, types.BoardID("b"), board)
}

func TestItems_SetCellAndUpdate(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedBoard(t, repo, "b")
	require.NoError(t, repo.CreateItem(ctx, "b", models.Item{ID: "i1", Name: "One", Cells: map[types.ColumnID]any{"due": "2024-01-01"}}))

	require.NoError(t, repo.SetCell(ctx, "i1", "status", "Done"))
	done := "Done"
	require.NoError(t, repo.UpdateItem(ctx, "i1", &done, map[types.ColumnID]any{"due": nil}))

	it, err := repo.GetItem(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "Done", it.Status)
	assert.Equal(t, "Done", it.CellString("status"))
	_, ok := it.Cell("due")
	assert.False(t, ok)

	assert.ErrorIs(t, repo.SetCell(ctx, "ghost", "status", "x"), ErrNotFound)
	assert.ErrorIs(t, repo.UpdateItem(ctx, "ghost", &done, nil), ErrNotFound)
}

func TestItems_Delete(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedBoard(t, repo, "b")
	require.NoError(t, repo.CreateItem(ctx, "b", models.Item{ID: "i1", Name: "One"}))

	require.NoError(t, repo.DeleteItem(ctx, "i1"))
	assert.ErrorIs(t, repo.DeleteItem(ctx, "i1"), ErrNotFound)
}

// ============================================================================
// Preferences
// ============================================================================

func TestPreferences_SaveLoadOverwrite(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	seedBoard(t, repo, "b")

	_, err := repo.GetPreferences(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)

	prefs := models.DefaultViewPreferences()
	prefs.GroupBy = "status"
	prefs.WIPLimits = map[types.BucketID]int{"done": 3}
	require.NoError(t, repo.SavePreferences(ctx, "b", prefs))

	prefs.WorkingDaysOnly = true
	require.NoError(t, repo.SavePreferences(ctx, "b", prefs))

	got, err := repo.GetPreferences(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, prefs, *got)
}
