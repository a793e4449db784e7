// Package testutil holds shared fixtures for package tests
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardview/internal/database"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// SampleBoardID is the board created by SeedSampleBoard
const SampleBoardID types.BoardID = "roadmap"

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SampleColumns is a board layout covering every column kind the views read
func SampleColumns() []models.Column {
	return []models.Column{
		{ID: "status", Name: "Status", Type: models.ColumnTypeStatus, Settings: models.ColumnSettings{
			Options: []models.Option{{Label: "Todo"}, {Label: "In Progress"}, {Label: "Done"}},
		}},
		{ID: "start", Name: "Start", Type: models.ColumnTypeDate},
		{ID: "end", Name: "End", Type: models.ColumnTypeDate},
		{ID: "deps", Name: "Blocked by", Type: models.ColumnTypeDependency},
		{ID: "owner", Name: "Owner", Type: models.ColumnTypePerson},
		{ID: "points", Name: "Points", Type: models.ColumnTypeNumber},
	}
}

// SampleItems is a small dependency chain A -> B -> C plus an unrelated D
// and an undated E
func SampleItems() []models.Item {
	return []models.Item{
		{ID: "A", Name: "Design", Cells: map[types.ColumnID]any{
			"status": "Done", "start": "2024-01-01", "end": "2024-01-01", "owner": "ana", "points": 1,
		}},
		{ID: "B", Name: "Build", Cells: map[types.ColumnID]any{
			"status": "In Progress", "start": "2024-01-02", "end": "2024-01-03", "deps": "A", "owner": "ben", "points": 3,
		}},
		{ID: "C", Name: "Launch", Cells: map[types.ColumnID]any{
			"status": "Todo", "start": "2024-01-04", "end": "2024-01-06", "deps": `["B"]`, "owner": "ana", "points": 2,
		}},
		{ID: "D", Name: "Docs", Cells: map[types.ColumnID]any{
			"status": "Todo", "start": "2024-01-01", "end": "2024-01-02",
		}},
		{ID: "E", Name: "Backlog idea", Cells: map[types.ColumnID]any{}},
	}
}

// SeedSampleBoard stores the sample board and returns the repository
func SeedSampleBoard(t *testing.T, db *sql.DB) *database.Repository {
	t.Helper()
	ctx := context.Background()
	repo := database.NewRepository(db)

	_, err := repo.CreateBoard(ctx, SampleBoardID, "Roadmap")
	require.NoError(t, err)
	require.NoError(t, repo.SaveColumns(ctx, SampleBoardID, SampleColumns()))
	for _, it := range SampleItems() {
		require.NoError(t, repo.CreateItem(ctx, SampleBoardID, it))
	}
	return repo
}
