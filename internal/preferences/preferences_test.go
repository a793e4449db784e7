package preferences

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardview/internal/database"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/testutil"
	"github.com/thenoetrevino/boardview/internal/types"
)

// ============================================================================
// Stores
// ============================================================================

func storeContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	board := testutil.SampleBoardID

	got, err := store.Load(ctx, board)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultViewPreferences(), got)

	prefs := models.DefaultViewPreferences()
	prefs.SwimlaneBy = "owner"
	prefs.WIPLimits = map[types.BucketID]int{"in-progress": 2}
	require.NoError(t, store.Save(ctx, board, prefs))

	prefs.CalendarMode = "week"
	require.NoError(t, store.Save(ctx, board, prefs))

	got, err = store.Load(ctx, board)
	require.NoError(t, err)
	assert.Equal(t, prefs, got)

	assert.ErrorIs(t, store.Save(ctx, "", prefs), ErrInvalidBoardID)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	storeContract(t, NewMemoryStore())
}

func TestRepositoryStore(t *testing.T) {
	t.Parallel()
	repo := testutil.SeedSampleBoard(t, testutil.SetupTestDB(t))
	storeContract(t, NewRepositoryStore(repo))
}

func TestMemoryStore_CopiesOnSave(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx := context.Background()

	prefs := models.DefaultViewPreferences()
	prefs.WIPLimits = map[types.BucketID]int{"done": 1}
	require.NoError(t, store.Save(ctx, "b", prefs))
	prefs.WIPLimits["done"] = 9

	got, err := store.Load(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 1, got.WIPLimits["done"])
}

func TestRepositoryStore_UnknownBoardFailsSave(t *testing.T) {
	t.Parallel()
	store := NewRepositoryStore(database.NewRepository(testutil.SetupTestDB(t)))

	err := store.Save(context.Background(), "ghost", models.DefaultViewPreferences())
	assert.Error(t, err)
}

// ============================================================================
// Keys
// ============================================================================

func TestSetGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"date_columns", "start, due ,", "start,due"},
		{"working_days_only", "true", "true"},
		{"show_time_slots", "false", "false"},
		{"group_by", "status", "status"},
		{"card_order_direction", "DESC", "desc"},
		{"calendar_mode", "Agenda", "agenda"},
		{"timeline_zoom", "month", "month"},
		{"wip_limit.in-progress", "3", "3"},
		{"end_date_column", "end", "end"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p := models.DefaultViewPreferences()
			require.NoError(t, Set(&p, tt.key, tt.value))
			got, err := Get(p, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet_Errors(t *testing.T) {
	t.Parallel()
	p := models.DefaultViewPreferences()

	assert.ErrorIs(t, Set(&p, "colour", "red"), ErrUnknownKey)
	assert.ErrorIs(t, Set(&p, "working_days_only", "maybe"), ErrInvalidValue)
	assert.ErrorIs(t, Set(&p, "calendar_mode", "year"), ErrInvalidValue)
	assert.ErrorIs(t, Set(&p, "wip_limit.done", "-1"), ErrInvalidValue)
	assert.ErrorIs(t, Set(&p, "wip_limit.", "1"), ErrUnknownKey)
}

func TestSet_ZeroWIPRemovesLimit(t *testing.T) {
	t.Parallel()
	p := models.DefaultViewPreferences()

	require.NoError(t, Set(&p, "wip_limit.done", "2"))
	require.NoError(t, Set(&p, "wip_limit.done", "0"))
	assert.NotContains(t, p.WIPLimits, types.BucketID("done"))
}
