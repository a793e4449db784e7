package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/testutil"
	"github.com/thenoetrevino/boardview/internal/testutil/clitest"
	"github.com/thenoetrevino/boardview/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func stored(t *testing.T, c *cli.CLI, id types.ItemID) models.Item {
	t.Helper()
	items, err := c.App.BoardService.FetchAllItems(context.Background(), testutil.SampleBoardID)
	require.NoError(t, err)
	idx := models.FindItem(items, id)
	require.GreaterOrEqual(t, idx, 0, "item %s should exist", id)
	return items[idx]
}

// ============================================================================
// move
// ============================================================================

func TestMove_FuzzyBucket(t *testing.T) {
	t.Parallel()
	_, c := clitest.SetupCLITest(t)

	out, err := clitest.Run(t, c, MoveCmd(), "Launch", "prog")
	require.NoError(t, err)
	assert.Contains(t, out, "Moved Launch to In Progress")

	status, _ := stored(t, c, "C").Cell("status")
	assert.Equal(t, "In Progress", status)
}

func TestMove_JSON(t *testing.T) {
	t.Parallel()
	_, c := clitest.SetupCLITest(t)

	out, err := clitest.Run(t, c, MoveCmd(), "C", "done", "--json")
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	data := result["data"].(map[string]any)
	assert.Equal(t, "C", data["itemId"])
	assert.Equal(t, true, data["changed"])
	assert.Equal(t, "Done", data["target"])
}

func TestMove_SameBucketChangesNothing(t *testing.T) {
	t.Parallel()
	_, c := clitest.SetupCLITest(t)

	out, err := clitest.Run(t, c, MoveCmd(), "Design", "Done")
	require.NoError(t, err)
	assert.Contains(t, out, "Design is already in Done")
}

func TestMove_NoStatusClearsCell(t *testing.T) {
	t.Parallel()
	_, c := clitest.SetupCLITest(t)

	_, err := clitest.Run(t, c, MoveCmd(), "Build", "No Status")
	require.NoError(t, err)

	_, ok := stored(t, c, "B").Cell("status")
	assert.False(t, ok)
}

func TestMove_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown item", []string{"Ghost", "Done"}, "item not found"},
		{"unknown bucket", []string{"Launch", "xyzzy"}, "Available buckets: No Status, Todo, In Progress, Done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, c := clitest.SetupCLITest(t)

			out, err := clitest.Run(t, c, MoveCmd(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
			assert.Contains(t, out, tt.want)
		})
	}
}

// ============================================================================
// reschedule
// ============================================================================

func TestReschedule_ShiftsEndAlong(t *testing.T) {
	t.Parallel()
	_, c := clitest.SetupCLITest(t)

	out, err := clitest.Run(t, c, RescheduleCmd(), "Launch", "2024-01-10", "--end-column", "end")
	require.NoError(t, err)
	assert.Contains(t, out, "Rescheduled Launch to 2024-01-10")

	item := stored(t, c, "C")
	start, _ := item.Cell("start")
	end, _ := item.Cell("end")
	assert.Equal(t, "2024-01-10T12:00:00Z", start)
	assert.Equal(t, "2024-01-12T00:00:00Z", end, "a three day item stays three days long")
}

func TestReschedule_SameDay(t *testing.T) {
	t.Parallel()
	_, c := clitest.SetupCLITest(t)

	out, err := clitest.Run(t, c, RescheduleCmd(), "C", "2024-01-04")
	require.NoError(t, err)
	assert.Contains(t, out, "Launch is already on 2024-01-04")
}

func TestReschedule_UndatedItemGetsStart(t *testing.T) {
	t.Parallel()
	_, c := clitest.SetupCLITest(t)

	_, err := clitest.Run(t, c, RescheduleCmd(), "E", "2024-03-01", "--quiet")
	require.NoError(t, err)

	start, ok := stored(t, c, "E").Cell("start")
	require.True(t, ok)
	assert.Equal(t, "2024-03-01T12:00:00Z", start)
}

func TestReschedule_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"bad date", []string{"C", "someday"}},
		{"not a date column", []string{"C", "2024-01-10", "--column", "owner"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, c := clitest.SetupCLITest(t)

			_, err := clitest.Run(t, c, RescheduleCmd(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		})
	}
}
