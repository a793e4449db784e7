package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/preferences"
	"github.com/thenoetrevino/boardview/internal/services/board"
	"github.com/thenoetrevino/boardview/internal/types"
)

// ============================================================================
// lookups
// ============================================================================

var buckets = []models.KanbanColumn{
	{ID: "no-status", Name: "No Status"},
	{ID: "todo", Name: "Todo"},
	{ID: "in-progress", Name: "In Progress"},
	{ID: "done", Name: "Done"},
}

func TestFindBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  types.BucketID
	}{
		{"done", "done"},
		{"in-progress", "in-progress"},
		{"IN PROGRESS", "in-progress"},
		{"prog", "in-progress"},
		{"no status", "no-status"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			got, err := FindBucket(buckets, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ID)
		})
	}

	_, err := FindBucket(buckets, "xyz")
	assert.ErrorIs(t, err, ErrBucketNotFound)
}

func TestFindItem(t *testing.T) {
	t.Parallel()

	items := []models.Item{{ID: "A", Name: "Design"}, {ID: "B", Name: "Build Server"}}

	got, err := FindItem(items, "B")
	require.NoError(t, err)
	assert.Equal(t, "Build Server", got.Name)

	got, err = FindItem(items, "build  server")
	require.NoError(t, err)
	assert.Equal(t, types.ItemID("B"), got.ID)

	_, err = FindItem(items, "Launch")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestFormatAvailableBuckets(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "No Status, Todo, In Progress, Done", FormatAvailableBuckets(buckets))
}

// ============================================================================
// parsing
// ============================================================================

func TestParseDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		in   string
		want time.Time
	}{
		{"", day(10)},
		{"today", day(10)},
		{"Tomorrow", day(11)},
		{"yesterday", day(9)},
		{"+3", day(13)},
		{"-2d", day(8)},
		{"2024-01-20", day(20)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDay(tt.in, now, time.UTC)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	for _, bad := range []string{"someday", "+x", "2024-02-30"} {
		_, err := ParseDay(bad, now, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestSplitColumns(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []types.ColumnID{"start", "due"}, SplitColumns(" start, ,due "))
	assert.Nil(t, SplitColumns(""))
}

// ============================================================================
// exit codes and output
// ============================================================================

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"no board", ErrNoBoard, ExitUsage},
		{"wrapped not found", fmt.Errorf("loading: %w", board.ErrBoardNotFound), ExitNotFound},
		{"preference value", preferences.ErrInvalidValue, ExitValidation},
		{"coded", &CodedError{Code: ExitDataErr, Err: errors.New("x")}, ExitDataErr},
		{"other", errors.New("disk on fire"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestOutputFormatter_JSONEnvelope(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	f := &OutputFormatter{JSON: true, Out: &out, Err: &out}

	err := f.Fail(fmt.Errorf("lookup: %w", ErrItemNotFound))
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ExitNotFound, coded.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &envelope))
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "NOT_FOUND", envelope["error"].(map[string]any)["code"])
}

func TestOutputFormatter_Modes(t *testing.T) {
	t.Parallel()

	var human, quiet bytes.Buffer
	require.NoError(t, (&OutputFormatter{Out: &human}).Success(nil, "Moved A", "A"))
	require.NoError(t, (&OutputFormatter{Quiet: true, Out: &quiet}).Success(nil, "Moved A", "A"))

	assert.Equal(t, "Moved A\n", human.String())
	assert.Equal(t, "A\n", quiet.String())
}
