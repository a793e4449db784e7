package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/testutil"
	"github.com/thenoetrevino/boardview/internal/testutil/clitest"
	"github.com/thenoetrevino/boardview/internal/types"
)

func TestShow_YAML(t *testing.T) {
	t.Parallel()
	_, c := clitest.SetupCLITest(t)

	out, err := clitest.Run(t, c, PrefsCmd(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "calendar_mode: month")
	assert.Contains(t, out, "timeline_zoom: week")
}

func TestSet_PersistsAndGetReads(t *testing.T) {
	t.Parallel()
	_, c := clitest.SetupCLITest(t)

	out, err := clitest.Run(t, c, PrefsCmd(), "set", "swimlane_by", "owner")
	require.NoError(t, err)
	assert.Contains(t, out, "Set swimlane_by = owner")

	p, err := c.App.Preferences.Load(context.Background(), testutil.SampleBoardID)
	require.NoError(t, err)
	assert.Equal(t, types.ColumnID("owner"), p.SwimlaneBy)

	out, err = clitest.Run(t, c, PrefsCmd(), "get", "swimlane_by", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "owner\n", out)
}

func TestSet_WIPLimit(t *testing.T) {
	t.Parallel()
	_, c := clitest.SetupCLITest(t)

	_, err := clitest.Run(t, c, PrefsCmd(), "set", "wip_limit.in-progress", "2")
	require.NoError(t, err)

	out, err := clitest.Run(t, c, PrefsCmd(), "get", "wip_limit.in-progress", "--json")
	require.NoError(t, err)
	data := testutil.ParseJSON(t, out)["data"].(map[string]any)
	assert.Equal(t, "2", data["value"])
}

func TestSet_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown key", []string{"set", "colour", "red"}, cli.ExitValidation},
		{"bad mode", []string{"set", "calendar_mode", "year"}, cli.ExitValidation},
		{"bad bool", []string{"set", "working_days_only", "maybe"}, cli.ExitValidation},
		{"unknown board", []string{"set", "group_by", "status", "--board", "nope"}, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, c := clitest.SetupCLITest(t)

			_, err := clitest.Run(t, c, PrefsCmd(), tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, cli.ExitCode(err))
		})
	}
}
