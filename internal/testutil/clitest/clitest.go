// Package clitest runs boardview commands against an in-memory sample board
package clitest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/app"
	"github.com/thenoetrevino/boardview/internal/cli"
	"github.com/thenoetrevino/boardview/internal/config"
	"github.com/thenoetrevino/boardview/internal/testutil"
)

// SetupCLITest seeds the sample board and returns a CLI bound to it
func SetupCLITest(t *testing.T) (*sql.DB, *cli.CLI) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	testutil.SeedSampleBoard(t, db)

	cfg := config.Default()
	cfg.Timezone = "UTC"
	cfg.DefaultBoard = string(testutil.SampleBoardID)

	c, err := cli.NewCLI(context.Background(), cfg, app.WithDB(db))
	if err != nil {
		t.Fatalf("Failed to create CLI: %v", err)
	}
	return db, c
}

// Run executes cmd with the CLI in its context and returns its output
func Run(t *testing.T, c *cli.CLI, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	cmd.SetContext(cli.WithCLI(context.Background(), c))
	return testutil.ExecuteCommand(t, cmd, args...)
}
