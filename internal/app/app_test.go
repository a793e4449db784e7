package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/boardview/internal/config"
	"github.com/thenoetrevino/boardview/internal/notify"
	"github.com/thenoetrevino/boardview/internal/testutil"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedSampleBoard(t, db)

	app, err := New(context.Background(), config.Default(), WithDB(db))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.BoardService == nil {
		t.Error("Expected BoardService to be initialized")
	}
	if app.Preferences == nil {
		t.Error("Expected Preferences to be initialized")
	}
	if app.Importer == nil {
		t.Error("Expected Importer to be initialized")
	}

	boards, err := app.BoardService.ListBoards(context.Background())
	if err != nil || len(boards) != 1 {
		t.Errorf("ListBoards() = %v, %v, want the sample board", boards, err)
	}

	// the caller owns an injected database
	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Errorf("Injected database was closed: %v", err)
	}
}

func TestNew_OpensConfiguredPath(t *testing.T) {
	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "nested", "boardview.db")

	app, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}

func TestNew_RejectsBadTimezone(t *testing.T) {
	cfg := config.Default()
	cfg.Timezone = "Nowhere/Land"

	if _, err := New(context.Background(), cfg, WithDB(testutil.SetupTestDB(t))); err == nil {
		t.Error("Expected an error for an unknown timezone")
	}
}

func TestController_SeedsBoardData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SeedSampleBoard(t, db)
	app, err := New(context.Background(), config.Default(), WithDB(db))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctrl, err := app.Controller(context.Background(), testutil.SampleBoardID, notify.Discard{})
	if err != nil {
		t.Fatalf("Controller() failed: %v", err)
	}
	if got := len(ctrl.Items()); got != len(testutil.SampleItems()) {
		t.Errorf("Controller items = %d, want %d", got, len(testutil.SampleItems()))
	}

	if _, err := app.Controller(context.Background(), "missing", nil); err == nil {
		t.Error("Expected an error for an unknown board")
	}
}
