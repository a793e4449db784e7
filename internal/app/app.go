package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/boardview/internal/config"
	"github.com/thenoetrevino/boardview/internal/database"
	"github.com/thenoetrevino/boardview/internal/importer"
	"github.com/thenoetrevino/boardview/internal/mutation"
	"github.com/thenoetrevino/boardview/internal/notify"
	"github.com/thenoetrevino/boardview/internal/preferences"
	"github.com/thenoetrevino/boardview/internal/services/board"
	"github.com/thenoetrevino/boardview/internal/types"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	ownsDB bool

	// Repository layer (direct database access)
	repo *database.Repository

	Config   *config.Config
	Location *time.Location
	Logger   *slog.Logger

	// Service layer
	BoardService board.Service
	Preferences  preferences.Store
	Importer     *importer.Importer
}

// New opens the configured database and wires every service
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	db, owns := ac.db, false
	if db == nil {
		var err error
		db, err = database.InitDB(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		owns = true
	}

	loc, err := cfg.Location()
	if err != nil {
		if owns {
			_ = db.Close()
		}
		return nil, err
	}

	logger := ac.logger
	if logger == nil {
		logger = slog.Default()
	}

	repo := database.NewRepository(db)
	svc := board.NewService(repo)
	prefs := preferences.NewRepositoryStore(repo)
	imp, err := importer.New(svc, prefs)
	if err != nil {
		if owns {
			_ = db.Close()
		}
		return nil, err
	}

	return &App{
		db:           db,
		ownsDB:       owns,
		repo:         repo,
		Config:       cfg,
		Location:     loc,
		Logger:       logger,
		BoardService: svc,
		Preferences:  prefs,
		Importer:     imp,
	}, nil
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Controller creates a mutation controller for one board, seeded with its
// current columns and items
func (a *App) Controller(ctx context.Context, boardID types.BoardID, notifier notify.Notifier) (*mutation.Controller, error) {
	columns, err := a.BoardService.FetchColumns(ctx, boardID)
	if err != nil {
		return nil, err
	}
	items, err := a.BoardService.FetchAllItems(ctx, boardID)
	if err != nil {
		return nil, err
	}
	ctrl := mutation.NewController(boardID, a.BoardService, notifier, mutation.Options{Location: a.Location})
	ctrl.SetData(items, columns)
	return ctrl, nil
}

// Close releases the database when the app opened it
func (a *App) Close() error {
	if !a.ownsDB {
		return nil
	}
	return a.db.Close()
}
