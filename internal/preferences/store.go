// Package preferences loads and saves per-board view preferences
package preferences

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/thenoetrevino/boardview/internal/database"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// Store reads the view preferences of a board at mount and writes them on
// every change. The last writer wins.
type Store interface {
	Load(ctx context.Context, boardID types.BoardID) (models.ViewPreferences, error)
	Save(ctx context.Context, boardID types.BoardID, prefs models.ViewPreferences) error
}

// repositoryStore keeps preferences in the board database
type repositoryStore struct {
	repo database.PreferenceRepository
}

// NewRepositoryStore returns a Store backed by the preferences table
func NewRepositoryStore(repo database.PreferenceRepository) Store {
	return &repositoryStore{repo: repo}
}

// Load returns the stored preferences, or the defaults when none were saved
func (s *repositoryStore) Load(ctx context.Context, boardID types.BoardID) (models.ViewPreferences, error) {
	prefs, err := s.repo.GetPreferences(ctx, boardID)
	if errors.Is(err, database.ErrNotFound) {
		return models.DefaultViewPreferences(), nil
	}
	if err != nil {
		return models.ViewPreferences{}, fmt.Errorf("loading preferences: %w", err)
	}
	return *prefs, nil
}

func (s *repositoryStore) Save(ctx context.Context, boardID types.BoardID, prefs models.ViewPreferences) error {
	if boardID == "" {
		return ErrInvalidBoardID
	}
	if err := s.repo.SavePreferences(ctx, boardID, prefs); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

// MemoryStore keeps preferences in process memory
type MemoryStore struct {
	mu    sync.Mutex
	prefs map[types.BoardID]models.ViewPreferences
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[types.BoardID]models.ViewPreferences)}
}

func (s *MemoryStore) Load(_ context.Context, boardID types.BoardID) (models.ViewPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prefs[boardID]
	if !ok {
		return models.DefaultViewPreferences(), nil
	}
	return clone(p), nil
}

func (s *MemoryStore) Save(_ context.Context, boardID types.BoardID, prefs models.ViewPreferences) error {
	if boardID == "" {
		return ErrInvalidBoardID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[boardID] = clone(prefs)
	return nil
}

func clone(p models.ViewPreferences) models.ViewPreferences {
	p.DateColumns = slices.Clone(p.DateColumns)
	p.WIPLimits = maps.Clone(p.WIPLimits)
	return p
}
