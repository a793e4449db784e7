package tui

import "github.com/thenoetrevino/boardview/internal/models"

// boardLoadedMsg carries a fresh copy of the board
type boardLoadedMsg struct {
	columns []models.Column
	items   []models.Item
	prefs   models.ViewPreferences
	err     error
}

// mutationDoneMsg reports that a dropped card was written (or rolled back)
type mutationDoneMsg struct {
	gestureID string
	err       error
}
