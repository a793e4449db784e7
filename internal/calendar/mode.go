// Package calendar buckets dated items into month, week, day and agenda
// views anchored on a current date.
package calendar

import (
	"fmt"
	"strings"
)

// Mode is the active calendar view
type Mode string

const (
	ModeMonth  Mode = "month"
	ModeWeek   Mode = "week"
	ModeDay    Mode = "day"
	ModeAgenda Mode = "agenda"
)

// Modes lists the view modes in display order
var Modes = []Mode{ModeMonth, ModeWeek, ModeDay, ModeAgenda}

// ParseMode reads a mode name (case-insensitive)
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// IsGrid reports whether the mode renders a grid of days
func (m Mode) IsGrid() bool {
	return m == ModeMonth || m == ModeWeek || m == ModeDay
}
