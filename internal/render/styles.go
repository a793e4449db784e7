// Package render draws board projections for the terminal with lipgloss.
// Renderers are pure: they take a projection and styles and return a string.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/boardview/internal/config/colors"
	"github.com/thenoetrevino/boardview/internal/notify"
)

// Styles holds every lipgloss style the renderers use
type Styles struct {
	Title  lipgloss.Style
	Subtle lipgloss.Style
	Normal lipgloss.Style
	Accent lipgloss.Style

	Bucket         lipgloss.Style
	BucketSelected lipgloss.Style
	DropTarget     lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	CardGrabbed    lipgloss.Style
	OverLimit      lipgloss.Style

	Bar         lipgloss.Style
	CriticalBar lipgloss.Style
	Conflict    lipgloss.Style

	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds the styles of a color scheme
func NewStyles(c colors.ColorScheme) Styles {
	c.ApplyDefaults()
	color := func(s string) lipgloss.Color { return lipgloss.Color(s) }

	bucket := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color(c.BucketBorder)).
		Padding(0, 1)

	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(color(c.Title)),
		Subtle: lipgloss.NewStyle().Foreground(color(c.Subtle)),
		Normal: lipgloss.NewStyle().Foreground(color(c.Normal)),
		Accent: lipgloss.NewStyle().Bold(true).Foreground(color(c.Accent)),

		Bucket:         bucket,
		BucketSelected: bucket.BorderForeground(color(c.SelectedBorder)),
		DropTarget:     bucket.BorderForeground(color(c.GrabbedBorder)).BorderStyle(lipgloss.DoubleBorder()),
		Card:           lipgloss.NewStyle().Foreground(color(c.Normal)),
		CardSelected:   lipgloss.NewStyle().Bold(true).Foreground(color(c.SelectedBorder)),
		CardGrabbed:    lipgloss.NewStyle().Bold(true).Foreground(color(c.GrabbedBorder)),
		OverLimit:      lipgloss.NewStyle().Bold(true).Foreground(color(c.OverLimit)),

		Bar:         lipgloss.NewStyle().Foreground(color(c.Bar)),
		CriticalBar: lipgloss.NewStyle().Foreground(color(c.CriticalBar)),
		Conflict:    lipgloss.NewStyle().Bold(true).Foreground(color(c.ConflictMark)),

		Info:    lipgloss.NewStyle().Foreground(color(c.InfoFg)).Background(color(c.InfoBg)).Padding(0, 1),
		Warning: lipgloss.NewStyle().Foreground(color(c.WarningFg)).Background(color(c.WarningBg)).Padding(0, 1),
		Error:   lipgloss.NewStyle().Foreground(color(c.ErrorFg)).Background(color(c.ErrorBg)).Padding(0, 1),
	}
}

// Notification renders one notification inline
func Notification(n notify.Notification, st Styles) string {
	switch n.Level {
	case notify.LevelError:
		return st.Error.Render("✗ " + n.Message)
	case notify.LevelWarning:
		return st.Warning.Render("! " + n.Message)
	default:
		return st.Info.Render("i " + n.Message)
	}
}

// truncate shortens s to at most n runes, ending in an ellipsis when cut
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// pad right-pads s with spaces to n runes
func pad(s string, n int) string {
	r := []rune(s)
	if len(r) >= n {
		return s
	}
	out := make([]rune, n)
	copy(out, r)
	for i := len(r); i < n; i++ {
		out[i] = ' '
	}
	return string(out)
}
