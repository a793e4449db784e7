package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/timeline"
	"github.com/thenoetrevino/boardview/internal/types"
)

const (
	defaultLabelWidth = 20
	defaultTrackWidth = 60
)

// TimelineOptions configures Timeline
type TimelineOptions struct {
	LabelWidth int
	TrackWidth int
	Ticks      []time.Time
	TickLayout string // defaults to "Jan 2"
}

// Timeline renders one row per dated item with its bar placed on the axis.
// Critical path bars use the critical style and conflicting dependents are
// flagged with "!".
func Timeline(l *timeline.Layout, axis timeline.Axis, st Styles, opts TimelineOptions) string {
	if opts.LabelWidth <= 0 {
		opts.LabelWidth = defaultLabelWidth
	}
	if opts.TrackWidth <= 0 {
		opts.TrackWidth = defaultTrackWidth
	}
	if opts.TickLayout == "" {
		opts.TickLayout = "Jan 2"
	}

	if l.Outcome != models.OutcomeReady {
		return st.Subtle.Render(l.Outcome.Guidance())
	}

	conflicted := make(map[types.ItemID]bool, len(l.Conflicts))
	for _, c := range l.Conflicts {
		conflicted[c.Edge.Target] = true
	}

	lines := []string{strings.Repeat(" ", opts.LabelWidth+2) + st.Subtle.Render(Ruler(axis, opts.Ticks, opts.TrackWidth, opts.TickLayout))}
	for _, ti := range l.Items {
		marker := " "
		if conflicted[ti.Item.ID] {
			marker = st.Conflict.Render("!")
		}
		label := pad(truncate(ti.Item.Name, opts.LabelWidth), opts.LabelWidth)

		barStyle := st.Bar
		if l.CriticalPath.Contains(ti.Item.ID) {
			barStyle = st.CriticalBar
		}
		lines = append(lines, label+marker+" "+track(ti, axis, opts.TrackWidth, barStyle, st))
	}

	if summary := Summary(l); summary != "" {
		lines = append(lines, "", summary)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func track(ti models.TimelineItem, axis timeline.Axis, width int, barStyle lipgloss.Style, st Styles) string {
	bar := axis.Position(ti)
	if bar == nil {
		// off-window items point toward their side of the axis
		if ti.End.Before(axis.Range.Start) {
			return st.Subtle.Render("‹" + strings.Repeat(" ", width-1))
		}
		return st.Subtle.Render(strings.Repeat(" ", width-1) + "›")
	}
	start, n := BarCells(bar, width)
	return strings.Repeat(" ", start) +
		barStyle.Render(strings.Repeat("█", n)) +
		strings.Repeat(" ", width-start-n)
}

// BarCells converts a bar to a start column and a cell count on a track of
// width cells. Every visible bar occupies at least one cell.
func BarCells(bar *timeline.Bar, width int) (start, n int) {
	if bar == nil || width <= 0 {
		return 0, 0
	}
	start = int(math.Floor(bar.Left * float64(width)))
	end := int(math.Ceil((bar.Left + bar.Width) * float64(width)))
	start = min(max(start, 0), width-1)
	end = min(end, width)
	return start, max(end-start, 1)
}

// Ruler places tick labels along a track of width cells. Labels that would
// overlap the previous one are skipped.
func Ruler(axis timeline.Axis, ticks []time.Time, width int, layout string) string {
	out := []rune(strings.Repeat(" ", width))
	next := 0
	for _, t := range ticks {
		col := int(math.Floor(axis.Offset(t) * float64(width)))
		label := []rune(t.Format(layout))
		if col < next || col+len(label) > width {
			continue
		}
		copy(out[col:], label)
		next = col + len(label) + 1
	}
	return strings.TrimRight(string(out), " ")
}

// Summary describes the critical path, skipped cycle members and conflicts
func Summary(l *timeline.Layout) string {
	names := make(map[types.ItemID]string, len(l.Items))
	for _, ti := range l.Items {
		names[ti.Item.ID] = ti.Item.Name
	}
	name := func(id types.ItemID) string {
		if n, ok := names[id]; ok && n != "" {
			return n
		}
		return string(id)
	}

	var lines []string
	if cp := l.CriticalPath; len(cp.Items) > 0 {
		chain := make([]string, len(cp.Items))
		for i, id := range cp.Items {
			chain[i] = name(id)
		}
		lines = append(lines, fmt.Sprintf("Critical path: %s (%d days)", strings.Join(chain, " → "), cp.TotalDays))
	}
	if ex := l.CriticalPath.Excluded; len(ex) > 0 {
		skipped := make([]string, len(ex))
		for i, id := range ex {
			skipped[i] = name(id)
		}
		lines = append(lines, "Dependency cycle, not scheduled: "+strings.Join(skipped, ", "))
	}
	for _, c := range l.Conflicts {
		lines = append(lines, fmt.Sprintf("Conflict: %s starts before %s ends (%d day overlap)",
			name(c.Edge.Target), name(c.Edge.Source), c.OverlapDays))
	}
	return strings.Join(lines, "\n")
}
