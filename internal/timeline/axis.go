package timeline

import (
	"time"

	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/models"
)

// DefaultMinWidth keeps zero-length bars visible
const DefaultMinWidth = 0.005

// Axis maps times onto the visible range
type Axis struct {
	Range    daterange.Span
	MinWidth float64
	// WholeDays stretches bars to cover the full first and last day, so a
	// single-day item spans one day instead of a point
	WholeDays bool
}

// Position places an item on the axis. Items entirely outside the range
// return nil rather than a zero-width bar.
func (a Axis) Position(ti models.TimelineItem) *Bar {
	r0, r1 := a.Range.Start, a.Range.End
	total := r1.Sub(r0)
	if total <= 0 {
		return nil
	}

	start, end := ti.Start, ti.End
	if a.WholeDays {
		start = daterange.StartOfDay(start)
		end = daterange.EndOfDay(end)
	}
	if end.Before(r0) || start.After(r1) {
		return nil
	}

	s := clamp(start, r0, r1)
	e := clamp(end, r0, r1)

	left := float64(s.Sub(r0)) / float64(total)
	width := float64(e.Sub(s)) / float64(total)
	if width < a.MinWidth {
		width = a.MinWidth
	}
	// bars widened to MinWidth at the right edge shift left to stay on the axis
	if left+width > 1 {
		left = max(0, 1-width)
	}
	return &Bar{Left: left, Width: width}
}

// Offset returns the fraction of the axis at which t falls, clamped to [0,1]
func (a Axis) Offset(t time.Time) float64 {
	total := a.Range.End.Sub(a.Range.Start)
	if total <= 0 {
		return 0
	}
	return float64(clamp(t, a.Range.Start, a.Range.End).Sub(a.Range.Start)) / float64(total)
}

func clamp(t, lo, hi time.Time) time.Time {
	if t.Before(lo) {
		return lo
	}
	if t.After(hi) {
		return hi
	}
	return t
}
