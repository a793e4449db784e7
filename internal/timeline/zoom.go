package timeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/boardview/internal/daterange"
)

// Zoom is the unit of the timeline axis
type Zoom string

const (
	ZoomDay   Zoom = "day"
	ZoomWeek  Zoom = "week"
	ZoomMonth Zoom = "month"
)

// ParseZoom reads a zoom level name (case-insensitive)
func ParseZoom(s string) (Zoom, error) {
	switch z := Zoom(strings.ToLower(strings.TrimSpace(s))); z {
	case ZoomDay, ZoomWeek, ZoomMonth:
		return z, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownZoom, s)
	}
}

// Spans is how many units of each zoom level the window shows
type Spans struct {
	Days   int
	Weeks  int
	Months int
}

// DefaultSpans returns the window sizes used when none are configured
func DefaultSpans() Spans {
	return Spans{Days: 14, Weeks: 8, Months: 6}
}

// ViewportOptions configures a Viewport
type ViewportOptions struct {
	Zoom      Zoom
	Spans     Spans
	WeekStart time.Weekday
	Location  *time.Location
	Now       func() time.Time
}

// Viewport is the zoom state machine of the timeline: a zoom level and an
// anchor at the start of a unit, or a user-chosen custom range
type Viewport struct {
	zoom   Zoom
	anchor time.Time
	custom *daterange.Span
	opts   ViewportOptions
}

// NewViewport creates a viewport anchored on the unit containing today
func NewViewport(opts ViewportOptions) *Viewport {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	def := DefaultSpans()
	if opts.Spans.Days <= 0 {
		opts.Spans.Days = def.Days
	}
	if opts.Spans.Weeks <= 0 {
		opts.Spans.Weeks = def.Weeks
	}
	if opts.Spans.Months <= 0 {
		opts.Spans.Months = def.Months
	}
	if opts.Zoom == "" {
		opts.Zoom = ZoomWeek
	}

	v := &Viewport{zoom: opts.Zoom, opts: opts}
	v.Today()
	return v
}

// Zoom returns the active zoom level
func (v *Viewport) Zoom() Zoom {
	return v.zoom
}

// IsCustom reports whether a custom range is active
func (v *Viewport) IsCustom() bool {
	return v.custom != nil
}

// SetZoom changes the zoom level, re-anchoring on the start of the new unit
// that contains the start of the current range, and clears any custom range
func (v *Viewport) SetZoom(z Zoom) {
	start := v.Range().Start
	v.zoom = z
	v.custom = nil
	v.anchor = v.unitStart(start)
}

// SetCustomRange shows an explicit range instead of the zoom window
func (v *Viewport) SetCustomRange(start, end time.Time) error {
	if end.Before(start) {
		return ErrInvalidRange
	}
	v.custom = &daterange.Span{
		Start: daterange.StartOfDay(start.In(v.opts.Location)),
		End:   daterange.EndOfDay(end.In(v.opts.Location)),
	}
	return nil
}

// ClearCustomRange returns to the zoom window
func (v *Viewport) ClearCustomRange() {
	v.custom = nil
}

// Today anchors on the unit containing now and clears any custom range
func (v *Viewport) Today() {
	v.custom = nil
	v.anchor = v.unitStart(v.opts.Now().In(v.opts.Location))
}

// Next shifts the window forward by one unit, or a custom range by its own
// length
func (v *Viewport) Next() {
	v.shift(1)
}

// Prev shifts the window back
func (v *Viewport) Prev() {
	v.shift(-1)
}

func (v *Viewport) shift(n int) {
	if v.custom != nil {
		days := daterange.DaysInclusive(v.custom.Start, v.custom.End) * n
		v.custom = &daterange.Span{
			Start: v.custom.Start.AddDate(0, 0, days),
			End:   v.custom.End.AddDate(0, 0, days),
		}
		return
	}
	switch v.zoom {
	case ZoomDay:
		v.anchor = v.anchor.AddDate(0, 0, n)
	case ZoomMonth:
		v.anchor = v.anchor.AddDate(0, n, 0)
	default:
		v.anchor = v.anchor.AddDate(0, 0, 7*n)
	}
}

// Range returns the visible range
func (v *Viewport) Range() daterange.Span {
	if v.custom != nil {
		return *v.custom
	}
	var end time.Time
	switch v.zoom {
	case ZoomDay:
		end = v.anchor.AddDate(0, 0, v.opts.Spans.Days)
	case ZoomMonth:
		end = v.anchor.AddDate(0, v.opts.Spans.Months, 0)
	default:
		end = v.anchor.AddDate(0, 0, 7*v.opts.Spans.Weeks)
	}
	return daterange.Span{Start: v.anchor, End: end.Add(-time.Nanosecond)}
}

// Axis returns an axis over the visible range
func (v *Viewport) Axis(minWidth float64) Axis {
	if minWidth <= 0 {
		minWidth = DefaultMinWidth
	}
	return Axis{Range: v.Range(), MinWidth: minWidth, WholeDays: true}
}

// Ticks returns the unit boundaries inside the visible range, for headers
func (v *Viewport) Ticks() []time.Time {
	r := v.Range()
	var ticks []time.Time
	for t := v.unitStart(r.Start); !t.After(r.End); t = v.nextUnit(t) {
		if !t.Before(r.Start) {
			ticks = append(ticks, t)
		}
	}
	return ticks
}

func (v *Viewport) nextUnit(t time.Time) time.Time {
	switch v.zoom {
	case ZoomDay:
		return t.AddDate(0, 0, 1)
	case ZoomMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 7)
	}
}

func (v *Viewport) unitStart(t time.Time) time.Time {
	t = daterange.StartOfDay(t)
	switch v.zoom {
	case ZoomDay:
		return t
	case ZoomMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		offset := (int(t.Weekday()) - int(v.opts.WeekStart) + 7) % 7
		return t.AddDate(0, 0, -offset)
	}
}
