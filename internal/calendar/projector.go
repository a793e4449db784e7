package calendar

import (
	"time"

	"github.com/thenoetrevino/boardview/internal/daterange"
)

// Options configures a Projector
type Options struct {
	WeekStart       time.Weekday
	WorkingDaysOnly bool
	ShowTimeSlots   bool
	Location        *time.Location
	Now             func() time.Time
}

// Projector holds the calendar state: the active mode and the anchor date
type Projector struct {
	mode    Mode
	current time.Time
	opts    Options
}

// Day is one cell of a calendar grid
type Day struct {
	Date         time.Time
	Key          string
	InFocalMonth bool
	IsToday      bool
	Disabled     bool // weekend kept in the grid while working days only is on
}

// NewProjector creates a projector in month mode anchored on today
func NewProjector(opts Options) *Projector {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	p := &Projector{mode: ModeMonth, opts: opts}
	p.Today()
	return p
}

// Mode returns the active mode
func (p *Projector) Mode() Mode {
	return p.mode
}

// SetMode switches the view mode. The anchor date is kept.
func (p *Projector) SetMode(m Mode) {
	p.mode = m
}

// CurrentDate returns the anchor date
func (p *Projector) CurrentDate() time.Time {
	return p.current
}

// SetCurrentDate moves the anchor to t's day
func (p *Projector) SetCurrentDate(t time.Time) {
	p.current = daterange.StartOfDay(t.In(p.opts.Location))
}

// SetWorkingDaysOnly toggles the weekend filter
func (p *Projector) SetWorkingDaysOnly(on bool) {
	p.opts.WorkingDaysOnly = on
}

// WorkingDaysOnly reports whether the weekend filter is on
func (p *Projector) WorkingDaysOnly() bool {
	return p.opts.WorkingDaysOnly
}

// SetShowTimeSlots toggles hourly slots for day and week views
func (p *Projector) SetShowTimeSlots(on bool) {
	p.opts.ShowTimeSlots = on
}

// Location returns the location the calendar works in
func (p *Projector) Location() *time.Location {
	return p.opts.Location
}

// Today resets the anchor to the current day whatever the mode
func (p *Projector) Today() {
	p.SetCurrentDate(p.opts.Now())
}

// Next advances the anchor by one unit of the active mode
func (p *Projector) Next() {
	p.shift(1)
}

// Prev moves the anchor back by one unit of the active mode
func (p *Projector) Prev() {
	p.shift(-1)
}

func (p *Projector) shift(n int) {
	switch p.mode {
	case ModeWeek:
		p.current = p.current.AddDate(0, 0, 7*n)
	case ModeDay:
		p.current = p.current.AddDate(0, 0, n)
	default:
		p.current = addMonthsClamped(p.current, n)
	}
}

// addMonthsClamped moves t by n months keeping the day of month where the
// target month has it, and the last day otherwise (Jan 31 + 1 = Feb 29)
func addMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	d := min(t.Day(), last)
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

// Interval returns the visible date interval of the active mode
func (p *Projector) Interval() daterange.Span {
	cur := p.current
	switch p.mode {
	case ModeWeek:
		start := p.startOfWeek(cur)
		return daterange.Span{Start: start, End: daterange.EndOfDay(start.AddDate(0, 0, 6))}
	case ModeDay:
		return daterange.Span{Start: cur, End: daterange.EndOfDay(cur)}
	case ModeAgenda:
		first, last := monthBounds(cur)
		return daterange.Span{Start: first, End: daterange.EndOfDay(last)}
	default:
		first, last := monthBounds(cur)
		start := p.startOfWeek(first)
		end := p.startOfWeek(last).AddDate(0, 0, 6)
		return daterange.Span{Start: start, End: daterange.EndOfDay(end)}
	}
}

// Days returns the grid cells of the visible interval. With working days
// only, weekend days outside the focal month are dropped and weekend days
// inside it are kept but disabled so the grid keeps its shape.
func (p *Projector) Days() []Day {
	span := p.Interval()
	today := daterange.StartOfDay(p.opts.Now().In(p.opts.Location))
	filter := p.opts.WorkingDaysOnly && (p.mode == ModeMonth || p.mode == ModeWeek)

	var days []Day
	for d := daterange.StartOfDay(span.Start); !d.After(span.End); d = d.AddDate(0, 0, 1) {
		inMonth := d.Month() == p.current.Month() && d.Year() == p.current.Year()
		day := Day{
			Date:         d,
			Key:          daterange.DayKey(d),
			InFocalMonth: inMonth,
			IsToday:      daterange.SameDay(d, today),
		}
		if filter && daterange.IsWeekend(d) {
			if !inMonth {
				continue
			}
			day.Disabled = true
		}
		days = append(days, day)
	}
	return days
}

func (p *Projector) startOfWeek(t time.Time) time.Time {
	t = daterange.StartOfDay(t)
	offset := (int(t.Weekday()) - int(p.opts.WeekStart) + 7) % 7
	return t.AddDate(0, 0, -offset)
}

func monthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first, first.AddDate(0, 1, -1)
}
