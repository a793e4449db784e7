package daterange

import (
	"time"

	"github.com/thenoetrevino/boardview/internal/models"
)

// Span is a closed query interval
type Span struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on a day inside the span
func (s Span) Contains(t time.Time) bool {
	return CompareDay(t, s.Start) >= 0 && CompareDay(t, s.End) <= 0
}

// Index answers date queries over resolved entries. It is a plain scan;
// boards are paged at a size where that is cheap.
type Index struct {
	entries []Entry
}

// NewIndex builds an index over resolved entries
func NewIndex(entries []Entry) *Index {
	return &Index{entries: entries}
}

// Entries returns the indexed entries in input order
func (x *Index) Entries() []Entry {
	return x.entries
}

// Dated returns the entries that have a start date
func (x *Index) Dated() []Entry {
	var out []Entry
	for _, e := range x.entries {
		if e.Range.IsDated() {
			out = append(out, e)
		}
	}
	return out
}

// ItemsOnDate returns the items active on d's calendar day: start <= d <= end
// when the item has both bounds, otherwise the start day must equal d
func (x *Index) ItemsOnDate(d time.Time) []models.Item {
	var out []models.Item
	for _, e := range x.entries {
		if ActiveOn(e.Range, d) {
			out = append(out, e.Item)
		}
	}
	return out
}

// ItemsOverlapping returns the items whose range overlaps the span in any way
func (x *Index) ItemsOverlapping(span Span) []models.Item {
	var out []models.Item
	for _, e := range x.entries {
		if Overlaps(e.Range, span) {
			out = append(out, e.Item)
		}
	}
	return out
}

// ActiveOn reports whether a range covers d's calendar day
func ActiveOn(r models.DateRange, d time.Time) bool {
	if r.Start == nil {
		return false
	}
	if r.End == nil {
		return SameDay(*r.Start, d)
	}
	return CompareDay(*r.Start, d) <= 0 && CompareDay(*r.End, d) >= 0
}

// Overlaps reports whether a range shares at least one day with the span
func Overlaps(r models.DateRange, span Span) bool {
	if r.Start == nil {
		return false
	}
	end := *r.Start
	if r.End != nil {
		end = *r.End
	}

	if CompareDay(*r.Start, span.End) <= 0 && CompareDay(end, span.Start) >= 0 {
		return true
	}
	return strictlyInside(*r.Start, span) || strictlyInside(end, span)
}

func strictlyInside(t time.Time, span Span) bool {
	return t.After(span.Start) && t.Before(span.End)
}
