// Package daterange resolves item schedules out of date cells and answers
// "what is active when" queries over them.
package daterange

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/boardview/internal/cells"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// Resolver extracts a DateRange per item from a primary date column and an
// optional end column
type Resolver struct {
	primary  models.Column
	end      *models.Column
	location *time.Location
}

// NewResolver creates a resolver. end may be nil. A nil location means
// time.Local.
func NewResolver(primary models.Column, end *models.Column, loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{primary: primary, end: end, location: loc}
}

// Column returns the primary column id
func (r *Resolver) Column() types.ColumnID {
	return r.primary.ID
}

// Location returns the location dates are constructed in
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve returns the schedule of one item. Parse failures leave the bound
// nil; a lone start doubles as the end; an end before the start is clamped
// to the start.
func (r *Resolver) Resolve(item models.Item) models.DateRange {
	var start, end cells.DateResult

	raw, _ := item.Cell(r.primary.ID)
	if r.primary.Type == models.ColumnTypeTimeline {
		start, end = cells.ParseRange(raw, r.location)
	} else {
		start = cells.ParseDate(raw, r.location)
	}

	logParseFailure(item.ID, r.primary.ID, start)
	if r.end != nil {
		endRaw, _ := item.Cell(r.end.ID)
		res := cells.ParseDate(endRaw, r.location)
		logParseFailure(item.ID, r.end.ID, res)
		if res.Ok() {
			end = res
		}
	}

	rng := models.DateRange{Start: start.Ptr(), End: end.Ptr()}
	if rng.Start == nil {
		return rng
	}
	if rng.End == nil {
		s := *rng.Start
		rng.End = &s
		return rng
	}
	if rng.End.Before(*rng.Start) {
		slog.Debug("clamping end before start", "item_id", item.ID, "start", *rng.Start, "end", *rng.End)
		s := *rng.Start
		rng.End = &s
	}
	return rng
}

// Entry pairs an item with its resolved range
type Entry struct {
	Item  models.Item
	Range models.DateRange
}

// ResolveAll resolves every item in order
func (r *Resolver) ResolveAll(items []models.Item) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, Entry{Item: item, Range: r.Resolve(item)})
	}
	return entries
}

func logParseFailure(itemID types.ItemID, columnID types.ColumnID, res cells.DateResult) {
	if res.Err == nil {
		return
	}
	slog.Debug("ignoring unparseable date cell", "item_id", itemID, "column_id", columnID, "error", res.Err)
}
