package calendar

import (
	"sort"

	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// Input is the board data a projection is computed from
type Input struct {
	Items       []models.Item
	Columns     []models.Column
	DateColumns []types.ColumnID // projected side by side; empty means first date column
	EndColumn   types.ColumnID   // optional end date column shared by all date columns
}

// Projection is the bucketed calendar for the active mode
type Projection struct {
	Mode     Mode
	Interval daterange.Span
	Days     []Day
	Columns  []ColumnProjection
	Outcome  models.Outcome
}

// ColumnProjection is the bucketing of one date column
type ColumnProjection struct {
	Column  models.Column
	Buckets map[string][]models.Item // day key -> items active that day
	Agenda  []AgendaDay
	Slots   map[string][]Slot // day key -> hourly slots, only with time slots on
}

// AgendaDay is one group of the agenda list
type AgendaDay struct {
	Key   string
	Items []models.Item
}

// Slot groups the items starting within one hour of a day
type Slot struct {
	Hour  int
	Items []models.Item
}

// ItemsOn returns the items bucketed on the day with the given key
func (c ColumnProjection) ItemsOn(key string) []models.Item {
	return c.Buckets[key]
}

// DateColumnsFor picks the columns a calendar projects: the requested ones
// that exist and hold dates, else the first visible date column
func DateColumnsFor(columns []models.Column, requested []types.ColumnID) []models.Column {
	var out []models.Column
	for _, id := range requested {
		col := models.FindColumn(columns, id)
		if col != nil && col.Type.IsDate() {
			out = append(out, *col)
		}
	}
	if len(out) > 0 {
		return out
	}
	if col := models.FirstColumnOfType(columns, models.ColumnType.IsDate); col != nil {
		out = append(out, *col)
	}
	return out
}

// Project buckets the items for the active mode. A board without a usable
// date column yields OutcomeNoDateColumn and no buckets.
func (p *Projector) Project(in Input) Projection {
	proj := Projection{
		Mode:     p.mode,
		Interval: p.Interval(),
	}

	dateCols := DateColumnsFor(in.Columns, in.DateColumns)
	if len(dateCols) == 0 {
		proj.Outcome = models.OutcomeNoDateColumn
		return proj
	}

	var endCol *models.Column
	if in.EndColumn != "" {
		endCol = models.FindColumn(in.Columns, in.EndColumn)
	}

	if p.mode == ModeAgenda {
		proj.Days = p.monthDays()
	} else {
		proj.Days = p.Days()
	}

	found := false
	for _, col := range dateCols {
		resolver := daterange.NewResolver(col, endCol, p.opts.Location)
		index := daterange.NewIndex(resolver.ResolveAll(in.Items))

		cp := ColumnProjection{Column: col, Buckets: make(map[string][]models.Item)}
		for _, d := range proj.Days {
			items := index.ItemsOnDate(d.Date)
			if len(items) == 0 {
				continue
			}
			cp.Buckets[d.Key] = items
			found = true
		}

		if p.mode == ModeAgenda {
			cp.Agenda = agenda(cp.Buckets)
		}
		if p.opts.ShowTimeSlots && (p.mode == ModeDay || p.mode == ModeWeek) {
			cp.Slots = slots(index, proj.Days, col.Type)
		}
		proj.Columns = append(proj.Columns, cp)
	}

	if found {
		proj.Outcome = models.OutcomeReady
	} else {
		proj.Outcome = models.OutcomeNoItems
	}
	return proj
}

func (p *Projector) monthDays() []Day {
	first, last := monthBounds(p.current)
	var days []Day
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{Date: d, Key: daterange.DayKey(d), InFocalMonth: true})
	}
	return days
}

// agenda groups the non-empty buckets by day key in ascending key order
func agenda(buckets map[string][]models.Item) []AgendaDay {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]AgendaDay, 0, len(keys))
	for _, k := range keys {
		out = append(out, AgendaDay{Key: k, Items: buckets[k]})
	}
	return out
}

// slots places items that start on a visible day into the hour they start.
// DATE columns carry no time of day, so their items are all-day and skipped.
func slots(index *daterange.Index, days []Day, colType models.ColumnType) map[string][]Slot {
	out := make(map[string][]Slot)
	if colType == models.ColumnTypeDate {
		return out
	}

	for _, d := range days {
		byHour := make(map[int][]models.Item)
		for _, e := range index.Dated() {
			if !daterange.SameDay(*e.Range.Start, d.Date) {
				continue
			}
			h := e.Range.Start.Hour()
			byHour[h] = append(byHour[h], e.Item)
		}
		if len(byHour) == 0 {
			continue
		}
		hours := make([]int, 0, len(byHour))
		for h := range byHour {
			hours = append(hours, h)
		}
		sort.Ints(hours)
		for _, h := range hours {
			out[d.Key] = append(out[d.Key], Slot{Hour: h, Items: byHour[h]})
		}
	}
	return out
}
