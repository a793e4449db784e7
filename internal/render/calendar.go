package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/boardview/internal/calendar"
	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/models"
)

const (
	defaultCellWidth  = 16
	defaultMaxPerCell = 3
)

// CalendarOptions configures Calendar
type CalendarOptions struct {
	CellWidth  int
	MaxPerCell int // items listed per grid cell before "+N more"
	WeekStart  time.Weekday
}

// Calendar renders a projection: a grid for month, week and day modes and
// a grouped list for agenda mode. Each projected date column gets its own
// section.
func Calendar(p calendar.Projection, st Styles, opts CalendarOptions) string {
	if opts.CellWidth <= 0 {
		opts.CellWidth = defaultCellWidth
	}
	if opts.MaxPerCell <= 0 {
		opts.MaxPerCell = defaultMaxPerCell
	}

	sections := []string{st.Title.Render(CalendarTitle(p))}
	if p.Outcome == models.OutcomeNoDateColumn {
		return lipgloss.JoinVertical(lipgloss.Left, append(sections, st.Subtle.Render(p.Outcome.Guidance()))...)
	}

	for _, cp := range p.Columns {
		if len(p.Columns) > 1 {
			sections = append(sections, st.Accent.Render(cp.Column.Name))
		}
		if p.Mode == calendar.ModeAgenda {
			sections = append(sections, agendaList(cp, st))
			continue
		}
		sections = append(sections, grid(p.Days, cp, st, opts))
		if len(cp.Slots) > 0 {
			sections = append(sections, slotList(p.Days, cp, st))
		}
	}
	if p.Outcome == models.OutcomeNoItems {
		sections = append(sections, st.Subtle.Render(p.Outcome.Guidance()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// CalendarTitle names the visible interval
func CalendarTitle(p calendar.Projection) string {
	start, end := p.Interval.Start, p.Interval.End
	switch p.Mode {
	case calendar.ModeDay:
		return start.Format("Monday, January 2 2006")
	case calendar.ModeWeek:
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2 2006"))
	default:
		// month grids start before the focal month; the middle day is inside it
		mid := start.Add(end.Sub(start) / 2)
		return mid.Format("January 2006")
	}
}

func grid(days []calendar.Day, cp calendar.ColumnProjection, st Styles, opts CalendarOptions) string {
	if len(days) == 0 {
		return ""
	}
	weekStart := opts.WeekStart
	perRow := 7
	if len(days) == 1 {
		perRow = 1
		weekStart = days[0].Date.Weekday()
	}

	cellStyle := lipgloss.NewStyle().Width(opts.CellWidth).Height(opts.MaxPerCell + 2).PaddingRight(1)

	header := make([]string, perRow)
	for i := range header {
		name := (weekStart + time.Weekday(i)) % 7
		header[i] = cellStyle.Height(1).Render(st.Subtle.Render(name.String()[:3]))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	var row []string
	prev := -1
	flush := func() {
		for len(row) < perRow {
			row = append(row, cellStyle.Render(""))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		row = nil
	}
	for _, d := range days {
		col := (int(d.Date.Weekday()) - int(weekStart) + 7) % 7
		if perRow == 1 {
			col = 0
		}
		if col <= prev && len(row) > 0 {
			flush()
		}
		for len(row) < col {
			row = append(row, cellStyle.Render(""))
		}
		row = append(row, cellStyle.Render(dayCell(d, cp.ItemsOn(d.Key), st, opts)))
		prev = col
	}
	if len(row) > 0 {
		flush()
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func dayCell(d calendar.Day, items []models.Item, st Styles, opts CalendarOptions) string {
	num := fmt.Sprintf("%2d", d.Date.Day())
	switch {
	case d.IsToday:
		num = st.Accent.Render(num)
	case d.Disabled || !d.InFocalMonth:
		num = st.Subtle.Render(num)
	default:
		num = st.Normal.Render(num)
	}

	lines := []string{num}
	if d.Disabled {
		return lines[0]
	}
	for i, item := range items {
		if i == opts.MaxPerCell {
			lines = append(lines, st.Subtle.Render(fmt.Sprintf("+%d more", len(items)-i)))
			break
		}
		lines = append(lines, truncate(item.Name, opts.CellWidth-1))
	}
	return strings.Join(lines, "\n")
}

func agendaList(cp calendar.ColumnProjection, st Styles) string {
	if len(cp.Agenda) == 0 {
		return st.Subtle.Render("Nothing scheduled.")
	}
	var b strings.Builder
	for i, day := range cp.Agenda {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(st.Accent.Render(agendaHeading(day.Key)))
		for _, item := range day.Items {
			b.WriteString("\n  • " + item.Name)
		}
	}
	return b.String()
}

func agendaHeading(key string) string {
	t, err := time.Parse(daterange.DayKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format("Mon Jan 2")
}

func slotList(days []calendar.Day, cp calendar.ColumnProjection, st Styles) string {
	var lines []string
	for _, d := range days {
		slots := cp.Slots[d.Key]
		if len(slots) == 0 {
			continue
		}
		lines = append(lines, st.Accent.Render(d.Date.Format("Mon Jan 2")))
		for _, slot := range slots {
			for _, item := range slot.Items {
				lines = append(lines, fmt.Sprintf("  %02d:00  %s", slot.Hour, item.Name))
			}
		}
	}
	return strings.Join(lines, "\n")
}
