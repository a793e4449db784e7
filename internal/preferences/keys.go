package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/boardview/internal/calendar"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/timeline"
	"github.com/thenoetrevino/boardview/internal/types"
)

// wipPrefix addresses one bucket's WIP limit, e.g. "wip_limit.in-progress"
const wipPrefix = "wip_limit."

// Keys lists the settable preference names
func Keys() []string {
	return []string{
		"date_columns",
		"working_days_only",
		"show_time_slots",
		"group_by",
		"swimlane_by",
		wipPrefix + "<bucket>",
		"card_order",
		"card_order_direction",
		"calendar_mode",
		"timeline_zoom",
		"dependency_column",
		"end_date_column",
	}
}

// Get renders one preference as a string
func Get(p models.ViewPreferences, key string) (string, error) {
	if bucket, ok := strings.CutPrefix(key, wipPrefix); ok {
		return strconv.Itoa(p.WIPLimits[types.BucketID(bucket)]), nil
	}

	switch key {
	case "date_columns":
		ids := make([]string, 0, len(p.DateColumns))
		for _, id := range p.DateColumns {
			ids = append(ids, string(id))
		}
		return strings.Join(ids, ","), nil
	case "working_days_only":
		return strconv.FormatBool(p.WorkingDaysOnly), nil
	case "show_time_slots":
		return strconv.FormatBool(p.ShowTimeSlots), nil
	case "group_by":
		return string(p.GroupBy), nil
	case "swimlane_by":
		return string(p.SwimlaneBy), nil
	case "card_order":
		return string(p.CardOrder), nil
	case "card_order_direction":
		return string(p.CardOrderDirection), nil
	case "calendar_mode":
		return p.CalendarMode, nil
	case "timeline_zoom":
		return p.TimelineZoom, nil
	case "dependency_column":
		return string(p.DependencyColumn), nil
	case "end_date_column":
		return string(p.EndDateColumn), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set parses value into the named preference. An empty value resets string
// preferences; a WIP limit of 0 removes the limit.
func Set(p *models.ViewPreferences, key, value string) error {
	value = strings.TrimSpace(value)

	if bucket, ok := strings.CutPrefix(key, wipPrefix); ok {
		return setWIPLimit(p, types.BucketID(bucket), value)
	}

	switch key {
	case "date_columns":
		p.DateColumns = []types.ColumnID{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				p.DateColumns = append(p.DateColumns, types.ColumnID(part))
			}
		}
	case "working_days_only":
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		p.WorkingDaysOnly = b
	case "show_time_slots":
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		p.ShowTimeSlots = b
	case "group_by":
		p.GroupBy = types.ColumnID(value)
	case "swimlane_by":
		p.SwimlaneBy = types.ColumnID(value)
	case "card_order":
		p.CardOrder = types.ColumnID(value)
	case "card_order_direction":
		switch dir := models.SortDirection(strings.ToLower(value)); dir {
		case models.SortAscending, models.SortDescending:
			p.CardOrderDirection = dir
		default:
			return fmt.Errorf("%w: direction must be asc or desc, got %q", ErrInvalidValue, value)
		}
	case "calendar_mode":
		mode, err := calendar.ParseMode(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		p.CalendarMode = string(mode)
	case "timeline_zoom":
		zoom, err := timeline.ParseZoom(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		p.TimelineZoom = string(zoom)
	case "dependency_column":
		p.DependencyColumn = types.ColumnID(value)
	case "end_date_column":
		p.EndDateColumn = types.ColumnID(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

func setWIPLimit(p *models.ViewPreferences, bucket types.BucketID, value string) error {
	if bucket == "" {
		return fmt.Errorf("%w: missing bucket in %s<bucket>", ErrUnknownKey, wipPrefix)
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fmt.Errorf("%w: WIP limit must be a non-negative integer, got %q", ErrInvalidValue, value)
	}
	if n == 0 {
		delete(p.WIPLimits, bucket)
		return nil
	}
	if p.WIPLimits == nil {
		p.WIPLimits = make(map[types.BucketID]int)
	}
	p.WIPLimits[bucket] = n
	return nil
}

func parseBool(value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: expected true or false, got %q", ErrInvalidValue, value)
	}
	return b, nil
}
