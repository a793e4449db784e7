package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardview/internal/daterange"
	"github.com/thenoetrevino/boardview/internal/kanban"
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// AddBoardFlag registers --board
func AddBoardFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("board", "b", "", "Board ID (defaults to default_board from the config)")
}

// ResolveBoardID picks the board of a command: the --board flag, then the
// configured default board, then the only board when exactly one exists
func ResolveBoardID(ctx context.Context, cmd *cobra.Command, c *CLI) (types.BoardID, error) {
	if id, _ := cmd.Flags().GetString("board"); id != "" {
		return types.BoardID(id), nil
	}
	if c.App.Config != nil && c.App.Config.DefaultBoard != "" {
		return types.BoardID(c.App.Config.DefaultBoard), nil
	}

	boards, err := c.App.BoardService.ListBoards(ctx)
	if err != nil {
		return "", err
	}
	if len(boards) == 1 {
		return boards[0].ID, nil
	}
	return "", fmt.Errorf("%w: pass --board or set default_board (%d boards exist)", ErrNoBoard, len(boards))
}

// FindItem resolves an item by id, then by name (case and spacing insensitive)
func FindItem(items []models.Item, ref string) (models.Item, error) {
	if idx := models.FindItem(items, types.ItemID(ref)); idx >= 0 {
		return items[idx], nil
	}
	for _, item := range items {
		if kanban.LooselyEqual(item.Name, ref) {
			return item, nil
		}
	}
	return models.Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, ref)
}

// FindBucket resolves a bucket by id or name, falling back to the best fuzzy
// match so "prog" finds "In Progress"
func FindBucket(buckets []models.KanbanColumn, name string) (models.KanbanColumn, error) {
	for _, b := range buckets {
		if string(b.ID) == name || kanban.LooselyEqual(b.Name, name) {
			return b, nil
		}
	}

	names := make([]string, len(buckets))
	for i, b := range buckets {
		names[i] = b.Name
	}
	if matches := fuzzy.Find(name, names); len(matches) > 0 {
		return buckets[matches[0].Index], nil
	}
	return models.KanbanColumn{}, fmt.Errorf("%w: %s", ErrBucketNotFound, name)
}

// FormatAvailableBuckets lists bucket names for error suggestions
func FormatAvailableBuckets(buckets []models.KanbanColumn) string {
	names := make([]string, len(buckets))
	for i, b := range buckets {
		names[i] = b.Name
	}
	return strings.Join(names, ", ")
}

// ParseDay reads YYYY-MM-DD, "today", "tomorrow", "yesterday" or a day
// offset such as "+3" or "-2d", in loc
func ParseDay(s string, now time.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	today := daterange.StartOfDay(now.In(loc))

	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if v[0] == '+' || v[0] == '-' {
		n, err := strconv.Atoi(strings.TrimSuffix(v, "d"))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return today.AddDate(0, 0, n), nil
	}

	t, err := time.ParseInLocation(daterange.DayKeyLayout, v, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return t, nil
}

// SplitColumns parses a comma separated column id list
func SplitColumns(s string) []types.ColumnID {
	var out []types.ColumnID
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, types.ColumnID(part))
		}
	}
	return out
}
