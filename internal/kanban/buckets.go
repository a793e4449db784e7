package kanban

import (
	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// Bucket ids used by both classification strategies
const (
	NoStatusBucketID   types.BucketID = "no-status"
	PendingBucketID    types.BucketID = "pending"
	InProgressBucketID types.BucketID = "in-progress"
	DoneBucketID       types.BucketID = "done"
)

// DefaultBuckets returns the fixed buckets used when a board has no status
// column. Items without a recognizable status go to the first one.
func DefaultBuckets() []models.KanbanColumn {
	return []models.KanbanColumn{
		{ID: PendingBucketID, Name: "Pending", StatusKey: string(PendingBucketID)},
		{ID: InProgressBucketID, Name: "In Progress", StatusKey: string(InProgressBucketID)},
		{ID: DoneBucketID, Name: "Done", StatusKey: string(DoneBucketID)},
	}
}

// StatusBuckets returns a leading no-status bucket followed by one bucket per
// configured option. Options that normalize to an existing key are skipped;
// an option whose key collides with a reserved bucket id gets a suffixed id.
func StatusBuckets(col models.Column) []models.KanbanColumn {
	buckets := []models.KanbanColumn{
		{ID: NoStatusBucketID, Name: "No Status", StatusKey: ""},
	}

	seen := map[string]bool{"": true}
	for _, opt := range col.Settings.Options {
		key := NormalizeKey(opt.Label)
		if seen[key] {
			continue
		}
		seen[key] = true

		color := opt.Color
		if color == "" {
			color = lookupColor(col.Settings.Colors, opt.Label)
		}
		id := types.BucketID(key)
		if id == NoStatusBucketID {
			id += "-option"
		}
		buckets = append(buckets, models.KanbanColumn{
			ID:        id,
			Name:      opt.Label,
			StatusKey: key,
			Color:     color,
		})
	}
	return buckets
}

func lookupColor(colors map[string]string, label string) string {
	if c, ok := colors[label]; ok {
		return c
	}
	for k, c := range colors {
		if LooselyEqual(k, label) {
			return c
		}
	}
	return ""
}

// emptyCopy returns the buckets without their items
func emptyCopy(buckets []models.KanbanColumn) []models.KanbanColumn {
	out := make([]models.KanbanColumn, len(buckets))
	for i, b := range buckets {
		b.Items = nil
		out[i] = b
	}
	return out
}
