package kanban

import (
	"github.com/thenoetrevino/boardview/internal/models"
)

// ResolveStatusValue returns the value written back when an item is moved
// into bucket. The bucket name or key is matched against the configured
// options ignoring case and spacing; without a match the bucket's display
// name is written. The no-status bucket clears the value.
func ResolveStatusValue(bucket models.KanbanColumn, options []string) string {
	if bucket.StatusKey == "" {
		return ""
	}
	for _, opt := range options {
		if LooselyEqual(opt, bucket.Name) || LooselyEqual(opt, bucket.StatusKey) {
			return opt
		}
	}
	return bucket.Name
}
