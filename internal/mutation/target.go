package mutation

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// Target is where an item is dropped
type Target interface {
	fmt.Stringer
	target()
}

// DayTarget is a calendar or timeline day. The item's date moves to Day at
// the controller's drop hour; a set end date moves by the same number of days.
type DayTarget struct {
	Day       time.Time
	Column    types.ColumnID // empty means the first date column
	EndColumn types.ColumnID
}

// BucketTarget is a kanban bucket. StatusColumn nil writes the item's own
// status field.
type BucketTarget struct {
	Bucket       models.KanbanColumn
	StatusColumn *models.Column
}

func (t DayTarget) String() string {
	return "day " + t.Day.Format(time.DateOnly)
}

func (t BucketTarget) String() string {
	return "bucket " + t.Bucket.Name
}

func (DayTarget) target()    {}
func (BucketTarget) target() {}
