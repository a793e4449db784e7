package mutation

import "errors"

var (
	ErrBusy           = errors.New("a change is still being saved")
	ErrNotDragging    = errors.New("no drag in progress")
	ErrUnknownItem    = errors.New("item is not on the board")
	ErrStaleResult    = errors.New("result does not match the pending change")
	ErrNoDateColumn   = errors.New("board has no date column to reschedule")
	ErrNotDateColumn  = errors.New("column does not hold dates")
	ErrInvalidPayload = errors.New("invalid drag payload")
	ErrUnknownTarget  = errors.New("unsupported drop target")
)
