package calendar

import "errors"

var (
	// ErrUnknownMode is returned for a view mode name that does not exist
	ErrUnknownMode = errors.New("unknown calendar view mode")
)
