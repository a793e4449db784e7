package preferences

import "errors"

var (
	ErrInvalidBoardID = errors.New("invalid board ID")
	ErrUnknownKey     = errors.New("unknown preference key")
	ErrInvalidValue   = errors.New("invalid preference value")
)
