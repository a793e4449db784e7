package timeline

import "errors"

var (
	ErrUnknownZoom  = errors.New("unknown timeline zoom level")
	ErrInvalidRange = errors.New("custom range ends before it starts")
)
