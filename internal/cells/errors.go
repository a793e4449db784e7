package cells

import "errors"

// Parse errors. Projectors treat every one of them as "value absent"; they
// exist so diagnostics can tell an empty cell from a broken one.
var (
	ErrInvalidDate    = errors.New("cell value is not a recognizable date")
	ErrInvalidNumber  = errors.New("cell value is not a number")
	ErrMalformedList  = errors.New("cell value is not a valid id list")
	ErrMalformedCells = errors.New("cells payload is neither an array nor an object")
)
