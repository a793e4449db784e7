package cli

import "errors"

var (
	ErrNoBoard        = errors.New("no board selected")
	ErrItemNotFound   = errors.New("item not found")
	ErrBucketNotFound = errors.New("bucket not found")
	ErrInvalidDate    = errors.New("invalid date")
)
