package config

import "errors"

var (
	ErrInvalidWeekStart = errors.New("week_start must be a weekday name")
	ErrInvalidTimezone  = errors.New("unknown timezone")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn or error")
)
