package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/boardview/internal/calendar"
	"github.com/thenoetrevino/boardview/internal/importer"
	"github.com/thenoetrevino/boardview/internal/mutation"
	"github.com/thenoetrevino/boardview/internal/preferences"
	"github.com/thenoetrevino/boardview/internal/services/board"
	"github.com/thenoetrevino/boardview/internal/timeline"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or arguments, no board selected.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Board, item, column or bucket not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Import documents that fail the schema, unreadable files.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Bad dates, unknown preference keys or values, a drop target
	// the item cannot move to.
	ExitValidation = 5
)

// CodedError carries the exit code a command failed with. The message has
// already been printed by the formatter.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return Classify(err)
}

// Classify picks the exit code for a domain error
func Classify(err error) int {
	switch {
	case errors.Is(err, ErrNoBoard):
		return ExitUsage
	case errors.Is(err, board.ErrBoardNotFound),
		errors.Is(err, board.ErrItemNotFound),
		errors.Is(err, board.ErrColumnNotFound),
		errors.Is(err, mutation.ErrUnknownItem),
		errors.Is(err, ErrItemNotFound),
		errors.Is(err, ErrBucketNotFound):
		return ExitNotFound
	case errors.Is(err, importer.ErrInvalidDocument),
		errors.Is(err, importer.ErrDuplicateItem):
		return ExitDataErr
	case errors.Is(err, ErrInvalidDate),
		errors.Is(err, calendar.ErrUnknownMode),
		errors.Is(err, timeline.ErrUnknownZoom),
		errors.Is(err, timeline.ErrInvalidRange),
		errors.Is(err, preferences.ErrUnknownKey),
		errors.Is(err, preferences.ErrInvalidValue),
		errors.Is(err, mutation.ErrNoDateColumn),
		errors.Is(err, mutation.ErrNotDateColumn),
		errors.Is(err, board.ErrEmptyName),
		errors.Is(err, board.ErrNameTooLong):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode returns the machine readable code printed with --json
func ErrorCode(exit int) string {
	switch exit {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "INVALID_DATA"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}
