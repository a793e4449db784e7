package importer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDocument = errors.New("board document is invalid")
	ErrDuplicateItem   = errors.New("duplicate item ID")
)

// Problem is one schema violation
type Problem struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError lists every schema violation of a document
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		if p.Path == "" {
			parts = append(parts, p.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", p.Path, p.Message))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidDocument, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDocument
}
