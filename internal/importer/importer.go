// Package importer loads board documents (columns, items and optional view
// preferences) into the board store after validating them against an
// embedded JSON schema.
package importer

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/preferences"
	"github.com/thenoetrevino/boardview/internal/services/board"
	"github.com/thenoetrevino/boardview/internal/types"
)

//go:embed board.schema.json
var boardSchema []byte

const schemaURL = "https://boardview.dev/schema/board.json"

// Document is a decoded board document
type Document struct {
	Board struct {
		ID   types.BoardID `json:"id"`
		Name string        `json:"name"`
	} `json:"board"`
	Columns     []models.Column `json:"columns"`
	Items       []DocumentItem  `json:"items"`
	Preferences json.RawMessage `json:"preferences,omitempty"`
}

// DocumentItem keeps cells raw so either cell shape can be normalized later
type DocumentItem struct {
	ID     types.ItemID    `json:"id"`
	Name   string          `json:"name"`
	Status string          `json:"status,omitempty"`
	Cells  json.RawMessage `json:"cells,omitempty"`
}

// Result summarizes an import
type Result struct {
	BoardID     types.BoardID `json:"boardId"`
	Columns     int           `json:"columns"`
	Items       int           `json:"items"`
	Preferences bool          `json:"preferences"`
}

// Importer validates and stores board documents
type Importer struct {
	svc    board.Service
	prefs  preferences.Store
	schema *jsonschema.Schema
}

// New compiles the embedded schema
func New(svc board.Service, prefs preferences.Store) (*Importer, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(boardSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Importer{svc: svc, prefs: prefs, schema: schema}, nil
}

// Parse validates data against the schema and decodes it
func (im *Importer) Parse(data []byte) (*Document, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, &ValidationError{Problems: []Problem{{Message: fmt.Sprintf("not valid JSON: %v", err)}}}
	}

	if err := im.schema.Validate(raw); err != nil {
		return nil, toValidationError(err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	for i := range doc.Columns {
		doc.Columns[i].Type = models.ParseColumnType(string(doc.Columns[i].Type))
	}

	seen := make(map[types.ItemID]bool, len(doc.Items))
	for _, it := range doc.Items {
		if seen[it.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, it.ID)
		}
		seen[it.ID] = true
	}
	return &doc, nil
}

// Import stores a document as a new board
func (im *Importer) Import(ctx context.Context, data []byte) (*Result, error) {
	doc, err := im.Parse(data)
	if err != nil {
		return nil, err
	}

	_, err = im.svc.CreateBoard(ctx, board.CreateBoardRequest{
		ID:      doc.Board.ID,
		Name:    doc.Board.Name,
		Columns: doc.Columns,
	})
	if err != nil {
		return nil, err
	}

	for _, it := range doc.Items {
		var cells any
		if len(it.Cells) > 0 {
			cells = []byte(it.Cells)
		}
		_, err := im.svc.CreateItem(ctx, doc.Board.ID, board.CreateItemRequest{
			ID:     it.ID,
			Name:   it.Name,
			Status: it.Status,
			Cells:  cells,
		})
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", it.ID, err)
		}
	}

	res := &Result{BoardID: doc.Board.ID, Columns: len(doc.Columns), Items: len(doc.Items)}
	if len(doc.Preferences) > 0 && im.prefs != nil {
		prefs := models.DefaultViewPreferences()
		if err := json.Unmarshal(doc.Preferences, &prefs); err != nil {
			return nil, fmt.Errorf("decode preferences: %w", err)
		}
		if err := im.prefs.Save(ctx, doc.Board.ID, prefs); err != nil {
			return nil, err
		}
		res.Preferences = true
	}

	slog.Info("board imported", "board_id", res.BoardID, "columns", res.Columns, "items", res.Items)
	return res, nil
}

// ImportFile reads and imports a document from disk
func (im *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return im.Import(ctx, data)
}

func toValidationError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	out := &ValidationError{}
	collectProblems(ve, out)
	if len(out.Problems) == 0 {
		out.Problems = append(out.Problems, Problem{Message: ve.Message})
	}
	return out
}

// collectProblems keeps the leaf causes, which name the failing field
func collectProblems(err *jsonschema.ValidationError, out *ValidationError) {
	if len(err.Causes) == 0 {
		out.Problems = append(out.Problems, Problem{
			Path:    pointerToPath(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectProblems(cause, out)
	}
}

// pointerToPath turns "/items/0/name" into "items[0].name"
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for i, part := range strings.Split(ptr, "/") {
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
