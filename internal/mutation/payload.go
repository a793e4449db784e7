package mutation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thenoetrevino/boardview/internal/types"
)

// Payload identifies what is being dragged. It travels as a JSON string so
// it can ride along any text-only transfer channel.
type Payload struct {
	ItemID          types.ItemID   `json:"itemId"`
	CurrentColumnID types.ColumnID `json:"currentColumnId,omitempty"`
}

// EncodePayload serializes a payload
func EncodePayload(p Payload) (string, error) {
	if p.ItemID == "" {
		return "", fmt.Errorf("%w: missing itemId", ErrInvalidPayload)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return string(data), nil
}

// DecodePayload parses a serialized payload
func DecodePayload(s string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if p.ItemID == "" {
		return Payload{}, fmt.Errorf("%w: missing itemId", ErrInvalidPayload)
	}
	return p, nil
}
