// Package cells converts raw backend cell payloads into the single map
// representation the projectors use, and parses typed values out of cells.
package cells

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/thenoetrevino/boardview/internal/models"
	"github.com/thenoetrevino/boardview/internal/types"
)

// Entry is the array form of a cell: {columnId, value}
type Entry struct {
	ColumnID types.ColumnID `json:"columnId"`
	Value    any            `json:"value"`
}

// Normalize converts any supported cells shape into a map keyed by column id.
// Supported shapes are a map, a slice of Entry, a slice of {columnId,value}
// objects, and raw JSON (bytes, json.RawMessage or string) of either form.
func Normalize(raw any) (map[types.ColumnID]any, error) {
	switch v := raw.(type) {
	case nil:
		return map[types.ColumnID]any{}, nil
	case map[types.ColumnID]any:
		return v, nil
	case map[string]any:
		out := make(map[types.ColumnID]any, len(v))
		for k, val := range v {
			out[types.ColumnID(k)] = val
		}
		return out, nil
	case []Entry:
		out := make(map[types.ColumnID]any, len(v))
		for _, e := range v {
			out[e.ColumnID] = e.Value
		}
		return out, nil
	case []any:
		out := make(map[types.ColumnID]any, len(v))
		for _, elem := range v {
			obj, ok := elem.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: array element is %T", ErrMalformedCells, elem)
			}
			id := entryColumnID(obj)
			if id == "" {
				continue
			}
			out[id] = obj["value"]
		}
		return out, nil
	case json.RawMessage:
		return NormalizeJSON(v)
	case []byte:
		return NormalizeJSON(v)
	case string:
		return NormalizeJSON([]byte(v))
	default:
		return nil, fmt.Errorf("%w: got %T", ErrMalformedCells, raw)
	}
}

// NormalizeJSON parses a JSON cells payload of either shape
func NormalizeJSON(data []byte) (map[types.ColumnID]any, error) {
	if len(data) == 0 {
		return map[types.ColumnID]any{}, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformedCells)
	}

	parsed := gjson.ParseBytes(data)
	out := make(map[types.ColumnID]any)

	switch {
	case parsed.IsArray():
		parsed.ForEach(func(_, entry gjson.Result) bool {
			id := entry.Get("columnId").String()
			if id == "" {
				id = entry.Get("column_id").String()
			}
			if id == "" {
				return true
			}
			out[types.ColumnID(id)] = entry.Get("value").Value()
			return true
		})
	case parsed.IsObject():
		parsed.ForEach(func(key, value gjson.Result) bool {
			out[types.ColumnID(key.String())] = value.Value()
			return true
		})
	case parsed.Type == gjson.Null:
	default:
		return nil, fmt.Errorf("%w: json %s", ErrMalformedCells, parsed.Type)
	}
	return out, nil
}

func entryColumnID(obj map[string]any) types.ColumnID {
	for _, key := range []string{"columnId", "column_id"} {
		if s, ok := obj[key].(string); ok && s != "" {
			return types.ColumnID(s)
		}
	}
	return ""
}

// NormalizeItem fills item.Cells from a raw payload, keeping the item
// otherwise untouched
func NormalizeItem(item models.Item, raw any) (models.Item, error) {
	m, err := Normalize(raw)
	if err != nil {
		return item, err
	}
	item.Cells = m
	return item, nil
}
