package cells

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/thenoetrevino/boardview/internal/models"
)

// DateResult is the outcome of parsing a date cell. Present is false for an
// empty cell; Err is set when a value existed but could not be read.
type DateResult struct {
	Value   time.Time
	Present bool
	Err     error
}

// Ok reports whether a date was parsed
func (r DateResult) Ok() bool {
	return r.Present && r.Err == nil
}

// Ptr returns the parsed date or nil
func (r DateResult) Ptr() *time.Time {
	if !r.Ok() {
		return nil
	}
	t := r.Value
	return &t
}

var localLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006/01/02",
}

// ParseDate reads a date from a cell value. Wrapped values are unwrapped.
// Date-only and zone-less values are constructed in loc; values with an
// explicit offset are converted to loc.
func ParseDate(v any, loc *time.Location) DateResult {
	if loc == nil {
		loc = time.Local
	}

	switch val := models.Unwrap(v).(type) {
	case nil:
		return DateResult{}
	case time.Time:
		if val.IsZero() {
			return DateResult{}
		}
		return DateResult{Value: val.In(loc), Present: true}
	case *time.Time:
		if val == nil || val.IsZero() {
			return DateResult{}
		}
		return DateResult{Value: val.In(loc), Present: true}
	case float64:
		return fromEpochMillis(val, loc)
	case int:
		return fromEpochMillis(float64(val), loc)
	case int64:
		return fromEpochMillis(float64(val), loc)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return DateResult{Present: true, Err: fmt.Errorf("%w: %q", ErrInvalidDate, val.String())}
		}
		return fromEpochMillis(f, loc)
	case string:
		return parseDateString(val, loc)
	default:
		return DateResult{Present: true, Err: fmt.Errorf("%w: unsupported %T", ErrInvalidDate, val)}
	}
}

func parseDateString(s string, loc *time.Location) DateResult {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateResult{}
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromEpochMillis(f, loc)
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return DateResult{Value: t, Present: true}
		}
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateResult{Value: t.In(loc), Present: true}
	}

	return DateResult{Present: true, Err: fmt.Errorf("%w: %q", ErrInvalidDate, s)}
}

func fromEpochMillis(ms float64, loc *time.Location) DateResult {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || ms <= 0 {
		return DateResult{Present: true, Err: fmt.Errorf("%w: epoch %v", ErrInvalidDate, ms)}
	}
	return DateResult{Value: time.UnixMilli(int64(ms)).In(loc), Present: true}
}

// ParseRange reads a TIMELINE cell holding both bounds. Accepted forms are
// {from,to}, {start,end} (as a map or a JSON string) and "start/end".
// A value that only carries a single date is returned as the start.
func ParseRange(v any, loc *time.Location) (start, end DateResult) {
	switch val := models.Unwrap(v).(type) {
	case map[string]any:
		return ParseDate(firstKey(val, "from", "start"), loc), ParseDate(firstKey(val, "to", "end"), loc)
	case string:
		s := strings.TrimSpace(val)
		if strings.HasPrefix(s, "{") {
			if !gjson.Valid(s) {
				return DateResult{Present: true, Err: fmt.Errorf("%w: %q", ErrInvalidDate, s)}, DateResult{}
			}
			obj := gjson.Parse(s)
			from := obj.Get("from")
			if !from.Exists() {
				from = obj.Get("start")
			}
			to := obj.Get("to")
			if !to.Exists() {
				to = obj.Get("end")
			}
			return ParseDate(from.Value(), loc), ParseDate(to.Value(), loc)
		}
		if before, after, ok := strings.Cut(s, "/"); ok && len(before) >= 10 && len(after) >= 10 {
			return ParseDate(before, loc), ParseDate(after, loc)
		}
		return ParseDate(s, loc), DateResult{}
	default:
		return ParseDate(val, loc), DateResult{}
	}
}

func firstKey(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}

// ParseNumber reads a numeric cell. The bool is false for empty or
// non-numeric values.
func ParseNumber(v any) (float64, bool) {
	switch val := models.Unwrap(v).(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(val)
		s = strings.TrimLeft(s, "$€£")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ParseIDList reads the ids referenced by a dependency or link cell. The
// value may be a single id, a list, a comma-separated string, or a JSON
// encoded list; list elements may be ids or {id} objects. A malformed JSON
// list yields ErrMalformedList and no ids.
func ParseIDList(v any) ([]string, error) {
	switch val := models.Unwrap(v).(type) {
	case nil:
		return nil, nil
	case []string:
		return compactIDs(val), nil
	case []any:
		ids := make([]string, 0, len(val))
		for _, elem := range val {
			ids = append(ids, idOf(elem))
		}
		return compactIDs(ids), nil
	case map[string]any:
		if id := idOf(val); id != "" {
			return []string{id}, nil
		}
		return nil, fmt.Errorf("%w: object without id", ErrMalformedList)
	case string:
		return parseIDString(val)
	default:
		if id := idOf(val); id != "" {
			return []string{id}, nil
		}
		return nil, fmt.Errorf("%w: unsupported %T", ErrMalformedList, val)
	}
}

func parseIDString(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if strings.HasPrefix(s, "[") {
		if !gjson.Valid(s) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedList, s)
		}
		var ids []string
		gjson.Parse(s).ForEach(func(_, elem gjson.Result) bool {
			if elem.IsObject() {
				ids = append(ids, elem.Get("id").String())
			} else {
				ids = append(ids, elem.String())
			}
			return true
		})
		return compactIDs(ids), nil
	}

	if strings.Contains(s, ",") {
		return compactIDs(strings.Split(s, ",")), nil
	}
	return []string{s}, nil
}

func idOf(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		if val == math.Trunc(val) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	case map[string]any:
		if id, ok := val["id"]; ok {
			return idOf(id)
		}
		return ""
	default:
		return ""
	}
}

func compactIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
