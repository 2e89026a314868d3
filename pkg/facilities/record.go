package facilities

import (
	"strconv"
	"strings"
)

// Lookup walks nested objects, e.g. Lookup("complaint_status", "name").
func (r Record) Lookup(path ...string) any {
	var current any = map[string]any(r)
	for _, key := range path {
		obj, ok := asObject(current)
		if !ok {
			return nil
		}
		current = obj[key]
	}
	return current
}

// String returns the value at path rendered as a string; nil and objects give "".
func (r Record) String(path ...string) string {
	return scalarString(r.Lookup(path...))
}

// Float returns the numeric value at path, parsing numeric strings.
func (r Record) Float(path ...string) float64 {
	switch v := r.Lookup(path...).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	default:
		return 0
	}
}

// Int returns the integer value at path.
func (r Record) Int(path ...string) int {
	return toInt(r.Lookup(path...))
}

// Bool returns the boolean value at path; "true"/"1" strings count as true.
func (r Record) Bool(path ...string) bool {
	switch v := r.Lookup(path...).(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	case float64:
		return v != 0
	default:
		return false
	}
}

// ID returns the record id as a string.
func (r Record) ID() string {
	return r.String("id")
}

// Display returns the value or "-" when blank.
func (r Record) Display(path ...string) string {
	if s := r.String(path...); s != "" {
		return s
	}
	return "-"
}

// FirstString returns the first non-blank value among keys.
func (r Record) FirstString(keys ...string) string {
	for _, key := range keys {
		if s := r.String(key); s != "" {
			return s
		}
	}
	return ""
}

// Records returns the nested array at key as records.
func (r Record) Records(key string) []Record {
	items, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if obj, ok := asObject(item); ok {
			out = append(out, Record(obj))
		}
	}
	return out
}

func asObject(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case Record:
		return map[string]any(v), true
	default:
		return nil, false
	}
}

func scalarString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
