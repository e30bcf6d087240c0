// Package records defines the loose field-name to value record shape that
// profile and ticket data travels in between the HTTP layer and storage.
package records

import "strconv"

// Record is a mapping of field name to value.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a new record containing base with overrides applied on top.
// Override keys always win, including over client-supplied values.
func Merge(base Record, overrides Record) Record {
	out := base.Clone()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Pick returns a new record containing only the listed keys that are present
// in the input. Keys absent from the record are simply absent from the
// result; there is no error and no null-fill.
func Pick(keys []string, r Record) Record {
	out := make(Record, len(keys))
	for _, k := range keys {
		if v, ok := r[k]; ok {
			out[k] = v
		}
	}
	return out
}

// AsUint coerces a record value to uint. JSON decoding yields float64 and
// database scans yield signed integers, so all of those are accepted.
// Unknown types yield zero.
func AsUint(v any) uint {
	switch n := v.(type) {
	case uint:
		return n
	case uint64:
		return uint(n)
	case int:
		if n < 0 {
			return 0
		}
		return uint(n)
	case int64:
		if n < 0 {
			return 0
		}
		return uint(n)
	case float64:
		if n < 0 {
			return 0
		}
		return uint(n)
	case string:
		parsed, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return 0
		}
		return uint(parsed)
	default:
		return 0
	}
}

// AsString coerces a record value to string, returning "" for nil or
// non-string values.
func AsString(v any) string {
	s, _ := v.(string)
	return s
}
