// Package mappers converts between the loose wire records and the typed
// persistence models. Keys absent from a record map to nil pointers, so the
// database sees NULL for anything the client never submitted.
package mappers

import (
	"encoding/json"

	"caseline/internal/domain/records"
)

func strPtr(rec records.Record, key string) *string {
	v, ok := rec[key]
	if !ok || v == nil {
		return nil
	}
	s := records.AsString(v)
	return &s
}

// jsonPtr serializes a multi-value field to its JSON text column. A value
// that is already a string is stored verbatim.
func jsonPtr(rec records.Record, key string) *string {
	v, ok := rec[key]
	if !ok || v == nil {
		return nil
	}
	if s, isStr := v.(string); isStr {
		return &s
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(encoded)
	return &s
}

func intPtr(rec records.Record, key string) *int {
	v, ok := rec[key]
	if !ok || v == nil {
		return nil
	}
	n := int(records.AsUint(v))
	return &n
}

func uintPtr(rec records.Record, key string) *uint {
	v, ok := rec[key]
	if !ok || v == nil {
		return nil
	}
	n := records.AsUint(v)
	return &n
}

func boolPtr(rec records.Record, key string) *bool {
	v, ok := rec[key]
	if !ok || v == nil {
		return nil
	}
	var b bool
	switch t := v.(type) {
	case bool:
		b = t
	case float64:
		b = t != 0
	case int64:
		b = t != 0
	case int:
		b = t != 0
	default:
		return nil
	}
	return &b
}

func putStr(rec records.Record, key string, v *string) {
	if v != nil {
		rec[key] = *v
	}
}

// putJSON decodes a JSON text column back into its structured value. Text
// that is not valid JSON is returned as-is.
func putJSON(rec records.Record, key string, v *string) {
	if v == nil {
		return
	}
	var decoded any
	if err := json.Unmarshal([]byte(*v), &decoded); err != nil {
		rec[key] = *v
		return
	}
	rec[key] = decoded
}

func putInt(rec records.Record, key string, v *int) {
	if v != nil {
		rec[key] = *v
	}
}

func putUint(rec records.Record, key string, v *uint) {
	if v != nil {
		rec[key] = *v
	}
}

func putBool(rec records.Record, key string, v *bool) {
	if v != nil {
		rec[key] = *v
	}
}
