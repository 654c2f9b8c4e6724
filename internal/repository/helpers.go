package repository

import (
	"database/sql"
	"encoding/json"
	"time"
)

// parseNullableTime parses a sql.NullString into a *time.Time using RFC3339.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite
// storage. Returns nil (SQL NULL) for a nil pointer.
func nullableTimeToString(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

// nullableStrToValue converts a *string to SQL NULL or its value.
func nullableStrToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// nullableStrFromSQL converts a sql.NullString back to a *string.
func nullableStrFromSQL(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// nullableFloatToValue converts a *float64 to SQL NULL or its value.
func nullableFloatToValue(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

// nullableFloatFromSQL converts a sql.NullFloat64 back to a *float64.
func nullableFloatFromSQL(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// marshalStrings encodes a string slice as a JSON array for a TEXT column.
// nil encodes as the empty array so scans round-trip cleanly.
func marshalStrings(vals []string) string {
	if len(vals) == 0 {
		return "[]"
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// unmarshalStrings decodes a JSON array TEXT column. Malformed data decodes
// to nil rather than failing the row scan.
func unmarshalStrings(s string) []string {
	if s == "" || s == "[]" {
		return nil
	}
	var vals []string
	if err := json.Unmarshal([]byte(s), &vals); err != nil {
		return nil
	}
	return vals
}

// boolToInt converts a Go bool to 0/1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite 0/1 integer to a Go bool.
func intToBool(i int) bool {
	return i != 0
}
