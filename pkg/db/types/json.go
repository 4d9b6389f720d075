package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ScanJSON decodes a text/bytes column holding JSON into dest.
// NULL and empty values leave dest untouched.
func ScanJSON(src any, dest any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("json column: unsupported Scan type %T", src)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("json column: %w", err)
	}
	return nil
}

// JSONValue encodes v as a JSON text column value.
func JSONValue(v any) (driver.Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json column: %w", err)
	}
	return string(raw), nil
}
