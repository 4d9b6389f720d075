package dbtypes

import (
	"database/sql/driver"
	"strconv"
	"strings"
)

// StringList persists a list of strings as a JSON array in a text column so
// postgres and sqlite share one representation.
type StringList []string

func (l *StringList) Scan(src any) error {
	var out []string
	if err := ScanJSON(src, &out); err != nil {
		return err
	}
	if out == nil {
		out = []string{}
	}
	*l = StringList(out)
	return nil
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return JSONValue([]string(l))
}

// ElementPattern returns the LIKE pattern matching value as a whole element of
// the stored JSON array.
func ElementPattern(value string) string {
	return "%" + EscapeLike(strconv.Quote(value)) + "%"
}

// ElementSafe reports whether a substring search for term against the stored
// JSON array can only match inside a single element.
func ElementSafe(term string) bool {
	return !strings.ContainsAny(term, `"\,[]`)
}

// NewStringList copies values, storing nil as an empty list.
func NewStringList(values []string) StringList {
	if values == nil {
		return StringList{}
	}
	return StringList(append([]string(nil), values...))
}

// Strings returns a copy that is never nil.
func (l StringList) Strings() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}
