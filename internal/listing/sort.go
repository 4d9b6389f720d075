package listing

import "strings"

// SortKey orders by a trusted column.
type SortKey struct {
	Column string
	Desc   bool
}

// ParseSort reads a comma separated sort expression such as "-rent,title".
// Keys outside spec.Sorts are dropped; an empty result falls back to
// spec.DefaultSort. The id column is always appended as a tie breaker.
func ParseSort(raw string, spec Spec) []SortKey {
	keys := parseSortKeys(raw, spec)
	if len(keys) == 0 {
		keys = parseSortKeys(spec.DefaultSort, spec)
	}
	for _, k := range keys {
		if k.Column == "id" {
			return keys
		}
	}
	return append(keys, SortKey{Column: "id"})
}

func parseSortKeys(raw string, spec Spec) []SortKey {
	var keys []SortKey
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		part = strings.TrimPrefix(part, "-")
		column, ok := spec.Sorts[part]
		if !ok || seen[column] {
			continue
		}
		seen[column] = true
		keys = append(keys, SortKey{Column: column, Desc: desc})
	}
	return keys
}

// OrderClause renders keys for gorm's Order.
func OrderClause(keys []SortKey) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		dir := "ASC"
		if k.Desc {
			dir = "DESC"
		}
		parts = append(parts, k.Column+" "+dir)
	}
	return strings.Join(parts, ", ")
}
