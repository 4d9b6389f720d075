package listing

// RangeParam maps a min/max query pair onto a numeric column. Either name
// may be empty when only one bound is accepted.
type RangeParam struct {
	Min    string
	Max    string
	Column string
}

// FieldParam maps a single query parameter onto a column.
type FieldParam struct {
	Param  string
	Column string
}

// Spec declares how a collection is searched, filtered and sorted.
// Column names are trusted identifiers and are never taken from requests.
type Spec struct {
	Resource string

	SearchColumns []string
	Ranges        []RangeParam
	Categories    []FieldParam
	MultiValues   []FieldParam

	LocationColumn   string
	VisibilityColumn string

	// Sorts whitelists sort keys accepted from clients, keyed by the API field name.
	Sorts       map[string]string
	DefaultSort string
}

// ColumnFor returns the column mapped to a category or multi-value parameter.
func (s Spec) ColumnFor(param string) (string, bool) {
	for _, c := range s.Categories {
		if c.Param == param {
			return c.Column, true
		}
	}
	for _, m := range s.MultiValues {
		if m.Param == param {
			return m.Column, true
		}
	}
	return "", false
}

// listColumns are the JSON array columns behind multi-value params.
func (s Spec) listColumns() []string {
	out := make([]string, 0, len(s.MultiValues))
	for _, m := range s.MultiValues {
		out = append(out, m.Column)
	}
	return out
}
