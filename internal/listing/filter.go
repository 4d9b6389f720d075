package listing

// ClauseKind enumerates the predicate shapes the store understands.
type ClauseKind int

const (
	// ClauseSearch matches when any of Columns contains Value, case-insensitively.
	ClauseSearch ClauseKind = iota + 1
	// ClauseRange bounds a numeric column inclusively; nil bounds are open.
	ClauseRange
	// ClauseEquals matches the lowercased column against Value.
	ClauseEquals
	// ClauseAnyOf matches when the stored list shares an element with Values.
	ClauseAnyOf
	// ClauseContains is an unanchored case-insensitive substring match.
	ClauseContains
	// ClauseVisible keeps rows whose flag column is true.
	ClauseVisible
)

// Clause is one conjunct of a Predicate.
type Clause struct {
	Kind    ClauseKind
	Columns []string
	// Lists names the Columns that hold JSON string arrays.
	Lists  []string
	Value  string
	Values []string
	Min    *float64
	Max    *float64
}

func (c Clause) column() string {
	if len(c.Columns) == 0 {
		return ""
	}
	return c.Columns[0]
}

func (c Clause) clone() Clause {
	c.Columns = append([]string(nil), c.Columns...)
	c.Lists = append([]string(nil), c.Lists...)
	c.Values = append([]string(nil), c.Values...)
	if c.Min != nil {
		v := *c.Min
		c.Min = &v
	}
	if c.Max != nil {
		v := *c.Max
		c.Max = &v
	}
	return c
}

// Predicate is an immutable conjunction of clauses.
type Predicate struct {
	clauses []Clause
}

// With returns a copy of p including c. A clause of the same kind on the same
// column is replaced, so values fixed by the route override query parameters.
func (p Predicate) With(c Clause) Predicate {
	out := make([]Clause, 0, len(p.clauses)+1)
	for _, existing := range p.clauses {
		if existing.Kind == c.Kind && existing.Kind != ClauseSearch && existing.column() == c.column() {
			continue
		}
		out = append(out, existing.clone())
	}
	out = append(out, c.clone())
	return Predicate{clauses: out}
}

// Clauses returns a copy of the conjuncts in insertion order.
func (p Predicate) Clauses() []Clause {
	out := make([]Clause, len(p.clauses))
	for i, c := range p.clauses {
		out[i] = c.clone()
	}
	return out
}

// Len is the number of conjuncts.
func (p Predicate) Len() int {
	return len(p.clauses)
}

// Search matches term against any of columns.
func Search(term string, columns ...string) Clause {
	return Clause{Kind: ClauseSearch, Columns: columns, Value: term}
}

// OverLists marks which of the clause's columns store JSON string arrays, so
// a search only matches inside a single element.
func (c Clause) OverLists(columns ...string) Clause {
	c.Lists = nil
	for _, col := range columns {
		for _, own := range c.Columns {
			if own == col {
				c.Lists = append(c.Lists, col)
				break
			}
		}
	}
	return c
}

func (c Clause) isList(column string) bool {
	for _, l := range c.Lists {
		if l == column {
			return true
		}
	}
	return false
}

// Range bounds column inclusively; a nil bound is open.
func Range(column string, lo, hi *float64) Clause {
	return Clause{Kind: ClauseRange, Columns: []string{column}, Min: lo, Max: hi}
}

// Equals is a case-insensitive exact match.
func Equals(column, value string) Clause {
	return Clause{Kind: ClauseEquals, Columns: []string{column}, Value: value}
}

// AnyOf matches rows whose list column shares an element with values.
func AnyOf(column string, values ...string) Clause {
	return Clause{Kind: ClauseAnyOf, Columns: []string{column}, Values: values}
}

// Contains is a case-insensitive substring match on column.
func Contains(column, value string) Clause {
	return Clause{Kind: ClauseContains, Columns: []string{column}, Value: value}
}

// Visible keeps rows with the flag column set.
func Visible(column string) Clause {
	return Clause{Kind: ClauseVisible, Columns: []string{column}}
}
