package listing

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/angelmondragon/bachelorhub-backend/pkg/pagination"
)

// Query is everything a listing read needs.
type Query struct {
	Filter Predicate
	Sort   []SortKey
	Page   pagination.Params
}

// Bounds overrides the default page size and cap.
type Bounds struct {
	DefaultLimit int
	MaxLimit     int
}

// ParseQuery turns raw query parameters into a listing Query.
func ParseQuery(values url.Values, spec Spec, bounds Bounds) Query {
	return Query{
		Filter: BuildFilter(values, spec),
		Sort:   ParseSort(values.Get("sort"), spec),
		Page:   pagination.ParseWithBounds(values.Get("page"), values.Get("limit"), bounds.DefaultLimit, bounds.MaxLimit),
	}
}

// BuildFilter translates recognised parameters into a Predicate. Unknown,
// empty or unparseable parameters are skipped. The visibility clause is
// always present.
func BuildFilter(values url.Values, spec Spec) Predicate {
	var p Predicate

	if term := strings.TrimSpace(values.Get("search")); term != "" && len(spec.SearchColumns) > 0 {
		p = p.With(Search(term, spec.SearchColumns...).OverLists(spec.listColumns()...))
	}

	for _, r := range spec.Ranges {
		lo := parseFloat(values, r.Min)
		hi := parseFloat(values, r.Max)
		if lo == nil && hi == nil {
			continue
		}
		p = p.With(Range(r.Column, lo, hi))
	}

	for _, c := range spec.Categories {
		if v := normalizeToken(values.Get(c.Param)); v != "" {
			p = p.With(Equals(c.Column, v))
		}
	}

	for _, m := range spec.MultiValues {
		if list := splitList(values.Get(m.Param)); len(list) > 0 {
			p = p.With(AnyOf(m.Column, list...))
		}
	}

	if spec.LocationColumn != "" {
		if loc := strings.TrimSpace(values.Get("location")); loc != "" {
			p = p.With(Contains(spec.LocationColumn, loc))
		}
	}

	if spec.VisibilityColumn != "" {
		p = p.With(Visible(spec.VisibilityColumn))
	}
	return p
}

// WithCategory pins a category or multi-value parameter to a value taken from
// the route, replacing whatever the query string supplied.
func (q Query) WithCategory(spec Spec, param, value string) Query {
	column, ok := spec.ColumnFor(param)
	value = normalizeToken(value)
	if !ok || value == "" {
		return q
	}
	for _, m := range spec.MultiValues {
		if m.Param == param {
			q.Filter = q.Filter.With(AnyOf(column, value))
			return q
		}
	}
	q.Filter = q.Filter.With(Equals(column, value))
	return q
}

func parseFloat(values url.Values, key string) *float64 {
	if key == "" {
		return nil
	}
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func normalizeToken(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := normalizeToken(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
