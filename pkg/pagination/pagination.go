package pagination

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPage is used when the page parameter is missing or invalid.
	DefaultPage = 1
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
	// MaxLimit caps how many rows a single page can request.
	MaxLimit = 100
)

// Params holds the normalized page window requested by a client.
type Params struct {
	Page  int
	Limit int
}

// Meta describes the window returned alongside a page of items.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// Parse reads raw page/limit query values. Missing, non-numeric and
// non-positive values fall back to the defaults; limit is capped at MaxLimit.
func Parse(page, limit string) Params {
	return Params{
		Page:  parsePositive(page, DefaultPage),
		Limit: NormalizeLimit(parsePositive(limit, DefaultLimit)),
	}
}

// ParseWithBounds is Parse with caller supplied default and maximum limits.
func ParseWithBounds(page, limit string, defaultLimit, maxLimit int) Params {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}
	l := parsePositive(limit, defaultLimit)
	if l > maxLimit {
		l = maxLimit
	}
	return Params{Page: parsePositive(page, DefaultPage), Limit: l}
}

// NormalizeLimit enforces the default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Normalize clamps hand-built params to valid values.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset is the number of rows skipped before the window starts. It
// saturates at math.MaxInt instead of wrapping for absurd page numbers.
func (p Params) Offset() int {
	p = p.Normalize()
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// NewMeta computes the page count for total matching rows.
func NewMeta(p Params, total int64) Meta {
	p = p.Normalize()
	if total < 0 {
		total = 0
	}
	limit := int64(p.Limit)
	return Meta{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: (total + limit - 1) / limit,
	}
}

func parsePositive(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
