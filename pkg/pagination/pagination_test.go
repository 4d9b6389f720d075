package pagination

import (
	"math"
	"strconv"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cases := []struct {
		name        string
		page, limit string
		want        Params
	}{
		{name: "missing", want: Params{Page: 1, Limit: 10}},
		{name: "non numeric", page: "abc", limit: "ten", want: Params{Page: 1, Limit: 10}},
		{name: "zero and negative", page: "0", limit: "-5", want: Params{Page: 1, Limit: 10}},
		{name: "explicit", page: "3", limit: "20", want: Params{Page: 3, Limit: 20}},
		{name: "capped", page: "2", limit: "500", want: Params{Page: 2, Limit: MaxLimit}},
		{name: "whitespace", page: " 2 ", limit: " 5", want: Params{Page: 2, Limit: 5}},
	}

	for _, tc := range cases {
		if got := Parse(tc.page, tc.limit); got != tc.want {
			t.Fatalf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestParseWithBounds(t *testing.T) {
	got := ParseWithBounds("", "", 5, 50)
	if got.Limit != 5 {
		t.Fatalf("expected configured default 5, got %d", got.Limit)
	}
	got = ParseWithBounds("1", "80", 5, 50)
	if got.Limit != 50 {
		t.Fatalf("expected configured cap 50, got %d", got.Limit)
	}
	got = ParseWithBounds("1", "", 0, 0)
	if got.Limit != DefaultLimit {
		t.Fatalf("expected package default, got %d", got.Limit)
	}
}

func TestOffset(t *testing.T) {
	if off := (Params{Page: 1, Limit: 10}).Offset(); off != 0 {
		t.Fatalf("page 1 offset should be 0, got %d", off)
	}
	if off := (Params{Page: 3, Limit: 10}).Offset(); off != 20 {
		t.Fatalf("page 3 offset should be 20, got %d", off)
	}
	if off := (Params{}).Offset(); off != 0 {
		t.Fatalf("zero params should normalize, got %d", off)
	}
}

func TestNewMetaPageCount(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		pages int64
	}{
		{total: 0, limit: 10, pages: 0},
		{total: 1, limit: 10, pages: 1},
		{total: 10, limit: 10, pages: 1},
		{total: 25, limit: 10, pages: 3},
		{total: 101, limit: 100, pages: 2},
	}
	for _, tc := range cases {
		meta := NewMeta(Params{Page: 1, Limit: tc.limit}, tc.total)
		if meta.Pages != tc.pages {
			t.Fatalf("total=%d limit=%d: expected %d pages, got %d", tc.total, tc.limit, tc.pages, meta.Pages)
		}
		if meta.Total != tc.total || meta.Limit != tc.limit || meta.Page != 1 {
			t.Fatalf("unexpected meta %+v", meta)
		}
	}
}

func TestOffsetSaturatesForHugePages(t *testing.T) {
	cases := []Params{
		{Page: 922337203685477582, Limit: 10},
		{Page: math.MaxInt, Limit: 10},
		{Page: math.MaxInt, Limit: 1},
	}
	for _, p := range cases {
		off := p.Offset()
		if off < 0 {
			t.Fatalf("page=%d limit=%d: offset wrapped to %d", p.Page, p.Limit, off)
		}
		if p.Limit > 1 && off != math.MaxInt {
			t.Fatalf("page=%d limit=%d: expected saturated offset, got %d", p.Page, p.Limit, off)
		}
	}

	parsed := Parse(strconv.Itoa(math.MaxInt), "10")
	if parsed.Offset() != math.MaxInt {
		t.Fatalf("parsed huge page should saturate, got %d", parsed.Offset())
	}
}
