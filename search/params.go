package search

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Params is the raw query-string mapping, one value per key. Every accessor
// follows the same contract: a missing, empty or uncoercible value reports
// ok=false and the corresponding filter is simply not applied. Filter values
// never fail a request.
type Params map[string]string

func (p Params) raw(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (p Params) Text(key string) (string, bool) {
	return p.raw(key)
}

func (p Params) Int(key string) (int, bool) {
	v, ok := p.raw(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (p Params) Int64(key string) (int64, bool) {
	v, ok := p.raw(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Decimal parses a coordinate or radius value. ParseFloat accepts "NaN" and
// "Inf"; those are not usable filter values, so they count as uncoercible.
func (p Params) Decimal(key string) (float64, bool) {
	v, ok := p.raw(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (p Params) Date(key string) (time.Time, bool) {
	v, ok := p.raw(key)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Enum matches the value against the allowed set, case-insensitively, and
// returns the canonical (lowercased) form.
func (p Params) Enum(key string, allowed []string) (string, bool) {
	v, ok := p.raw(key)
	if !ok {
		return "", false
	}
	v = strings.ToLower(v)
	for _, a := range allowed {
		if v == a {
			return v, true
		}
	}
	return "", false
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Pagination returns the skip/limit pair for the page and page_size
// parameters. Page numbers start at 1; page_size defaults to 10 and is
// capped at 100.
func (p Params) Pagination() (skip, limit int64) {
	page := 1
	if n, ok := p.Int("page"); ok && n > 0 {
		page = n
	}
	size := defaultPageSize
	if n, ok := p.Int("page_size"); ok && n > 0 {
		size = n
		if size > maxPageSize {
			size = maxPageSize
		}
	}
	return int64(page-1) * int64(size), int64(size)
}
