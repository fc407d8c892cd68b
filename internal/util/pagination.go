package util

import "strconv"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxResultWindow matches Elasticsearch's default index.max_result_window.
	MaxResultWindow = 10000
)

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// Calculate turns a 1-based page and a page size into from/limit.
// Sizes outside 1..MaxPageSize are clamped, and page is clamped to
// 1..MaxResultWindow/size so from+limit never exceeds MaxResultWindow.
func Calculate(page, size int) (from, limit int) {
	switch {
	case size <= 0:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	if lastPage := MaxResultWindow / size; page > lastPage {
		page = lastPage
	}
	if page < 1 {
		page = 1
	}
	from = (page - 1) * size
	return from, size
}
