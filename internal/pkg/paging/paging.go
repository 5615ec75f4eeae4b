// Package paging holds the pagination arithmetic shared by list endpoints:
// 1-based pages, per-endpoint default limits, offset = (page-1) * limit.
package paging

// Normalize clamps page to >=1 and substitutes defaultLimit when limit is
// unset or invalid.
func Normalize(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// Offset converts a 1-based page into the number of rows to skip.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
