package pagination

const (
	// DefaultLimit is used when the caller does not specify a page size.
	DefaultLimit = 20
	// MaxLimit caps the page size a caller may request.
	MaxLimit = 100
)

// Normalize clamps page and limit to usable values. Page numbering is 1-based.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Offset converts a 1-based page number into a row offset.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// TotalPages computes the reported page count for a filter's total row count.
// Zero rows means zero pages, not one empty page.
func TotalPages(total int64, limit int) int64 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
