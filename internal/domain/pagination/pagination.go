package pagination

import "math"

// Limits applied to list endpoints
const (
	DefaultLimit int64 = 10
	MaxLimit     int64 = 100
)

// Pagination represents pagination information for list responses.
type Pagination struct {
	Total      int64 // Total number of records
	Page       int64 // Current page number (1-based)
	Limit      int64 // Number of records per page
	TotalPages int64 // Total number of pages
}

// New creates a new Pagination instance with calculated total pages.
func New(total, page, limit int64) *Pagination {
	var totalPages int64
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return &Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// Normalize clamps page and limit to sane values.
func Normalize(page, limit int64) (int64, int64) {
	if page <= 0 {
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

// MaxOffset caps the row offset. Pages past it come back empty.
const MaxOffset int64 = math.MaxInt32

// Offset returns the row offset of page, clamped to MaxOffset.
func Offset(page, limit int64) int {
	if page <= 1 || limit <= 0 {
		return 0
	}
	if page-1 > MaxOffset/limit {
		return int(MaxOffset)
	}
	return int((page - 1) * limit)
}
