package repository

import (
	"math"
	"strconv"
)

const (
	// DefaultLimit is the page size used when the caller does not send one.
	DefaultLimit = 10
	// MaxLimit caps the page size regardless of what the caller requests.
	MaxLimit = 50
)

// CourseFilter is the parsed form of the course search parameters.
type CourseFilter struct {
	Query        string
	Type         string // "exact" or "smart"
	Level        string
	University   string
	MinFee       *float64
	MaxFee       *float64
	Intake       string
	Duration     string
	ExpressOffer bool
	Page         int
	Limit        int
}

// ParseCourseFilter builds a CourseFilter from a flat map of query
// parameters. Unknown keys are ignored and unparseable numeric values are
// treated as absent. Page defaults to 1, limit to DefaultLimit and is
// clamped to MaxLimit.
func ParseCourseFilter(params map[string]string) CourseFilter {
	f := CourseFilter{
		Query:      params["query"],
		Type:       params["type"],
		Level:      params["level"],
		University: params["university"],
		Intake:     params["intake"],
		Duration:   params["duration"],
		Page:       1,
		Limit:      DefaultLimit,
	}

	if f.Type == "" {
		f.Type = "smart"
	}

	if v := params["minFee"]; v != "" {
		if fee, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinFee = &fee
		}
	}
	if v := params["maxFee"]; v != "" {
		if fee, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxFee = &fee
		}
	}

	f.ExpressOffer = params["expressOffer"] == "true"

	if v := params["page"]; v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			f.Page = page
		}
	}
	if v := params["limit"]; v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			f.Limit = limit
		}
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}

	return f
}

// Offset returns the number of rows to skip for the requested page.
func (f CourseFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Pagination describes the window returned alongside search results.
type Pagination struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination computes the pagination metadata for a result set.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
