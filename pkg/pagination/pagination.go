package pagination

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// SortField is a single sort key. Descending is set by a "-" prefix in query strings.
type SortField struct {
	Field      string
	Descending bool
}

// SortFields is an ordered list of sort keys. It unmarshals from either a
// comma-separated string ("name,-size") or an array of SortField objects.
type SortFields []SortField

// UnmarshalJSON implements json.Unmarshaler.
func (s *SortFields) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*s = ParseSortFields(raw)
		return nil
	}

	var fields []SortField
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*s = fields
	return nil
}

// ParseSortFields parses a comma-separated sort expression. Empty segments are skipped.
func ParseSortFields(s string) SortFields {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var fields SortFields
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		part = strings.TrimPrefix(part, "-")
		if part == "" {
			continue
		}
		fields = append(fields, SortField{Field: part, Descending: desc})
	}
	return fields
}

// PageRequest represents a client request for a page of data with optional search and sorting.
type PageRequest struct {
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Search   *string    `json:"search,omitempty"`
	Sort     SortFields `json:"sort,omitempty"`
}

// Normalize adjusts the request to ensure valid pagination values based on the config.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
	if r.PageSize > 0 && r.Page > math.MaxInt/r.PageSize {
		r.Page = math.MaxInt / r.PageSize
	}
}

// Offset calculates the number of records to skip based on page and page size.
// It never overflows: pages beyond the representable range saturate at math.MaxInt.
func (r *PageRequest) Offset() int {
	if r.Page < 1 || r.PageSize < 1 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.PageSize {
		return math.MaxInt
	}
	return (r.Page - 1) * r.PageSize
}

// Query encodes the request back into URL query values, omitting defaults.
// Views use it to build pager links that preserve search and sort.
func (r PageRequest) Query() url.Values {
	values := url.Values{}
	if r.Page > 1 {
		values.Set("page", strconv.Itoa(r.Page))
	}
	if r.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(r.PageSize))
	}
	if r.Search != nil && *r.Search != "" {
		values.Set("search", *r.Search)
	}
	if len(r.Sort) > 0 {
		parts := make([]string, len(r.Sort))
		for i, f := range r.Sort {
			if f.Descending {
				parts[i] = "-" + f.Field
			} else {
				parts[i] = f.Field
			}
		}
		values.Set("sort", strings.Join(parts, ","))
	}
	return values
}

// PageRequestFromQuery parses pagination parameters from URL query values.
// Supported parameters: page, page_size, search, sort (comma-separated, "-" prefix for desc).
// The result is normalized according to the provided config.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(values.Get("page"))
	pageSize, _ := strconv.Atoi(values.Get("page_size"))

	var search *string
	if s := values.Get("search"); s != "" {
		search = &s
	}

	req := PageRequest{
		Page:     page,
		PageSize: pageSize,
		Search:   search,
		Sort:     ParseSortFields(values.Get("sort")),
	}

	req.Normalize(cfg)
	return req
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// HasPrev reports whether a page precedes this one.
func (p PageResult[T]) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a page follows this one.
func (p PageResult[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

// NewPageResult creates a PageResult with calculated total pages.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Slice returns the page of items selected by req. Items are expected to be
// filtered and sorted already; a page past the end yields an empty Data slice.
func Slice[T any](items []T, req PageRequest) PageResult[T] {
	total := len(items)
	start := min(req.Offset(), total)
	end := min(start+req.PageSize, total)
	return NewPageResult(items[start:end], total, req.Page, req.PageSize)
}
