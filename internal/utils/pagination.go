package utils

import (
	"fmt"
	"net/http"
	"strconv"

	"flight-service/internal/apperrors"
)

const maxPageSize = 100

// PageParams are page-based pagination inputs parsed from the query
// string: ?page and ?page_size, capped at 100.
type PageParams struct {
	Page     int
	PageSize int
}

func (p PageParams) Limit() int  { return p.PageSize }
func (p PageParams) Offset() int { return (p.Page - 1) * p.PageSize }

// ParsePageParams reads pagination from the request. Malformed values are
// client errors, not silently ignored.
func ParsePageParams(r *http.Request, defaultSize int) (PageParams, error) {
	params := PageParams{Page: 1, PageSize: defaultSize}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, apperrors.NewValidation(fmt.Sprintf("invalid page value: %q", raw))
		}
		params.Page = page
	}

	if raw := r.URL.Query().Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			return params, apperrors.NewValidation(fmt.Sprintf("invalid page_size value: %q", raw))
		}
		if size > maxPageSize {
			size = maxPageSize
		}
		params.PageSize = size
	}

	return params, nil
}

// PagedResponse is the list envelope: total count plus the current page.
type PagedResponse struct {
	Count    int         `json:"count"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Results  interface{} `json:"results"`
}

func NewPagedResponse(params PageParams, count int, results interface{}) PagedResponse {
	return PagedResponse{
		Count:    count,
		Page:     params.Page,
		PageSize: params.PageSize,
		Results:  results,
	}
}
