package models

import "github.com/google/uuid"

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

type PageParams struct {
	PageNumber int    `form:"pageNumber" json:"page_number"`
	PageSize   int    `form:"pageSize" json:"page_size"`
	Search     string `form:"searchValue" json:"search_value"`
}

// Normalize clamps out of range values to the defaults instead of failing.
func (p PageParams) Normalize() PageParams {
	if p.PageNumber < 1 {
		p.PageNumber = DefaultPageNumber
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

func (p PageParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

type FaqListParams struct {
	PageParams
	CategoryID *uuid.UUID `form:"-" json:"category_id,omitempty"`
	TagID      *uuid.UUID `form:"-" json:"tag_id,omitempty"`
}

// PageInfo describes one page of a filtered result.
type PageInfo struct {
	PageNumber      int   `json:"page_number"`
	PageSize        int   `json:"page_size"`
	TotalCount      int64 `json:"total_count"`
	TotalPages      int   `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

type PagedResult[T any] struct {
	Items []T `json:"items"`
	PageInfo
}

// NewPagedResult derives the page counters from totalCount and the
// normalized params.
func NewPagedResult[T any](items []T, totalCount int64, params PageParams) PagedResult[T] {
	params = params.Normalize()
	if items == nil {
		items = []T{}
	}
	size := int64(params.PageSize)
	totalPages := int((totalCount + size - 1) / size)
	return PagedResult[T]{
		Items: items,
		PageInfo: PageInfo{
			PageNumber:      params.PageNumber,
			PageSize:        params.PageSize,
			TotalCount:      totalCount,
			TotalPages:      totalPages,
			HasNextPage:     int64(params.PageNumber)*size < totalCount,
			HasPreviousPage: params.PageNumber > 1,
		},
	}
}
