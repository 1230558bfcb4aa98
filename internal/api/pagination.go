package api

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Page is a paginated list response. Count is the number of items in this
// page, Total the number of items before pagination.
type Page[T any] struct {
	Count  int `json:"count"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Items  []T `json:"items"`
}

// parsePagination parses limit and offset from query parameters.
// Default limit is 100, default offset is 0.
// Maximum limit is 1000 to prevent excessive memory usage.
func parsePagination(c echo.Context) (limit, offset int) {
	limit = 100
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if parsed, err := strconv.Atoi(limitParam); err == nil && parsed > 0 {
			limit = parsed
			// Cap at 1000
			if limit > 1000 {
				limit = 1000
			}
		}
	}

	offset = 0
	if offsetParam := c.QueryParam("offset"); offsetParam != "" {
		if parsed, err := strconv.Atoi(offsetParam); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}

// paginate slices one page out of items and wraps it in a Page.
func paginate[T any](items []T, limit, offset int) Page[T] {
	total := len(items)

	if offset >= total {
		return Page[T]{Count: 0, Total: total, Limit: limit, Offset: offset, Items: []T{}}
	}

	end := offset + limit
	if end > total {
		end = total
	}

	page := items[offset:end]
	return Page[T]{Count: len(page), Total: total, Limit: limit, Offset: offset, Items: page}
}
