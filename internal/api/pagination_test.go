package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paginationContext(t *testing.T, query string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParsePaginationDefaults(t *testing.T) {
	limit, offset := parsePagination(paginationContext(t, ""))
	assert.Equal(t, 100, limit)
	assert.Equal(t, 0, offset)
}

func TestParsePaginationExplicit(t *testing.T) {
	limit, offset := parsePagination(paginationContext(t, "limit=25&offset=50"))
	assert.Equal(t, 25, limit)
	assert.Equal(t, 50, offset)
}

func TestParsePaginationCapsLimit(t *testing.T) {
	limit, _ := parsePagination(paginationContext(t, "limit=99999"))
	assert.Equal(t, 1000, limit)
}

func TestParsePaginationIgnoresGarbage(t *testing.T) {
	limit, offset := parsePagination(paginationContext(t, "limit=abc&offset=-5"))
	assert.Equal(t, 100, limit)
	assert.Equal(t, 0, offset)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := paginate(items, 2, 1)
	assert.Equal(t, 2, page.Count)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, []int{2, 3}, page.Items)

	// Offset past the end yields an empty page, not nil.
	page = paginate(items, 10, 99)
	assert.Equal(t, 0, page.Count)
	assert.NotNil(t, page.Items)

	// Limit past the end is clamped.
	page = paginate(items, 10, 3)
	assert.Equal(t, []int{4, 5}, page.Items)
}
