package catalog

import (
	"net/http"
	"strconv"

	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /books
//
// @Summary List books
// @Description One page of the catalog, filtered and sorted
// @Tags books
// @Produce json
// @Param page_number query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(5)
// @Param sort_field query string false "title|author|price"
// @Param sort_direction query string false "asc|desc"
// @Param category query string false "Exact category filter"
// @Success 200 {object} map[string]interface{}
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Unparseable numbers fall through as zero and get coerced by the
	// service; unknown sort values default in the parsers.
	page, _ := strconv.Atoi(query.Get("page_number"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))

	params := Query{
		Page:      page,
		PageSize:  pageSize,
		Sort:      ParseSortField(query.Get("sort_field")),
		Direction: ParseSortDirection(query.Get("sort_direction")),
		Category:  query.Get("category"),
	}

	result, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, result.Books, map[string]any{
		"page_number": result.PageNumber,
		"page_size":   result.PageSize,
		"total_books": result.TotalBooks,
		"total_pages": (result.TotalBooks + result.PageSize - 1) / result.PageSize,
	})
}

// Categories handles GET /books/categories
//
// @Summary List categories
// @Description Distinct category values across the catalog
// @Tags books
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /books/categories [get]
func (h *HTTPHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, categories, nil)
}
