package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bookstore/internal/catalog"
	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /admin/books
//
// @Summary List all books
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListAll(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, books, nil)
}

// Get handles GET /admin/books/{id}
//
// @Summary Get a book by id
// @Tags admin
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	book, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, book, nil)
}

// Create handles POST /admin/books
//
// @Summary Create a book
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /admin/books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	book, ok := decodeBook(w, r)
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), book)
	if err != nil {
		if errors.Is(err, ErrInvalidBook) {
			httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Price must not be negative", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, created)
}

// Update handles PUT /admin/books/{id}
//
// @Summary Update a book in place
// @Tags admin
// @Accept json
// @Param id path int true "Book ID"
// @Success 204
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	book, ok := decodeBook(w, r)
	if !ok {
		return
	}

	err := h.service.Update(r.Context(), id, book)
	switch {
	case err == nil:
		httpx.JSONSuccessNoContent(w)
	case errors.Is(err, ErrIDMismatch):
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Path id does not match body id", nil)
	case errors.Is(err, ErrInvalidBook):
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Price must not be negative", nil)
	case errors.Is(err, catalog.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

// Delete handles DELETE /admin/books/{id}
//
// @Summary Delete a book
// @Tags admin
// @Param id path int true "Book ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /admin/books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.service.Delete(r.Context(), id)
	switch {
	case err == nil:
		httpx.JSONSuccessNoContent(w)
	case errors.Is(err, catalog.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Book id must be an integer", nil)
		return 0, false
	}
	return id, true
}

func decodeBook(w http.ResponseWriter, r *http.Request) (catalog.Book, bool) {
	var book catalog.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Malformed JSON payload", nil)
		return catalog.Book{}, false
	}
	if err := validate.Struct(book); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book payload", validationDetails(err))
		return catalog.Book{}, false
	}
	return book, true
}
