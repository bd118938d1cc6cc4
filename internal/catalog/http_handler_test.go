package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo, nil))

	t.Run("success with meta", func(t *testing.T) {
		books := []Book{{
			ID:             1,
			Title:          "Les Miserables",
			Author:         "Victor Hugo",
			Publisher:      "Signet",
			ISBN:           "978-0451419439",
			Classification: "Fiction",
			Category:       "Classic",
			PageCount:      1463,
			Price:          decimal.RequireFromString("9.95"),
		}}
		mockRepo.EXPECT().
			List(gomock.Any(), Query{Page: 2, PageSize: 5}).
			Return(books, 7, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books?page_number=2&page_size=5", nil)

		handler.List(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    []struct {
				ID    int    `json:"id"`
				Title string `json:"title"`
			} `json:"data"`
			Meta struct {
				PageNumber int `json:"page_number"`
				PageSize   int `json:"page_size"`
				TotalBooks int `json:"total_books"`
				TotalPages int `json:"total_pages"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "Les Miserables", resp.Data[0].Title)
		assert.Equal(t, 2, resp.Meta.PageNumber)
		assert.Equal(t, 5, resp.Meta.PageSize)
		assert.Equal(t, 7, resp.Meta.TotalBooks)
		assert.Equal(t, 2, resp.Meta.TotalPages)
	})

	t.Run("parses sort and category", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), Query{
				Page:      1,
				PageSize:  DefaultPageSize,
				Sort:      SortByPrice,
				Direction: SortDesc,
				Category:  "Classic",
			}).
			Return([]Book{}, 0, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet,
			"/books?sort_field=Price&sort_direction=DESC&category=Classic", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown sort values default", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), Query{Page: 1, PageSize: DefaultPageSize}).
			Return([]Book{}, 0, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet,
			"/books?sort_field=isbn&sort_direction=sideways", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("repo error is a 500", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, 0, errors.New("db error"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_Categories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo, nil))

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().
			Categories(gomock.Any()).
			Return([]string{"Biography", "Classic"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/categories", nil)

		handler.Categories(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"Biography", "Classic"}, resp.Data)
	})

	t.Run("error", func(t *testing.T) {
		mockRepo.EXPECT().
			Categories(gomock.Any()).
			Return(nil, errors.New("db error"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/categories", nil)

		handler.Categories(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
