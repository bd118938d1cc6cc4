// Package client is the Go consumer of the bookstore API, used by the
// terminal storefront. It speaks the canonical contract only: one
// casing for book fields and id as the single identity key.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bookstore/internal/catalog"
)

// ErrBadRequest is returned when the server rejects a request payload.
var ErrBadRequest = fmt.Errorf("bad request")

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: baseURL,
	}
}

type successEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    struct {
		PageNumber int `json:"page_number"`
		PageSize   int `json:"page_size"`
		TotalBooks int `json:"total_books"`
	} `json:"meta"`
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ListBooks fetches one page of the catalog.
func (c *Client) ListBooks(ctx context.Context, q catalog.Query) (catalog.PageResult, error) {
	params := url.Values{}
	params.Set("page_number", strconv.Itoa(q.Page))
	params.Set("page_size", strconv.Itoa(q.PageSize))
	params.Set("sort_field", q.Sort.String())
	params.Set("sort_direction", q.Direction.String())
	if q.Category != "" {
		params.Set("category", q.Category)
	}

	env, err := c.do(ctx, http.MethodGet, "/books?"+params.Encode(), nil)
	if err != nil {
		return catalog.PageResult{}, err
	}

	var books []catalog.Book
	if err := json.Unmarshal(env.Data, &books); err != nil {
		return catalog.PageResult{}, fmt.Errorf("decode books: %w", err)
	}
	return catalog.PageResult{
		Books:      books,
		TotalBooks: env.Meta.TotalBooks,
		PageNumber: env.Meta.PageNumber,
		PageSize:   env.Meta.PageSize,
	}, nil
}

// Categories fetches the distinct category list.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	env, err := c.do(ctx, http.MethodGet, "/books/categories", nil)
	if err != nil {
		return nil, err
	}
	var categories []string
	if err := json.Unmarshal(env.Data, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

// AdminList fetches every book.
func (c *Client) AdminList(ctx context.Context) ([]catalog.Book, error) {
	env, err := c.do(ctx, http.MethodGet, "/admin/books", nil)
	if err != nil {
		return nil, err
	}
	var books []catalog.Book
	if err := json.Unmarshal(env.Data, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	return books, nil
}

// AdminGet fetches a single book by id.
func (c *Client) AdminGet(ctx context.Context, id int) (catalog.Book, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/books/%d", id), nil)
	if err != nil {
		return catalog.Book{}, err
	}
	var book catalog.Book
	if err := json.Unmarshal(env.Data, &book); err != nil {
		return catalog.Book{}, fmt.Errorf("decode book: %w", err)
	}
	return book, nil
}

// CreateBook creates a book and returns the record the store assigned
// an id to.
func (c *Client) CreateBook(ctx context.Context, b catalog.Book) (catalog.Book, error) {
	env, err := c.do(ctx, http.MethodPost, "/admin/books", b)
	if err != nil {
		return catalog.Book{}, err
	}
	var created catalog.Book
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return catalog.Book{}, fmt.Errorf("decode created book: %w", err)
	}
	return created, nil
}

// UpdateBook replaces a book in place.
func (c *Client) UpdateBook(ctx context.Context, id int, b catalog.Book) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/books/%d", id), b)
	return err
}

// DeleteBook removes a book by id.
func (c *Client) DeleteBook(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/books/%d", id), nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*successEnvelope, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return &successEnvelope{Success: true}, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, catalog.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		var envErr errorEnvelope
		if err := json.Unmarshal(raw, &envErr); err == nil && envErr.Error.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrBadRequest, envErr.Error.Message)
		}
		return nil, ErrBadRequest
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("server returned %d for %s %s", resp.StatusCode, method, path)
	}

	var env successEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &env, nil
}
