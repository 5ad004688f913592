package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bookkeephq/bookkeep/pkg/catalog"
	"github.com/bookkeephq/bookkeep/pkg/userrole"
)

// apiClient wraps the BookKeep HTTP API
type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func newAPIClient(baseURL, token string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *apiClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) (int, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// Health checks the /health endpoint
func (c *apiClient) Health(ctx context.Context) (string, error) {
	var body struct {
		Status string `json:"status"`
	}
	code, err := c.do(ctx, http.MethodGet, "/health", nil, &body)
	if err != nil {
		return "", err
	}
	if code != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", code)
	}
	return body.Status, nil
}

// ListBooks fetches all books
func (c *apiClient) ListBooks(ctx context.Context) ([]catalog.BookResponse, error) {
	var books []catalog.BookResponse
	code, err := c.do(ctx, http.MethodGet, "/api/forms", nil, &books)
	if err != nil {
		return nil, err
	}
	if code != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", code)
	}
	return books, nil
}

// CreateBook creates a book record
func (c *apiClient) CreateBook(ctx context.Context, params catalog.CreateBookParams) (catalog.BookResponse, error) {
	var book catalog.BookResponse
	code, err := c.do(ctx, http.MethodPost, "/api/forms", params, &book)
	if err != nil {
		return catalog.BookResponse{}, err
	}
	if code != http.StatusCreated {
		return catalog.BookResponse{}, fmt.Errorf("unexpected status %d", code)
	}
	return book, nil
}

// DeleteBook removes a book record
func (c *apiClient) DeleteBook(ctx context.Context, id string) error {
	code, err := c.do(ctx, http.MethodDelete, "/api/forms/"+id, nil, nil)
	if err != nil {
		return err
	}
	if code == http.StatusNotFound {
		return fmt.Errorf("book %s not found", id)
	}
	if code != http.StatusOK {
		return fmt.Errorf("unexpected status %d", code)
	}
	return nil
}

// SetRole claims a role for an identity
func (c *apiClient) SetRole(ctx context.Context, userID, email, role string) (userrole.RoleResponse, int, error) {
	var body userrole.RoleResponse
	code, err := c.do(ctx, http.MethodPost, "/api/users/set-role", userrole.SetRoleRequest{
		UserID: userID,
		Email:  email,
		Role:   role,
	}, &body)
	if err != nil {
		return userrole.RoleResponse{}, code, err
	}
	return body, code, nil
}

// GetRole looks up an identity's role
func (c *apiClient) GetRole(ctx context.Context, userID string) (userrole.RoleResponse, int, error) {
	var body userrole.RoleResponse
	code, err := c.do(ctx, http.MethodGet, "/api/users/get-role/"+userID, nil, &body)
	if err != nil {
		return userrole.RoleResponse{}, code, err
	}
	return body, code, nil
}
