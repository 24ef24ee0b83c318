// Package client is the Go consumer of the adventure API, used by the
// interactive commands. The base URL comes from configuration (FABLE_API_URL).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fableworks/fable/pkg/domain"
)

// Client talks to a fable server over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (e.g. for tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiError is the `{"error": "..."}` body every failure carries.
type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusNotFound {
			return domain.ErrNotFound
		}
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("server rejected request: %s", apiErr.Error)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ListAdventures fetches all adventures.
func (c *Client) ListAdventures(ctx context.Context) ([]domain.Adventure, error) {
	var all []domain.Adventure
	if err := c.do(ctx, http.MethodGet, "/api/adventures", nil, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// GetAdventure fetches one adventure by id.
func (c *Client) GetAdventure(ctx context.Context, id string) (*domain.Adventure, error) {
	var adv domain.Adventure
	if err := c.do(ctx, http.MethodGet, "/api/adventures/"+id, nil, &adv); err != nil {
		return nil, err
	}
	return &adv, nil
}

// CreateAdventure stores a new adventure and returns the created document.
func (c *Client) CreateAdventure(ctx context.Context, adv *domain.Adventure) (*domain.Adventure, error) {
	var created domain.Adventure
	if err := c.do(ctx, http.MethodPost, "/api/adventures", adv, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAdventure replaces the full document server-side (every field of the
// working copy is sent, matching the editor's explicit-save semantics).
func (c *Client) UpdateAdventure(ctx context.Context, id string, adv *domain.Adventure) (*domain.Adventure, error) {
	patch := domain.AdventurePatch{
		Title:       &adv.Title,
		Description: &adv.Description,
		Nodes:       &adv.Nodes,
	}
	var updated domain.Adventure
	if err := c.do(ctx, http.MethodPut, "/api/adventures/"+id, &patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAdventure removes the adventure.
func (c *Client) DeleteAdventure(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/adventures/"+id, nil, nil)
}
