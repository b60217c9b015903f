package postman

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.getpostman.com"

// Client is a read-only Postman API client. Authentication uses a static
// API key sent in the X-Api-Key header; there is no retry or rate
// limiting, a failed call fails the operation.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(c *Client)

// NewClient creates a Postman API client with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(base, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// get performs an authenticated GET against the API and returns the raw
// response body, decoding it into out when out is non-nil.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("GET %s returned %s: %s", path, resp.Status, summarize(body))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return nil, fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return body, nil
}

// summarize trims an error body for inclusion in an error message.
func summarize(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}

// FindWorkspace lists all workspaces and returns the one whose name
// matches exactly. A missing workspace is not an error: it returns
// (nil, nil) so the caller can degrade to an unscoped collection search.
func (c *Client) FindWorkspace(ctx context.Context, name string) (*Workspace, error) {
	var list WorkspaceListResponse
	if _, err := c.get(ctx, "/workspaces", nil, &list); err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	for i := range list.Workspaces {
		if list.Workspaces[i].Name == name {
			return &list.Workspaces[i], nil
		}
	}
	return nil, nil
}

// FindCollection lists collections, scoped to workspaceID when non-empty,
// and returns the one whose name matches exactly. A missing collection is
// fatal and the error names it.
func (c *Client) FindCollection(ctx context.Context, name, workspaceID string) (*CollectionSummary, error) {
	query := url.Values{}
	if workspaceID != "" {
		query.Set("workspace", workspaceID)
	}
	var list CollectionListResponse
	if _, err := c.get(ctx, "/collections", query, &list); err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	for i := range list.Collections {
		if list.Collections[i].Name == name {
			return &list.Collections[i], nil
		}
	}
	return nil, fmt.Errorf("collection %q not found", name)
}

// FetchCollection retrieves the full collection document for uid. It
// returns both the decoded collection and the raw response body so the
// document can be persisted verbatim.
func (c *Client) FetchCollection(ctx context.Context, uid string) (*Collection, []byte, error) {
	var doc CollectionResponse
	raw, err := c.get(ctx, "/collections/"+uid, nil, &doc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch collection %s: %w", uid, err)
	}
	return &doc.Collection, raw, nil
}
