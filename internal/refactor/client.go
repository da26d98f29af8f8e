// Package refactor talks to the remote code-refactoring endpoint.
package refactor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Rorical/RoriFactor/internal/models"
)

// maxErrorBody bounds how much of a failed response is kept in the error
const maxErrorBody = 512

// Client POSTs source code to a single fixed endpoint. It never retries and
// sets no timeout of its own; the caller's context is the only deadline.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// wireResult shadows the embedded reformated_code so a missing field can be
// told apart from an empty one.
type wireResult struct {
	models.RefactorResult
	Code *string `json:"reformated_code"`
}

// Refactor sends one request and decodes the response
func (c *Client) Refactor(ctx context.Context, req models.RefactorRequest) (*models.RefactorResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Kind:   KindStatus,
			Status: resp.StatusCode,
			Body:   truncate(strings.TrimSpace(string(body)), maxErrorBody),
		}
	}

	var wire wireResult
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &Error{Kind: KindDecode, Err: err}
	}
	if wire.Code == nil {
		return nil, &Error{Kind: KindDecode, Err: ErrMissingCode}
	}

	result := wire.RefactorResult
	result.ReformattedCode = *wire.Code
	return &result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
