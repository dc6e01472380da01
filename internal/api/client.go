// Package api provides an HTTP client for the PartSync backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/partsync/internal/logger"
)

// RequestIDHeader carries a per-request id so backend logs can be matched
// with client logs.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is read for messages.
const maxErrorBody = 64 << 10

var (
	// ErrTransport wraps failures to reach the backend at all.
	ErrTransport = errors.New("backend unreachable")
	// ErrMalformed wraps responses whose body could not be decoded.
	ErrMalformed = errors.New("malformed response")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.Code)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Message)
}

// Client is an HTTP client for the backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the backend at baseURL. Requests use the
// transport's default timeouts; callers bound them with their context.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// response is a fully read HTTP response.
type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// message extracts a "message" or "error" field from a JSON body.
func (r *response) message() string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(r.body, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

func (r *response) statusError() *StatusError {
	return &StatusError{Code: r.status, Message: r.message()}
}

// do performs a request and reads the whole body. Only transport failures
// are returned as errors; status handling is left to the caller.
func (c *Client) do(ctx context.Context, method, path string, body any) (*response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("api: %s %s id=%s", method, path, reqID)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("api: %s %s id=%s failed: %v", method, path, reqID, err)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	limit := int64(-1)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		limit = maxErrorBody
	}
	var data []byte
	if limit > 0 {
		data, err = io.ReadAll(io.LimitReader(resp.Body, limit))
	} else {
		data, err = io.ReadAll(resp.Body)
	}
	if err != nil {
		logger.Warn("api: %s %s id=%s reading body: %v", method, path, reqID, err)
		return nil, fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}

	logger.Debug("api: %s %s id=%s status=%d bytes=%d", method, path, reqID, resp.StatusCode, len(data))
	return &response{status: resp.StatusCode, body: data}, nil
}

// getJSON performs a GET and decodes a 2xx body into result.
func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return resp.statusError()
	}
	if err := json.Unmarshal(resp.body, result); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
