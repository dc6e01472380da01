package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mark3labs/partsync/internal/hardware"
)

// Endpoint paths.
const (
	PathCPUs       = "/api/hardware/cpu"
	PathRecommend  = "/api/recommend"
	PathAdminLogin = "/api/admin/login"
	PathVerifyOTP  = "/api/admin/verify-otp"
	PathCatalogGet = "/admin/get/"
	PathCatalogAdd = "/admin/add/"
)

// ListCPUs fetches the CPU listing.
func (c *Client) ListCPUs(ctx context.Context) ([]hardware.CPU, error) {
	var cpus []hardware.CPU
	if err := c.getJSON(ctx, PathCPUs, &cpus); err != nil {
		return nil, fmt.Errorf("listing cpus: %w", err)
	}
	return cpus, nil
}

// Recommend posts a wizard snapshot and decodes the ranked results.
func (c *Client) Recommend(ctx context.Context, req hardware.RecommendRequest) ([]hardware.Recommendation, error) {
	resp, err := c.do(ctx, http.MethodPost, PathRecommend, req)
	if err != nil {
		return nil, fmt.Errorf("requesting recommendations: %w", err)
	}
	if !resp.ok() {
		return nil, fmt.Errorf("requesting recommendations: %w", resp.statusError())
	}

	var recs []hardware.Recommendation
	if err := json.Unmarshal(resp.body, &recs); err != nil {
		return nil, fmt.Errorf("requesting recommendations: %w: %v", ErrMalformed, err)
	}
	return recs, nil
}

// LoginResult is the backend's answer to a credential or code submission.
type LoginResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// AdminLogin submits admin credentials. A rejection is reported through the
// result, not as an error, whenever the backend answered with a readable body.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	return c.login(ctx, PathAdminLogin, map[string]string{"email": email, "password": password})
}

// VerifyOTP submits the one-time code for email.
func (c *Client) VerifyOTP(ctx context.Context, email, otp string) (*LoginResult, error) {
	return c.login(ctx, PathVerifyOTP, map[string]string{"email": email, "otp": otp})
}

func (c *Client) login(ctx context.Context, path string, body map[string]string) (*LoginResult, error) {
	resp, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := json.Unmarshal(resp.body, &result); err != nil {
		if !resp.ok() {
			return nil, resp.statusError()
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !resp.ok() {
		result.Success = false
	}
	return &result, nil
}

// Item is one catalog row with backend-defined columns.
type Item map[string]any

// ListCatalog fetches every item of a hardware kind.
func (c *Client) ListCatalog(ctx context.Context, kind hardware.Kind) ([]Item, error) {
	var items []Item
	if err := c.getJSON(ctx, PathCatalogGet+kind.String(), &items); err != nil {
		return nil, fmt.Errorf("listing %s catalog: %w", kind, err)
	}
	return items, nil
}

// AddCatalogItem creates an item of the given kind. Only fields that belong
// to the kind's form are sent.
func (c *Client) AddCatalogItem(ctx context.Context, kind hardware.Kind, fields map[string]string) (string, error) {
	body := make(map[string]string, len(fields))
	for k, v := range fields {
		if kind.HasField(k) {
			body[k] = v
		}
	}

	resp, err := c.do(ctx, http.MethodPost, PathCatalogAdd+kind.String(), body)
	if err != nil {
		return "", fmt.Errorf("adding %s: %w", kind, err)
	}
	if !resp.ok() {
		return "", fmt.Errorf("adding %s: %w", kind, resp.statusError())
	}
	return resp.message(), nil
}
