// Package client talks to the courtside HTTP API.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/okian/courtside/internal/adapters/http/api"
	"github.com/okian/courtside/internal/domain/teams"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// Client wraps a resty client bound to one service.
type Client struct {
	http *resty.Client
}

// New creates a client for baseURL with a per-request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Health checks that the service answers /healthz.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	if resp.StatusCode() != StatusOK {
		return &APIError{Status: resp.StatusCode(), Code: "unhealthy", Message: resp.Status()}
	}
	return nil
}

// Teams lists the selectable franchises.
func (c *Client) Teams(ctx context.Context) ([]teams.Team, error) {
	var out []teams.Team
	if err := c.do(ctx, resty.MethodGet, "/api/teams", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PredictTeams runs the database path.
func (c *Client) PredictTeams(ctx context.Context, home, away string) (api.PredictionResponse, error) {
	var out api.PredictionResponse
	err := c.do(ctx, resty.MethodPost, "/api/predict/teams", api.TeamsRequest{Home: home, Away: away}, &out)
	return out, err
}

// PredictManual runs the manual path.
func (c *Client) PredictManual(ctx context.Context, req api.ManualRequest) (api.PredictionResponse, error) {
	var out api.PredictionResponse
	err := c.do(ctx, resty.MethodPost, "/api/predict/manual", req, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var apiErr api.ErrorResponse
	req := c.http.R().
		SetContext(ctx).
		SetResult(out).
		SetError(&apiErr)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	if resp.IsError() {
		if apiErr.Message == "" {
			apiErr.Message = resp.String()
		}
		return &APIError{Status: resp.StatusCode(), Code: apiErr.Code, Message: apiErr.Message}
	}
	return nil
}
