// Package energyapi is a typed client for the energy statistics backend.
package energyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Backend endpoints.
const (
	PathSummary      = "/api/summary"
	PathHourlyAvg    = "/api/hourly-avg"
	PathDailyAvg     = "/api/daily-avg"
	PathTopConsumers = "/api/top-consumers"
	PathModelInfo    = "/api/model-info"
	PathPredict      = "/api/predict"
)

const maxErrorBody = 64 << 10

// Client wraps interactions with the statistics backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a client. A zero timeout leaves requests unbounded
// apart from their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient swaps the underlying transport, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// Summary fetches the headline statistics.
func (c *Client) Summary(ctx context.Context) (SummaryStats, error) {
	var out SummaryStats
	if err := c.getJSON(ctx, PathSummary, &out); err != nil {
		return SummaryStats{}, err
	}
	return out, nil
}

// HourlyAverages fetches the 24-hour profile.
func (c *Client) HourlyAverages(ctx context.Context) (HourlySeries, error) {
	var out HourlySeries
	if err := c.getJSON(ctx, PathHourlyAvg, &out); err != nil {
		return HourlySeries{}, err
	}
	if err := out.Validate(); err != nil {
		return HourlySeries{}, fmt.Errorf("%s: %w", PathHourlyAvg, err)
	}
	return out, nil
}

// DailyAverages fetches per-day averages.
func (c *Client) DailyAverages(ctx context.Context) (DailySeries, error) {
	var out DailySeries
	if err := c.getJSON(ctx, PathDailyAvg, &out); err != nil {
		return DailySeries{}, err
	}
	if err := out.Validate(); err != nil {
		return DailySeries{}, fmt.Errorf("%s: %w", PathDailyAvg, err)
	}
	return out, nil
}

// TopConsumers fetches the ranked room list.
func (c *Client) TopConsumers(ctx context.Context) ([]ConsumerEntry, error) {
	var out []ConsumerEntry
	if err := c.getJSON(ctx, PathTopConsumers, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ModelInfo fetches prediction model metadata.
func (c *Client) ModelInfo(ctx context.Context) (ModelInfo, error) {
	var out ModelInfo
	if err := c.getJSON(ctx, PathModelInfo, &out); err != nil {
		return ModelInfo{}, err
	}
	return out, nil
}

// Predict posts a prediction request.
func (c *Client) Predict(ctx context.Context, in PredictionRequest) (PredictionResponse, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return PredictionResponse{}, err
	}
	var out PredictionResponse
	if err := c.do(ctx, http.MethodPost, PathPredict, bytes.NewReader(body), &out); err != nil {
		return PredictionResponse{}, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	return c.do(ctx, http.MethodGet, path, nil, dest)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, dest any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("energyapi: %s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Endpoint: path, StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: %w: %v", path, ErrMalformedResponse, err)
	}
	return nil
}

// errorMessage reads {"error": "..."} bodies and falls back to RFC7807 detail.
func errorMessage(raw []byte) string {
	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if len(raw) == 0 || json.Unmarshal(raw, &payload) != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Detail
}
