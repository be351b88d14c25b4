package nps

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apierrors "github.com/parkscout/nps-mcp-server/internal/errors"
	"github.com/parkscout/nps-mcp-server/metrics"
	"github.com/parkscout/nps-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// DefaultBaseURL is the NPS API endpoint.
	DefaultBaseURL = "https://developer.nps.gov/api/v1"

	// DefaultTimeout for API requests.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is the default user agent for NPS API requests.
	DefaultUserAgent = "nps-mcp-server/1.0 (github.com/parkscout/nps-mcp-server)"
)

// Client provides access to the NPS API. It holds no state beyond its
// configuration; every call issues exactly one GET with no retries and no
// caching.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL overrides the NPS API endpoint. Used by tests to point at a
// stub upstream.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithAPIKey sets the X-Api-Key credential.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithUserAgent sets a custom User-Agent header value.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new NPS API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig creates a client from loaded configuration.
func NewClientFromConfig(cfg *Config, logger *slog.Logger) *Client {
	return NewClient(
		WithBaseURL(cfg.BaseURL),
		WithAPIKey(cfg.APIKey),
		WithUserAgent(cfg.UserAgent),
		WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		WithLogger(logger),
	)
}

// ParkQuery holds the query parameters for GET /parks.
type ParkQuery struct {
	StateCode  string
	Q          string
	Limit      int
	Start      int
	Activities string
	ParkCode   string
}

// AlertQuery holds the query parameters for GET /alerts.
type AlertQuery struct {
	ParkCode string
	Limit    int
	Start    int
	Q        string
}

// GetParks fetches park records matching the query.
func (c *Client) GetParks(ctx context.Context, q ParkQuery) (*ParksResponse, error) {
	params := url.Values{}
	setIfPresent(params, "stateCode", q.StateCode)
	setIfPresent(params, "q", q.Q)
	setIfPresent(params, "activities", q.Activities)
	setIfPresent(params, "parkCode", q.ParkCode)
	setPagination(params, q.Limit, q.Start)

	var resp ParksResponse
	if err := c.doGet(ctx, "/parks", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAlerts fetches alert records matching the query.
func (c *Client) GetAlerts(ctx context.Context, q AlertQuery) (*AlertsResponse, error) {
	params := url.Values{}
	setIfPresent(params, "parkCode", q.ParkCode)
	setIfPresent(params, "q", q.Q)
	setPagination(params, q.Limit, q.Start)

	var resp AlertsResponse
	if err := c.doGet(ctx, "/alerts", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetVisitorCenters fetches visitor centers for a park. Not wired to any
// tool; kept for parity with the upstream API surface.
func (c *Client) GetVisitorCenters(ctx context.Context, parkCode string, limit, start int) (*VisitorCentersResponse, error) {
	params := url.Values{}
	setIfPresent(params, "parkCode", parkCode)
	setPagination(params, limit, start)

	var resp VisitorCentersResponse
	if err := c.doGet(ctx, "/visitorcenters", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCampgrounds fetches campgrounds for a park. Not wired to any tool.
func (c *Client) GetCampgrounds(ctx context.Context, parkCode string, limit, start int) (*CampgroundsResponse, error) {
	params := url.Values{}
	setIfPresent(params, "parkCode", parkCode)
	setPagination(params, limit, start)

	var resp CampgroundsResponse
	if err := c.doGet(ctx, "/campgrounds", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetEvents fetches events for a park. Not wired to any tool.
func (c *Client) GetEvents(ctx context.Context, parkCode string, limit, start int) (*EventsResponse, error) {
	params := url.Values{}
	setIfPresent(params, "parkCode", parkCode)
	setPagination(params, limit, start)

	var resp EventsResponse
	if err := c.doGet(ctx, "/events", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doGet performs one GET against the NPS API and decodes the JSON body into
// result. Failures are logged with diagnostic context and returned; there is
// no retry. A 429 gets its own log line but propagates like any other error.
func (c *Client) doGet(ctx context.Context, endpoint string, params url.Values, result any) error {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	ctx, span := tracing.StartSpan(ctx, "nps.api"+endpoint)
	defer span.End()
	span.SetAttributes(attribute.String("nps.api.endpoint", endpoint))

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &apierrors.UpstreamError{Endpoint: endpoint, Message: "failed to create request: " + err.Error()}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamCall(endpoint, time.Since(start).Seconds(), false)
		c.logger.Error("NPS API request failed, no response",
			"endpoint", endpoint,
			"error", err)
		return &apierrors.UpstreamError{Endpoint: endpoint, Message: err.Error()}
	}

	body, err := readAndClose(resp)
	if err != nil {
		metrics.RecordUpstreamCall(endpoint, time.Since(start).Seconds(), false)
		c.logger.Error("Failed to read NPS API response",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"error", err)
		return &apierrors.UpstreamError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: "failed to read response: " + err.Error()}
	}

	duration := time.Since(start).Seconds()
	span.SetAttributes(attribute.Int("nps.api.status", resp.StatusCode))

	if resp.StatusCode == http.StatusTooManyRequests {
		metrics.UpstreamRateLimited.Inc()
		metrics.RecordUpstreamCall(endpoint, duration, false)
		c.logger.Warn("NPS API rate limit hit (429), not retrying",
			"endpoint", endpoint,
			"body", truncate(string(body), 200))
		return &apierrors.UpstreamError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: "rate limited by NPS API"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordUpstreamCall(endpoint, duration, false)
		c.logger.Error("NPS API returned error status",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"body", truncate(string(body), 500))
		return &apierrors.UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    truncate(string(body), 500),
		}
	}

	if err := json.Unmarshal(body, result); err != nil {
		metrics.RecordUpstreamCall(endpoint, duration, false)
		c.logger.Error("Failed to parse NPS API response",
			"endpoint", endpoint,
			"error", err)
		return &apierrors.UpstreamError{Endpoint: endpoint, StatusCode: resp.StatusCode, Message: "failed to parse response: " + err.Error()}
	}

	metrics.RecordUpstreamCall(endpoint, duration, true)
	return nil
}

// setIfPresent adds a query parameter only when the value is non-empty,
// passing it through unmodified.
func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

// setPagination adds limit/start when set. The limit clamp happens in the
// tool layer before the query reaches the gateway.
func setPagination(params url.Values, limit, start int) {
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if start > 0 {
		params.Set("start", strconv.Itoa(start))
	}
}

// readAndClose reads the response body and closes it.
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
