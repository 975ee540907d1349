// Package platforms talks to the observability platform REST API.
package platforms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"log-baseline/internal/credentials"
	"log-baseline/internal/models"
	"log-baseline/internal/shared/ratelimits"
)

const (
	endpointAggregate   = "logs_aggregate"
	endpointListLogs    = "logs_search"
	endpointTestResults = "synthetics_results"

	pathAggregate    = "/api/v2/logs/analytics/aggregate"
	pathListLogs     = "/api/v2/logs/events/search"
	pathTestResultsF = "/api/v1/synthetics/tests/%s/results"

	// SortTimestampDesc orders log listings newest first.
	SortTimestampDesc = "-timestamp"
)

// LogPlatform issues aggregate and list queries against the log store.
//
//go:generate mockgen -source=datadog_client.go -destination=./mocks/datadog_client_mock.go -package=mocks
type LogPlatform interface {
	// Aggregate returns the number of logs matching query within r.
	Aggregate(ctx context.Context, query string, r models.TimeRange) (int64, error)
	// ListLogs returns one page of logs matching query within r, newest first.
	// An empty cursor requests the first page.
	ListLogs(ctx context.Context, query string, r models.TimeRange, cursor string, limit int) (*models.LogPage, error)
}

// SyntheticPlatform reads synthetic test executions.
type SyntheticPlatform interface {
	// TestResults returns the results of testID checked within [fromMs, toMs].
	TestResults(ctx context.Context, testID string, fromMs, toMs int64) (*SyntheticPage, error)
}

// Client is a platform client bound to one environment's site and credentials.
type Client interface {
	LogPlatform
	SyntheticPlatform
}

// SyntheticPage is one response of the synthetic results endpoint. The next
// page is requested with to_ts just below LastTimestampFetched.
type SyntheticPage struct {
	Results              []models.SyntheticResult
	LastTimestampFetched int64
}

// Option configures a Client.
type Option func(*apiClient)

// WithBaseURL overrides the https://api.<site> base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *apiClient) { c.baseURL = baseURL }
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *apiClient) { c.httpClient.Timeout = d }
}

// WithLimiter shares a rate limiter between clients.
func WithLimiter(l ratelimits.Limiter) Option {
	return func(c *apiClient) { c.limiter = l }
}

// WithRetryBackoff sets the first retry delay; later retries double it.
func WithRetryBackoff(base time.Duration) Option {
	return func(c *apiClient) { c.backoffBase = base }
}

// WithMaxRetries sets how many times 429 and 5xx responses are retried.
// Negative values disable retries.
func WithMaxRetries(n int) Option {
	return func(c *apiClient) { c.maxRetries = max(n, 0) }
}

type datadogClient struct {
	api *apiClient
}

// NewDatadogClient returns a client for site authenticated with creds.
func NewDatadogClient(site string, creds credentials.Credentials, opts ...Option) Client {
	api := &apiClient{
		baseURL:     "https://api." + site,
		creds:       creds,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		limiter:     ratelimits.Unlimited(),
		maxRetries:  defaultMaxRetries,
		backoffBase: time.Second,
	}
	for _, opt := range opts {
		opt(api)
	}
	return &datadogClient{api: api}
}

type logsQueryFilter struct {
	Query string `json:"query"`
	From  string `json:"from"`
	To    string `json:"to"`
}

func newFilter(query string, r models.TimeRange) logsQueryFilter {
	return logsQueryFilter{
		Query: query,
		From:  strconv.FormatInt(r.StartMs, 10),
		To:    strconv.FormatInt(r.EndMs, 10),
	}
}

type aggregateCompute struct {
	Aggregation string `json:"aggregation"`
	Type        string `json:"type"`
}

type aggregateRequest struct {
	Compute []aggregateCompute `json:"compute"`
	Filter  logsQueryFilter    `json:"filter"`
}

type aggregateResponse struct {
	Data struct {
		Buckets []struct {
			Computes map[string]any `json:"computes"`
		} `json:"buckets"`
	} `json:"data"`
}

func (c *datadogClient) Aggregate(ctx context.Context, query string, r models.TimeRange) (int64, error) {
	req := aggregateRequest{
		Compute: []aggregateCompute{{Aggregation: "count", Type: "total"}},
		Filter:  newFilter(query, r),
	}

	var resp aggregateResponse
	if err := c.api.doJSON(ctx, endpointAggregate, http.MethodPost, pathAggregate, nil, req, &resp); err != nil {
		return 0, fmt.Errorf("aggregate logs: %w", err)
	}

	if len(resp.Data.Buckets) == 0 {
		return 0, nil
	}
	switch v := resp.Data.Buckets[0].Computes["c0"].(type) {
	case float64:
		return int64(v), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("aggregate logs: unexpected c0 value %v", v)
	}
}

type listRequest struct {
	Filter logsQueryFilter `json:"filter"`
	Sort   string          `json:"sort"`
	Page   listPage        `json:"page"`
}

type listPage struct {
	Limit  int    `json:"limit"`
	Cursor string `json:"cursor,omitempty"`
}

type listResponse struct {
	Data []struct {
		ID         string         `json:"id"`
		Attributes map[string]any `json:"attributes"`
	} `json:"data"`
	Meta struct {
		Page struct {
			After string `json:"after"`
		} `json:"page"`
	} `json:"meta"`
}

func (c *datadogClient) ListLogs(ctx context.Context, query string, r models.TimeRange, cursor string, limit int) (*models.LogPage, error) {
	req := listRequest{
		Filter: newFilter(query, r),
		Sort:   SortTimestampDesc,
		Page:   listPage{Limit: limit, Cursor: cursor},
	}

	var resp listResponse
	if err := c.api.doJSON(ctx, endpointListLogs, http.MethodPost, pathListLogs, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	page := &models.LogPage{
		Entries:    make([]models.LogEntry, 0, len(resp.Data)),
		NextCursor: resp.Meta.Page.After,
	}
	for _, d := range resp.Data {
		entry := models.LogEntry{ID: d.ID, Attributes: d.Attributes}
		if ts, ok := d.Attributes["timestamp"].(string); ok {
			if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
				entry.Timestamp = parsed
			}
		}
		page.Entries = append(page.Entries, entry)
	}
	return page, nil
}

type testResultsResponse struct {
	LastTimestampFetched float64 `json:"last_timestamp_fetched"`
	Results              []struct {
		ResultID  string  `json:"result_id"`
		CheckTime float64 `json:"check_time"`
		Result    struct {
			Passed bool `json:"passed"`
		} `json:"result"`
	} `json:"results"`
}

func (c *datadogClient) TestResults(ctx context.Context, testID string, fromMs, toMs int64) (*SyntheticPage, error) {
	query := url.Values{}
	query.Set("from_ts", strconv.FormatInt(fromMs, 10))
	query.Set("to_ts", strconv.FormatInt(toMs, 10))

	var resp testResultsResponse
	path := fmt.Sprintf(pathTestResultsF, url.PathEscape(testID))
	if err := c.api.doJSON(ctx, endpointTestResults, http.MethodGet, path, query, nil, &resp); err != nil {
		return nil, fmt.Errorf("synthetic test %s results: %w", testID, err)
	}

	page := &SyntheticPage{
		Results:              make([]models.SyntheticResult, 0, len(resp.Results)),
		LastTimestampFetched: int64(resp.LastTimestampFetched),
	}
	for _, r := range resp.Results {
		page.Results = append(page.Results, models.SyntheticResult{
			ResultID:  r.ResultID,
			Passed:    r.Result.Passed,
			CheckTime: int64(r.CheckTime),
		})
	}
	return page, nil
}
