package platforms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"log-baseline/internal/credentials"
	"log-baseline/internal/shared/loggers"
	"log-baseline/internal/shared/ratelimits"
	"log-baseline/internal/shared/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	headerAPIKey = "DD-API-KEY"
	headerAppKey = "DD-APPLICATION-KEY"

	defaultMaxRetries = 3
	maxErrorBodyBytes = 512
)

// APIError is a non-2xx response from the platform.
type APIError struct {
	StatusCode int
	Body       string // first 512 bytes
	retryAfter string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// IsAuth reports whether the platform rejected the credentials.
func (e *APIError) IsAuth() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// apiClient sends authenticated JSON requests, retrying 429 (honouring
// Retry-After) and 5xx responses with exponential backoff.
type apiClient struct {
	baseURL     string
	creds       credentials.Credentials
	httpClient  *http.Client
	limiter     ratelimits.Limiter
	maxRetries  int
	backoffBase time.Duration
}

func (c *apiClient) doJSON(ctx context.Context, endpoint, method, path string, query url.Values, reqBody, dest any) error {
	ctx, span := tracing.Tracer.Start(ctx, "platform."+endpoint, trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", path),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		platformRequestDurationSeconds.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	err := c.doWithRetry(ctx, endpoint, method, path, query, reqBody, dest)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *apiClient) doWithRetry(ctx context.Context, endpoint, method, path string, query url.Values, reqBody, dest any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var payload []byte
	if reqBody != nil {
		var err error
		if payload, err = json.Marshal(reqBody); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	logger := loggers.Ctx(ctx)

	var lastErr *APIError
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			platformRetriesTotal.WithLabelValues(endpoint).Inc()
			wait := c.backoffDelay(attempt, lastErr)
			logger.Debug().
				Str(loggers.FieldEndpoint, endpoint).
				Int(loggers.FieldAttempt, attempt).
				Int(loggers.FieldHttpStatus, lastErr.StatusCode).
				Dur(loggers.FieldDuration, wait).
				Msg("retrying platform request")

			t := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		status, body, header, err := c.send(ctx, method, fullURL, payload)
		if err != nil {
			platformRequestsTotal.WithLabelValues(endpoint, "error").Inc()
			return err
		}
		platformRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()

		logger.Debug().
			Str(loggers.FieldEndpoint, endpoint).
			Int(loggers.FieldAttempt, attempt).
			Int(loggers.FieldHttpStatus, status).
			Msg("platform request completed")

		if status >= 200 && status < 300 {
			if dest == nil {
				return nil
			}
			if err := json.Unmarshal(body, dest); err != nil {
				return fmt.Errorf("decoding %s response: %w", endpoint, err)
			}
			return nil
		}

		bodyStr := string(body)
		if len(bodyStr) > maxErrorBodyBytes {
			bodyStr = bodyStr[:maxErrorBodyBytes]
		}
		apiErr := &APIError{StatusCode: status, Body: bodyStr}

		if status == http.StatusTooManyRequests {
			apiErr.retryAfter = header.Get("Retry-After")
			lastErr = apiErr
			continue
		}
		if status >= 500 {
			lastErr = apiErr
			continue
		}
		return apiErr
	}

	if lastErr == nil {
		return nil
	}
	return lastErr
}

func (c *apiClient) send(ctx context.Context, method, fullURL string, payload []byte) (int, []byte, http.Header, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return 0, nil, nil, err
	}
	req.Header.Set(headerAPIKey, c.creds.APIKey)
	req.Header.Set(headerAppKey, c.creds.AppKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}
	return resp.StatusCode, respBody, resp.Header, nil
}

// backoffDelay returns the wait before a retry: Retry-After seconds for a 429
// when present, otherwise base, 2*base, 4*base.
func (c *apiClient) backoffDelay(attempt int, lastErr *APIError) time.Duration {
	if lastErr != nil && lastErr.StatusCode == http.StatusTooManyRequests && lastErr.retryAfter != "" {
		if secs, err := strconv.Atoi(lastErr.retryAfter); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return c.backoffBase * time.Duration(1<<(attempt-1))
}
