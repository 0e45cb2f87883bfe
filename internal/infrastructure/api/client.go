package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"bookfast-web/config"
	"bookfast-web/pkg/metrics"

	"github.com/sirupsen/logrus"
)

const maxErrorBody = 64 << 10

// Client talks to the salon booking REST API on behalf of a user
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        *logrus.Logger
	metrics    *metrics.Metrics
}

// NewClient creates a client for the API rooted at cfg.BaseURL. m may be nil.
func NewClient(cfg config.APIConfig, log *logrus.Logger, m *metrics.Metrics) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	log.Infof("Booking API client configured (base=%s timeout=%s)", base.String(), cfg.Timeout)

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log:     log,
		metrics: m,
	}, nil
}

func (c *Client) Get(ctx context.Context, token, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, token, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, token, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, token, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, token, path string) error {
	return c.do(ctx, http.MethodDelete, token, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, token, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")})
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	label := routeLabel(path)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe(method, label, start, resp, err)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.log.Warnf("Failed to reach booking API %s %s: %+v", method, label, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.log.Warnf("Failed to decode booking API response %s %s: %+v", method, label, err)
			return fmt.Errorf("%w: failed to decode response: %v", ErrUpstream, err)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Status: resp.StatusCode, Message: ErrorMessage(raw)}
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Warnf("Booking API %s %s returned %d: %s", method, label, resp.StatusCode, string(raw))
		return fmt.Errorf("%w: unexpected status code %d", ErrUpstream, resp.StatusCode)
	}
}

func (c *Client) observe(method, label string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "error"
	if err == nil {
		outcome = strconv.Itoa(resp.StatusCode)
	}
	c.metrics.UpstreamRequestsTotal.WithLabelValues(method, label, outcome).Inc()
	c.metrics.UpstreamDuration.WithLabelValues(method, label).Observe(time.Since(start).Seconds())
}

// routeLabel replaces numeric path segments so metric labels stay bounded
func routeLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range parts {
		if _, err := strconv.ParseInt(p, 10, 64); err == nil {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}

// ErrorMessage extracts a human readable message from an error body. The API
// answers with {"error": ...}, {"detail": ...}, a list of messages, or a map
// of field names to message lists.
func ErrorMessage(raw []byte) string {
	const fallback = "Zahtjev nije uspio."

	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		if msg := firstString(list); msg != "" {
			return msg
		}
		return fallback
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		if s := strings.TrimSpace(string(raw)); s != "" && len(s) < 200 {
			return s
		}
		return fallback
	}

	for _, key := range []string{"error", "detail", "non_field_errors"} {
		if msg := firstString(fields[key]); msg != "" {
			return msg
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if msg := firstString(fields[k]); msg != "" {
			return msg
		}
	}
	return fallback
}

func firstString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		for _, item := range t {
			if s := firstString(item); s != "" {
				return s
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if s := firstString(t[k]); s != "" {
				return s
			}
		}
	}
	return ""
}
