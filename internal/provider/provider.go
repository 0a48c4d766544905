// Package provider implements the authenticated HTTP client for the
// external sports statistics API, the atomically-swapped API configuration
// snapshot it reads, and the reverse-geocoding collaborator.
package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/reeeeemo/mcp-sports/internal/errortypes"
	"github.com/reeeeemo/mcp-sports/internal/logger"
	"github.com/reeeeemo/mcp-sports/internal/registry"
	"github.com/reeeeemo/mcp-sports/internal/sports"
	"github.com/reeeeemo/mcp-sports/internal/telemetry"
)

const (
	defaultBaseURL           = "https://api.sportradar.com"
	defaultTimeout           = 30 * time.Second
	defaultRequestsPerMinute = 60
	retryDelay               = 500 * time.Millisecond
)

// Client issues authenticated GET requests to the statistics provider.
// It owns the ApiConfig snapshot: every outgoing request loads the current
// snapshot, and UpdateConfig replaces it wholesale.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cfg        atomic.Pointer[Config]
	limiter    *rate.Limiter
	metrics    *telemetry.MetricsCollector
	log        *logger.Logger
}

// ClientOptions configures a provider Client.
type ClientOptions struct {
	APIKey            string
	BaseURL           string        // defaults to the provider's production host
	Timeout           time.Duration // per-request bound, defaults to 30s
	RequestsPerMinute int
	Config            *Config // initial snapshot; DefaultConfig when nil
	Metrics           *telemetry.MetricsCollector
	Logger            *logger.Logger
	HTTPClient        *http.Client // overrides Timeout when set; used by tests
}

// NewClient creates a provider client with rate limiting and a bounded
// request timeout.
func NewClient(opts ClientOptions) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = defaultRequestsPerMinute
	}
	if opts.Metrics == nil {
		opts.Metrics = telemetry.NewMetricsCollector()
	}
	if opts.Logger == nil {
		opts.Logger = logger.New(nil)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		limiter:    rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60.0), 1),
		metrics:    opts.Metrics,
		log:        opts.Logger.WithContext("provider"),
	}

	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	c.cfg.Store(&cfg)

	return c
}

// Config returns the current API configuration snapshot.
func (c *Client) Config() Config {
	return *c.cfg.Load()
}

// UpdateConfig validates the candidate settings and atomically replaces the
// configuration snapshot. On any invalid field the prior snapshot is kept
// and the returned error names the field.
func (c *Client) UpdateConfig(language, accessLevel, format string) (Config, error) {
	for {
		current := c.cfg.Load()
		next, err := NormalizeConfig(*current, language, accessLevel, format)
		if err != nil {
			return *current, err
		}
		if c.cfg.CompareAndSwap(current, &next) {
			c.log.Info("API config updated: language=%s access_level=%s format=%s",
				next.Language, next.AccessLevel, next.Format)
			return next, nil
		}
	}
}

// BaseURL builds the provider base URL for a sport under the current
// configuration. Official leagues use the provider's /official/ tree.
func (c *Client) BaseURL(sport *registry.Sport) string {
	cfg := c.Config()
	if sport.Official {
		return fmt.Sprintf("%s/%s/official/%s/%s/%s",
			c.baseURL, sport.ID, cfg.AccessLevel, sport.Version, cfg.Language)
	}
	return fmt.Sprintf("%s/%s/%s/%s/%s",
		c.baseURL, sport.ID, cfg.AccessLevel, sport.Version, cfg.Language)
}

// Fetch issues one authenticated GET for the given sport and endpoint kind
// and returns the raw payload plus the wire format it was requested in.
// It never touches the cache. Transport failures are retried once; provider
// failure statuses are not.
func (c *Client) Fetch(ctx context.Context, sport *registry.Sport, kind sports.Kind, params map[string]string) ([]byte, string, error) {
	if c.apiKey == "" {
		return nil, "", errortypes.ConfigError(
			fmt.Errorf("no API key configured"),
			"cannot call provider without an API key")
	}

	ep, err := sport.Endpoint(kind)
	if err != nil {
		return nil, "", err
	}
	if err := ep.ValidateParams(params); err != nil {
		return nil, "", err
	}

	path, err := expandPath(ep.Path, params)
	if err != nil {
		return nil, "", err
	}

	cfg := c.Config()
	requestURL := c.BaseURL(sport) + path + "." + cfg.Format

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	requestURL += "?" + q.Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", errortypes.NetworkError(err, "rate limit wait interrupted")
	}

	c.metrics.IncrementCounter(telemetry.MetricProviderCalls, 1)
	c.log.Debug("Requesting %s %s for sport %s", kind, path, sport.ID)

	start := time.Now()
	resp, err := c.getWithRetry(ctx, requestURL)
	c.metrics.RecordDuration(telemetry.MetricProviderResponseTime, time.Since(start))
	if err != nil {
		c.metrics.IncrementCounter(telemetry.MetricProviderFailures, 1)
		return nil, "", errortypes.NetworkError(err, "provider request failed").
			WithField("sport", string(sport.ID)).
			WithField("kind", string(kind))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.IncrementCounter(telemetry.MetricProviderFailures, 1)
		return nil, "", errortypes.UpstreamError(err, "failed to read provider response").
			WithField("status", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.IncrementCounter(telemetry.MetricProviderFailures, 1)
		return nil, "", errortypes.UpstreamError(
			fmt.Errorf("provider returned status %d: %s", resp.StatusCode, truncate(body, 200)),
			"provider request rejected").
			WithField("status", resp.StatusCode).
			WithField("sport", string(sport.ID)).
			WithField("kind", string(kind))
	}

	return body, cfg.Format, nil
}

// getWithRetry performs a GET with a single retry on transient transport
// failure. Failure statuses come back as a response, never retried here.
func (c *Client) getWithRetry(ctx context.Context, requestURL string) (*http.Response, error) {
	resp, err := c.doGet(ctx, requestURL)
	if err == nil {
		return resp, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	c.metrics.IncrementCounter(telemetry.MetricProviderRetries, 1)
	c.log.Warn("Provider request failed, retrying once: %v", err)

	select {
	case <-time.After(retryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return c.doGet(ctx, requestURL)
}

func (c *Client) doGet(ctx context.Context, requestURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

// expandPath substitutes {name} placeholders in an endpoint path template.
// Every placeholder must be satisfied by a parameter.
func expandPath(template string, params map[string]string) (string, error) {
	expanded := template
	for k, v := range params {
		expanded = strings.ReplaceAll(expanded, "{"+k+"}", url.PathEscape(v))
	}
	if open := strings.Index(expanded, "{"); open >= 0 {
		end := strings.Index(expanded[open:], "}")
		name := expanded[open:]
		if end >= 0 {
			name = expanded[open+1 : open+end]
		}
		return "", errortypes.ValidationError(
			fmt.Errorf("no value for path parameter %q", name),
			"invalid request parameters")
	}
	return expanded, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
