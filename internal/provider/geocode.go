package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/reeeeemo/mcp-sports/internal/errortypes"
	"github.com/reeeeemo/mcp-sports/internal/logger"
	"github.com/reeeeemo/mcp-sports/internal/telemetry"
)

const (
	defaultGeocoderBaseURL   = "https://nominatim.openstreetmap.org"
	defaultGeocoderUserAgent = "mcp-sports/1.0"
)

// Geocoder resolves coordinates into human-readable addresses using the
// Nominatim reverse-geocoding service. Nominatim requires an identifying
// User-Agent on every request.
type Geocoder struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	metrics    *telemetry.MetricsCollector
	log        *logger.Logger
}

// GeocoderOptions configures a Geocoder.
type GeocoderOptions struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	Metrics    *telemetry.MetricsCollector
	Logger     *logger.Logger
	HTTPClient *http.Client
}

// NewGeocoder creates a reverse-geocoding client.
func NewGeocoder(opts GeocoderOptions) *Geocoder {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultGeocoderBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultGeocoderUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
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

	return &Geocoder{
		httpClient: httpClient,
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		metrics:    opts.Metrics,
		log:        opts.Logger.WithContext("geocoder"),
	}
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseGeocode resolves a latitude/longitude pair into a display address.
func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	if lat < -90 || lat > 90 {
		return "", errortypes.ValidationError(
			fmt.Errorf("latitude %v out of range [-90, 90]", lat),
			"invalid coordinates").WithField("field", "lat")
	}
	if lon < -180 || lon > 180 {
		return "", errortypes.ValidationError(
			fmt.Errorf("longitude %v out of range [-180, 180]", lon),
			"invalid coordinates").WithField("field", "lon")
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%v", lat))
	q.Set("lon", fmt.Sprintf("%v", lon))
	q.Set("format", "jsonv2")
	requestURL := g.baseURL + "/reverse?" + q.Encode()

	g.metrics.IncrementCounter(telemetry.MetricGeocodeCalls, 1)
	g.log.Debug("Reverse geocoding (%v, %v)", lat, lon)

	resp, err := g.getWithRetry(ctx, requestURL)
	if err != nil {
		g.metrics.IncrementCounter(telemetry.MetricGeocodeFailures, 1)
		return "", errortypes.NetworkError(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		g.metrics.IncrementCounter(telemetry.MetricGeocodeFailures, 1)
		return "", errortypes.UpstreamError(err, "failed to read geocoder response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.metrics.IncrementCounter(telemetry.MetricGeocodeFailures, 1)
		return "", errortypes.UpstreamError(
			fmt.Errorf("geocoder returned status %d: %s", resp.StatusCode, truncate(body, 200)),
			"geocoding request rejected").WithField("status", resp.StatusCode)
	}

	var decoded nominatimResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		g.metrics.IncrementCounter(telemetry.MetricGeocodeFailures, 1)
		return "", errortypes.ParseError(err, "failed to decode geocoder response")
	}
	if decoded.DisplayName == "" {
		g.metrics.IncrementCounter(telemetry.MetricGeocodeFailures, 1)
		return "", errortypes.UpstreamError(
			fmt.Errorf("no address found for (%v, %v)", lat, lon),
			"geocoder returned no address")
	}

	return decoded.DisplayName, nil
}

func (g *Geocoder) getWithRetry(ctx context.Context, requestURL string) (*http.Response, error) {
	resp, err := g.doGet(ctx, requestURL)
	if err == nil {
		return resp, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	g.log.Warn("Geocoder request failed, retrying once: %v", err)
	select {
	case <-time.After(retryDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return g.doGet(ctx, requestURL)
}

func (g *Geocoder) doGet(ctx context.Context, requestURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", g.userAgent)
	return g.httpClient.Do(req)
}
