package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reeeeemo/mcp-sports/internal/errortypes"
	"github.com/reeeeemo/mcp-sports/internal/telemetry"
)

func testGeocoder(upstream *httptest.Server) (*Geocoder, *telemetry.MetricsCollector) {
	metrics := telemetry.NewMetricsCollector()
	g := NewGeocoder(GeocoderOptions{
		BaseURL:   upstream.URL,
		UserAgent: "mcp-sports-test",
		Metrics:   metrics,
	})
	return g, metrics
}

func TestReverseGeocode(t *testing.T) {
	var gotQuery, gotUserAgent string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{"display_name": "Lambeau Field, Green Bay, Wisconsin, USA"}`))
	}))
	defer upstream.Close()

	g, _ := testGeocoder(upstream)

	address, err := g.ReverseGeocode(context.Background(), 44.5013, -88.0622)
	if err != nil {
		t.Fatalf("ReverseGeocode returned error: %v", err)
	}
	if address != "Lambeau Field, Green Bay, Wisconsin, USA" {
		t.Errorf("Unexpected address: %q", address)
	}

	// Nominatim requires an identifying User-Agent.
	if gotUserAgent != "mcp-sports-test" {
		t.Errorf("Expected test User-Agent, got %q", gotUserAgent)
	}
	for _, want := range []string{"lat=44.5013", "lon=-88.0622", "format=jsonv2"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("Expected %q in query %q", want, gotQuery)
		}
	}
}

func TestReverseGeocodeRejectsOutOfRangeCoordinates(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Request should not reach upstream for invalid coordinates")
	}))
	defer upstream.Close()

	g, _ := testGeocoder(upstream)

	if _, err := g.ReverseGeocode(context.Background(), 91, 0); !errortypes.IsValidationError(err) {
		t.Errorf("Expected validation error for lat 91, got %v", err)
	}
	if _, err := g.ReverseGeocode(context.Background(), 0, -181); !errortypes.IsValidationError(err) {
		t.Errorf("Expected validation error for lon -181, got %v", err)
	}
}

func TestReverseGeocodeNoAddress(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	g, metrics := testGeocoder(upstream)

	_, err := g.ReverseGeocode(context.Background(), 0, 0)
	if !errortypes.IsUpstreamError(err) {
		t.Errorf("Expected upstream error for missing display_name, got %v", err)
	}
	if metrics.GetCounter(telemetry.MetricGeocodeFailures) != 1 {
		t.Errorf("Expected 1 recorded failure, got %d", metrics.GetCounter(telemetry.MetricGeocodeFailures))
	}
}

func TestReverseGeocodeUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	g, _ := testGeocoder(upstream)

	_, err := g.ReverseGeocode(context.Background(), 0, 0)
	if !errortypes.IsUpstreamError(err) {
		t.Errorf("Expected upstream error for failure status, got %v", err)
	}
}
