package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/reeeeemo/mcp-sports/internal/errortypes"
	"github.com/reeeeemo/mcp-sports/internal/registry"
	"github.com/reeeeemo/mcp-sports/internal/sports"
	"github.com/reeeeemo/mcp-sports/internal/telemetry"
)

func testClient(t *testing.T, upstream *httptest.Server) (*Client, *telemetry.MetricsCollector) {
	t.Helper()
	metrics := telemetry.NewMetricsCollector()
	client := NewClient(ClientOptions{
		APIKey:            "test-key",
		BaseURL:           upstream.URL,
		RequestsPerMinute: 6000,
		Metrics:           metrics,
	})
	return client, metrics
}

func mustResolve(t *testing.T, name string) *registry.Sport {
	t.Helper()
	sp, err := registry.Resolve(name)
	if err != nil {
		t.Fatalf("Resolve(%q) returned error: %v", name, err)
	}
	return sp
}

func TestFetchBuildsProviderURL(t *testing.T) {
	var gotPath, gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"id": "sr:game:1"}`))
	}))
	defer upstream.Close()

	client, _ := testClient(t, upstream)
	nfl := mustResolve(t, "nfl")

	body, format, err := client.Fetch(context.Background(), nfl, sports.KindGameStats,
		map[string]string{"game_id": "sr:game:1"})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if format != "json" {
		t.Errorf("Expected json format, got %q", format)
	}
	if len(body) == 0 {
		t.Error("Expected non-empty body")
	}

	// Official league: /{sport}/official/{access}/{version}/{lang}/{path}.{format}
	want := "/nfl/official/trial/v7/en/games/sr:game:1/statistics.json"
	if gotPath != want {
		t.Errorf("Expected path %q, got %q", want, gotPath)
	}
	if !strings.Contains(gotQuery, "api_key=test-key") {
		t.Errorf("Expected api_key in query, got %q", gotQuery)
	}
}

func TestFetchNonOfficialURL(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"season": {"id": "s1"}}`))
	}))
	defer upstream.Close()

	client, _ := testClient(t, upstream)
	golf := mustResolve(t, "golf")

	_, _, err := client.Fetch(context.Background(), golf, sports.KindTournamentList,
		map[string]string{"year": "2024"})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	want := "/golf/trial/v3/en/tournaments/2024/schedule.json"
	if gotPath != want {
		t.Errorf("Expected path %q, got %q", want, gotPath)
	}
}

func TestFetchRequiresAPIKey(t *testing.T) {
	client := NewClient(ClientOptions{BaseURL: "http://localhost:0"})
	nfl := mustResolve(t, "nfl")

	_, _, err := client.Fetch(context.Background(), nfl, sports.KindLeagueInfo, nil)
	if !errortypes.IsConfigError(err) {
		t.Errorf("Expected config error without API key, got %v", err)
	}
}

func TestFetchValidatesParams(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Request should not reach upstream for invalid params")
	}))
	defer upstream.Close()

	client, _ := testClient(t, upstream)
	nfl := mustResolve(t, "nfl")

	_, _, err := client.Fetch(context.Background(), nfl, sports.KindGameStats, nil)
	if !errortypes.IsValidationError(err) {
		t.Errorf("Expected validation error for missing game_id, got %v", err)
	}

	_, _, err = client.Fetch(context.Background(), nfl, sports.KindTournamentInfo, nil)
	if !errortypes.IsUnsupportedSportError(err) {
		t.Errorf("Expected unsupported_sport error for NFL tournamentinfo, got %v", err)
	}
}

func TestFetchDoesNotRetryOnFailureStatus(t *testing.T) {
	var calls int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer upstream.Close()

	client, metrics := testClient(t, upstream)
	nfl := mustResolve(t, "nfl")

	_, _, err := client.Fetch(context.Background(), nfl, sports.KindLeagueInfo, nil)
	if !errortypes.IsUpstreamError(err) {
		t.Fatalf("Expected upstream error, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("Expected 1 upstream call for a failure status, got %d", n)
	}
	if metrics.GetCounter(telemetry.MetricProviderRetries) != 0 {
		t.Error("Expected no retries on a failure status")
	}
	if metrics.GetCounter(telemetry.MetricProviderFailures) != 1 {
		t.Errorf("Expected 1 recorded failure, got %d", metrics.GetCounter(telemetry.MetricProviderFailures))
	}
}

func TestFetchRetriesOnceOnTransportError(t *testing.T) {
	// An upstream that is already closed produces a connection error on
	// every attempt.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	client, metrics := testClient(t, upstream)
	nfl := mustResolve(t, "nfl")

	_, _, err := client.Fetch(context.Background(), nfl, sports.KindLeagueInfo, nil)
	if !errortypes.IsNetworkError(err) {
		t.Fatalf("Expected network error, got %v", err)
	}
	if n := metrics.GetCounter(telemetry.MetricProviderRetries); n != 1 {
		t.Errorf("Expected exactly 1 retry on transport error, got %d", n)
	}
}

func TestUpdateConfigRejectsInvalidValues(t *testing.T) {
	client := NewClient(ClientOptions{APIKey: "test-key"})

	before := client.Config()

	_, err := client.UpdateConfig("", "blah", "")
	if !errortypes.IsValidationError(err) {
		t.Fatalf("Expected validation error for bad access_level, got %v", err)
	}
	if client.Config() != before {
		t.Error("Expected config unchanged after rejected update")
	}

	_, err = client.UpdateConfig("de", "", "csv")
	if !errortypes.IsValidationError(err) {
		t.Fatalf("Expected validation error for bad format, got %v", err)
	}
	// A rejected update is all-or-nothing: the valid language field must
	// not have been applied.
	if client.Config().Language != before.Language {
		t.Errorf("Expected language unchanged after rejected update, got %q", client.Config().Language)
	}
}

func TestUpdateConfigAppliesNormalizedValues(t *testing.T) {
	client := NewClient(ClientOptions{APIKey: "test-key"})

	cfg, err := client.UpdateConfig("DE", "Production", "XML")
	if err != nil {
		t.Fatalf("UpdateConfig returned error: %v", err)
	}
	if cfg.Language != "de" || cfg.AccessLevel != AccessLevelProduction || cfg.Format != sports.FormatXML {
		t.Errorf("Unexpected normalized config: %+v", cfg)
	}

	// Empty fields keep their current value.
	cfg, err = client.UpdateConfig("", "", "json")
	if err != nil {
		t.Fatalf("UpdateConfig returned error: %v", err)
	}
	if cfg.Language != "de" || cfg.AccessLevel != AccessLevelProduction || cfg.Format != sports.FormatJSON {
		t.Errorf("Expected partial update to keep prior fields, got %+v", cfg)
	}
}

func TestUpdateConfigAffectsSubsequentRequests(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"league": {"id": "l1"}}`))
	}))
	defer upstream.Close()

	client, _ := testClient(t, upstream)
	nfl := mustResolve(t, "nfl")

	if _, err := client.UpdateConfig("de", "production", "xml"); err != nil {
		t.Fatalf("UpdateConfig returned error: %v", err)
	}

	_, format, err := client.Fetch(context.Background(), nfl, sports.KindLeagueInfo, nil)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if format != "xml" {
		t.Errorf("Expected xml format, got %q", format)
	}

	want := "/nfl/official/production/v7/de/league/hierarchy.xml"
	if gotPath != want {
		t.Errorf("Expected path %q, got %q", want, gotPath)
	}
}

func TestExpandPath(t *testing.T) {
	path, err := expandPath("/league/{year}/{month}/{day}/transactions",
		map[string]string{"year": "2024", "month": "10", "day": "01"})
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if path != "/league/2024/10/01/transactions" {
		t.Errorf("Unexpected path: %q", path)
	}

	_, err = expandPath("/games/{game_id}/statistics", map[string]string{})
	if !errortypes.IsValidationError(err) {
		t.Errorf("Expected validation error for unresolved placeholder, got %v", err)
	}
}
