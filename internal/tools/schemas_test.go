package tools

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGetScheduleRequestUnmarshaling(t *testing.T) {
	// Arguments as an MCP client would send them.
	data := []byte(`{"sport": "nfl", "year": "2024", "week": "5"}`)

	var req GetScheduleRequest
	if err := json.Unmarshal(data, &req); err != nil {
		t.Fatalf("Failed to unmarshal GetScheduleRequest: %v", err)
	}

	if req.Sport != "nfl" || req.Year != "2024" || req.Week != "5" {
		t.Errorf("Unexpected request: %+v", req)
	}
	// type was omitted; the registry substitutes its default.
	if req.SeasonType != "" {
		t.Errorf("Expected empty SeasonType, got %q", req.SeasonType)
	}
}

func TestGetScheduleRequestBindsTypeArgument(t *testing.T) {
	// The season phase argument is named "type" on the wire; a playoff
	// request must not fall through to the regular-season default.
	data := []byte(`{"sport": "nfl", "year": "2024", "week": "1", "type": "PST"}`)

	var req GetScheduleRequest
	if err := json.Unmarshal(data, &req); err != nil {
		t.Fatalf("Failed to unmarshal GetScheduleRequest: %v", err)
	}

	if req.SeasonType != "PST" {
		t.Errorf("Expected SeasonType %q, got %q", "PST", req.SeasonType)
	}
}

func TestGetAddressRequestBindsLonArgument(t *testing.T) {
	// The longitude argument is named "lon" on the wire, matching the
	// geocoder; a zero longitude here would silently shift the lookup.
	data := []byte(`{"lat": 40.7128, "lon": -74.0060}`)

	var req GetAddressRequest
	if err := json.Unmarshal(data, &req); err != nil {
		t.Fatalf("Failed to unmarshal GetAddressRequest: %v", err)
	}

	if req.Lat != 40.7128 || req.Lon != -74.0060 {
		t.Errorf("Unexpected coordinates: %+v", req)
	}
}

func TestResponseErrorFieldsOmittedOnSuccess(t *testing.T) {
	resp := GetGameStatsResponse{
		Status: "success",
		Stats:  map[string]interface{}{"game_id": "sr:game:1"},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	if strings.Contains(string(data), "error") {
		t.Errorf("Expected error fields omitted on success, got %s", data)
	}

	resp = GetGameStatsResponse{
		Status:    "error",
		ErrorKind: "upstream",
		Error:     "provider returned status 502",
	}
	data, _ = json.Marshal(resp)

	var jsonMap map[string]interface{}
	if err := json.Unmarshal(data, &jsonMap); err != nil {
		t.Fatalf("Failed to unmarshal JSON into map: %v", err)
	}
	if jsonMap["error_kind"] != "upstream" {
		t.Errorf("Expected error_kind in payload, got %v", jsonMap)
	}
	if _, exists := jsonMap["stats"]; exists {
		t.Error("Expected stats omitted on error")
	}
}
