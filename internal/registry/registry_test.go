package registry

import (
	"strings"
	"testing"

	"github.com/reeeeemo/mcp-sports/internal/errortypes"
	"github.com/reeeeemo/mcp-sports/internal/sports"
)

func TestResolveKnownSports(t *testing.T) {
	for _, name := range []string{"nfl", "NFL", " Nfl "} {
		sp, err := Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", name, err)
		}
		if sp.ID != sports.NFL {
			t.Errorf("Resolve(%q): expected %q, got %q", name, sports.NFL, sp.ID)
		}
	}

	sp, err := Resolve("golf")
	if err != nil {
		t.Fatalf("Resolve(golf) returned error: %v", err)
	}
	if sp.Official {
		t.Error("Expected golf to use the non-official API tree")
	}
}

func TestResolveUnknownSport(t *testing.T) {
	_, err := Resolve("cricket")
	if err == nil {
		t.Fatal("Expected error for unknown sport")
	}
	if !errortypes.IsUnsupportedSportError(err) {
		t.Errorf("Expected unsupported_sport error, got %v", err)
	}
	// The message names the supported sports so a client can correct itself.
	if !strings.Contains(err.Error(), "golf") || !strings.Contains(err.Error(), "nfl") {
		t.Errorf("Expected supported sports in error, got %q", err.Error())
	}
}

func TestEndpointLookup(t *testing.T) {
	nfl, err := Resolve("nfl")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	for _, kind := range []sports.Kind{
		sports.KindSchedule,
		sports.KindTransactions,
		sports.KindGameStats,
		sports.KindLeagueInfo,
		sports.KindTeamRoster,
		sports.KindPlayerStats,
	} {
		if _, err := nfl.Endpoint(kind); err != nil {
			t.Errorf("Expected NFL to support %q: %v", kind, err)
		}
	}

	_, err = nfl.Endpoint(sports.KindTournamentList)
	if !errortypes.IsUnsupportedSportError(err) {
		t.Errorf("Expected unsupported_sport error for NFL tournamentlist, got %v", err)
	}

	golf, _ := Resolve("golf")
	if _, err := golf.Endpoint(sports.KindTournamentList); err != nil {
		t.Errorf("Expected golf to support tournamentlist: %v", err)
	}
	if _, err := golf.Endpoint(sports.KindSchedule); !errortypes.IsUnsupportedSportError(err) {
		t.Errorf("Expected unsupported_sport error for golf schedule, got %v", err)
	}
}

func TestMergeDefaults(t *testing.T) {
	nfl, _ := Resolve("nfl")
	ep, _ := nfl.Endpoint(sports.KindSchedule)

	merged := ep.MergeDefaults(map[string]string{"year": "2024", "week": "5"})
	if merged["season_type"] != "REG" {
		t.Errorf("Expected default season_type REG, got %q", merged["season_type"])
	}

	// An explicit value wins over the default.
	merged = ep.MergeDefaults(map[string]string{"year": "2024", "week": "5", "season_type": "PST"})
	if merged["season_type"] != "PST" {
		t.Errorf("Expected explicit season_type PST, got %q", merged["season_type"])
	}

	// An empty value falls back to the default rather than overriding it.
	merged = ep.MergeDefaults(map[string]string{"year": "2024", "week": "5", "season_type": ""})
	if merged["season_type"] != "REG" {
		t.Errorf("Expected empty season_type to fall back to REG, got %q", merged["season_type"])
	}
}

func TestValidateParams(t *testing.T) {
	nfl, _ := Resolve("nfl")
	ep, _ := nfl.Endpoint(sports.KindTransactions)

	if err := ep.ValidateParams(map[string]string{"year": "2024", "month": "10", "day": "01"}); err != nil {
		t.Errorf("Expected valid params to pass, got %v", err)
	}

	err := ep.ValidateParams(map[string]string{"year": "2024"})
	if err == nil {
		t.Fatal("Expected error for missing params")
	}
	if !errortypes.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
	// All missing names are reported at once, sorted.
	if !strings.Contains(err.Error(), "day, month") {
		t.Errorf("Expected both missing params listed in order, got %q", err.Error())
	}
}

func TestAllIsSorted(t *testing.T) {
	all := All()
	if len(all) != 2 {
		t.Fatalf("Expected 2 sports, got %d", len(all))
	}
	if all[0].ID != sports.Golf || all[1].ID != sports.NFL {
		t.Errorf("Expected sports sorted by ID, got %v, %v", all[0].ID, all[1].ID)
	}
}

func TestEndpointTTLs(t *testing.T) {
	nfl, _ := Resolve("nfl")

	sched, _ := nfl.Endpoint(sports.KindSchedule)
	game, _ := nfl.Endpoint(sports.KindGameStats)

	// Live game stats must go stale far faster than season schedules.
	if game.TTL >= sched.TTL {
		t.Errorf("Expected gamestats TTL (%v) shorter than schedule TTL (%v)", game.TTL, sched.TTL)
	}
	if sched.TTL != TTLSchedule || game.TTL != TTLGameStats {
		t.Errorf("Endpoint TTLs do not match the declared constants")
	}
}
