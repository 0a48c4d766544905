package mcpsports

import (
	"testing"
	"time"

	"github.com/reeeeemo/mcp-sports/internal/sports"
)

func TestCacheTTLOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.TTLSeconds = map[string]int{
		"gamestats": 30,
		"schedule":  3600,
		"bogus":     10, // not an endpoint kind, must be ignored
	}

	ttls := cacheTTLs(cfg)

	if got := ttls[sports.KindGameStats]; got != 30*time.Second {
		t.Errorf("Expected gamestats TTL 30s, got %v", got)
	}
	if got := ttls[sports.KindSchedule]; got != 3600*time.Second {
		t.Errorf("Expected schedule TTL 1h, got %v", got)
	}
	if _, ok := ttls[sports.KindPlayerStats]; ok {
		t.Error("Expected no override for playerstats")
	}
	if len(ttls) != 2 {
		t.Errorf("Expected 2 overrides, got %d: %v", len(ttls), ttls)
	}
}

func TestCacheTTLOverridesEmptyConfig(t *testing.T) {
	if ttls := cacheTTLs(DefaultConfig()); ttls != nil {
		t.Errorf("Expected nil override map without config, got %v", ttls)
	}
	if ttls := cacheTTLs(nil); ttls != nil {
		t.Errorf("Expected nil override map for nil config, got %v", ttls)
	}
}
