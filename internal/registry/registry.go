// Package registry declares, per supported sport, the valid endpoint
// templates, their parameter shapes and cache lifetimes, and the parser set
// that normalizes that sport's payloads.
//
// The registry is the designed extension point: adding a sport means adding
// one table entry plus one parser implementation. No other component
// changes.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/reeeeemo/mcp-sports/internal/errortypes"
	"github.com/reeeeemo/mcp-sports/internal/parser"
	"github.com/reeeeemo/mcp-sports/internal/sports"
)

// Default cache lifetimes per endpoint kind. Schedules and hierarchies are
// near-static once published; live game statistics go stale in minutes.
const (
	TTLSchedule       = 6 * time.Hour
	TTLTransactions   = 1 * time.Hour
	TTLGameStats      = 2 * time.Minute
	TTLLeagueInfo     = 24 * time.Hour
	TTLTeamRoster     = 6 * time.Hour
	TTLTournamentList = 12 * time.Hour
	TTLTournamentInfo = 1 * time.Hour
	TTLPlayerStats    = 10 * time.Minute
)

// Endpoint describes one provider endpoint of a sport: its path template,
// the parameters a request must carry, defaults substituted for omitted
// optional parameters, and how long a normalized response stays fresh.
//
// Path placeholders ({name}) are filled from the request parameters;
// parameters without a placeholder only participate in cache keying.
type Endpoint struct {
	Path     string
	Required []string
	Defaults map[string]string
	TTL      time.Duration
}

// MergeDefaults returns the request parameters with the endpoint's defaults
// substituted for every omitted optional parameter. Defaults are applied
// before cache key construction, so the same logical request always lands
// on the same key regardless of which optional arguments were spelled out.
func (e Endpoint) MergeDefaults(params map[string]string) map[string]string {
	merged := make(map[string]string, len(params)+len(e.Defaults))
	for k, v := range e.Defaults {
		merged[k] = v
	}
	for k, v := range params {
		if v != "" {
			merged[k] = v
		}
	}
	return merged
}

// ValidateParams checks that every required parameter is present and
// non-empty, reporting all missing names at once.
func (e Endpoint) ValidateParams(params map[string]string) error {
	var missing []string
	for _, name := range e.Required {
		if params[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errortypes.ValidationError(
			fmt.Errorf("missing required parameters: %s", strings.Join(missing, ", ")),
			"invalid request parameters").
			WithField("missing", missing)
	}
	return nil
}

// Sport is one registered sport: identifier, provider API details, the
// endpoint kinds it supports, and its parser set. Entries are built once at
// startup and never mutated.
type Sport struct {
	ID        sports.ID
	Version   string
	Official  bool
	Languages []string
	Endpoints map[sports.Kind]Endpoint
	Parser    parser.Parser
}

// Endpoint resolves an endpoint kind for this sport.
func (s *Sport) Endpoint(kind sports.Kind) (Endpoint, error) {
	ep, ok := s.Endpoints[kind]
	if !ok {
		return Endpoint{}, errortypes.UnsupportedSportError(
			fmt.Errorf("sport %q does not support endpoint %q", s.ID, kind),
			"endpoint not available for sport").
			WithField("sport", string(s.ID)).
			WithField("kind", string(kind))
	}
	return ep, nil
}

// SupportsLanguage reports whether the provider serves this sport in the
// given language.
func (s *Sport) SupportsLanguage(lang string) bool {
	for _, l := range s.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// API versions per sport, since the provider has no way to discover these.
var table = map[sports.ID]*Sport{
	sports.NFL: {
		ID:        sports.NFL,
		Version:   "v7",
		Official:  true,
		Languages: []string{"br", "da", "de", "en", "es", "fi", "fr", "it", "ja", "nl", "no", "se", "tr"},
		Endpoints: map[sports.Kind]Endpoint{
			sports.KindSchedule: {
				Path:     "/games/current_season/schedule",
				Required: []string{"year", "week"},
				Defaults: map[string]string{"season_type": "REG"},
				TTL:      TTLSchedule,
			},
			sports.KindTransactions: {
				Path:     "/league/{year}/{month}/{day}/transactions",
				Required: []string{"year", "month", "day"},
				TTL:      TTLTransactions,
			},
			sports.KindGameStats: {
				Path:     "/games/{game_id}/statistics",
				Required: []string{"game_id"},
				TTL:      TTLGameStats,
			},
			sports.KindLeagueInfo: {
				Path: "/league/hierarchy",
				TTL:  TTLLeagueInfo,
			},
			sports.KindTeamRoster: {
				Path:     "/teams/{team_id}/full_roster",
				Required: []string{"team_id"},
				TTL:      TTLTeamRoster,
			},
			sports.KindPlayerStats: {
				Path:     "/players/{player_id}/profile",
				Required: []string{"player_id"},
				TTL:      TTLPlayerStats,
			},
		},
		Parser: parser.NewNFLParser(),
	},
	sports.Golf: {
		ID:        sports.Golf,
		Version:   "v3",
		Official:  false,
		Languages: []string{"en"},
		Endpoints: map[sports.Kind]Endpoint{
			sports.KindTournamentList: {
				Path:     "/tournaments/{year}/schedule",
				Required: []string{"year"},
				TTL:      TTLTournamentList,
			},
			sports.KindTournamentInfo: {
				Path:     "/tournaments/{tournament_id}/summary",
				Required: []string{"tournament_id"},
				TTL:      TTLTournamentInfo,
			},
		},
		Parser: parser.NewGolfParser(),
	},
}

// Resolve looks up a sport by its identifier (case-insensitive).
func Resolve(id string) (*Sport, error) {
	sport, ok := table[sports.ID(strings.ToLower(strings.TrimSpace(id)))]
	if !ok {
		return nil, errortypes.UnsupportedSportError(
			fmt.Errorf("sport %q is not in the list of supported sports: %s", id, SupportedString()),
			"unsupported sport").
			WithField("sport", id)
	}
	return sport, nil
}

// All returns every registered sport, ordered by identifier.
func All() []*Sport {
	out := make([]*Sport, 0, len(table))
	for _, s := range table {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SupportedString lists the registered sport identifiers for messages and
// tool descriptions.
func SupportedString() string {
	all := All()
	ids := make([]string, len(all))
	for i, s := range all {
		ids[i] = string(s.ID)
	}
	return strings.Join(ids, ", ")
}
