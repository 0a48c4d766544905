package server

import (
	"fmt"
	"log/slog"

	"github.com/localrivet/gomcp/server"

	"github.com/reeeeemo/mcp-sports/internal/sports"
)

// Resource URI domains, one per cached endpoint kind. Each domain serves a
// listing at its root and individual entries at /{key}, where {key} is the
// canonical cache key string.
var resourceKinds = []struct {
	domain string
	kind   sports.Kind
	desc   string
}{
	{"seasonsched", sports.KindSchedule, "Cached season schedules"},
	{"leaguetransactions", sports.KindTransactions, "Cached daily player transactions"},
	{"gamestats", sports.KindGameStats, "Cached per-game statistics"},
	{"leaguestats", sports.KindLeagueInfo, "Cached league hierarchies"},
	{"teamstats", sports.KindTeamRoster, "Cached team rosters"},
	{"playerstats", sports.KindPlayerStats, "Cached player profiles"},
}

// cacheEntryArgs captures the {key} segment of a cache-entry resource URI.
type cacheEntryArgs struct {
	Key string `path:"key"`
}

// cacheListing is the payload served when a resource domain is read
// without a key.
type cacheListing struct {
	Kind string   `json:"kind"`
	Keys []string `json:"keys"`
}

// registerResources registers the read-only cache-inspection resources.
// Reading an unknown or expired key yields an empty object rather than an
// error, so clients can probe the cache without special-casing misses.
func (s *MCPSportsToolServer) registerResources(srv server.Server) server.Server {
	for _, rk := range resourceKinds {
		kind := rk.kind
		domain := rk.domain

		srv = srv.Resource(fmt.Sprintf("sports://%s", domain),
			rk.desc+" (listing)",
			func(ctx *server.Context, args *struct{}) (interface{}, error) {
				keys := s.cache.Keys(kind)
				slog.Debug("Listing cache keys", "domain", domain, "count", len(keys))
				if keys == nil {
					keys = []string{}
				}
				return cacheListing{Kind: string(kind), Keys: keys}, nil
			})

		srv = srv.Resource(fmt.Sprintf("sports://%s/{key}", domain),
			rk.desc,
			func(ctx *server.Context, args *cacheEntryArgs) (interface{}, error) {
				rec, ok := s.cache.Lookup(kind, args.Key)
				if !ok {
					slog.Debug("Cache resource miss", "domain", domain, "key", args.Key)
					return map[string]interface{}{}, nil
				}
				return rec, nil
			})
	}
	return srv
}
