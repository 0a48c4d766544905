package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/localrivet/gomcp/server"

	"github.com/reeeeemo/mcp-sports/internal/errortypes"
	"github.com/reeeeemo/mcp-sports/internal/provider"
	"github.com/reeeeemo/mcp-sports/internal/registry"
	"github.com/reeeeemo/mcp-sports/internal/sports"
	"github.com/reeeeemo/mcp-sports/internal/statscache"
	"github.com/reeeeemo/mcp-sports/internal/telemetry"
	"github.com/reeeeemo/mcp-sports/internal/tools"
	"github.com/reeeeemo/mcp-sports/internal/util"
)

// Common server error types
var (
	ErrServerNotInitialized = errors.New("server not initialized")
	ErrMissingDependencies  = errors.New("one or more required dependencies are nil")
)

// MCPSportsToolServer implements the SportsToolServer interface for
// handling MCP tool calls that query the sports statistics provider
// through the response cache.
type MCPSportsToolServer struct {
	provider  *provider.Client
	geocoder  *provider.Geocoder
	cache     *statscache.Cache
	metrics   *telemetry.MetricsCollector
	ttls      map[sports.Kind]time.Duration
	mcpServer server.Server
}

// NewSportsToolServer creates a new MCPSportsToolServer instance. The ttls
// map overrides the per-endpoint cache lifetimes; pass nil to use the
// registry defaults.
func NewSportsToolServer(client *provider.Client, geocoder *provider.Geocoder, cache *statscache.Cache, metrics *telemetry.MetricsCollector, ttls map[sports.Kind]time.Duration) *MCPSportsToolServer {
	if metrics == nil {
		metrics = telemetry.NewMetricsCollector()
	}
	return &MCPSportsToolServer{
		provider: client,
		geocoder: geocoder,
		cache:    cache,
		metrics:  metrics,
		ttls:     ttls,
	}
}

// Initialize initializes the server with dependencies and configurations.
func (s *MCPSportsToolServer) Initialize() error {
	slog.Info("Initializing MCP Sports Tool Server")

	if s.provider == nil || s.geocoder == nil || s.cache == nil {
		return errortypes.ConfigError(ErrMissingDependencies, "server initialization failed")
	}

	// Create the MCP server
	srv := server.NewServer("mcp-sports")

	// Register update_api_config tool
	srv = srv.Tool(tools.ToolUpdateAPIConfig, "Update the provider API configuration (language, access level, response format)",
		s.handleUpdateAPIConfig)

	// Register get_schedule tool
	srv = srv.Tool(tools.ToolGetSchedule, "Get the game schedule for a given sport, year and week",
		s.handleGetSchedule)

	// Register get_daily_transactions tool
	srv = srv.Tool(tools.ToolGetDailyTransactions, "Get player transactions for a given sport and date",
		s.handleGetDailyTransactions)

	// Register get_game_stats tool
	srv = srv.Tool(tools.ToolGetGameStats, "Get statistics for a single game by game ID",
		s.handleGetGameStats)

	// Register get_league_info tool
	srv = srv.Tool(tools.ToolGetLeagueInfo, "Get the league hierarchy (conferences, divisions, teams) for a sport",
		s.handleGetLeagueInfo)

	// Register get_team_roster tool
	srv = srv.Tool(tools.ToolGetTeamRoster, "Get the full roster for a team by team ID",
		s.handleGetTeamRoster)

	// Register get_player_stats tool
	srv = srv.Tool(tools.ToolGetPlayerStats, "Get the profile and statistics for a player by player ID",
		s.handleGetPlayerStats)

	// Register get_tournament_list tool
	srv = srv.Tool(tools.ToolGetTournamentList, "Get the tournament schedule for a golf season",
		s.handleGetTournamentList)

	// Register get_tournament_info tool
	srv = srv.Tool(tools.ToolGetTournamentInfo, "Get the summary for a golf tournament by tournament ID",
		s.handleGetTournamentInfo)

	// Register get_address tool
	srv = srv.Tool(tools.ToolGetAddress, "Resolve latitude/longitude coordinates to a street address",
		s.handleGetAddress)

	// Register cache-inspection resources
	srv = s.registerResources(srv)

	s.mcpServer = srv
	slog.Info("MCP Sports Tool Server initialized successfully", "tool_count", 10)
	return nil
}

// Start starts the MCP server on the specified transport.
func (s *MCPSportsToolServer) Start() error {
	if s.mcpServer == nil {
		return errortypes.ConfigError(ErrServerNotInitialized, "cannot start server")
	}

	slog.Info("Starting MCP Sports Tool Server")

	// Start the server using stdio transport
	stdioServer := s.mcpServer.AsStdio()
	return stdioServer.Run()
}

// Stop gracefully shuts down the MCP server.
func (s *MCPSportsToolServer) Stop() error {
	slog.Info("Stopping MCP Sports Tool Server")
	// The server will exit when stdin is closed
	return nil
}

// ttlFor resolves the cache lifetime for an endpoint kind.
func (s *MCPSportsToolServer) ttlFor(kind sports.Kind, ep registry.Endpoint) time.Duration {
	if ttl, ok := s.ttls[kind]; ok && ttl > 0 {
		return ttl
	}
	return ep.TTL
}

// fetchRecord resolves the sport and endpoint, canonicalizes the request
// parameters, and returns the record through the cache. transform, when
// non-nil, reshapes the parsed record before it is cached.
func (s *MCPSportsToolServer) fetchRecord(ctx context.Context, sportName string, kind sports.Kind, params map[string]string, transform func(sports.Record) (sports.Record, error)) (sports.Record, error) {
	sp, err := registry.Resolve(sportName)
	if err != nil {
		return nil, err
	}

	ep, err := sp.Endpoint(kind)
	if err != nil {
		return nil, err
	}

	merged := ep.MergeDefaults(params)
	if err := ep.ValidateParams(merged); err != nil {
		return nil, err
	}

	key := statscache.NewKey(sp.ID, kind, merged)
	slog.Debug("Resolving record through cache",
		"sport", string(sp.ID), "kind", string(kind), "key_hash", util.HashKey(key.String()))

	return s.cache.GetOrFetch(ctx, key, s.ttlFor(kind, ep), func(ctx context.Context) (sports.Record, error) {
		payload, format, err := s.provider.Fetch(ctx, sp, kind, merged)
		if err != nil {
			return nil, err
		}
		rec, err := sp.Parser.Parse(kind, format, payload)
		if err != nil {
			s.metrics.IncrementCounter(telemetry.MetricParseFailures, 1)
			return nil, err
		}
		if transform != nil {
			return transform(rec)
		}
		return rec, nil
	})
}

// filterScheduleWeek returns a transform that narrows a whole-season
// schedule down to a single week. The provider only serves the season as
// one document, so the filtered week is what gets cached.
func filterScheduleWeek(week int) func(sports.Record) (sports.Record, error) {
	return func(rec sports.Record) (sports.Record, error) {
		sched, ok := rec.(sports.Schedule)
		if !ok {
			return nil, errortypes.InternalError(
				fmt.Errorf("unexpected record type %T for schedule", rec),
				"schedule fetch returned wrong record type")
		}
		if week <= 0 {
			return sched, nil
		}
		filtered := sched
		filtered.Weeks = []sports.Week{}
		for _, w := range sched.Weeks {
			if w.Num == week {
				filtered.Weeks = append(filtered.Weeks, w)
			}
		}
		return filtered, nil
	}
}

// handleUpdateAPIConfig handles the update_api_config MCP tool call.
func (s *MCPSportsToolServer) handleUpdateAPIConfig(ctx *server.Context, req tools.UpdateAPIConfigRequest) (tools.UpdateAPIConfigResponse, error) {
	slog.Info("Processing update_api_config request",
		"language", req.Language, "access_level", req.AccessLevel, "format", req.Format)

	response := tools.UpdateAPIConfigResponse{
		Status: "success",
	}

	cfg, err := s.provider.UpdateConfig(req.Language, req.AccessLevel, req.Format)
	if err != nil {
		errortypes.LogError(nil, err)

		response.Status = "error"
		response.ErrorKind = errKind(err)
		response.Error = err.Error()
		return response, nil
	}

	response.Language = cfg.Language
	response.AccessLevel = cfg.AccessLevel
	response.Format = cfg.Format
	slog.Info("Successfully updated API config",
		"language", cfg.Language, "access_level", cfg.AccessLevel, "format", cfg.Format)

	return response, nil
}

// handleGetSchedule handles the get_schedule MCP tool call.
func (s *MCPSportsToolServer) handleGetSchedule(ctx *server.Context, req tools.GetScheduleRequest) (tools.GetScheduleResponse, error) {
	slog.Info("Processing get_schedule request",
		"sport", req.Sport, "year", req.Year, "week", req.Week)

	response := tools.GetScheduleResponse{
		Status: "success",
	}

	week, convErr := strconv.Atoi(req.Week)
	if req.Week != "" && (convErr != nil || week <= 0) {
		err := errortypes.ValidationError(
			fmt.Errorf("week %q is not a positive integer", req.Week),
			"invalid get_schedule request")
		errortypes.LogError(nil, err)

		response.Status = "error"
		response.ErrorKind = errKind(err)
		response.Error = err.Error()
		return response, nil
	}

	params := map[string]string{
		"year": req.Year,
		"week": req.Week,
	}
	if req.SeasonType != "" {
		params["season_type"] = req.SeasonType
	}

	rec, err := s.fetchRecord(context.Background(), req.Sport, sports.KindSchedule, params, filterScheduleWeek(week))
	if err != nil {
		errortypes.LogError(nil, err)

		response.Status = "error"
		response.ErrorKind = errKind(err)
		response.Error = err.Error()
		return response, nil
	}

	response.Schedule = rec
	slog.Info("Successfully retrieved schedule", "sport", req.Sport, "week", req.Week)

	return response, nil
}

// handleGetDailyTransactions handles the get_daily_transactions MCP tool call.
func (s *MCPSportsToolServer) handleGetDailyTransactions(ctx *server.Context, req tools.GetDailyTransactionsRequest) (tools.GetDailyTransactionsResponse, error) {
	slog.Info("Processing get_daily_transactions request",
		"sport", req.Sport, "year", req.Year, "month", req.Month, "day", req.Day)

	response := tools.GetDailyTransactionsResponse{
		Status: "success",
	}

	params := map[string]string{
		"year":  req.Year,
		"month": req.Month,
		"day":   req.Day,
	}

	rec, err := s.fetchRecord(context.Background(), req.Sport, sports.KindTransactions, params, nil)
	if err != nil {
		errortypes.LogError(nil, err)

		response.Status = "error"
		response.ErrorKind = errKind(err)
		response.Error = err.Error()
		return response, nil
	}

	response.Transactions = rec
	slog.Info("Successfully retrieved transactions", "sport", req.Sport)

	return response, nil
}

// handleGetGameStats handles the get_game_stats MCP tool call.
func (s *MCPSportsToolServer) handleGetGameStats(ctx *server.Context, req tools.GetGameStatsRequest) (tools.GetGameStatsResponse, error) {
	slog.Info("Processing get_game_stats request", "sport", req.Sport, "game_id", req.GameID)

	response := tools.GetGameStatsResponse{
		Status: "success",
	}

	rec, err := s.fetchRecord(context.Background(), req.Sport, sports.KindGameStats,
		map[string]string{"game_id": req.GameID}, nil)
	if err != nil {
		errortypes.LogError(nil, err)

		response.Status = "error"
		response.ErrorKind = errKind(err)
		response.Error = err.Error()
		return response, nil
	}

	response.Stats = rec
	slog.Info("Successfully retrieved game stats", "sport", req.Sport, "game_id", req.GameID)

	return response, nil
}

// handleGetLeagueInfo handles the get_league_info MCP tool call.
func (s *MCPSportsToolServer) handleGetLeagueInfo(ctx *server.Context, req tools.GetLeagueInfoRequest) (tools.GetLeagueInfoResponse, error) {
	slog.Info("Processing get_league_info request", "sport", req.Sport)

	response := tools.GetLeagueInfoResponse{
		Status: "success",
	}

	rec, err := s.fetchRecord(context.Background(), req.Sport, sports.KindLeagueInfo,
		map[string]string{}, nil)
	if err != nil {
		errortypes.LogError(nil, err)

		response.Status = "error"
		response.ErrorKind = errKind(err)
		response.Error = err.Error()
		return response, nil
	}

	response.League = rec
	slog.Info("Successfully retrieved league info", "sport", req.Sport)

	return response, nil
}

// handleGetTeamRoster handles the get_team_roster MCP tool call.
func (s *MCPSportsToolServer) handleGetTeamRoster(ctx *server.Context, req tools.GetTeamRosterRequest) (tools.GetTeamRosterResponse, error) {
	slog.Info("Processing get_team_roster request", "sport", req.Sport, "team_id", req.TeamID)

	response := tools.GetTeamRosterResponse{
		Status: "success",
	}

	rec, err := s.fetchRecord(context.Background(), req.Sport, sports.KindTeamRoster,
		map[string]string{"team_id": req.TeamID}, nil)
	if err != nil {
		errortypes.LogError(nil, err)

		response.Status = "error"
		response.ErrorKind = errKind(err)
		response.Error = err.Error()
		return response, nil
	}

	response.Roster = rec
	slog.Info("Successfully retrieved team roster", "sport", req.Sport, "team_id", req.TeamID)

	return response, nil
}

// handleGetPlayerStats handles the get_player_stats MCP tool call.
func (s *MCPSportsToolServer) handleGetPlayerStats(ctx *server.Context, req tools.GetPlayerStatsRequest) (tools.GetPlayerStatsResponse, error) {
	slog.Info("Processing get_player_stats request", "sport", req.Sport, "player_id", req.PlayerID)

	response := tools.GetPlayerStatsResponse{
		Status: "success",
	}

	rec, err := s.fetchRecord(context.Background(), req.Sport, sports.KindPlayerStats,
		map[string]string{"player_id": req.PlayerID}, nil)
	if err != nil {
		errortypes.LogError(nil, err)

		response.Status = "error"
		response.ErrorKind = errKind(err)
		response.Error = err.Error()
		return response, nil
	}

	response.Player = rec
	slog.Info("Successfully retrieved player stats", "sport", req.Sport, "player_id", req.PlayerID)

	return response, nil
}

// handleGetTournamentList handles the get_tournament_list MCP tool call.
func (s *MCPSportsToolServer) handleGetTournamentList(ctx *server.Context, req tools.GetTournamentListRequest) (tools.GetTournamentListResponse, error) {
	slog.Info("Processing get_tournament_list request", "sport", req.Sport, "year", req.Year)

	response := tools.GetTournamentListResponse{
		Status: "success",
	}

	rec, err := s.fetchRecord(context.Background(), req.Sport, sports.KindTournamentList,
		map[string]string{"year": req.Year}, nil)
	if err != nil {
		errortypes.LogError(nil, err)

		response.Status = "error"
		response.ErrorKind = errKind(err)
		response.Error = err.Error()
		return response, nil
	}

	response.Tournaments = rec
	slog.Info("Successfully retrieved tournament list", "sport", req.Sport, "year", req.Year)

	return response, nil
}

// handleGetTournamentInfo handles the get_tournament_info MCP tool call.
func (s *MCPSportsToolServer) handleGetTournamentInfo(ctx *server.Context, req tools.GetTournamentInfoRequest) (tools.GetTournamentInfoResponse, error) {
	slog.Info("Processing get_tournament_info request", "sport", req.Sport, "tournament_id", req.TournamentID)

	response := tools.GetTournamentInfoResponse{
		Status: "success",
	}

	rec, err := s.fetchRecord(context.Background(), req.Sport, sports.KindTournamentInfo,
		map[string]string{"tournament_id": req.TournamentID}, nil)
	if err != nil {
		errortypes.LogError(nil, err)

		response.Status = "error"
		response.ErrorKind = errKind(err)
		response.Error = err.Error()
		return response, nil
	}

	response.Tournament = rec
	slog.Info("Successfully retrieved tournament info", "sport", req.Sport, "tournament_id", req.TournamentID)

	return response, nil
}

// handleGetAddress handles the get_address MCP tool call.
func (s *MCPSportsToolServer) handleGetAddress(ctx *server.Context, req tools.GetAddressRequest) (tools.GetAddressResponse, error) {
	slog.Info("Processing get_address request", "lat", req.Lat, "lon", req.Lon)

	response := tools.GetAddressResponse{
		Status: "success",
	}

	address, err := s.geocoder.ReverseGeocode(context.Background(), req.Lat, req.Lon)
	if err != nil {
		errortypes.LogError(nil, err)

		response.Status = "error"
		response.ErrorKind = errKind(err)
		response.Error = err.Error()
		return response, nil
	}

	response.Address = address
	slog.Info("Successfully resolved address", "lat", req.Lat, "lon", req.Lon)

	return response, nil
}
