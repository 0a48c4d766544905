// Package tools defines the MCP tool names and request/response schemas
// exposed by the mcp-sports gateway.
package tools

const (
	// ToolUpdateAPIConfig is the name of the update_api_config MCP tool
	ToolUpdateAPIConfig = "update_api_config"

	// ToolGetSchedule is the name of the get_schedule MCP tool
	ToolGetSchedule = "get_schedule"

	// ToolGetDailyTransactions is the name of the get_daily_transactions MCP tool
	ToolGetDailyTransactions = "get_daily_transactions"

	// ToolGetGameStats is the name of the get_game_stats MCP tool
	ToolGetGameStats = "get_game_stats"

	// ToolGetLeagueInfo is the name of the get_league_info MCP tool
	ToolGetLeagueInfo = "get_league_info"

	// ToolGetTeamRoster is the name of the get_team_roster MCP tool
	ToolGetTeamRoster = "get_team_roster"

	// ToolGetPlayerStats is the name of the get_player_stats MCP tool
	ToolGetPlayerStats = "get_player_stats"

	// ToolGetTournamentList is the name of the get_tournament_list MCP tool
	ToolGetTournamentList = "get_tournament_list"

	// ToolGetTournamentInfo is the name of the get_tournament_info MCP tool
	ToolGetTournamentInfo = "get_tournament_info"

	// ToolGetAddress is the name of the get_address MCP tool
	ToolGetAddress = "get_address"
)

// UpdateAPIConfigRequest defines the input schema for update_api_config.
// Empty fields keep their current value.
type UpdateAPIConfigRequest struct {
	// Language is the ISO language code to request from the provider
	Language string `json:"language,omitempty"`

	// AccessLevel is the provider access tier ("trial" or "production")
	AccessLevel string `json:"access_level,omitempty"`

	// Format is the wire format to request ("json" or "xml")
	Format string `json:"format,omitempty"`
}

// UpdateAPIConfigResponse defines the output schema for update_api_config
type UpdateAPIConfigResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Language is the active language after the update
	Language string `json:"language,omitempty"`

	// AccessLevel is the active access tier after the update
	AccessLevel string `json:"access_level,omitempty"`

	// Format is the active wire format after the update
	Format string `json:"format,omitempty"`

	// ErrorKind classifies the failure if Status is "error"
	ErrorKind string `json:"error_kind,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// GetScheduleRequest defines the input schema for get_schedule
type GetScheduleRequest struct {
	// Sport is the league identifier ("nfl")
	Sport string `json:"sport"`

	// Year is the season year, e.g. "2024"
	Year string `json:"year"`

	// Week is the week number within the season, e.g. "5"
	Week string `json:"week"`

	// SeasonType is the season phase ("PRE", "REG", "PST"), sent as
	// "type" on the wire; defaults to "REG" when omitted
	SeasonType string `json:"type,omitempty"`
}

// GetScheduleResponse defines the output schema for get_schedule
type GetScheduleResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Schedule holds the requested week's games
	Schedule interface{} `json:"schedule,omitempty"`

	// ErrorKind classifies the failure if Status is "error"
	ErrorKind string `json:"error_kind,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// GetDailyTransactionsRequest defines the input schema for get_daily_transactions
type GetDailyTransactionsRequest struct {
	// Sport is the league identifier ("nfl")
	Sport string `json:"sport"`

	// Year is the four-digit year
	Year string `json:"year"`

	// Month is the two-digit month
	Month string `json:"month"`

	// Day is the two-digit day
	Day string `json:"day"`
}

// GetDailyTransactionsResponse defines the output schema for get_daily_transactions
type GetDailyTransactionsResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Transactions holds the player movement records for the day
	Transactions interface{} `json:"transactions,omitempty"`

	// ErrorKind classifies the failure if Status is "error"
	ErrorKind string `json:"error_kind,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// GetGameStatsRequest defines the input schema for get_game_stats
type GetGameStatsRequest struct {
	// Sport is the league identifier ("nfl")
	Sport string `json:"sport"`

	// GameID is the provider's game identifier
	GameID string `json:"game_id"`
}

// GetGameStatsResponse defines the output schema for get_game_stats
type GetGameStatsResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Stats holds the game statistics record
	Stats interface{} `json:"stats,omitempty"`

	// ErrorKind classifies the failure if Status is "error"
	ErrorKind string `json:"error_kind,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// GetLeagueInfoRequest defines the input schema for get_league_info
type GetLeagueInfoRequest struct {
	// Sport is the league identifier ("nfl")
	Sport string `json:"sport"`
}

// GetLeagueInfoResponse defines the output schema for get_league_info
type GetLeagueInfoResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// League holds the league hierarchy record
	League interface{} `json:"league,omitempty"`

	// ErrorKind classifies the failure if Status is "error"
	ErrorKind string `json:"error_kind,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// GetTeamRosterRequest defines the input schema for get_team_roster
type GetTeamRosterRequest struct {
	// Sport is the league identifier ("nfl")
	Sport string `json:"sport"`

	// TeamID is the provider's team identifier
	TeamID string `json:"team_id"`
}

// GetTeamRosterResponse defines the output schema for get_team_roster
type GetTeamRosterResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Roster holds the team roster record
	Roster interface{} `json:"roster,omitempty"`

	// ErrorKind classifies the failure if Status is "error"
	ErrorKind string `json:"error_kind,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// GetPlayerStatsRequest defines the input schema for get_player_stats
type GetPlayerStatsRequest struct {
	// Sport is the league identifier ("nfl")
	Sport string `json:"sport"`

	// PlayerID is the provider's player identifier
	PlayerID string `json:"player_id"`
}

// GetPlayerStatsResponse defines the output schema for get_player_stats
type GetPlayerStatsResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Player holds the player profile record
	Player interface{} `json:"player,omitempty"`

	// ErrorKind classifies the failure if Status is "error"
	ErrorKind string `json:"error_kind,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// GetTournamentListRequest defines the input schema for get_tournament_list
type GetTournamentListRequest struct {
	// Sport is the tour identifier ("golf")
	Sport string `json:"sport"`

	// Year is the season year, e.g. "2024"
	Year string `json:"year"`
}

// GetTournamentListResponse defines the output schema for get_tournament_list
type GetTournamentListResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Tournaments holds the season's tournament list
	Tournaments interface{} `json:"tournaments,omitempty"`

	// ErrorKind classifies the failure if Status is "error"
	ErrorKind string `json:"error_kind,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// GetTournamentInfoRequest defines the input schema for get_tournament_info
type GetTournamentInfoRequest struct {
	// Sport is the tour identifier ("golf")
	Sport string `json:"sport"`

	// TournamentID is the provider's tournament identifier
	TournamentID string `json:"tournament_id"`
}

// GetTournamentInfoResponse defines the output schema for get_tournament_info
type GetTournamentInfoResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Tournament holds the tournament summary record
	Tournament interface{} `json:"tournament,omitempty"`

	// ErrorKind classifies the failure if Status is "error"
	ErrorKind string `json:"error_kind,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// GetAddressRequest defines the input schema for get_address
type GetAddressRequest struct {
	// Lat is the latitude in decimal degrees
	Lat float64 `json:"lat"`

	// Lon is the longitude in decimal degrees
	Lon float64 `json:"lon"`
}

// GetAddressResponse defines the output schema for get_address
type GetAddressResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Address is the resolved display address
	Address string `json:"address,omitempty"`

	// ErrorKind classifies the failure if Status is "error"
	ErrorKind string `json:"error_kind,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}
