// Package sports defines the sport identifiers, endpoint kinds, and the
// normalized record types shared by the registry, parsers, cache and the
// MCP facade. Records are sport-agnostic: every sport's parser produces
// these shapes regardless of the provider's raw schema.
package sports

// ID identifies a supported sport.
type ID string

// Supported sports.
const (
	NFL  ID = "nfl"
	Golf ID = "golf"
)

// Kind identifies one provider endpoint family. A sport supports a subset
// of kinds; the registry declares which.
type Kind string

// Endpoint kinds.
const (
	KindSchedule       Kind = "schedule"
	KindTransactions   Kind = "transactions"
	KindGameStats      Kind = "gamestats"
	KindLeagueInfo     Kind = "leagueinfo"
	KindTeamRoster     Kind = "teamroster"
	KindTournamentList Kind = "tournamentlist"
	KindTournamentInfo Kind = "tournamentinfo"
	KindPlayerStats    Kind = "playerstats"
)

// Wire formats the provider can return, per the API configuration.
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// Record is the marker interface implemented by every normalized record
// variant. The cache and facade handle records only through this interface.
type Record interface {
	RecordKind() Kind
}

// Location is a venue coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Game is one scheduled or played game inside a Schedule.
type Game struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"`
	Stadium   string   `json:"stadium,omitempty"`
	Location  Location `json:"location"`
	HomeTeam  string   `json:"home_team"`
	AwayTeam  string   `json:"away_team"`
	ScoreHome *int     `json:"score_home,omitempty"`
	ScoreAway *int     `json:"score_away,omitempty"`
}

// Week groups the games of one schedule week.
type Week struct {
	ID    string `json:"id"`
	Num   int    `json:"num"`
	Games []Game `json:"games"`
}

// Schedule is the normalized season schedule for a sport.
type Schedule struct {
	SeasonID string `json:"id"`
	Year     int    `json:"year"`
	Weeks    []Week `json:"weeks"`
}

func (Schedule) RecordKind() Kind { return KindSchedule }

// Transaction is a single roster move applied to a player.
type Transaction struct {
	Desc          string `json:"transaction"`
	Effective     string `json:"effective,omitempty"`
	StatusBefore  string `json:"status_before,omitempty"`
	ReceivingTeam string `json:"receiving_team,omitempty"`
}

// PlayerTransactions groups one player's moves inside a TransactionList.
type PlayerTransactions struct {
	Name         string        `json:"name"`
	Position     string        `json:"position,omitempty"`
	Transactions []Transaction `json:"transactions"`
}

// TransactionList is the normalized set of league transactions for one day.
type TransactionList struct {
	ID         string               `json:"id"`
	LeagueName string               `json:"name,omitempty"`
	StartTime  string               `json:"start_time,omitempty"`
	EndTime    string               `json:"end_time,omitempty"`
	Players    []PlayerTransactions `json:"players"`
}

func (TransactionList) RecordKind() Kind { return KindTransactions }

// TeamScore is one side of a game inside GameStats.
type TeamScore struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Alias  string `json:"alias,omitempty"`
	Points int    `json:"points"`
}

// GameStats is the normalized statistics record for one game.
type GameStats struct {
	GameID     string         `json:"id"`
	Status     string         `json:"status,omitempty"`
	Scheduled  string         `json:"scheduled,omitempty"`
	Home       TeamScore      `json:"home"`
	Away       TeamScore      `json:"away"`
	Statistics map[string]any `json:"statistics,omitempty"`
}

func (GameStats) RecordKind() Kind { return KindGameStats }

// TeamRef is a team entry inside the league hierarchy.
type TeamRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Market string `json:"market,omitempty"`
	Alias  string `json:"alias,omitempty"`
}

// Division groups teams inside a conference.
type Division struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Teams []TeamRef `json:"teams"`
}

// Conference groups divisions inside a league.
type Conference struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Divisions []Division `json:"divisions"`
}

// LeagueInfo is the normalized league hierarchy.
type LeagueInfo struct {
	LeagueID    string       `json:"id"`
	Name        string       `json:"name"`
	Alias       string       `json:"alias,omitempty"`
	Conferences []Conference `json:"conferences"`
}

func (LeagueInfo) RecordKind() Kind { return KindLeagueInfo }

// RosterPlayer is one player on a team roster.
type RosterPlayer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
	Jersey   string `json:"jersey,omitempty"`
	Status   string `json:"status,omitempty"`
}

// Coach is one coach on a team roster.
type Coach struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position,omitempty"`
}

// Roster is the normalized full roster of one team.
type Roster struct {
	TeamID  string         `json:"id"`
	Name    string         `json:"name"`
	Market  string         `json:"market,omitempty"`
	Alias   string         `json:"alias,omitempty"`
	Coaches []Coach        `json:"coaches"`
	Players []RosterPlayer `json:"players"`
}

func (Roster) RecordKind() Kind { return KindTeamRoster }

// PlayerStats is the normalized profile and statistics of one player.
// Stats is a flat map of stat name to value; keys are sport-specific.
type PlayerStats struct {
	PlayerID string         `json:"id"`
	Name     string         `json:"name"`
	Position string         `json:"position,omitempty"`
	Team     string         `json:"team,omitempty"`
	Stats    map[string]any `json:"stats"`
}

func (PlayerStats) RecordKind() Kind { return KindPlayerStats }

// TournamentRef is one tournament entry inside a TournamentList.
type TournamentRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Venue     string `json:"venue,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Status    string `json:"status,omitempty"`
}

// TournamentList is the normalized tournament calendar for one season.
type TournamentList struct {
	SeasonID    string          `json:"id"`
	Year        int             `json:"year"`
	Tournaments []TournamentRef `json:"tournaments"`
}

func (TournamentList) RecordKind() Kind { return KindTournamentList }

// TournamentRound is one round inside a TournamentInfo.
type TournamentRound struct {
	Number int    `json:"number"`
	Status string `json:"status,omitempty"`
}

// TournamentInfo is the normalized detail record for one tournament.
type TournamentInfo struct {
	TournamentID string            `json:"id"`
	Name         string            `json:"name"`
	Venue        string            `json:"venue,omitempty"`
	StartDate    string            `json:"start_date,omitempty"`
	EndDate      string            `json:"end_date,omitempty"`
	Status       string            `json:"status,omitempty"`
	Rounds       []TournamentRound `json:"rounds"`
}

func (TournamentInfo) RecordKind() Kind { return KindTournamentInfo }
