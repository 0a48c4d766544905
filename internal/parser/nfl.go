package parser

import (
	"github.com/reeeeemo/mcp-sports/internal/sports"
)

// NFLParser normalizes SportRadar NFL payloads.
type NFLParser struct{}

// NewNFLParser creates the parser set for the NFL.
func NewNFLParser() *NFLParser {
	return &NFLParser{}
}

// Parse implements the Parser interface for NFL endpoint kinds.
func (p *NFLParser) Parse(kind sports.Kind, format string, payload []byte) (sports.Record, error) {
	switch kind {
	case sports.KindSchedule:
		return p.parseSchedule(format, payload)
	case sports.KindTransactions:
		return p.parseTransactions(format, payload)
	case sports.KindGameStats:
		return p.parseGameStats(format, payload)
	case sports.KindLeagueInfo:
		return p.parseLeagueInfo(format, payload)
	case sports.KindTeamRoster:
		return p.parseRoster(format, payload)
	case sports.KindPlayerStats:
		return p.parsePlayerStats(format, payload)
	default:
		return nil, unknownKind(sports.NFL, kind)
	}
}

// Raw payload shapes. Field sets follow the provider's schedule/league
// endpoints; anything not listed here is dropped during normalization.

type nflSchedulePayload struct {
	Season nflSeason `json:"season" xml:"season"`
	Weeks  []nflWeek `json:"weeks" xml:"weeks>week"`
}

type nflSeason struct {
	ID   string `json:"id" xml:"id,attr"`
	Year int    `json:"year" xml:"year,attr"`
}

type nflWeek struct {
	ID       string    `json:"id" xml:"id,attr"`
	Sequence int       `json:"sequence" xml:"sequence,attr"`
	Games    []nflGame `json:"games" xml:"games>game"`
}

type nflGame struct {
	ID        string      `json:"id" xml:"id,attr"`
	Scheduled string      `json:"scheduled" xml:"scheduled,attr"`
	Venue     nflVenue    `json:"venue" xml:"venue"`
	Home      nflTeamName `json:"home" xml:"home"`
	Away      nflTeamName `json:"away" xml:"away"`
	Scoring   *nflScoring `json:"scoring" xml:"scoring"`
}

type nflVenue struct {
	Name     string      `json:"name" xml:"name,attr"`
	Location nflLocation `json:"location" xml:"location"`
}

type nflLocation struct {
	Lat float64 `json:"lat" xml:"lat,attr"`
	Lng float64 `json:"lng" xml:"lng,attr"`
}

type nflTeamName struct {
	ID     string `json:"id" xml:"id,attr"`
	Name   string `json:"name" xml:"name,attr"`
	Alias  string `json:"alias" xml:"alias,attr"`
	Market string `json:"market" xml:"market,attr"`
}

type nflScoring struct {
	HomePoints *int `json:"home_points" xml:"home_points,attr"`
	AwayPoints *int `json:"away_points" xml:"away_points,attr"`
}

func (p *NFLParser) parseSchedule(format string, payload []byte) (sports.Record, error) {
	var raw nflSchedulePayload
	if err := decode(format, payload, &raw); err != nil {
		return nil, err
	}
	if raw.Season.ID == "" {
		return nil, missingID("season.id")
	}

	sched := sports.Schedule{
		SeasonID: raw.Season.ID,
		Year:     raw.Season.Year,
		Weeks:    []sports.Week{},
	}

	for _, week := range raw.Weeks {
		games := make([]sports.Game, 0, len(week.Games))
		for _, game := range week.Games {
			g := sports.Game{
				ID:      game.ID,
				Date:    game.Scheduled,
				Stadium: game.Venue.Name,
				Location: sports.Location{
					Lat: game.Venue.Location.Lat,
					Lng: game.Venue.Location.Lng,
				},
				HomeTeam: game.Home.Name,
				AwayTeam: game.Away.Name,
			}
			if game.Scoring != nil {
				g.ScoreHome = game.Scoring.HomePoints
				g.ScoreAway = game.Scoring.AwayPoints
			}
			games = append(games, g)
		}
		sched.Weeks = append(sched.Weeks, sports.Week{
			ID:    week.ID,
			Num:   week.Sequence,
			Games: games,
		})
	}

	return sched, nil
}

type nflTransactionsPayload struct {
	League    nflLeagueRef     `json:"league" xml:"league"`
	StartTime string           `json:"start_time" xml:"start_time,attr"`
	EndTime   string           `json:"end_time" xml:"end_time,attr"`
	Players   []nflPlayerMoves `json:"players" xml:"players>player"`
}

type nflLeagueRef struct {
	ID    string `json:"id" xml:"id,attr"`
	Name  string `json:"name" xml:"name,attr"`
	Alias string `json:"alias" xml:"alias,attr"`
}

type nflPlayerMoves struct {
	Name         string    `json:"name" xml:"name,attr"`
	Position     string    `json:"position" xml:"position,attr"`
	Transactions []nflMove `json:"transactions" xml:"transactions>transaction"`
}

type nflMove struct {
	Desc          string       `json:"desc" xml:"desc,attr"`
	EffectiveDate string       `json:"effective_date" xml:"effective_date,attr"`
	StatusBefore  string       `json:"status_before" xml:"status_before,attr"`
	ToTeam        *nflTeamName `json:"to_team" xml:"to_team"`
}

func (p *NFLParser) parseTransactions(format string, payload []byte) (sports.Record, error) {
	var raw nflTransactionsPayload
	if err := decode(format, payload, &raw); err != nil {
		return nil, err
	}
	if raw.League.ID == "" {
		return nil, missingID("league.id")
	}

	// The same league produces one transaction record per reporting window,
	// so the window bounds are folded into the identifier.
	list := sports.TransactionList{
		ID:         raw.League.ID + raw.StartTime + raw.EndTime,
		LeagueName: raw.League.Name,
		StartTime:  raw.StartTime,
		EndTime:    raw.EndTime,
		Players:    []sports.PlayerTransactions{},
	}

	for _, plr := range raw.Players {
		moves := make([]sports.Transaction, 0, len(plr.Transactions))
		for _, move := range plr.Transactions {
			t := sports.Transaction{
				Desc:         move.Desc,
				Effective:    move.EffectiveDate,
				StatusBefore: move.StatusBefore,
			}
			if move.ToTeam != nil {
				t.ReceivingTeam = move.ToTeam.Market + " " + move.ToTeam.Name
			}
			moves = append(moves, t)
		}
		list.Players = append(list.Players, sports.PlayerTransactions{
			Name:         plr.Name,
			Position:     plr.Position,
			Transactions: moves,
		})
	}

	return list, nil
}

type nflGameStatsPayload struct {
	ID         string         `json:"id" xml:"id,attr"`
	Status     string         `json:"status" xml:"status,attr"`
	Scheduled  string         `json:"scheduled" xml:"scheduled,attr"`
	Summary    nflGameSummary `json:"summary" xml:"summary"`
	Statistics map[string]any `json:"statistics" xml:"-"`
}

type nflGameSummary struct {
	Home nflTeamScore `json:"home" xml:"home"`
	Away nflTeamScore `json:"away" xml:"away"`
}

type nflTeamScore struct {
	ID     string `json:"id" xml:"id,attr"`
	Name   string `json:"name" xml:"name,attr"`
	Alias  string `json:"alias" xml:"alias,attr"`
	Points int    `json:"points" xml:"points,attr"`
}

func (p *NFLParser) parseGameStats(format string, payload []byte) (sports.Record, error) {
	var raw nflGameStatsPayload
	if err := decode(format, payload, &raw); err != nil {
		return nil, err
	}
	if raw.ID == "" {
		return nil, missingID("id")
	}

	return sports.GameStats{
		GameID:    raw.ID,
		Status:    raw.Status,
		Scheduled: raw.Scheduled,
		Home: sports.TeamScore{
			ID:     raw.Summary.Home.ID,
			Name:   raw.Summary.Home.Name,
			Alias:  raw.Summary.Home.Alias,
			Points: raw.Summary.Home.Points,
		},
		Away: sports.TeamScore{
			ID:     raw.Summary.Away.ID,
			Name:   raw.Summary.Away.Name,
			Alias:  raw.Summary.Away.Alias,
			Points: raw.Summary.Away.Points,
		},
		Statistics: raw.Statistics,
	}, nil
}

type nflHierarchyPayload struct {
	League      nflLeagueRef    `json:"league" xml:"league"`
	Conferences []nflConference `json:"conferences" xml:"conferences>conference"`
}

type nflConference struct {
	ID        string        `json:"id" xml:"id,attr"`
	Name      string        `json:"name" xml:"name,attr"`
	Divisions []nflDivision `json:"divisions" xml:"divisions>division"`
}

type nflDivision struct {
	ID    string        `json:"id" xml:"id,attr"`
	Name  string        `json:"name" xml:"name,attr"`
	Teams []nflTeamName `json:"teams" xml:"teams>team"`
}

func (p *NFLParser) parseLeagueInfo(format string, payload []byte) (sports.Record, error) {
	var raw nflHierarchyPayload
	if err := decode(format, payload, &raw); err != nil {
		return nil, err
	}
	if raw.League.ID == "" {
		return nil, missingID("league.id")
	}

	info := sports.LeagueInfo{
		LeagueID:    raw.League.ID,
		Name:        raw.League.Name,
		Alias:       raw.League.Alias,
		Conferences: []sports.Conference{},
	}

	for _, conf := range raw.Conferences {
		divisions := make([]sports.Division, 0, len(conf.Divisions))
		for _, div := range conf.Divisions {
			teams := make([]sports.TeamRef, 0, len(div.Teams))
			for _, team := range div.Teams {
				teams = append(teams, sports.TeamRef{
					ID:     team.ID,
					Name:   team.Name,
					Market: team.Market,
					Alias:  team.Alias,
				})
			}
			divisions = append(divisions, sports.Division{
				ID:    div.ID,
				Name:  div.Name,
				Teams: teams,
			})
		}
		info.Conferences = append(info.Conferences, sports.Conference{
			ID:        conf.ID,
			Name:      conf.Name,
			Divisions: divisions,
		})
	}

	return info, nil
}

type nflRosterPayload struct {
	ID      string            `json:"id" xml:"id,attr"`
	Name    string            `json:"name" xml:"name,attr"`
	Market  string            `json:"market" xml:"market,attr"`
	Alias   string            `json:"alias" xml:"alias,attr"`
	Coaches []nflCoach        `json:"coaches" xml:"coaches>coach"`
	Players []nflRosterPlayer `json:"players" xml:"players>player"`
}

type nflCoach struct {
	ID       string `json:"id" xml:"id,attr"`
	Name     string `json:"name" xml:"name,attr"`
	Position string `json:"position" xml:"position,attr"`
}

type nflRosterPlayer struct {
	ID       string `json:"id" xml:"id,attr"`
	Name     string `json:"name" xml:"name,attr"`
	Position string `json:"position" xml:"position,attr"`
	Jersey   string `json:"jersey" xml:"jersey,attr"`
	Status   string `json:"status" xml:"status,attr"`
}

func (p *NFLParser) parseRoster(format string, payload []byte) (sports.Record, error) {
	var raw nflRosterPayload
	if err := decode(format, payload, &raw); err != nil {
		return nil, err
	}
	if raw.ID == "" {
		return nil, missingID("id")
	}

	roster := sports.Roster{
		TeamID:  raw.ID,
		Name:    raw.Name,
		Market:  raw.Market,
		Alias:   raw.Alias,
		Coaches: []sports.Coach{},
		Players: []sports.RosterPlayer{},
	}

	for _, coach := range raw.Coaches {
		roster.Coaches = append(roster.Coaches, sports.Coach{
			ID:       coach.ID,
			Name:     coach.Name,
			Position: coach.Position,
		})
	}
	for _, plr := range raw.Players {
		roster.Players = append(roster.Players, sports.RosterPlayer{
			ID:       plr.ID,
			Name:     plr.Name,
			Position: plr.Position,
			Jersey:   plr.Jersey,
			Status:   plr.Status,
		})
	}

	return roster, nil
}

type nflPlayerPayload struct {
	ID         string         `json:"id" xml:"id,attr"`
	Name       string         `json:"name" xml:"name,attr"`
	Position   string         `json:"position" xml:"position,attr"`
	Team       *nflTeamName   `json:"team" xml:"team"`
	Statistics map[string]any `json:"statistics" xml:"-"`
}

func (p *NFLParser) parsePlayerStats(format string, payload []byte) (sports.Record, error) {
	var raw nflPlayerPayload
	if err := decode(format, payload, &raw); err != nil {
		return nil, err
	}
	if raw.ID == "" {
		return nil, missingID("id")
	}

	stats := raw.Statistics
	if stats == nil {
		stats = map[string]any{}
	}

	rec := sports.PlayerStats{
		PlayerID: raw.ID,
		Name:     raw.Name,
		Position: raw.Position,
		Stats:    stats,
	}
	if raw.Team != nil {
		rec.Team = raw.Team.Name
	}

	return rec, nil
}
