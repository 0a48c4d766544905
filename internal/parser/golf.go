package parser

import (
	"github.com/reeeeemo/mcp-sports/internal/sports"
)

// GolfParser normalizes SportRadar golf payloads. Golf only exposes the
// tournament endpoints; there are no weekly schedules or rosters.
type GolfParser struct{}

// NewGolfParser creates the parser set for golf.
func NewGolfParser() *GolfParser {
	return &GolfParser{}
}

// Parse implements the Parser interface for golf endpoint kinds.
func (p *GolfParser) Parse(kind sports.Kind, format string, payload []byte) (sports.Record, error) {
	switch kind {
	case sports.KindTournamentList:
		return p.parseTournamentList(format, payload)
	case sports.KindTournamentInfo:
		return p.parseTournamentInfo(format, payload)
	default:
		return nil, unknownKind(sports.Golf, kind)
	}
}

type golfSchedulePayload struct {
	Season      golfSeason       `json:"season" xml:"season"`
	Tournaments []golfTournament `json:"tournaments" xml:"tournaments>tournament"`
}

type golfSeason struct {
	ID   string `json:"id" xml:"id,attr"`
	Year int    `json:"year" xml:"year,attr"`
}

type golfTournament struct {
	ID        string      `json:"id" xml:"id,attr"`
	Name      string      `json:"name" xml:"name,attr"`
	Venue     *golfVenue  `json:"venue" xml:"venue"`
	StartDate string      `json:"start_date" xml:"start_date,attr"`
	EndDate   string      `json:"end_date" xml:"end_date,attr"`
	Status    string      `json:"status" xml:"status,attr"`
	Rounds    []golfRound `json:"rounds" xml:"rounds>round"`
}

type golfVenue struct {
	Name string `json:"name" xml:"name,attr"`
}

type golfRound struct {
	Number int    `json:"number" xml:"number,attr"`
	Status string `json:"status" xml:"status,attr"`
}

func (p *GolfParser) parseTournamentList(format string, payload []byte) (sports.Record, error) {
	var raw golfSchedulePayload
	if err := decode(format, payload, &raw); err != nil {
		return nil, err
	}
	if raw.Season.ID == "" {
		return nil, missingID("season.id")
	}

	list := sports.TournamentList{
		SeasonID:    raw.Season.ID,
		Year:        raw.Season.Year,
		Tournaments: []sports.TournamentRef{},
	}

	for _, t := range raw.Tournaments {
		ref := sports.TournamentRef{
			ID:        t.ID,
			Name:      t.Name,
			StartDate: t.StartDate,
			EndDate:   t.EndDate,
			Status:    t.Status,
		}
		if t.Venue != nil {
			ref.Venue = t.Venue.Name
		}
		list.Tournaments = append(list.Tournaments, ref)
	}

	return list, nil
}

func (p *GolfParser) parseTournamentInfo(format string, payload []byte) (sports.Record, error) {
	var raw golfTournament
	if err := decode(format, payload, &raw); err != nil {
		return nil, err
	}
	if raw.ID == "" {
		return nil, missingID("id")
	}

	info := sports.TournamentInfo{
		TournamentID: raw.ID,
		Name:         raw.Name,
		StartDate:    raw.StartDate,
		EndDate:      raw.EndDate,
		Status:       raw.Status,
		Rounds:       []sports.TournamentRound{},
	}
	if raw.Venue != nil {
		info.Venue = raw.Venue.Name
	}
	for _, round := range raw.Rounds {
		info.Rounds = append(info.Rounds, sports.TournamentRound{
			Number: round.Number,
			Status: round.Status,
		})
	}

	return info, nil
}
