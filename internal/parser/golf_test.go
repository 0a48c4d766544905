package parser

import (
	"testing"

	"github.com/reeeeemo/mcp-sports/internal/errortypes"
	"github.com/reeeeemo/mcp-sports/internal/sports"
)

func TestGolfParseTournamentList(t *testing.T) {
	p := NewGolfParser()

	payload := `{
		"season": {"id": "sr:season:golf2024", "year": 2024},
		"tournaments": [
			{
				"id": "sr:tournament:masters",
				"name": "The Masters",
				"venue": {"name": "Augusta National"},
				"start_date": "2024-04-11",
				"end_date": "2024-04-14",
				"status": "closed"
			},
			{
				"id": "sr:tournament:open",
				"name": "The Open Championship",
				"start_date": "2024-07-18",
				"end_date": "2024-07-21",
				"status": "scheduled"
			}
		]
	}`

	rec, err := p.Parse(sports.KindTournamentList, sports.FormatJSON, []byte(payload))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	list := rec.(sports.TournamentList)
	if list.SeasonID != "sr:season:golf2024" || list.Year != 2024 {
		t.Errorf("Unexpected season: %+v", list)
	}
	if len(list.Tournaments) != 2 {
		t.Fatalf("Expected 2 tournaments, got %d", len(list.Tournaments))
	}
	if list.Tournaments[0].Venue != "Augusta National" {
		t.Errorf("Unexpected venue: %q", list.Tournaments[0].Venue)
	}
	// Venue is optional.
	if list.Tournaments[1].Venue != "" {
		t.Errorf("Expected empty venue, got %q", list.Tournaments[1].Venue)
	}
}

func TestGolfParseTournamentListMissingSeasonID(t *testing.T) {
	p := NewGolfParser()

	_, err := p.Parse(sports.KindTournamentList, sports.FormatJSON, []byte(`{"tournaments": []}`))
	if !errortypes.IsParseError(err) {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestGolfParseTournamentInfo(t *testing.T) {
	p := NewGolfParser()

	payload := `{
		"id": "sr:tournament:masters",
		"name": "The Masters",
		"venue": {"name": "Augusta National"},
		"start_date": "2024-04-11",
		"end_date": "2024-04-14",
		"status": "inprogress",
		"rounds": [
			{"number": 1, "status": "closed"},
			{"number": 2, "status": "inprogress"}
		]
	}`

	rec, err := p.Parse(sports.KindTournamentInfo, sports.FormatJSON, []byte(payload))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	info := rec.(sports.TournamentInfo)
	if info.TournamentID != "sr:tournament:masters" || info.Venue != "Augusta National" {
		t.Errorf("Unexpected tournament: %+v", info)
	}
	if len(info.Rounds) != 2 || info.Rounds[1].Status != "inprogress" {
		t.Errorf("Unexpected rounds: %+v", info.Rounds)
	}
}

func TestGolfParseTournamentInfoMissingID(t *testing.T) {
	p := NewGolfParser()

	_, err := p.Parse(sports.KindTournamentInfo, sports.FormatJSON, []byte(`{"name": "Nameless"}`))
	if !errortypes.IsParseError(err) {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestGolfParseUnsupportedKind(t *testing.T) {
	p := NewGolfParser()

	_, err := p.Parse(sports.KindSchedule, sports.FormatJSON, []byte(`{}`))
	if err == nil {
		t.Fatal("Expected error for unsupported kind")
	}
	if errortypes.KindOf(err) != errortypes.ErrorTypeInternal {
		t.Errorf("Expected internal error, got %v", err)
	}
}
