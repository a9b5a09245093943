package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
)

var seoTeam = teams.Team{
	Name:  "Boston Red Sox",
	Sport: teams.SportMLB,
	Venue: "Fenway Park",
}

func TestBuildSportsEventHomeGame(t *testing.T) {
	game := &games.Game{
		GameDate: "2024-07-04T23:05:00Z",
		HomeTeam: games.TeamRef{Name: "Boston Red Sox"},
		AwayTeam: games.TeamRef{Name: "New York Yankees"},
	}

	event := BuildSportsEvent(seoTeam, game, true, "")
	if event == nil {
		t.Fatal("expected event")
	}
	if event.Name != "Boston Red Sox vs New York Yankees" {
		t.Fatalf("unexpected name %q", event.Name)
	}
	if event.Sport != "Baseball" {
		t.Fatalf("unexpected sport %q", event.Sport)
	}
	if event.StartDate != "2024-07-04T23:05:00Z" {
		t.Fatalf("unexpected start %q", event.StartDate)
	}
	if event.Location == nil || event.Location.Name != "Fenway Park" {
		t.Fatalf("expected location for home game, got %+v", event.Location)
	}
	if event.HomeTeam.Name != "Boston Red Sox" || event.AwayTeam.Name != "New York Yankees" {
		t.Fatalf("unexpected teams %+v %+v", event.HomeTeam, event.AwayTeam)
	}
}

func TestBuildSportsEventAwayGameHasNoLocation(t *testing.T) {
	game := &games.Game{
		GameDate: "2024-07-06T23:05:00Z",
		HomeTeam: games.TeamRef{Name: "New York Yankees"},
		AwayTeam: games.TeamRef{Name: "Boston Red Sox"},
	}

	event := BuildSportsEvent(seoTeam, game, false, "")
	if event == nil {
		t.Fatal("expected event")
	}
	if event.Name != "New York Yankees vs Boston Red Sox" {
		t.Fatalf("unexpected name %q", event.Name)
	}
	if event.Location != nil {
		t.Fatal("away games must not carry the team venue")
	}
}

func TestBuildSportsEventFallbackDate(t *testing.T) {
	game := &games.Game{HomeTeam: games.TeamRef{Name: "Boston Red Sox"}}

	event := BuildSportsEvent(seoTeam, game, true, "2024-07-04")
	if event == nil || event.StartDate != "2024-07-04T00:00:00Z" {
		t.Fatalf("expected UTC-midnight fallback, got %+v", event)
	}

	if BuildSportsEvent(seoTeam, game, true, "") != nil {
		t.Fatal("no date and no fallback means no event")
	}
}

func TestBuildSportsEventNilGame(t *testing.T) {
	if BuildSportsEvent(seoTeam, nil, false, "2024-07-04") != nil {
		t.Fatal("expected nil for nil game")
	}
}

func TestBuildSportsEventJSONShape(t *testing.T) {
	game := &games.Game{
		GameDate: "2024-07-04T23:05:00Z",
		AwayTeam: games.TeamRef{Name: "New York Yankees"},
	}
	raw, err := json.Marshal(BuildSportsEvent(seoTeam, game, true, ""))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"@context":"https://schema.org"`, `"@type":"SportsEvent"`, `"eventAttendanceMode"`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("missing %s in %s", key, raw)
		}
	}
}
