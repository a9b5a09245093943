package fixture

import (
	"context"
	"testing"
	"time"

	"homegame-service/internal/domain/teams"
)

func TestFetchScheduleWindowShape(t *testing.T) {
	at := time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC)
	p := NewAt(at)

	team := teams.Team{ID: 111, Slug: "red-sox", Name: "Boston Red Sox", Venue: "Fenway Park"}
	payload, err := p.FetchScheduleWindow(context.Background(), team, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.TotalItems != 3 {
		t.Fatalf("expected three games, got %d", payload.TotalItems)
	}

	flat := payload.Flatten()
	if flat[0].HomeTeam.ID != "111" || flat[0].Venue != "Fenway Park" {
		t.Fatalf("expected home game first, got %+v", flat[0])
	}
	if flat[1].AwayTeam.ID != "111" {
		t.Fatalf("expected away game second, got %+v", flat[1])
	}
	if !flat[2].StartTimeTBD {
		t.Fatalf("expected final game TBD, got %+v", flat[2])
	}
}

func TestFetchScheduleWindowDeterministic(t *testing.T) {
	at := time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC)
	team := teams.Team{ID: 6, APIID: "BOS", Name: "Boston Bruins", Venue: "TD Garden"}

	a, _ := NewAt(at).FetchScheduleWindow(context.Background(), team, "", "")
	b, _ := NewAt(at).FetchScheduleWindow(context.Background(), team, "", "")
	if a.Flatten()[0].GameID != b.Flatten()[0].GameID {
		t.Fatal("expected identical output for identical instants")
	}
	if a.Flatten()[0].GameID != "fixture-BOS-1" {
		t.Fatalf("expected apiId-keyed game ids, got %s", a.Flatten()[0].GameID)
	}
}

func TestFetchLeagueScheduleToday(t *testing.T) {
	at := time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC)
	payload, err := NewAt(at).FetchLeagueScheduleToday(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.TotalItems != 1 {
		t.Fatalf("expected one league game, got %d", payload.TotalItems)
	}
	if payload.Dates[0].Date != "2024-07-04" {
		t.Fatalf("unexpected date bucket %s", payload.Dates[0].Date)
	}
}
