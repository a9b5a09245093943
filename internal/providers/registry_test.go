package providers

import (
	"context"
	"testing"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
)

type stubProvider struct {
	name string
}

func (p *stubProvider) FetchScheduleWindow(ctx context.Context, team teams.Team, startISO, endISO string) (games.SchedulePayload, error) {
	return games.SchedulePayload{}, nil
}

func (p *stubProvider) FetchLeagueScheduleToday(ctx context.Context) (games.SchedulePayload, error) {
	return games.SchedulePayload{}, nil
}

func TestForSportDefaultsToMLB(t *testing.T) {
	registry := NewRegistry()
	mlb := &stubProvider{name: "mlb"}
	registry.Register(teams.SportMLB, mlb)

	got, err := registry.ForSport("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ScheduleProvider(mlb) {
		t.Fatal("expected empty sport to resolve to the mlb adapter")
	}
}

func TestForSportUnknown(t *testing.T) {
	registry := NewRegistry()
	registry.Register(teams.SportMLB, &stubProvider{})

	_, err := registry.ForSport(teams.Sport("cricket"))
	if !IsUnknownSport(err) {
		t.Fatalf("expected unknown-sport error, got %v", err)
	}
	if err.Error() == "" {
		t.Fatal("expected descriptive error message")
	}
}

func TestSportsListsRegistered(t *testing.T) {
	registry := NewRegistry()
	registry.Register(teams.SportMLB, &stubProvider{})
	registry.Register(teams.SportNHL, &stubProvider{})

	sports := registry.Sports()
	if len(sports) != 2 {
		t.Fatalf("expected two sports, got %v", sports)
	}
}
