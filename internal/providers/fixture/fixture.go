// Package fixture provides a deterministic in-process schedule source so
// the service can run without upstream APIs (local development, demos,
// and handler tests).
package fixture

import (
	"context"
	"fmt"
	"time"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/timeutil"
)

// ProviderName tags logs and metrics for this adapter.
const ProviderName = "fixture"

// Provider synthesizes a small schedule around the current instant: a home
// game later today, an away game in three days, and a TBD home game next
// week. Every sport gets the same shape.
type Provider struct {
	now func() time.Time
}

// New constructs a fixture provider.
func New() *Provider {
	return &Provider{now: time.Now}
}

// NewAt constructs a fixture provider pinned to a fixed instant.
func NewAt(at time.Time) *Provider {
	return &Provider{now: func() time.Time { return at }}
}

func (p *Provider) FetchScheduleWindow(ctx context.Context, team teams.Team, startISO, endISO string) (games.SchedulePayload, error) {
	_ = ctx
	_ = startISO
	_ = endISO

	now := p.now().UTC()
	teamID := team.ScheduleID()
	opponent := games.TeamRef{Name: "Visiting Club", ID: "VIS"}
	self := games.TeamRef{Name: team.Name, ID: teamID}

	gs := []games.Game{
		{
			GameID:   fmt.Sprintf("fixture-%s-1", teamID),
			GameDate: now.Add(3 * time.Hour).Format(time.RFC3339),
			HomeTeam: self,
			AwayTeam: opponent,
			Venue:    team.Venue,
			Status:   "Scheduled",
		},
		{
			GameID:   fmt.Sprintf("fixture-%s-2", teamID),
			GameDate: now.AddDate(0, 0, 3).Format(time.RFC3339),
			HomeTeam: opponent,
			AwayTeam: self,
			Venue:    "Visiting Grounds",
			Status:   "Scheduled",
		},
		{
			GameID:       fmt.Sprintf("fixture-%s-3", teamID),
			GameDate:     now.AddDate(0, 0, 7).Format(time.RFC3339),
			HomeTeam:     self,
			AwayTeam:     opponent,
			Venue:        team.Venue,
			StartTimeTBD: true,
			Status:       "Scheduled",
		},
	}
	games.SortByStartTime(gs)

	return games.GroupByDateKey(gs, ""), nil
}

func (p *Provider) FetchLeagueScheduleToday(ctx context.Context) (games.SchedulePayload, error) {
	_ = ctx

	now := p.now().UTC()
	today := now.Format(timeutil.DateLayout)

	gs := []games.Game{
		{
			GameID:   "fixture-league-1",
			GameDate: now.Add(2 * time.Hour).Format(time.RFC3339),
			HomeTeam: games.TeamRef{Name: "Alpha Club", ID: "ALP"},
			AwayTeam: games.TeamRef{Name: "Beta Club", ID: "BET"},
			Venue:    "Alpha Field",
			Status:   "Scheduled",
		},
	}

	return games.GroupByDateKey(gs, today), nil
}
