package providers

import (
	"context"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
)

// ScheduleProvider defines how upstream schedule data is fetched and
// normalized. Every sport adapter implements both operations and returns the
// shared SchedulePayload shape.
type ScheduleProvider interface {
	// FetchScheduleWindow returns the team's games between startISO and
	// endISO (YYYY-MM-DD, inclusive).
	FetchScheduleWindow(ctx context.Context, team teams.Team, startISO, endISO string) (games.SchedulePayload, error)

	// FetchLeagueScheduleToday returns the whole league's games for today.
	FetchLeagueScheduleToday(ctx context.Context) (games.SchedulePayload, error)
}

// LeagueTimezone anchors "today" for league-wide schedule lookups, matching
// the upstream APIs' own schedule day.
const LeagueTimezone = "America/New_York"
