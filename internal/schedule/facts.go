// Package schedule is the sport-agnostic core: it derives per-team facts
// from normalized schedule payloads, formats the Yes/No status line, and
// coordinates cached fetches through the adapter registry.
package schedule

import (
	"sort"
	"strings"
	"time"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/timeutil"
)

// Facts are the derived schedule view for one team at one instant.
// TodayKey is the calendar day in the team's timezone, not UTC.
type Facts struct {
	Games          []games.Game
	TeamTimezone   string
	TodayKey       string
	GamesToday     []games.Game
	HomeGamesToday []games.Game
	AwayGamesToday []games.Game
	NextHomeGame   *games.Game
}

// DeriveFacts flattens the payload and computes today's games, the home and
// away subsets, and the next home game at or after now. One home predicate
// governs every subset here and in the formatter.
func DeriveFacts(team teams.Team, payload games.SchedulePayload, now time.Time) Facts {
	all := payload.Flatten()
	todayKey := timeutil.DateKeyInZone(now, team.Timezone)

	facts := Facts{
		Games:        all,
		TeamTimezone: team.Timezone,
		TodayKey:     todayKey,
	}

	for _, g := range all {
		ts, ok := g.StartTime()
		if !ok || timeutil.DateKeyInZone(ts, team.Timezone) != todayKey {
			continue
		}
		facts.GamesToday = append(facts.GamesToday, g)
		if isHomeForTeam(team, g) {
			facts.HomeGamesToday = append(facts.HomeGamesToday, g)
		}
		if g.AwayTeam.ID == team.ScheduleID() {
			facts.AwayGamesToday = append(facts.AwayGamesToday, g)
		}
	}

	facts.NextHomeGame = nextHomeGame(team, all, now)
	return facts
}

// isHomeForTeam reports whether the team hosts the game. Postseason
// placeholders sometimes carry seed ids instead of real team ids, so a
// venue-name match counts too.
func isHomeForTeam(team teams.Team, g games.Game) bool {
	if g.HomeTeam.ID == team.ScheduleID() {
		return true
	}
	gameVenue := strings.ToLower(strings.TrimSpace(g.Venue))
	teamVenue := strings.ToLower(strings.TrimSpace(team.Venue))
	return gameVenue != "" && teamVenue != "" && gameVenue == teamVenue
}

// nextHomeGame returns the first dated home game starting at or after now.
func nextHomeGame(team teams.Team, all []games.Game, now time.Time) *games.Game {
	var upcoming []games.Game
	for _, g := range all {
		if _, ok := g.StartTime(); ok && isHomeForTeam(team, g) {
			upcoming = append(upcoming, g)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		ti, _ := upcoming[i].StartTime()
		tj, _ := upcoming[j].StartTime()
		return ti.Before(tj)
	})
	for i := range upcoming {
		ts, _ := upcoming[i].StartTime()
		if !ts.Before(now) {
			return &upcoming[i]
		}
	}
	return nil
}

// IsStartTimeTBD reports whether the game has no usable clock time: the
// upstream flagged it, or the date is absent or unparseable.
func IsStartTimeTBD(g games.Game) bool {
	if g.StartTimeTBD {
		return true
	}
	_, ok := g.StartTime()
	return !ok
}
