package nhl

import (
	"strconv"

	"homegame-service/internal/domain/games"
)

func normalizeGame(g nhlGame) games.Game {
	return games.Game{
		GameID:       strconv.FormatInt(g.ID, 10),
		GameDate:     g.StartTimeUTC,
		HomeTeam:     mapTeam(g.HomeTeam, "Home Team"),
		AwayTeam:     mapTeam(g.AwayTeam, "Away Team"),
		Venue:        g.Venue.Default,
		StartTimeTBD: g.GameScheduleState == "TBD" || g.StartTimeUTC == "",
		Status:       g.GameState,
	}
}

func mapTeam(t nhlTeam, fallbackName string) games.TeamRef {
	name := t.CommonName.Default
	if name == "" {
		name = fallbackName
	}
	id := t.Abbrev
	if id == "" {
		id = strconv.Itoa(t.ID)
	}
	return games.TeamRef{Name: name, ID: id}
}
