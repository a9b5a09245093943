package espn

import "homegame-service/internal/domain/games"

// normalizeEvent flattens a scoreboard event into the shared game shape.
// Events without a competition carry no teams and are dropped by the caller.
func normalizeEvent(ev espnEvent) (games.Game, bool) {
	if len(ev.Competitions) == 0 {
		return games.Game{}, false
	}
	comp := ev.Competitions[0]

	var home, away espnCompetitor
	for _, c := range comp.Competitors {
		switch c.HomeAway {
		case "home":
			home = c
		case "away":
			away = c
		}
	}

	statusType := comp.Status.Type.Name
	if statusType == "" {
		statusType = ev.Status.Type.Name
	}

	return games.Game{
		GameID:       ev.ID,
		GameDate:     ev.Date,
		HomeTeam:     mapTeam(home.Team, "Home Team"),
		AwayTeam:     mapTeam(away.Team, "Away Team"),
		Venue:        comp.Venue.FullName,
		StartTimeTBD: statusType == statusTBD || ev.Date == "",
		Status:       statusType,
	}, true
}

func mapTeam(t espnTeamInfo, fallbackName string) games.TeamRef {
	name := t.DisplayName
	if name == "" {
		name = t.Name
	}
	if name == "" {
		name = fallbackName
	}
	id := t.Abbreviation
	if id == "" {
		id = t.ID
	}
	return games.TeamRef{Name: name, ID: id}
}
