package mlb

import (
	"sort"
	"strconv"
	"time"

	"homegame-service/internal/domain/games"
)

func isTimeTBD(g scheduleGame) bool {
	if g.Status.StartTimeTBD {
		return true
	}
	if g.GameDate == "" {
		return true
	}
	t, err := time.Parse(time.RFC3339, g.GameDate)
	if err != nil {
		return true
	}
	utc := t.UTC()
	return utc.Hour() == tbdSentinelHour && utc.Minute() == tbdSentinelMinute
}

func normalizeGame(g scheduleGame) games.Game {
	homeName := g.Teams.Home.Team.Name
	if homeName == "" {
		homeName = "Home Team"
	}
	awayName := g.Teams.Away.Team.Name
	if awayName == "" {
		awayName = "Away Team"
	}

	status := g.Status.DetailedState
	if status == "" {
		status = g.Status.AbstractGameState
	}

	return games.Game{
		GameID:   strconv.FormatInt(g.GamePk, 10),
		GameDate: g.GameDate,
		HomeTeam: games.TeamRef{
			Name: homeName,
			ID:   strconv.Itoa(g.Teams.Home.Team.ID),
		},
		AwayTeam: games.TeamRef{
			Name: awayName,
			ID:   strconv.Itoa(g.Teams.Away.Team.ID),
		},
		Venue:        g.Venue.Name,
		StartTimeTBD: isTimeTBD(g),
		Status:       status,
	}
}

// mergeAndGroup unions regular-season and postseason date buckets,
// de-duplicates by gamePk preferring the copy with a concrete gameDate,
// sorts ascending (undated last), normalizes, and re-buckets by UTC day.
func mergeAndGroup(regDates, psDates []scheduleDate, fallbackKey string) games.SchedulePayload {
	var raw []scheduleGame
	for _, d := range regDates {
		raw = append(raw, d.Games...)
	}
	for _, d := range psDates {
		raw = append(raw, d.Games...)
	}

	var (
		order []int64
		byPk  = make(map[int64]scheduleGame)
	)
	for _, g := range raw {
		if g.GamePk == 0 {
			continue
		}
		existing, seen := byPk[g.GamePk]
		if !seen {
			order = append(order, g.GamePk)
			byPk[g.GamePk] = g
			continue
		}
		if existing.GameDate == "" && g.GameDate != "" {
			byPk[g.GamePk] = g
		}
	}

	merged := make([]scheduleGame, 0, len(order))
	for _, pk := range order {
		merged = append(merged, byPk[pk])
	}

	sort.SliceStable(merged, func(i, j int) bool {
		ti, iOK := parseGameDate(merged[i].GameDate)
		tj, jOK := parseGameDate(merged[j].GameDate)
		if !iOK {
			return false
		}
		if !jOK {
			return true
		}
		return ti.Before(tj)
	})

	normalized := make([]games.Game, 0, len(merged))
	for _, g := range merged {
		normalized = append(normalized, normalizeGame(g))
	}

	return games.GroupByDateKey(normalized, fallbackKey)
}

func parseGameDate(iso string) (time.Time, bool) {
	if iso == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
