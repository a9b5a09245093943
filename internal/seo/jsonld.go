// Package seo builds schema.org structured data for team pages.
package seo

import (
	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
)

// SportsTeam is a schema.org SportsTeam node.
type SportsTeam struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Place is a schema.org Place node.
type Place struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// SportsEvent is a schema.org SportsEvent document.
type SportsEvent struct {
	Context             string     `json:"@context"`
	Type                string     `json:"@type"`
	Name                string     `json:"name"`
	Sport               string     `json:"sport"`
	StartDate           string     `json:"startDate"`
	EventAttendanceMode string     `json:"eventAttendanceMode"`
	HomeTeam            SportsTeam `json:"homeTeam"`
	AwayTeam            SportsTeam `json:"awayTeam"`
	Location            *Place     `json:"location,omitempty"`
}

// BuildSportsEvent assembles the SportsEvent document for a team's selected
// game. fallbackDateISO (YYYY-MM-DD) stands in as a UTC-midnight start when
// the game has no date; nil is returned when there is no game or no usable
// start at all. The venue location is only attached for home games.
func BuildSportsEvent(team teams.Team, selected *games.Game, isHome bool, fallbackDateISO string) *SportsEvent {
	if selected == nil {
		return nil
	}

	start := selected.GameDate
	if start == "" {
		if fallbackDateISO == "" {
			return nil
		}
		start = fallbackDateISO + "T00:00:00Z"
	}

	teamName := team.Name
	if teamName == "" {
		teamName = "Team"
	}

	var opponent string
	if isHome {
		opponent = selected.AwayTeam.Name
	} else {
		opponent = selected.HomeTeam.Name
	}
	if opponent == "" {
		opponent = "Opponent"
	}

	var name string
	homeName := selected.HomeTeam.Name
	awayName := selected.AwayTeam.Name
	if isHome {
		name = teamName + " vs " + opponent
		homeName = teamName
		if awayName == "" {
			awayName = "Away Team"
		}
	} else {
		name = opponent + " vs " + teamName
		awayName = teamName
		if homeName == "" {
			homeName = "Home Team"
		}
	}

	event := &SportsEvent{
		Context:             "https://schema.org",
		Type:                "SportsEvent",
		Name:                name,
		Sport:               team.Sport.DisplayName(),
		StartDate:           start,
		EventAttendanceMode: "https://schema.org/OfflineEventAttendanceMode",
		HomeTeam:            SportsTeam{Type: "SportsTeam", Name: homeName},
		AwayTeam:            SportsTeam{Type: "SportsTeam", Name: awayName},
	}
	if isHome && team.Venue != "" {
		event.Location = &Place{Type: "Place", Name: team.Venue}
	}
	return event
}
