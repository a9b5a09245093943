package games

import "time"

// TeamRef identifies one side of a game as reported by the upstream API.
// The ID is the upstream's identifier scheme rendered as a string (numeric
// ids for MLB, 3-letter codes for NHL, abbreviations for ESPN).
type TeamRef struct {
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// Game is the normalized, sport-agnostic game shape every adapter produces.
// GameDate is an RFC3339 instant; empty means the game is truly unscheduled.
type Game struct {
	GameID       string  `json:"gameId"`
	GameDate     string  `json:"gameDate,omitempty"`
	HomeTeam     TeamRef `json:"homeTeam"`
	AwayTeam     TeamRef `json:"awayTeam"`
	Venue        string  `json:"venue,omitempty"`
	StartTimeTBD bool    `json:"startTimeTbd"`
	Status       string  `json:"status,omitempty"`
}

// startTimeLayouts covers the upstream timestamp shapes: RFC3339 from the
// MLB and NHL APIs and ESPN's minute-precision variant without seconds.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// StartTime parses the game's scheduled instant. ok is false when the date
// is absent or unparseable.
func (g Game) StartTime() (time.Time, bool) {
	if g.GameDate == "" {
		return time.Time{}, false
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, g.GameDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ScheduleDate is one calendar-day bucket of games.
type ScheduleDate struct {
	Date       string `json:"date"`
	TotalGames int    `json:"totalGames"`
	Games      []Game `json:"games"`
}

// SchedulePayload is the normalized schedule shape shared by all adapters.
type SchedulePayload struct {
	TotalItems int            `json:"totalItems"`
	Dates      []ScheduleDate `json:"dates"`
}

// Flatten returns every game across all date buckets in bucket order.
func (p SchedulePayload) Flatten() []Game {
	var out []Game
	for _, d := range p.Dates {
		out = append(out, d.Games...)
	}
	return out
}
