package teams

import "strconv"

// Sport tags the league a team plays in. An empty tag means MLB, the
// original sport of the site.
type Sport string

const (
	SportMLB Sport = "mlb"
	SportNHL Sport = "nhl"
	SportNBA Sport = "nba"
	SportNFL Sport = "nfl"
)

// OrDefault resolves the empty tag to MLB.
func (s Sport) OrDefault() Sport {
	if s == "" {
		return SportMLB
	}
	return s
}

// Valid reports whether the tag (after defaulting) names a known sport.
func (s Sport) Valid() bool {
	switch s.OrDefault() {
	case SportMLB, SportNHL, SportNBA, SportNFL:
		return true
	}
	return false
}

// DisplayName returns the human-readable sport name used in structured data.
func (s Sport) DisplayName() string {
	switch s.OrDefault() {
	case SportNHL:
		return "Hockey"
	case SportNBA:
		return "Basketball"
	case SportNFL:
		return "Football"
	default:
		return "Baseball"
	}
}

// Team is static configuration for one profiled team. Loaded once from the
// embedded registry and immutable for the life of the process.
type Team struct {
	ID       int      `json:"id"`
	APIID    string   `json:"apiId,omitempty"`
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Sport    Sport    `json:"sport,omitempty"`
	Venue    string   `json:"venue,omitempty"`
	Timezone string   `json:"timezone"`
	Colors   []string `json:"colors,omitempty"`
}

// ScheduleID is the identifier the team's upstream schedule API keys on:
// the secondary apiId when the API uses its own scheme (NHL 3-letter codes,
// ESPN abbreviations), otherwise the canonical numeric id.
func (t Team) ScheduleID() string {
	if t.APIID != "" {
		return t.APIID
	}
	return strconv.Itoa(t.ID)
}
