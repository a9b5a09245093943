package nhl

type clubScheduleResponse struct {
	Games []nhlGame `json:"games"`
}

type leagueScheduleResponse struct {
	GameWeek []gameWeekDay `json:"gameWeek"`
}

type gameWeekDay struct {
	Date  string    `json:"date"`
	Games []nhlGame `json:"games"`
}

type nhlGame struct {
	ID                int64     `json:"id"`
	StartTimeUTC      string    `json:"startTimeUTC"`
	GameScheduleState string    `json:"gameScheduleState"`
	GameState         string    `json:"gameState"`
	HomeTeam          nhlTeam   `json:"homeTeam"`
	AwayTeam          nhlTeam   `json:"awayTeam"`
	Venue             localized `json:"venue"`
}

type nhlTeam struct {
	ID         int       `json:"id"`
	Abbrev     string    `json:"abbrev"`
	CommonName localized `json:"commonName"`
}

type localized struct {
	Default string `json:"default"`
}
