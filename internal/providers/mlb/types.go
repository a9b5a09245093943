package mlb

type scheduleResponse struct {
	TotalItems int            `json:"totalItems"`
	Dates      []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date       string         `json:"date"`
	TotalGames int            `json:"totalGames"`
	Games      []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk   int64      `json:"gamePk"`
	GameDate string     `json:"gameDate"`
	Status   gameStatus `json:"status"`
	Teams    gameTeams  `json:"teams"`
	Venue    gameVenue  `json:"venue"`
}

type gameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
	StartTimeTBD      bool   `json:"startTimeTBD"`
}

type gameTeams struct {
	Home gameTeamSide `json:"home"`
	Away gameTeamSide `json:"away"`
}

type gameTeamSide struct {
	Team teamInfo `json:"team"`
}

type teamInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type gameVenue struct {
	Name string `json:"name"`
}
