package espn

type scoreboardResponse struct {
	Events []espnEvent `json:"events"`
}

type espnEvent struct {
	ID           string            `json:"id"`
	Date         string            `json:"date"`
	Status       espnStatus        `json:"status"`
	Competitions []espnCompetition `json:"competitions"`
}

type espnCompetition struct {
	Competitors []espnCompetitor `json:"competitors"`
	Venue       espnVenue        `json:"venue"`
	Status      espnStatus       `json:"status"`
}

type espnCompetitor struct {
	HomeAway string       `json:"homeAway"`
	Team     espnTeamInfo `json:"team"`
}

type espnTeamInfo struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
	Name         string `json:"name"`
}

type espnVenue struct {
	FullName string `json:"fullName"`
}

type espnStatus struct {
	Type espnStatusType `json:"type"`
}

type espnStatusType struct {
	Name string `json:"name"`
}
