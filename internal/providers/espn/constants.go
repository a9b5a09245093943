package espn

const (
	defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

	// maxWindowDays caps the day-by-day scoreboard polling. ESPN has no
	// season-long schedule endpoint, so long windows would mean one
	// request per day.
	maxWindowDays = 14

	statusTBD = "STATUS_TBD"

	scoreboardDateLayout = "20060102"
)
