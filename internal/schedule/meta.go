package schedule

import (
	"fmt"
	"strings"
	"time"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/timeutil"
)

const siteName = "homegame.today"

// PageMeta is the title/description pair for a team page.
type PageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BuildTeamPageMeta renders the page title ("{name} — Yes|No | site") and
// uses the plain medium-format status line as the description.
func BuildTeamPageMeta(team teams.Team, payload games.SchedulePayload, now time.Time) PageMeta {
	message := FormatTeamStatus(team, payload, StatusOptions{DateStyle: DateStyleMedium}, now)
	answer := "No"
	if strings.HasPrefix(message, "Yes") {
		answer = "Yes"
	}
	return PageMeta{
		Title:       fmt.Sprintf("%s — %s | %s", team.Name, answer, siteName),
		Description: message,
	}
}

// OGImagePath returns the social-card image path for the team's current
// local day.
func OGImagePath(slug, timezone string, now time.Time) string {
	return fmt.Sprintf("/og/%s-%s.png", slug, timeutil.DateKeyInZone(now, timezone))
}

// SelectGameForToday picks the game to feature in structured data: today's
// home game when there is one, else today's away game. isHome reports which
// branch was taken; both are zero when the team does not play today.
func SelectGameForToday(facts Facts) (selected *games.Game, isHome bool) {
	if len(facts.HomeGamesToday) > 0 {
		return &facts.HomeGamesToday[0], true
	}
	if len(facts.AwayGamesToday) > 0 {
		return &facts.AwayGamesToday[0], false
	}
	return nil, false
}
