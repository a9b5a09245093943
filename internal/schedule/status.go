package schedule

import (
	"fmt"
	"strings"
	"time"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/timeutil"
)

// DateStyle selects the date rendering in the No-next-game line.
type DateStyle string

const (
	DateStyleShort  DateStyle = "short"
	DateStyleMedium DateStyle = "medium"
	DateStyleLong   DateStyle = "long"
)

const (
	timeLayout       = "3:04 PM"
	dateLayoutShort  = "1/2/06"
	dateLayoutMedium = "Jan 2, 2006"
	dateLayoutLong   = "January 2, 2006"

	defaultVenue = "their stadium"

	nbsp = " "
)

func (s DateStyle) layout() string {
	switch s {
	case DateStyleShort:
		return dateLayoutShort
	case DateStyleLong:
		return dateLayoutLong
	default:
		return dateLayoutMedium
	}
}

// StatusOptions control the rendered status line. NBSP hardens the date and
// time fragments against line breaks, which matters when the text is drawn
// onto a fixed-width image.
type StatusOptions struct {
	IncludeTeamName bool
	NBSP            bool
	DateStyle       DateStyle
}

// FormatTeamStatus renders the one-line answer for a team: a home game
// today (with the local start time when it is certain), else the next
// scheduled home game, else not-yet-scheduled.
func FormatTeamStatus(team teams.Team, payload games.SchedulePayload, opts StatusOptions, now time.Time) string {
	venue := team.Venue
	if venue == "" {
		venue = defaultVenue
	}

	prefix := ""
	if opts.IncludeTeamName {
		prefix = team.Name + " — "
	}
	space := " "
	if opts.NBSP {
		space = nbsp
	}
	nb := func(s string) string {
		if opts.NBSP {
			return strings.ReplaceAll(s, " ", nbsp)
		}
		return s
	}

	facts := DeriveFacts(team, payload, now)

	if len(facts.HomeGamesToday) > 0 {
		g := facts.HomeGamesToday[0]
		timePart, certain := localTime(g, team.Timezone)
		if certain {
			return prefix + fmt.Sprintf("Yes, today's game at %s is scheduled for %s.", venue, nb(timePart))
		}
		return prefix + fmt.Sprintf("Yes, today's game at %s is scheduled.", venue)
	}

	if next := facts.NextHomeGame; next != nil {
		datePart := localDate(*next, team.Timezone, opts.DateStyle)
		timePart, certain := localTime(*next, team.Timezone)
		if certain {
			return prefix + fmt.Sprintf("No, the next game at %s is scheduled for %s at%s%s.", venue, nb(datePart), space, nb(timePart))
		}
		return prefix + fmt.Sprintf("No, the next game at %s is scheduled for %s.", venue, nb(datePart))
	}

	return prefix + fmt.Sprintf("No, the next game at %s is not yet scheduled.", venue)
}

// localTime renders the game's start clock in the team's zone. certain is
// false for TBD games, which must never show a clock time.
func localTime(g games.Game, timezone string) (string, bool) {
	if IsStartTimeTBD(g) {
		return "", false
	}
	ts, ok := g.StartTime()
	if !ok {
		return "", false
	}
	return ts.In(timeutil.LocationOrUTC(timezone)).Format(timeLayout), true
}

func localDate(g games.Game, timezone string, style DateStyle) string {
	ts, ok := g.StartTime()
	if !ok {
		return ""
	}
	return ts.In(timeutil.LocationOrUTC(timezone)).Format(style.layout())
}
