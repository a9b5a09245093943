package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/providers"
	"homegame-service/internal/timeutil"
)

// Config controls how the ESPN client reaches the site API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches schedules from ESPN's scoreboard API. ESPN exposes no
// season-long schedule endpoint, so team windows are assembled one
// scoreboard day at a time, capped at maxWindowDays. A failed day
// contributes zero games rather than failing the whole window.
type Client struct {
	name       string
	sportPath  string
	leaguePath string
	baseURL    string
	httpClient providers.Doer
	now        func() time.Time
}

// NewNBA constructs a client for the NBA scoreboard.
func NewNBA(cfg Config) *Client {
	return newClient("nba", "basketball", "nba", cfg)
}

// NewNFL constructs a client for the NFL scoreboard.
func NewNFL(cfg Config) *Client {
	return newClient("nfl", "football", "nfl", cfg)
}

func newClient(name, sportPath, leaguePath string, cfg Config) *Client {
	return &Client{
		name:       name,
		sportPath:  sportPath,
		leaguePath: leaguePath,
		baseURL:    providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		httpClient: providers.ResolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// Name reports which league this client serves, for logs and metrics.
func (c *Client) Name() string {
	return c.name
}

// FetchScheduleWindow polls the scoreboard for each day in the window and
// keeps only the games involving the given team.
func (c *Client) FetchScheduleWindow(ctx context.Context, team teams.Team, startISO, endISO string) (games.SchedulePayload, error) {
	start := c.parseBoundary(startISO)
	end := c.parseBoundary(endISO)

	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days > maxWindowDays {
		days = maxWindowDays
	}

	teamID := team.ScheduleID()

	var all []games.Game
	for i := 0; i <= days; i++ {
		dateKey := start.AddDate(0, 0, i).UTC().Format(scoreboardDateLayout)
		for _, g := range c.fetchScoreboardDay(ctx, dateKey) {
			if g.HomeTeam.ID == teamID || g.AwayTeam.ID == teamID {
				all = append(all, g)
			}
		}
	}

	return games.GroupByDateKey(all, ""), nil
}

// FetchLeagueScheduleToday retrieves the full scoreboard for today. A
// failed fetch degrades to an empty payload.
func (c *Client) FetchLeagueScheduleToday(ctx context.Context) (games.SchedulePayload, error) {
	today := timeutil.DateKeyInZone(c.now(), providers.LeagueTimezone)
	dateKey := strings.ReplaceAll(today, "-", "")
	return games.GroupByDateKey(c.fetchScoreboardDay(ctx, dateKey), today), nil
}

func (c *Client) parseBoundary(iso string) time.Time {
	if iso == "" {
		return c.now().UTC()
	}
	t, err := timeutil.ParseDate(iso)
	if err != nil {
		return c.now().UTC()
	}
	return t
}

// fetchScoreboardDay returns the normalized games for one scoreboard day.
// Every failure mode yields zero games.
func (c *Client) fetchScoreboardDay(ctx context.Context, dateKey string) []games.Game {
	endpoint := fmt.Sprintf("%s/%s/%s/scoreboard?dates=%s", c.baseURL, c.sportPath, c.leaguePath, dateKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}

	normalized := make([]games.Game, 0, len(payload.Events))
	for _, ev := range payload.Events {
		if g, ok := normalizeEvent(ev); ok {
			normalized = append(normalized, g)
		}
	}
	return normalized
}
