package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/providers"
	"homegame-service/internal/timeutil"
)

// Config controls how the NHL client reaches api-web.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches schedules from the NHL api-web API. The per-team call uses
// the season-long club schedule keyed by 3-letter code and season string; a
// 404 there means off-season or unknown club and yields an empty schedule.
type Client struct {
	baseURL    string
	httpClient providers.Doer
	now        func() time.Time
}

// New constructs an NHL client with the provided configuration.
func New(cfg Config) *Client {
	return &Client{
		baseURL:    providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		httpClient: providers.ResolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchScheduleWindow retrieves the club's season schedule. The window
// bounds are accepted for interface symmetry; the upstream endpoint always
// returns the full season.
func (c *Client) FetchScheduleWindow(ctx context.Context, team teams.Team, startISO, endISO string) (games.SchedulePayload, error) {
	_ = startISO
	_ = endISO

	if team.APIID == "" {
		return games.SchedulePayload{}, fmt.Errorf("%s: team %q missing apiId (3-letter code)", ProviderName, team.Name)
	}

	endpoint := fmt.Sprintf("%s/club-schedule-season/%s/%s", c.baseURL, team.APIID, seasonString(c.now()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return games.SchedulePayload{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return games.SchedulePayload{}, fmt.Errorf("%s: club schedule request: %w", ProviderName, err)
	}
	defer resp.Body.Close()

	// Off-season or unknown club: empty schedule, not an error.
	if resp.StatusCode == http.StatusNotFound {
		return games.SchedulePayload{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return games.SchedulePayload{}, &providers.UpstreamError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload clubScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return games.SchedulePayload{}, &providers.UpstreamError{
			Provider: ProviderName,
			Message:  fmt.Sprintf("decode club schedule: %v", err),
		}
	}

	normalized := make([]games.Game, 0, len(payload.Games))
	for _, g := range payload.Games {
		normalized = append(normalized, normalizeGame(g))
	}
	games.SortByStartTime(normalized)

	return games.GroupByDateKey(normalized, ""), nil
}

// FetchLeagueScheduleToday retrieves the league-wide schedule for today.
// Any failure degrades to an empty payload.
func (c *Client) FetchLeagueScheduleToday(ctx context.Context) (games.SchedulePayload, error) {
	today := timeutil.DateKeyInZone(c.now(), providers.LeagueTimezone)
	empty := games.GroupByDateKey(nil, today)

	endpoint := fmt.Sprintf("%s/schedule/%s", c.baseURL, today)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return empty, nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return empty, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return empty, nil
	}

	var payload leagueScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return empty, nil
	}

	var normalized []games.Game
	for _, day := range payload.GameWeek {
		for _, g := range day.Games {
			normalized = append(normalized, normalizeGame(g))
		}
	}

	return games.GroupByDateKey(normalized, today), nil
}
