package mlb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sourcegraph/conc"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/providers"
	"homegame-service/internal/timeutil"
)

// Config controls how the MLB client reaches the Stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches schedules from the MLB Stats API and maps them to the
// shared payload shape. Regular-season and postseason endpoints are queried
// concurrently; the regular-season leg is required, the postseason leg
// degrades to empty on any failure.
type Client struct {
	baseURL    string
	httpClient providers.Doer
	now        func() time.Time
}

// New constructs an MLB client with the provided configuration.
func New(cfg Config) *Client {
	return &Client{
		baseURL:    providers.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		httpClient: providers.ResolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchScheduleWindow retrieves the team's games between startISO and
// endISO, merged across the regular-season and postseason endpoints.
func (c *Client) FetchScheduleWindow(ctx context.Context, team teams.Team, startISO, endISO string) (games.SchedulePayload, error) {
	regQuery := url.Values{}
	regQuery.Set("sportId", sportID)
	regQuery.Set("teamId", team.ScheduleID())
	psQuery := url.Values{}
	psQuery.Set("teamId", team.ScheduleID())
	for _, q := range []url.Values{regQuery, psQuery} {
		if startISO != "" {
			q.Set("startDate", startISO)
		}
		if endISO != "" {
			q.Set("endDate", endISO)
		}
	}

	var (
		reg, ps       scheduleResponse
		regErr, psErr error
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		reg, regErr = c.fetchSchedule(ctx, c.baseURL+"/schedule?"+regQuery.Encode())
	})
	wg.Go(func() {
		ps, psErr = c.fetchSchedule(ctx, c.baseURL+"/schedule/postseason?"+psQuery.Encode())
	})
	wg.Wait()

	if regErr != nil {
		return games.SchedulePayload{}, regErr
	}
	if psErr != nil {
		ps = scheduleResponse{}
	}

	return mergeAndGroup(reg.Dates, ps.Dates, ""), nil
}

// FetchLeagueScheduleToday retrieves the whole league's games for today.
// Both legs degrade to empty on failure: this feed backs off-season guards,
// not user-facing text.
func (c *Client) FetchLeagueScheduleToday(ctx context.Context) (games.SchedulePayload, error) {
	today := timeutil.DateKeyInZone(c.now(), providers.LeagueTimezone)

	regQuery := url.Values{}
	regQuery.Set("sportId", sportID)
	regQuery.Set("startDate", today)
	regQuery.Set("endDate", today)
	psQuery := url.Values{}
	psQuery.Set("startDate", today)
	psQuery.Set("endDate", today)

	var (
		reg, ps       scheduleResponse
		regErr, psErr error
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		reg, regErr = c.fetchSchedule(ctx, c.baseURL+"/schedule?"+regQuery.Encode())
	})
	wg.Go(func() {
		ps, psErr = c.fetchSchedule(ctx, c.baseURL+"/schedule/postseason?"+psQuery.Encode())
	})
	wg.Wait()

	if regErr != nil {
		reg = scheduleResponse{}
	}
	if psErr != nil {
		ps = scheduleResponse{}
	}

	return mergeAndGroup(reg.Dates, ps.Dates, today), nil
}

func (c *Client) fetchSchedule(ctx context.Context, endpoint string) (scheduleResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return scheduleResponse{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return scheduleResponse{}, fmt.Errorf("%s: schedule request: %w", ProviderName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return scheduleResponse{}, &providers.UpstreamError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return scheduleResponse{}, &providers.UpstreamError{
			Provider: ProviderName,
			Message:  fmt.Sprintf("decode schedule: %v", err),
		}
	}
	return payload, nil
}
