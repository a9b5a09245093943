package mlb

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"homegame-service/internal/domain/teams"
	"homegame-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func newTestClient(rt roundTripperFunc) *Client {
	return New(Config{HTTPClient: &http.Client{Transport: rt}})
}

func TestFetchScheduleWindowMergesBothEndpoints(t *testing.T) {
	var mu sync.Mutex
	var paths []string

	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		mu.Lock()
		paths = append(paths, req.URL.Path)
		mu.Unlock()

		if strings.Contains(req.URL.Path, "postseason") {
			if got := req.URL.Query().Get("teamId"); got != "111" {
				t.Errorf("expected teamId=111 on postseason call, got %q", got)
			}
			return jsonResponse(http.StatusOK, `{
				"totalItems": 1,
				"dates": [{"date": "2024-10-05", "games": [
					{"gamePk": 2, "gameDate": "2024-10-05T20:08:00Z",
					 "teams": {"home": {"team": {"id": 111, "name": "Boston Red Sox"}},
					           "away": {"team": {"id": 147, "name": "New York Yankees"}}},
					 "venue": {"name": "Fenway Park"},
					 "status": {"detailedState": "Scheduled"}}
				]}]
			}`), nil
		}

		if got := req.URL.Query().Get("sportId"); got != "1" {
			t.Errorf("expected sportId=1, got %q", got)
		}
		if got := req.URL.Query().Get("startDate"); got != "2024-07-04" {
			t.Errorf("expected startDate, got %q", got)
		}
		return jsonResponse(http.StatusOK, `{
			"totalItems": 1,
			"dates": [{"date": "2024-07-04", "games": [
				{"gamePk": 1, "gameDate": "2024-07-04T23:05:00Z",
				 "teams": {"home": {"team": {"id": 111, "name": "Boston Red Sox"}},
				           "away": {"team": {"id": 147, "name": "New York Yankees"}}},
				 "venue": {"name": "Fenway Park"},
				 "status": {"detailedState": "Scheduled"}}
			]}]
		}`), nil
	})

	team := teams.Team{ID: 111, Slug: "red-sox"}
	payload, err := client.FetchScheduleWindow(context.Background(), team, "2024-07-04", "2025-04-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.TotalItems != 2 {
		t.Fatalf("expected two merged games, got %d", payload.TotalItems)
	}
	if len(paths) != 2 {
		t.Fatalf("expected both endpoints queried, got %v", paths)
	}
	if payload.Dates[0].Games[0].GameID != "1" {
		t.Fatalf("expected regular-season game first, got %+v", payload.Dates[0].Games[0])
	}
}

func TestFetchScheduleWindowRequiredLegFailureIsFatal(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if strings.Contains(req.URL.Path, "postseason") {
			return jsonResponse(http.StatusOK, `{"dates": []}`), nil
		}
		return jsonResponse(http.StatusServiceUnavailable, `upstream down`), nil
	})

	_, err := client.FetchScheduleWindow(context.Background(), teams.Team{ID: 111}, "2024-07-04", "2025-04-04")
	if err == nil {
		t.Fatal("expected error from failed regular-season call")
	}
	ue, ok := providers.AsUpstreamError(err)
	if !ok || ue.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected upstream error with status, got %v", err)
	}
}

func TestFetchScheduleWindowPostseasonFailureDegrades(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if strings.Contains(req.URL.Path, "postseason") {
			return nil, errors.New("connection refused")
		}
		return jsonResponse(http.StatusOK, `{
			"totalItems": 1,
			"dates": [{"date": "2024-07-04", "games": [
				{"gamePk": 1, "gameDate": "2024-07-04T23:05:00Z",
				 "teams": {"home": {"team": {"id": 111, "name": "Boston Red Sox"}},
				           "away": {"team": {"id": 147, "name": "New York Yankees"}}},
				 "status": {"detailedState": "Scheduled"}}
			]}]
		}`), nil
	})

	payload, err := client.FetchScheduleWindow(context.Background(), teams.Team{ID: 111}, "2024-07-04", "2025-04-04")
	if err != nil {
		t.Fatalf("expected postseason failure to degrade, got %v", err)
	}
	if payload.TotalItems != 1 {
		t.Fatalf("expected regular-season games only, got %d", payload.TotalItems)
	}
}

func TestFetchScheduleWindowDecodeErrorIsUpstreamError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		if strings.Contains(req.URL.Path, "postseason") {
			return jsonResponse(http.StatusOK, `{"dates": []}`), nil
		}
		return jsonResponse(http.StatusOK, `{not json`), nil
	})

	_, err := client.FetchScheduleWindow(context.Background(), teams.Team{ID: 111}, "", "")
	if _, ok := providers.AsUpstreamError(err); !ok {
		t.Fatalf("expected upstream error for malformed body, got %v", err)
	}
}

func TestFetchLeagueScheduleTodayDegradesEverything(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, ``), nil
	})
	client.now = func() time.Time {
		return time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC)
	}

	payload, err := client.FetchLeagueScheduleToday(context.Background())
	if err != nil {
		t.Fatalf("league-today should degrade, got %v", err)
	}
	if payload.TotalItems != 0 || len(payload.Dates) != 0 {
		t.Fatalf("expected empty payload, got %+v", payload)
	}
}

func TestFetchLeagueScheduleTodayUsesLeagueDateKey(t *testing.T) {
	var mu sync.Mutex
	var starts []string

	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		mu.Lock()
		starts = append(starts, req.URL.Query().Get("startDate"))
		mu.Unlock()
		return jsonResponse(http.StatusOK, `{"dates": []}`), nil
	})
	// 02:00 UTC on July 5 is still July 4 in the league's home zone.
	client.now = func() time.Time {
		return time.Date(2024, 7, 5, 2, 0, 0, 0, time.UTC)
	}

	if _, err := client.FetchLeagueScheduleToday(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range starts {
		if s != "2024-07-04" {
			t.Fatalf("expected league-local date key, got %q", s)
		}
	}
}
