package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/metrics"
)

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{Provider: "mlb", StatusCode: 502, Message: "bad gateway"}
	if err.Error() != "mlb: bad gateway (status=502)" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	decode := &UpstreamError{Provider: "nhl", Message: "decode club schedule: unexpected EOF"}
	if decode.Error() != "nhl: decode club schedule: unexpected EOF" {
		t.Fatalf("unexpected message %q", decode.Error())
	}

	empty := &UpstreamError{Provider: "espn"}
	if empty.Error() != "espn: upstream request failed" {
		t.Fatalf("unexpected message %q", empty.Error())
	}
}

func TestAsUpstreamErrorUnwraps(t *testing.T) {
	inner := &UpstreamError{Provider: "mlb", StatusCode: 500}
	wrapped := fmt.Errorf("window fetch: %w", inner)

	ue, ok := AsUpstreamError(wrapped)
	if !ok || ue.StatusCode != 500 {
		t.Fatalf("expected unwrap, got %v %v", ue, ok)
	}

	if _, ok := AsUpstreamError(errors.New("plain")); ok {
		t.Fatal("plain errors are not upstream errors")
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := NormalizeBaseURL("", "https://example.com/api"); got != "https://example.com/api" {
		t.Fatalf("unexpected default %q", got)
	}
	if got := NormalizeBaseURL("https://other.test/v1/", ""); got != "https://other.test/v1" {
		t.Fatalf("expected trailing slash stripped, got %q", got)
	}
}

func TestResolveHTTPClient(t *testing.T) {
	custom := &http.Client{}
	if ResolveHTTPClient(custom) != Doer(custom) {
		t.Fatal("expected provided client to be kept")
	}

	def, ok := ResolveHTTPClient(nil).(*http.Client)
	if !ok || def.Timeout != FetchTimeout {
		t.Fatalf("expected default client with fetch timeout, got %+v", def)
	}
}

type erroringProvider struct {
	err error
}

func (p *erroringProvider) FetchScheduleWindow(ctx context.Context, team teams.Team, startISO, endISO string) (games.SchedulePayload, error) {
	return games.SchedulePayload{}, p.err
}

func (p *erroringProvider) FetchLeagueScheduleToday(ctx context.Context) (games.SchedulePayload, error) {
	return games.SchedulePayload{}, p.err
}

func TestInstrumentedProviderRecordsAttempts(t *testing.T) {
	recorder := metrics.NewRecorder()
	upstream := &UpstreamError{Provider: "mlb", StatusCode: 503}
	p := NewInstrumentedProvider(&erroringProvider{err: upstream}, "mlb", nil, recorder)

	if _, err := p.FetchScheduleWindow(context.Background(), teams.Team{}, "", ""); err != upstream {
		t.Fatalf("expected error to propagate unchanged, got %v", err)
	}
	if _, err := p.FetchLeagueScheduleToday(context.Background()); err != upstream {
		t.Fatalf("expected error to propagate unchanged, got %v", err)
	}

	if recorder.ProviderCalls("mlb") != 2 || recorder.ProviderErrors("mlb") != 2 {
		t.Fatalf("unexpected stats calls=%d errors=%d",
			recorder.ProviderCalls("mlb"), recorder.ProviderErrors("mlb"))
	}
}

func TestInstrumentedProviderNilCollaborators(t *testing.T) {
	p := NewInstrumentedProvider(&erroringProvider{}, "nhl", nil, nil)
	if _, err := p.FetchScheduleWindow(context.Background(), teams.Team{}, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
