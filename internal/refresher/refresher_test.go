package refresher

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/providers"
	"homegame-service/internal/schedule"
	"homegame-service/internal/store"
)

type stubProvider struct {
	calls   atomic.Int64
	payload games.SchedulePayload
	notify  chan struct{}
}

func (p *stubProvider) FetchScheduleWindow(ctx context.Context, team teams.Team, startISO, endISO string) (games.SchedulePayload, error) {
	return p.payload, nil
}

func (p *stubProvider) FetchLeagueScheduleToday(ctx context.Context) (games.SchedulePayload, error) {
	p.calls.Add(1)
	if p.notify != nil {
		select {
		case p.notify <- struct{}{}:
		default:
		}
	}
	return p.payload, nil
}

func newService(p providers.ScheduleProvider, sports ...teams.Sport) *schedule.Service {
	registry := providers.NewRegistry()
	for _, sport := range sports {
		registry.Register(sport, p)
	}
	return schedule.NewService(schedule.ServiceConfig{Registry: registry})
}

func TestRefresherWarmsSnapshotsOnBoot(t *testing.T) {
	payload := games.GroupByDateKey([]games.Game{{GameID: "1", GameDate: "2024-07-04T23:05:00Z"}}, "")
	provider := &stubProvider{payload: payload, notify: make(chan struct{}, 4)}
	snapshots := store.NewSnapshotStore()

	r := New(newService(provider, teams.SportMLB, teams.SportNHL),
		[]teams.Sport{teams.SportMLB, teams.SportNHL}, snapshots, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-provider.notify:
		case <-time.After(500 * time.Millisecond):
			t.Fatal("timed out waiting for warm fetch")
		}
	}
	_ = r.Stop(context.Background())

	for _, sport := range []teams.Sport{teams.SportMLB, teams.SportNHL} {
		snap, ok := snapshots.Get(sport)
		if !ok {
			t.Fatalf("expected snapshot for %s", sport)
		}
		if snap.Payload.TotalItems != 1 {
			t.Fatalf("unexpected snapshot payload %+v", snap.Payload)
		}
	}

	status := r.Status()
	if !status.IsReady() {
		t.Fatalf("expected ready status after warm fetch, got %+v", status)
	}
}

func TestRefresherUnknownSportMarksFailure(t *testing.T) {
	provider := &stubProvider{notify: make(chan struct{}, 1)}
	snapshots := store.NewSnapshotStore()

	r := New(newService(provider, teams.SportMLB),
		[]teams.Sport{teams.Sport("cricket")}, snapshots, nil, nil, time.Hour)

	r.refreshOnce(context.Background())

	status := r.Status()
	if status.ConsecutiveFailures != 1 || status.LastError == "" {
		t.Fatalf("expected recorded failure, got %+v", status)
	}
	if status.IsReady() {
		t.Fatal("expected not ready without any success")
	}
}

func TestRefresherStopsOnContextCancel(t *testing.T) {
	provider := &stubProvider{notify: make(chan struct{}, 8)}
	r := New(newService(provider, teams.SportMLB),
		[]teams.Sport{teams.SportMLB}, store.NewSnapshotStore(), nil, nil, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	cancel()
	time.Sleep(20 * time.Millisecond)
	calls := provider.calls.Load()
	time.Sleep(20 * time.Millisecond)
	if provider.calls.Load() != calls {
		t.Fatal("expected no fetches after cancel")
	}
}

func TestRefresherStartIsIdempotent(t *testing.T) {
	provider := &stubProvider{notify: make(chan struct{}, 1)}
	r := New(newService(provider, teams.SportMLB),
		[]teams.Sport{teams.SportMLB}, store.NewSnapshotStore(), nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)
	r.Start(ctx)

	select {
	case <-provider.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for warm fetch")
	}
	_ = r.Stop(context.Background())

	// A short settle window: only the single warm fetch should have run.
	time.Sleep(20 * time.Millisecond)
	if got := provider.calls.Load(); got != 1 {
		t.Fatalf("expected one warm fetch, got %d", got)
	}
}
