// Package refresher keeps the per-sport league-today snapshots warm. It
// runs one background loop that re-fetches each configured sport on an
// interval and records health for the readiness probe.
package refresher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"homegame-service/internal/domain/teams"
	"homegame-service/internal/logging"
	"homegame-service/internal/metrics"
	"homegame-service/internal/schedule"
	"homegame-service/internal/store"
)

const defaultInterval = 1 * time.Hour

// Refresher periodically fetches league-today schedules into the snapshot
// store.
type Refresher struct {
	service  *schedule.Service
	sports   []teams.Sport
	store    *store.SnapshotStore
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the refresher has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Refresher with sane defaults.
func New(service *schedule.Service, sports []teams.Sport, snapshots *store.SnapshotStore, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Refresher{
		service:  service,
		sports:   sports,
		store:    snapshots,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		r.logInfo("refresher started", slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		// Warm fetch on boot.
		r.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				r.logInfo("refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				r.logInfo("refresher stopped")
				return
			case <-r.ticker.C:
				r.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (r *Refresher) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

// refreshOnce fetches league-today for every configured sport. The cycle
// fails only on unknown sports; adapters degrade upstream failures to
// empty payloads themselves.
func (r *Refresher) refreshOnce(ctx context.Context) {
	start := time.Now()
	r.recordAttempt(start)

	var firstErr error
	total := 0
	for _, sport := range r.sports {
		payload, err := r.service.FetchLeagueScheduleToday(ctx, sport)
		if err != nil {
			r.logError("league refresh failed", err, logging.FieldSport, string(sport))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		r.store.Set(sport, payload, r.now())
		total += payload.TotalItems
	}

	if r.metrics != nil {
		r.metrics.RecordRefreshCycle(time.Since(start), firstErr)
	}
	if firstErr != nil {
		r.recordFailure(firstErr, start)
		return
	}

	r.recordSuccess(start)
	r.logInfo("league schedules refreshed",
		logging.FieldCount, total,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (r *Refresher) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Refresher) logInfo(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}

func (r *Refresher) logError(msg string, err error, attrs ...any) {
	if r.logger != nil {
		r.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (r *Refresher) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Refresher) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Refresher) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the refresher's recent health.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
