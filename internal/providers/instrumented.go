package providers

import (
	"context"
	"log/slog"
	"time"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/logging"
	"homegame-service/internal/metrics"
)

// instrumentedProvider wraps a ScheduleProvider with logging and metrics.
// There is deliberately no retry wrapper: failed required calls propagate to
// the caller unchanged.
type instrumentedProvider struct {
	inner   ScheduleProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumentedProvider decorates the given adapter with per-call logs and
// metric recording under the provider name.
func NewInstrumentedProvider(inner ScheduleProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) ScheduleProvider {
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
	}
}

func (p *instrumentedProvider) FetchScheduleWindow(ctx context.Context, team teams.Team, startISO, endISO string) (games.SchedulePayload, error) {
	start := time.Now()
	payload, err := p.inner.FetchScheduleWindow(ctx, team, startISO, endISO)
	p.record(ctx, "schedule window fetch", time.Since(start), len(payload.Dates), err,
		slog.String("team", team.Slug),
		slog.String("start", startISO),
		slog.String("end", endISO),
	)
	return payload, err
}

func (p *instrumentedProvider) FetchLeagueScheduleToday(ctx context.Context) (games.SchedulePayload, error) {
	start := time.Now()
	payload, err := p.inner.FetchLeagueScheduleToday(ctx)
	p.record(ctx, "league today fetch", time.Since(start), len(payload.Dates), err)
	return payload, err
}

func (p *instrumentedProvider) record(ctx context.Context, msg string, duration time.Duration, dates int, err error, attrs ...any) {
	p.metrics.RecordProviderAttempt(p.name, duration, err)

	logger := logging.FromContext(ctx, p.logger)
	if logger == nil {
		return
	}
	attrs = append(attrs,
		slog.String(logging.FieldProvider, p.name),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	if err != nil {
		logger.Warn(msg+" failed", append(attrs, "error", err)...)
		return
	}
	logger.Debug(msg+" ok", append(attrs, slog.Int(logging.FieldCount, dates))...)
}
