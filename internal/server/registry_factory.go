package server

import (
	"log/slog"

	"homegame-service/internal/config"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/metrics"
	"homegame-service/internal/providers"
	"homegame-service/internal/providers/espn"
	"homegame-service/internal/providers/fixture"
	"homegame-service/internal/providers/mlb"
	"homegame-service/internal/providers/nhl"
)

const providerFixture = "fixture"

// buildRegistry assembles the adapter registry for all four sports. The
// fixture provider replaces every live adapter when configured; otherwise
// each live adapter is wrapped with logging and metrics instrumentation.
func buildRegistry(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *providers.Registry {
	registry := providers.NewRegistry()

	if cfg.Provider == providerFixture {
		fx := providers.NewInstrumentedProvider(fixture.New(), fixture.ProviderName, logger, recorder)
		for _, sport := range []teams.Sport{teams.SportMLB, teams.SportNHL, teams.SportNBA, teams.SportNFL} {
			registry.Register(sport, fx)
		}
		return registry
	}

	registry.Register(teams.SportMLB, providers.NewInstrumentedProvider(
		mlb.New(mlb.Config{BaseURL: cfg.Upstreams.MLBBaseURL}),
		mlb.ProviderName, logger, recorder))
	registry.Register(teams.SportNHL, providers.NewInstrumentedProvider(
		nhl.New(nhl.Config{BaseURL: cfg.Upstreams.NHLBaseURL}),
		nhl.ProviderName, logger, recorder))

	nba := espn.NewNBA(espn.Config{BaseURL: cfg.Upstreams.ESPNBaseURL})
	nfl := espn.NewNFL(espn.Config{BaseURL: cfg.Upstreams.ESPNBaseURL})
	registry.Register(teams.SportNBA, providers.NewInstrumentedProvider(nba, nba.Name(), logger, recorder))
	registry.Register(teams.SportNFL, providers.NewInstrumentedProvider(nfl, nfl.Name(), logger, recorder))

	return registry
}

// configuredSports maps the config sport tags onto valid sport values,
// dropping anything unknown.
func configuredSports(cfg config.Config, logger *slog.Logger) []teams.Sport {
	var out []teams.Sport
	for _, tag := range cfg.Sports {
		sport := teams.Sport(tag)
		if !sport.Valid() {
			if logger != nil {
				logger.Warn("ignoring unknown sport in config", "sport", tag)
			}
			continue
		}
		out = append(out, sport)
	}
	return out
}
