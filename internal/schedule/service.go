package schedule

import (
	"context"
	"log/slog"
	"time"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/logging"
	"homegame-service/internal/metrics"
	"homegame-service/internal/providers"
	"homegame-service/internal/seo"
	"homegame-service/internal/store"
	"homegame-service/internal/timeutil"
)

// Service coordinates schedule fetches: it resolves the adapter for a
// team's sport, memoizes window fetches in the window cache, and derives
// the page-level views. The window is recomputed from the clock, so the
// cached key for a team rolls over at the UTC day boundary and the cache
// drops the team's previous window on the next store.
type Service struct {
	registry      *providers.Registry
	cache         *store.WindowCache
	logger        *slog.Logger
	recorder      *metrics.Recorder
	horizonMonths int
	now           func() time.Time
}

// ServiceConfig wires the service's collaborators.
type ServiceConfig struct {
	Registry      *providers.Registry
	Cache         *store.WindowCache
	Logger        *slog.Logger
	Recorder      *metrics.Recorder
	HorizonMonths int
}

// NewService constructs the schedule service.
func NewService(cfg ServiceConfig) *Service {
	months := cfg.HorizonMonths
	if months <= 0 {
		months = timeutil.DefaultHorizonMonths
	}
	cache := cfg.Cache
	if cache == nil {
		cache = store.NewWindowCache()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		registry:      cfg.Registry,
		cache:         cache,
		logger:        logger,
		recorder:      cfg.Recorder,
		horizonMonths: months,
		now:           time.Now,
	}
}

// Window returns the fetch window starting now.
func (s *Service) Window() timeutil.Window {
	return timeutil.ComputeWindowStartEnd(s.now(), s.horizonMonths)
}

// FetchScheduleWindowCached fetches the team's schedule window through the
// window cache: at most one adapter call per (sport, team, window) key.
func (s *Service) FetchScheduleWindowCached(ctx context.Context, team teams.Team, window timeutil.Window) (games.SchedulePayload, error) {
	sport := team.Sport.OrDefault()
	key := store.WindowKey{
		Sport:    sport,
		TeamID:   team.ScheduleID(),
		StartISO: window.StartISO,
		EndISO:   window.EndISO,
	}

	if payload, ok := s.cache.Get(key); ok {
		s.recorder.RecordCacheLookup(string(sport), true)
		return payload, nil
	}
	s.recorder.RecordCacheLookup(string(sport), false)

	provider, err := s.registry.ForSport(sport)
	if err != nil {
		return games.SchedulePayload{}, err
	}

	payload, err := provider.FetchScheduleWindow(ctx, team, window.StartISO, window.EndISO)
	if err != nil {
		return games.SchedulePayload{}, err
	}

	s.cache.Set(key, payload)
	logging.FromContext(ctx, s.logger).Debug("schedule window fetched",
		logging.FieldSport, string(sport),
		logging.FieldTeam, team.Slug,
		"total_items", payload.TotalItems,
	)
	return payload, nil
}

// FetchLeagueScheduleToday fetches the league-wide schedule for today for
// one sport. Adapters degrade failures here, so an error means an unknown
// sport.
func (s *Service) FetchLeagueScheduleToday(ctx context.Context, sport teams.Sport) (games.SchedulePayload, error) {
	provider, err := s.registry.ForSport(sport)
	if err != nil {
		return games.SchedulePayload{}, err
	}
	return provider.FetchLeagueScheduleToday(ctx)
}

// PageData is everything a team page needs.
type PageData struct {
	Team    teams.Team       `json:"team"`
	Meta    PageMeta         `json:"meta"`
	OGImage string           `json:"ogImage"`
	Facts   FactsSummary     `json:"facts"`
	JSONLD  *seo.SportsEvent `json:"jsonLd,omitempty"`
}

// FactsSummary is the JSON-friendly subset of Facts exposed over HTTP.
type FactsSummary struct {
	TodayKey       string       `json:"todayKey"`
	TotalGames     int          `json:"totalGames"`
	GamesToday     []games.Game `json:"gamesToday,omitempty"`
	HomeGamesToday []games.Game `json:"homeGamesToday,omitempty"`
	AwayGamesToday []games.Game `json:"awayGamesToday,omitempty"`
	NextHomeGame   *games.Game  `json:"nextHomeGame,omitempty"`
}

// BuildTeamPageData fetches the team's window and assembles meta, facts,
// the OG image path, and the JSON-LD document.
func (s *Service) BuildTeamPageData(ctx context.Context, team teams.Team) (PageData, error) {
	payload, err := s.FetchScheduleWindowCached(ctx, team, s.Window())
	if err != nil {
		return PageData{}, err
	}

	now := s.now()
	facts := DeriveFacts(team, payload, now)
	selected, isHome := SelectGameForToday(facts)

	return PageData{
		Team:    team,
		Meta:    BuildTeamPageMeta(team, payload, now),
		OGImage: OGImagePath(team.Slug, team.Timezone, now),
		Facts: FactsSummary{
			TodayKey:       facts.TodayKey,
			TotalGames:     len(facts.Games),
			GamesToday:     facts.GamesToday,
			HomeGamesToday: facts.HomeGamesToday,
			AwayGamesToday: facts.AwayGamesToday,
			NextHomeGame:   facts.NextHomeGame,
		},
		JSONLD: seo.BuildSportsEvent(team, selected, isHome, facts.TodayKey),
	}, nil
}

// Status renders the plain status line for a team from a fresh (or cached)
// window fetch.
func (s *Service) Status(ctx context.Context, team teams.Team, opts StatusOptions) (string, error) {
	payload, err := s.FetchScheduleWindowCached(ctx, team, s.Window())
	if err != nil {
		return "", err
	}
	return FormatTeamStatus(team, payload, opts, s.now()), nil
}
