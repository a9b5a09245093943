package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"homegame-service/internal/config"
	"homegame-service/internal/domain/teams"
	"homegame-service/internal/providers"
	"homegame-service/internal/refresher"
	"homegame-service/internal/schedule"
	"homegame-service/internal/store"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the schedule core.
type Handler struct {
	teams     *teams.Registry
	service   *schedule.Service
	snapshots *store.SnapshotStore
	refresher *refresher.Refresher
	logger    *slog.Logger
	now       nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(registry *teams.Registry, service *schedule.Service, snapshots *store.SnapshotStore, r *refresher.Refresher, logger *slog.Logger) *Handler {
	return &Handler{
		teams:     registry,
		service:   service,
		snapshots: snapshots,
		refresher: r,
		logger:    logger,
		now:       time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness based on the refresher's recent health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.refresher == nil {
		h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
		return
	}

	status := h.refresher.Status()
	payload := map[string]any{
		"consecutiveFailures": status.ConsecutiveFailures,
		"lastError":           status.LastError,
	}
	if !status.LastSuccess.IsZero() {
		payload["lastSuccess"] = status.LastSuccess.UTC().Format(time.RFC3339)
	}
	if status.IsReady() {
		payload["status"] = "ready"
		h.writeJSON(w, nethttp.StatusOK, payload)
		return
	}
	payload["status"] = "not ready"
	h.writeJSON(w, nethttp.StatusServiceUnavailable, payload)
}

// Teams lists the configured teams.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]any{"teams": h.teams.All()})
}

// TeamRoutes dispatches /teams/{slug} and /teams/{slug}/status.
func (h *Handler) TeamRoutes(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/teams/")
	if rest == "" {
		h.Teams(w, r)
		return
	}

	slug, tail, _ := strings.Cut(rest, "/")
	team, ok := h.teams.BySlug(slug)
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "unknown team: "+slug)
		return
	}

	switch tail {
	case "":
		h.teamPage(w, r, team)
	case "status":
		h.teamStatus(w, r, team)
	default:
		h.writeError(w, nethttp.StatusNotFound, "not found")
	}
}

func (h *Handler) teamPage(w nethttp.ResponseWriter, r *nethttp.Request, team teams.Team) {
	data, err := h.service.BuildTeamPageData(r.Context(), team)
	if err != nil {
		h.writeError(w, nethttp.StatusInternalServerError, "schedule fetch failed: "+err.Error())
		return
	}
	h.writeJSON(w, nethttp.StatusOK, data)
}

func (h *Handler) teamStatus(w nethttp.ResponseWriter, r *nethttp.Request, team teams.Team) {
	opts := statusOptionsFromQuery(r)
	message, err := h.service.Status(r.Context(), team, opts)
	if err != nil {
		h.writeError(w, nethttp.StatusInternalServerError, "schedule fetch failed: "+err.Error())
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{
		"team":   team.Slug,
		"status": message,
	})
}

// LeagueToday serves /league/{sport}/today from the latest snapshot,
// falling back to a live fetch when the refresher has not written one yet.
func (h *Handler) LeagueToday(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/league/")
	sportTag, tail, _ := strings.Cut(rest, "/")
	if sportTag == "" || tail != "today" {
		h.writeError(w, nethttp.StatusNotFound, "not found")
		return
	}

	sport := teams.Sport(strings.ToLower(sportTag))
	if !sport.Valid() {
		h.writeError(w, nethttp.StatusBadRequest, "unknown sport: "+sportTag)
		return
	}

	if snap, ok := h.snapshots.Get(sport); ok {
		h.writeJSON(w, nethttp.StatusOK, map[string]any{
			"sport":     snap.Sport,
			"fetchedAt": snap.FetchedAt.UTC().Format(time.RFC3339),
			"schedule":  snap.Payload,
		})
		return
	}

	payload, err := h.service.FetchLeagueScheduleToday(r.Context(), sport)
	if err != nil {
		if providers.IsUnknownSport(err) {
			h.writeError(w, nethttp.StatusBadRequest, err.Error())
			return
		}
		h.writeError(w, nethttp.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]any{
		"sport":    sport,
		"schedule": payload,
	})
}

func statusOptionsFromQuery(r *nethttp.Request) schedule.StatusOptions {
	q := r.URL.Query()
	opts := schedule.StatusOptions{
		IncludeTeamName: config.Truthy(q.Get("teamName")),
		NBSP:            config.Truthy(q.Get("nbsp")),
	}
	switch q.Get("dateStyle") {
	case "short":
		opts.DateStyle = schedule.DateStyleShort
	case "long":
		opts.DateStyle = schedule.DateStyleLong
	default:
		opts.DateStyle = schedule.DateStyleMedium
	}
	return opts
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
