package store

import (
	"sync"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
)

// WindowKey identifies one cached schedule-window fetch.
type WindowKey struct {
	Sport    teams.Sport
	TeamID   string
	StartISO string
	EndISO   string
}

// WindowCache memoizes schedule-window payloads. The schedule service
// recomputes the window from the clock, so a long-lived server rotates
// each team's key once a day; Set evicts the team's previous window to
// keep the map bounded at one entry per team. Constructed explicitly and
// handed to the schedule service so tests stay isolated.
type WindowCache struct {
	mu      sync.RWMutex
	entries map[WindowKey]games.SchedulePayload
}

// NewWindowCache constructs an empty cache.
func NewWindowCache() *WindowCache {
	return &WindowCache{
		entries: make(map[WindowKey]games.SchedulePayload),
	}
}

// Get returns the cached payload for the key, if present.
func (c *WindowCache) Get(key WindowKey) (games.SchedulePayload, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	payload, ok := c.entries[key]
	return payload, ok
}

// Set stores the payload for the key, dropping any stale window cached for
// the same team.
func (c *WindowCache) Set(key WindowKey, payload games.SchedulePayload) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.entries {
		if k != key && k.Sport == key.Sport && k.TeamID == key.TeamID {
			delete(c.entries, k)
		}
	}
	c.entries[key] = payload
}

// Len returns the number of cached windows.
func (c *WindowCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
