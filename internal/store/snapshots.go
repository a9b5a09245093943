package store

import (
	"sync"
	"time"

	"homegame-service/internal/domain/games"
	"homegame-service/internal/domain/teams"
)

// LeagueSnapshot is one sport's league-today schedule plus when it was
// fetched.
type LeagueSnapshot struct {
	Sport     teams.Sport
	Payload   games.SchedulePayload
	FetchedAt time.Time
}

// SnapshotStore keeps the latest league-today schedule per sport in memory.
// The refresher writes it; HTTP handlers read it.
type SnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[teams.Sport]LeagueSnapshot
}

// NewSnapshotStore constructs an empty store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		snapshots: make(map[teams.Sport]LeagueSnapshot),
	}
}

// Get returns the snapshot for a sport, if one has been written.
func (s *SnapshotStore) Get(sport teams.Sport) (LeagueSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snapshots[sport.OrDefault()]
	return snap, ok
}

// Set replaces the snapshot for a sport.
func (s *SnapshotStore) Set(sport teams.Sport, payload games.SchedulePayload, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := sport.OrDefault()
	s.snapshots[resolved] = LeagueSnapshot{
		Sport:     resolved,
		Payload:   payload,
		FetchedAt: fetchedAt,
	}
}
