package providers

import "homegame-service/internal/domain/teams"

// Registry maps sport tags to their schedule adapters. It is a closed set:
// every supported sport is registered at construction and lookups for
// anything else fail with UnknownSportError.
type Registry struct {
	adapters map[teams.Sport]ScheduleProvider
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[teams.Sport]ScheduleProvider)}
}

// Register installs the adapter for a sport, replacing any previous one.
func (r *Registry) Register(sport teams.Sport, p ScheduleProvider) {
	r.adapters[sport] = p
}

// ForSport returns the adapter for a sport tag. An empty tag resolves to
// MLB; an unregistered tag is an UnknownSportError.
func (r *Registry) ForSport(sport teams.Sport) (ScheduleProvider, error) {
	resolved := sport.OrDefault()
	p, ok := r.adapters[resolved]
	if !ok {
		return nil, &UnknownSportError{Sport: string(sport)}
	}
	return p, nil
}

// Sports lists the registered sport tags.
func (r *Registry) Sports() []teams.Sport {
	out := make([]teams.Sport, 0, len(r.adapters))
	for sport := range r.adapters {
		out = append(out, sport)
	}
	return out
}
