package teams

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed teams.json
var teamsJSON []byte

// Registry holds the loaded team configuration with slug lookup.
type Registry struct {
	teams  []Team
	bySlug map[string]Team
}

// Load parses and validates the embedded team registry.
func Load() (*Registry, error) {
	return loadFrom(teamsJSON)
}

func loadFrom(raw []byte) (*Registry, error) {
	var list []Team
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse team registry: %w", err)
	}

	bySlug := make(map[string]Team, len(list))
	for _, t := range list {
		if t.Slug == "" {
			return nil, fmt.Errorf("team %q has no slug", t.Name)
		}
		if _, exists := bySlug[t.Slug]; exists {
			return nil, fmt.Errorf("duplicate team slug %q", t.Slug)
		}
		if !t.Sport.Valid() {
			return nil, fmt.Errorf("team %q has unknown sport %q", t.Slug, t.Sport)
		}
		if t.Timezone == "" {
			return nil, fmt.Errorf("team %q has no timezone", t.Slug)
		}
		bySlug[t.Slug] = t
	}

	return &Registry{teams: list, bySlug: bySlug}, nil
}

// All returns every configured team in registry order.
func (r *Registry) All() []Team {
	out := make([]Team, len(r.teams))
	copy(out, r.teams)
	return out
}

// BySlug looks a team up by its URL-safe slug.
func (r *Registry) BySlug(slug string) (Team, bool) {
	t, ok := r.bySlug[slug]
	return t, ok
}

// Len returns the number of configured teams.
func (r *Registry) Len() int {
	return len(r.teams)
}
