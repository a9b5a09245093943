package teams

import "testing"

func TestLoadEmbeddedRegistry(t *testing.T) {
	reg, err := Load()
	if err != nil {
		t.Fatalf("expected embedded registry to load, got %v", err)
	}
	if reg.Len() == 0 {
		t.Fatal("expected at least one team")
	}

	team, ok := reg.BySlug("red-sox")
	if !ok {
		t.Fatal("expected red-sox to be registered")
	}
	if team.ID != 111 || team.Venue != "Fenway Park" {
		t.Fatalf("unexpected team %+v", team)
	}
	if team.Sport.OrDefault() != SportMLB {
		t.Fatalf("expected empty sport to default to mlb, got %s", team.Sport)
	}
}

func TestLoadRejectsDuplicateSlugs(t *testing.T) {
	raw := []byte(`[
		{"id": 1, "slug": "dupe", "name": "One", "timezone": "UTC"},
		{"id": 2, "slug": "dupe", "name": "Two", "timezone": "UTC"}
	]`)
	if _, err := loadFrom(raw); err == nil {
		t.Fatal("expected duplicate slug to fail validation")
	}
}

func TestLoadRejectsUnknownSport(t *testing.T) {
	raw := []byte(`[{"id": 1, "slug": "x", "name": "X", "sport": "cricket", "timezone": "UTC"}]`)
	if _, err := loadFrom(raw); err == nil {
		t.Fatal("expected unknown sport to fail validation")
	}
}

func TestScheduleIDPrefersAPIID(t *testing.T) {
	if got := (Team{ID: 111}).ScheduleID(); got != "111" {
		t.Fatalf("expected canonical id, got %s", got)
	}
	if got := (Team{ID: 6, APIID: "BOS"}).ScheduleID(); got != "BOS" {
		t.Fatalf("expected apiId, got %s", got)
	}
}

func TestSportDisplayName(t *testing.T) {
	cases := map[Sport]string{
		"":       "Baseball",
		SportMLB: "Baseball",
		SportNHL: "Hockey",
		SportNBA: "Basketball",
		SportNFL: "Football",
	}
	for sport, want := range cases {
		if got := sport.DisplayName(); got != want {
			t.Fatalf("sport %q expected %s, got %s", sport, want, got)
		}
	}
}
