package games

import (
	"sort"

	"homegame-service/internal/timeutil"
)

// SortByStartTime orders games ascending by start instant, keeping undated
// games last. The sort is stable so equal-timestamp entries keep their
// input order.
func SortByStartTime(gs []Game) {
	sort.SliceStable(gs, func(i, j int) bool {
		ti, iOK := gs[i].StartTime()
		tj, jOK := gs[j].StartTime()
		if !iOK {
			return false
		}
		if !jOK {
			return true
		}
		return ti.Before(tj)
	})
}

// GroupByDateKey buckets games by the UTC calendar day of their start
// instant, preserving first-seen bucket order. Games without a usable date
// land in the fallback bucket. Note: this is deliberately the UTC day, not
// the team-local day the facts layer uses for "today".
func GroupByDateKey(gs []Game, fallbackKey string) SchedulePayload {
	var (
		order   []string
		buckets = make(map[string][]Game)
	)
	for _, g := range gs {
		key := fallbackKey
		if t, ok := g.StartTime(); ok {
			key = t.UTC().Format(timeutil.DateLayout)
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], g)
	}

	payload := SchedulePayload{TotalItems: len(gs)}
	for _, key := range order {
		payload.Dates = append(payload.Dates, ScheduleDate{
			Date:       key,
			TotalGames: len(buckets[key]),
			Games:      buckets[key],
		})
	}
	return payload
}
