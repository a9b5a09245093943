package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about schedule fetches.
// It is intentionally simple so it can be swapped for a real backend later;
// when OpenTelemetry is configured the same events are exported there too.
// All methods are safe for concurrent use; handlers and the refresher
// record from their own goroutines.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	cache map[string]*cacheStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		cache: make(map[string]*cacheStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for an adapter call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordCacheLookup tracks a schedule-window cache hit or miss per sport.
func (r *Recorder) RecordCacheLookup(sport string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureCacheLocked(sport)
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(sport, hit)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRefreshCycle tracks league-refresher cycles and errors.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stats[provider]; ok && stats != nil {
		return Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return Snapshot{}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// CacheHits returns the cache hits recorded for a sport.
func (r *Recorder) CacheHits(sport string) int {
	hits, _ := r.cacheCounts(sport)
	return hits
}

// CacheMisses returns the cache misses recorded for a sport.
func (r *Recorder) CacheMisses(sport string) int {
	_, misses := r.cacheCounts(sport)
	return misses
}

func (r *Recorder) cacheCounts(sport string) (int, int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.cache[sport]; ok && stats != nil {
		return stats.hits, stats.misses
	}
	return 0, 0
}

// ensureStatsLocked requires r.mu to be held; callers mutate the returned
// stats before releasing the lock.
func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

// ensureCacheLocked requires r.mu to be held; callers mutate the returned
// stats before releasing the lock.
func (r *Recorder) ensureCacheLocked(sport string) *cacheStats {
	stats, ok := r.cache[sport]
	if !ok {
		stats = &cacheStats{}
		r.cache[sport] = stats
	}
	return stats
}
