package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures in-memory scoreboard metrics and forwards them to OpenTelemetry when configured.
type Recorder struct {
	mu             sync.Mutex
	stats          map[string]*providerStats
	screens        map[string]int
	flashes        int
	polls          int
	pollErrors     int
	scheduleErrors int
	otel           *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:   make(map[string]*providerStats),
		screens: make(map[string]int),
		otel:    otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
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

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordPoll tracks one live-games poll of the scheduler loop.
func (r *Recorder) RecordPoll(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.polls++
	if err != nil {
		r.pollErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPoll(duration, err)
	}
}

// RecordScheduleFetch tracks a schedule cache refresh.
func (r *Recorder) RecordScheduleFetch(duration time.Duration, err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.mu.Lock()
		r.scheduleErrors++
		r.mu.Unlock()
	}
	if r.otel != nil {
		r.otel.recordScheduleFetch(duration, err)
	}
}

// RecordScreen counts a rendered screen by kind.
func (r *Recorder) RecordScreen(kind string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.screens[kind]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordScreen(kind)
	}
}

// RecordFlash counts a score-change flash burst.
func (r *Recorder) RecordFlash() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.flashes++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFlash()
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// Screens returns how many screens of the given kind were rendered.
func (r *Recorder) Screens(kind string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.screens[kind]
}

// Flashes returns the number of flash bursts rendered.
func (r *Recorder) Flashes() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flashes
}

// Polls returns total polls and failed polls.
func (r *Recorder) Polls() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.polls, r.pollErrors
}

// ScheduleErrors returns the number of failed schedule refreshes.
func (r *Recorder) ScheduleErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.scheduleErrors
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
