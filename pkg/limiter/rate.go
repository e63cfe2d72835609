package limiter

import (
	"math/rand"
	"sync"
	"time"
)

// RateLimiter
// Specialized component to manage politeness toward the upstream services.
// Responsibilities:
// - Bookkeep each hostname's last live-fetch timestamp
// - Compute the remaining delay before the next request to that hostname
//
// Cache hits never consult the limiter; only live fetches are delayed.
type RateLimiter interface {
	SetBaseDelay(baseDelay time.Duration)
	SetJitter(jitter time.Duration)
	SetRandomSeed(randomSeed int64)
	MarkLastFetchAsNow(host string)
	ResolveDelay(host string) time.Duration
}

type HostRateLimiter struct {
	mu        sync.Mutex
	baseDelay time.Duration
	jitter    time.Duration
	lastFetch map[string]time.Time
	rng       *rand.Rand
}

func NewHostRateLimiter() *HostRateLimiter {
	return &HostRateLimiter{
		lastFetch: make(map[string]time.Time),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *HostRateLimiter) SetBaseDelay(baseDelay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.baseDelay = baseDelay
}

func (r *HostRateLimiter) SetJitter(jitter time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jitter = jitter
}

func (r *HostRateLimiter) SetRandomSeed(randomSeed int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rng = rand.New(rand.NewSource(randomSeed))
}

// MarkLastFetchAsNow records time.Now() as the given host's last fetch.
func (r *HostRateLimiter) MarkLastFetchAsNow(host string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastFetch[host] = time.Now()
}

// ResolveDelay returns how long the caller must wait before issuing the
// next request to host. Zero when the base delay has already elapsed or
// the host has never been fetched.
func (r *HostRateLimiter) ResolveDelay(host string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	last, fetched := r.lastFetch[host]
	if !fetched || r.baseDelay == 0 {
		return 0
	}

	target := r.baseDelay
	if r.jitter > 0 {
		target += time.Duration(r.rng.Int63n(int64(r.jitter)))
	}

	elapsed := time.Since(last)
	if elapsed >= target {
		return 0
	}
	return target - elapsed
}
