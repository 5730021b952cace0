package cache

import (
	"context"
	"time"

	"github.com/cwbudde/algo-ecg/ecg/simulate"
)

// Runner is the simulator surface Cached wraps. *simulate.Simulator
// satisfies it.
type Runner interface {
	Simulate(ctx context.Context, req simulate.Request) (simulate.Signal, *simulate.Fault)
}

// Cached memoizes the signals produced by an inner simulator. Hits skip
// synthesis entirely. Flat-zero fallback signals are never stored, so a
// transient provider failure cannot poison the cache, and store errors
// in either direction degrade to a plain resynthesis.
type Cached struct {
	inner Runner
	store Store
	ttl   time.Duration
}

// NewCached wraps inner with the given store. Entries expire after ttl;
// ttl <= 0 keeps them until evicted.
func NewCached(inner Runner, store Store, ttl time.Duration) *Cached {
	return &Cached{inner: inner, store: store, ttl: ttl}
}

func (c *Cached) Simulate(ctx context.Context, req simulate.Request) (simulate.Signal, *simulate.Fault) {
	key := req.CacheKey()

	// A stored entry of the wrong length is corrupt; fall through and
	// resynthesize over it.
	sig, err := c.store.Get(ctx, key)
	if err == nil && len(sig.Samples) == req.NumSamples() {
		// The key excludes the display title; carry the caller's.
		sig.Title = req.Title
		return sig, nil
	}

	sig, fault := c.inner.Simulate(ctx, req)
	if fault == nil {
		// Store writes are best effort.
		_ = c.store.Set(ctx, key, sig, c.ttl)
	}
	return sig, fault
}
