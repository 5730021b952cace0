// Package cache memoizes simulated ECG signals between requests.
//
// Interactive use produces long runs of identical requests as a user
// toggles between a handful of rhythms. Stores are keyed by
// simulate.Request.CacheKey, which encodes every parameter that shapes
// the waveform, so equal keys yield interchangeable signals.
//
// # Usage
//
//	store := cache.NewMemory(0)
//	sim := cache.NewCached(simulate.NewSimulator(synth.New()), store, 15*time.Minute)
//
//	req, err := simulate.BuildRequest(desc, 10, 70, 0.05)
//	if err != nil {
//		// out-of-range parameters
//	}
//	sig, fault := sim.Simulate(ctx, req)
//
// Two Store implementations are provided: Memory for single-process use
// and Redis for sharing one cache between service replicas.
package cache
