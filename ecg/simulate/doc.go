// Package simulate turns a catalog rhythm selection into a bounded
// synthesis request and runs it against a waveform provider.
//
// Requests are assembled with BuildRequest, which enforces the parameter
// bounds and composes the display title. A Simulator dispatches validated
// requests to a Provider and normalizes the outcome: provider failures are
// never propagated, the caller always receives a signal of the requested
// length, degraded to flat zeros when synthesis failed.
//
// # Usage
//
//	d, _ := rhythm.Find("Atrial Fibrillation (AFib)")
//
//	req, err := simulate.BuildRequest(d, 10, 95, 0.05)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sim := simulate.NewSimulator(provider)
//	sig, fault := sim.Simulate(ctx, req)
//	if fault != nil {
//		log.Printf("degraded output: %v", fault)
//	}
//	plot(sig.TimeAxis(), sig.Samples, sig.Title)
//
// Out-of-range parameters are reported as a *ValidationError before any
// provider call. Sampling rate is fixed at SamplingRateHz for the whole
// system and is not user configurable.
package simulate
