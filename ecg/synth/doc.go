// Package synth generates synthetic single-lead ECG waveforms for the
// rhythms of the catalog. It is the native synthesis provider behind the
// simulate package.
//
// Beats are modeled as sums of Gaussian waves (P, Q, R, S, T) placed by
// per-rhythm schedulers; fibrillatory activity is band-limited spectral
// noise. Output amplitudes are millivolts on a lead-II-like axis. The
// waveforms are illustrative teaching signals, not clinical data.
//
// # Usage
//
//	s := synth.New(synth.WithSeed(42))
//
//	req, _ := simulate.BuildRequest(descriptor, 10, 70, 0.05)
//	samples, err := s.Simulate(ctx, req)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// For incremental consumption, for example a live viewer, a Stream yields
// the same waveform chunk by chunk:
//
//	st, _ := s.Stream(req)
//	for {
//		chunk := st.Next(200)
//		push(chunk)
//	}
//
// A Synthesizer is deterministic: equal requests on an equal seed replay
// the same waveform, sample for sample, regardless of how the stream is
// chunked.
package synth
