package simulate

import (
	"context"
	"fmt"
)

// Signal is a labeled ECG time series. Samples are amplitudes in
// millivolts at the carried sampling rate.
type Signal struct {
	Samples        []float64
	SamplingRateHz int
	Title          string
}

// TimeAxis returns the timestamp of every sample in seconds,
//
//	t[i] = i / SamplingRateHz
//
// for plotting against the samples.
func (s Signal) TimeAxis() []float64 {
	t := make([]float64, len(s.Samples))
	dt := 1.0 / float64(s.SamplingRateHz)
	for i := range t {
		t[i] = float64(i) * dt
	}
	return t
}

// Provider produces the raw sample data for a request. Implementations
// must return exactly req.NumSamples() samples or an error, and must
// reject method identifiers they do not recognize with an error rather
// than guessing.
type Provider interface {
	Simulate(ctx context.Context, req Request) ([]float64, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context, req Request) ([]float64, error)

func (f ProviderFunc) Simulate(ctx context.Context, req Request) ([]float64, error) {
	return f(ctx, req)
}

// Fault records a provider failure that was recovered by the flat-zero
// fallback. It accompanies a degraded but structurally valid signal and
// is a warning for the user, not a terminal error.
type Fault struct {
	MethodID string
	Err      error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("simulate: method %q failed: %v", f.MethodID, f.Err)
}

func (f *Fault) Unwrap() error { return f.Err }

// Simulator runs requests against a provider and guarantees every caller
// a signal of the requested shape.
type Simulator struct {
	provider Provider
}

// NewSimulator returns a Simulator dispatching to the given provider.
func NewSimulator(p Provider) *Simulator {
	return &Simulator{provider: p}
}

// Simulate dispatches req to the provider and normalizes the outcome.
//
// A provider failure, including a result of the wrong length, is never
// propagated. The returned signal then falls back to flat zeros of the
// requested length with the title unchanged, and the failure is reported
// through the returned Fault. The fault is nil when synthesis succeeded.
//
// The request is expected to have passed Validate; out-of-bound values
// are a construction error caught by BuildRequest, not a provider error.
func (s *Simulator) Simulate(ctx context.Context, req Request) (Signal, *Fault) {
	want := req.NumSamples()

	samples, err := s.provider.Simulate(ctx, req)
	if err == nil && len(samples) != want {
		err = fmt.Errorf("simulate: provider returned %d samples, want %d", len(samples), want)
	}
	if err != nil {
		return Signal{
			Samples:        make([]float64, want),
			SamplingRateHz: req.SamplingRateHz,
			Title:          req.Title,
		}, &Fault{MethodID: req.MethodID, Err: err}
	}

	return Signal{
		Samples:        samples,
		SamplingRateHz: req.SamplingRateHz,
		Title:          req.Title,
	}, nil
}
