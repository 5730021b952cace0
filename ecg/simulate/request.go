package simulate

import (
	"fmt"

	"github.com/cwbudde/algo-ecg/ecg/rhythm"
)

// SamplingRateHz is the fixed sampling rate for every generated signal,
// in samples per second.
const SamplingRateHz = 1000

// Inclusive bounds for the user-adjustable request parameters.
const (
	MinDurationSeconds = 5
	MaxDurationSeconds = 30

	MinHeartRateBPM = 30
	MaxHeartRateBPM = 220

	MinNoiseLevel = 0.0
	MaxNoiseLevel = 0.5
)

// Request describes one synthesis invocation. Instances are assembled by
// BuildRequest and passed by value through the pipeline; a request that
// has passed Validate is safe to dispatch to any Provider.
type Request struct {
	// DurationSeconds is the signal length in whole seconds.
	DurationSeconds int

	// HeartRateBPM is the requested mean heart rate. It is carried even
	// for rhythms that ignore it, so that equal parameter tuples always
	// produce equal cache keys.
	HeartRateBPM int

	// MethodID selects the provider synthesis method. This is the
	// provider-facing identifier, already translated from the catalog
	// key by BuildRequest.
	MethodID string

	// NoiseLevel scales the additive measurement noise, 0 for a clean
	// signal.
	NoiseLevel float64

	// SamplingRateHz is fixed to the package constant by BuildRequest.
	SamplingRateHz int

	// Title is the display title composed from the rhythm label.
	Title string
}

// ValidationError reports a request parameter outside its declared bound.
// It is returned by BuildRequest and Validate before any provider call is
// made.
type ValidationError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("simulate: %s %v out of range [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// Validate checks every bounded field of the request and returns a
// *ValidationError naming the first field that is out of range.
func (r Request) Validate() error {
	if r.DurationSeconds < MinDurationSeconds || r.DurationSeconds > MaxDurationSeconds {
		return &ValidationError{
			Field: "duration",
			Value: float64(r.DurationSeconds),
			Min:   MinDurationSeconds,
			Max:   MaxDurationSeconds,
		}
	}
	if r.HeartRateBPM < MinHeartRateBPM || r.HeartRateBPM > MaxHeartRateBPM {
		return &ValidationError{
			Field: "heart rate",
			Value: float64(r.HeartRateBPM),
			Min:   MinHeartRateBPM,
			Max:   MaxHeartRateBPM,
		}
	}
	if r.NoiseLevel < MinNoiseLevel || r.NoiseLevel > MaxNoiseLevel {
		return &ValidationError{
			Field: "noise level",
			Value: r.NoiseLevel,
			Min:   MinNoiseLevel,
			Max:   MaxNoiseLevel,
		}
	}
	return nil
}

// NumSamples returns the sample count a provider must deliver for this
// request.
func (r Request) NumSamples() int {
	return r.DurationSeconds * r.SamplingRateHz
}

// CacheKey returns a stable string identifying the full request tuple.
// Equal parameter combinations map to equal keys, so the key is suitable
// for memoizing synthesis results. The title is derived from the other
// fields and does not participate.
func (r Request) CacheKey() string {
	return fmt.Sprintf("ecg:%s:%d:%d:%.2f:%d",
		r.MethodID, r.DurationSeconds, r.HeartRateBPM, r.NoiseLevel, r.SamplingRateHz)
}

// BuildRequest validates the user-selected parameters and assembles the
// provider-facing request for the given rhythm.
//
// The catalog's "normal" key names a different namespace than the provider
// methods; it is translated to the provider's "ecgsyn" identifier here.
// All other method identifiers pass through unchanged.
//
// The title takes the form "Simulated ECG: {label} (HR: {bpm} BPM)". For
// rhythms whose rate is not controllable the heart-rate segment is empty.
func BuildRequest(d rhythm.Descriptor, durationSeconds, heartRateBPM int, noiseLevel float64) (Request, error) {
	method := d.MethodID
	if method == "normal" {
		method = "ecgsyn"
	}

	hrText := ""
	if d.HeartRateControllable {
		hrText = fmt.Sprintf("HR: %d BPM", heartRateBPM)
	}

	req := Request{
		DurationSeconds: durationSeconds,
		HeartRateBPM:    heartRateBPM,
		MethodID:        method,
		NoiseLevel:      noiseLevel,
		SamplingRateHz:  SamplingRateHz,
		Title:           fmt.Sprintf("Simulated ECG: %s (%s)", d.Label, hrText),
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}
