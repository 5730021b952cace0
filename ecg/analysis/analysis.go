// Package analysis provides small measurement helpers for generated ECG
// signals: R peak detection, effective heart rate, summary statistics
// and a power spectrum for the frequency view.
//
// The detector is a plain threshold-and-refractory pass, adequate for
// the clean synthetic signals this project draws. It is not a clinical
// QRS detector.
package analysis

import (
	"errors"
	"math"
)

// Errors returned by analysis functions.
var (
	ErrEmptySignal       = errors.New("analysis: empty signal")
	ErrInvalidSampleRate = errors.New("analysis: sample rate must be positive")
)

// peakFraction sets the detection threshold relative to the largest
// positive sample.
const peakFraction = 0.6

// DetectRPeaks returns the sample indices of R peaks, found as rising
// crossings of an adaptive threshold followed by a local-maximum
// refinement. Crossings within a 200 ms refractory gap of the previous
// peak are ignored. A signal with no positive deflection yields no
// peaks.
func DetectRPeaks(samples []float64, sampleRateHz int) ([]int, error) {
	if len(samples) == 0 {
		return nil, ErrEmptySignal
	}
	if sampleRateHz <= 0 {
		return nil, ErrInvalidSampleRate
	}

	max := 0.0
	for _, v := range samples {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return nil, nil
	}

	threshold := peakFraction * max
	refractory := sampleRateHz / 5
	window := sampleRateHz / 10

	var peaks []int
	last := -refractory
	for i := 1; i < len(samples); i++ {
		if samples[i-1] >= threshold || samples[i] < threshold {
			continue
		}
		if i-last < refractory {
			continue
		}

		peak := i
		for j := i; j < len(samples) && j < i+window; j++ {
			if samples[j] > samples[peak] {
				peak = j
			}
		}
		peaks = append(peaks, peak)
		last = peak
	}
	return peaks, nil
}

// EffectiveRate converts detected peak positions to beats per minute
// using the mean interval between them. Fewer than two peaks give 0.
func EffectiveRate(peaks []int, sampleRateHz int) float64 {
	if len(peaks) < 2 || sampleRateHz <= 0 {
		return 0
	}

	meanInterval := float64(peaks[len(peaks)-1]-peaks[0]) / float64(len(peaks)-1)
	if meanInterval <= 0 {
		return 0
	}
	return 60 * float64(sampleRateHz) / meanInterval
}

// Summary condenses a signal for display next to the chart. Amplitudes
// are millivolts.
type Summary struct {
	DurationSeconds float64
	Min             float64
	Max             float64
	RMS             float64
	PeakCount       int
	RateBPM         float64
}

// Summarize computes the summary of a signal in a single pass plus one
// peak detection.
func Summarize(samples []float64, sampleRateHz int) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrEmptySignal
	}
	if sampleRateHz <= 0 {
		return Summary{}, ErrInvalidSampleRate
	}

	sum := Summary{
		DurationSeconds: float64(len(samples)) / float64(sampleRateHz),
		Min:             samples[0],
		Max:             samples[0],
	}

	sumSq := 0.0
	for _, v := range samples {
		if v < sum.Min {
			sum.Min = v
		}
		if v > sum.Max {
			sum.Max = v
		}
		sumSq += v * v
	}
	sum.RMS = math.Sqrt(sumSq / float64(len(samples)))

	peaks, err := DetectRPeaks(samples, sampleRateHz)
	if err != nil {
		return Summary{}, err
	}
	sum.PeakCount = len(peaks)
	sum.RateBPM = EffectiveRate(peaks, sampleRateHz)

	return sum, nil
}
