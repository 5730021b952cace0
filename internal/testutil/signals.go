package testutil

import (
	"math"
	"math/rand"
)

// CountBeats counts QRS-like peaks by rising threshold crossings with a
// 200 ms refractory gap. It is deliberately simpler than the detector in
// the analysis package, so the two can check each other.
func CountBeats(samples []float64, sampleRateHz int, threshold float64) int {
	refractory := sampleRateHz / 5

	count := 0
	last := -refractory
	for i := 1; i < len(samples); i++ {
		if samples[i-1] < threshold && samples[i] >= threshold && i-last >= refractory {
			count++
			last = i
		}
	}
	return count
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// RMS returns the root mean square of the samples, 0 for an empty slice.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range samples {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}
