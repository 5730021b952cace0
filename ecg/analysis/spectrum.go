package analysis

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// PowerSpectrum computes the one-sided power spectrum of a signal: a
// Hann window, zero padding to a power of two, and |X[k]|^2 per bin.
// Power values are relative, intended for a log-scale chart rather than
// calibrated spectral density.
//
// Frequencies are in Hz, bin i at i*sampleRateHz/fftSize. When maxHz is
// positive, bins above it are dropped.
func PowerSpectrum(samples []float64, sampleRateHz int, maxHz float64) (freqs, power []float64, err error) {
	if len(samples) == 0 {
		return nil, nil, ErrEmptySignal
	}
	if sampleRateHz <= 0 {
		return nil, nil, ErrInvalidSampleRate
	}

	n := len(samples)
	hann := make([]float64, n)
	if n == 1 {
		hann[0] = 1
	} else {
		for i := range hann {
			hann[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		}
	}

	windowed := make([]float64, n)
	vecmath.MulBlock(windowed, samples, hann)

	fftSize := nextPowerOf2(n)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("analysis: failed to create FFT plan: %w", err)
	}

	src := make([]complex128, fftSize)
	for i, v := range windowed {
		src[i] = complex(v, 0)
	}
	dst := make([]complex128, fftSize)
	if err := plan.Forward(dst, src); err != nil {
		return nil, nil, fmt.Errorf("analysis: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	if maxHz > 0 {
		limit := int(maxHz*float64(fftSize)/float64(sampleRateHz)) + 1
		if limit < bins {
			bins = limit
		}
	}

	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(dst[k])
		im[k] = imag(dst[k])
	}
	power = make([]float64, bins)
	vecmath.Power(power, re, im)

	freqs = make([]float64, bins)
	for k := range freqs {
		freqs[k] = float64(k) * float64(sampleRateHz) / float64(fftSize)
	}
	return freqs, power, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
