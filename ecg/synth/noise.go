package synth

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Band-limited noise is synthesized block-wise in the frequency domain
// and cross-faded with a periodic Hann at 50% overlap, so an endless
// stream never repeats and has no block seams.
const (
	noiseBlockLen = 2048
	noiseHop      = noiseBlockLen / 2
)

// bandNoise produces stationary noise confined to [loHz, hiHz] at a
// target RMS level, in millivolts. It models fibrillatory activity: the
// undulating baseline of atrial fibrillation and, at high amplitude, the
// chaotic waveform of ventricular fibrillation.
//
// Each block draws only from its own random source, so the emitted
// samples depend on the seed alone, not on how callers slice the output.
type bandNoise struct {
	fs   int
	loHz float64
	hiHz float64
	rms  float64
	rng  *rand.Rand

	window []float64
	tail   []float64
	pos    int
	block  int
}

func newBandNoise(fs int, loHz, hiHz, rms float64, rng *rand.Rand) *bandNoise {
	// Periodic Hann: w[j] + w[j+hop] = 1 at 50% overlap, so the
	// cross-fade between adjacent blocks sums to unit gain.
	window := make([]float64, noiseBlockLen)
	for i := range window {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/noiseBlockLen))
	}

	return &bandNoise{
		fs:     fs,
		loHz:   loHz,
		hiHz:   hiHz,
		rms:    rms,
		rng:    rng,
		window: window,
		block:  -1,
	}
}

// synthBlock creates one windowed noise block: unit-magnitude bins with
// random phase across the band, zero elsewhere, transformed to the time
// domain. The level is calibrated against the measured RMS, so the FFT
// normalization convention does not matter.
func (b *bandNoise) synthBlock() ([]float64, error) {
	n := noiseBlockLen

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("synth: failed to create FFT plan: %w", err)
	}

	loBin := int(math.Ceil(b.loHz * float64(n) / float64(b.fs)))
	hiBin := int(math.Floor(b.hiHz * float64(n) / float64(b.fs)))
	if loBin < 1 {
		loBin = 1
	}
	if hiBin >= n/2 {
		hiBin = n/2 - 1
	}

	spec := make([]complex128, n)
	for k := loBin; k <= hiBin; k++ {
		c := cmplx.Rect(1, 2*math.Pi*b.rng.Float64())
		spec[k] = c
		spec[n-k] = cmplx.Conj(c)
	}

	td := make([]complex128, n)
	if err := plan.Inverse(td, spec); err != nil {
		return nil, fmt.Errorf("synth: inverse FFT failed: %w", err)
	}

	block := make([]float64, n)
	sumSq := 0.0
	for i := range block {
		v := real(td[i])
		block[i] = v
		sumSq += v * v
	}

	rms := math.Sqrt(sumSq / float64(n))
	if rms > 0 {
		scale := b.rms / rms
		for i := range block {
			block[i] *= scale
		}
	}

	vecmath.MulBlockInPlace(block, b.window)
	return block, nil
}

// emit fills dst with the next len(dst) noise samples. Calls must be
// sequential; the generator keeps the overlap tail between them.
func (b *bandNoise) emit(dst []float64) error {
	end := b.pos + len(dst)

	for b.block*noiseHop < end {
		start := b.block * noiseHop
		b.block++

		blk, err := b.synthBlock()
		if err != nil {
			return err
		}

		lo := start
		if lo < b.pos {
			lo = b.pos
		}
		hi := start + noiseBlockLen

		if need := hi - b.pos; need > len(b.tail) {
			b.tail = append(b.tail, make([]float64, need-len(b.tail))...)
		}

		acc := b.tail[lo-b.pos : hi-b.pos]
		src := blk[lo-start:]
		for i := range acc {
			acc[i] += src[i]
		}
	}

	copy(dst, b.tail[:len(dst)])
	copy(b.tail, b.tail[len(dst):])
	b.tail = b.tail[:len(b.tail)-len(dst)]
	b.pos = end
	return nil
}
