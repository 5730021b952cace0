package synth

import (
	"math/rand"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-ecg/internal/testutil"
)

func TestBandNoiseDeterministic(t *testing.T) {
	a := newBandNoise(1000, 4, 9, 0.05, rand.New(rand.NewSource(11)))
	b := newBandNoise(1000, 4, 9, 0.05, rand.New(rand.NewSource(11)))

	x := make([]float64, 4000)
	y := make([]float64, 4000)
	if err := a.emit(x); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	if err := b.emit(y); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	testutil.RequireSliceEqual(t, x, y)
}

func TestBandNoiseChunkInvariance(t *testing.T) {
	a := newBandNoise(1000, 3, 8, 0.3, rand.New(rand.NewSource(21)))
	b := newBandNoise(1000, 3, 8, 0.3, rand.New(rand.NewSource(21)))

	whole := make([]float64, 4096)
	if err := a.emit(whole); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	var pieces []float64
	for _, n := range []int{1000, 96, 3000} {
		chunk := make([]float64, n)
		if err := b.emit(chunk); err != nil {
			t.Fatalf("emit failed: %v", err)
		}
		pieces = append(pieces, chunk...)
	}

	testutil.RequireSliceEqual(t, whole, pieces)
}

func TestBandNoiseLevel(t *testing.T) {
	bn := newBandNoise(1000, 3, 8, 0.3, rand.New(rand.NewSource(31)))

	out := make([]float64, 8192)
	if err := bn.emit(out); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
	testutil.RequireFinite(t, out)

	// The Hann cross-fade dips the power between block centers, so the
	// long-run RMS sits a little under the per-block target.
	rms := testutil.RMS(out)
	if rms < 0.15 || rms > 0.36 {
		t.Errorf("RMS = %v, want near 0.26 for a 0.3 block target", rms)
	}
}

func TestBandNoiseIsBandLimited(t *testing.T) {
	fs := 1000
	bn := newBandNoise(fs, 3, 8, 0.3, rand.New(rand.NewSource(41)))

	n := 8192
	out := make([]float64, n)
	if err := bn.emit(out); err != nil {
		t.Fatalf("emit failed: %v", err)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		t.Fatalf("NewPlan64 failed: %v", err)
	}
	src := make([]complex128, n)
	for i, v := range out {
		src[i] = complex(v, 0)
	}
	dst := make([]complex128, n)
	if err := plan.Forward(dst, src); err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	total := 0.0
	inBand := 0.0
	for k := 1; k < n/2; k++ {
		p := real(dst[k])*real(dst[k]) + imag(dst[k])*imag(dst[k])
		total += p
		f := float64(k) * float64(fs) / float64(n)
		// The Hann cross-fade smears energy slightly past the band
		// edges, hence the margin.
		if f >= 2 && f <= 9 {
			inBand += p
		}
	}

	if total == 0 {
		t.Fatal("empty spectrum")
	}
	if frac := inBand / total; frac < 0.95 {
		t.Errorf("in-band energy fraction = %v, want >= 0.95", frac)
	}
}
