package testutil

import (
	"math"
	"testing"
)

func TestCountBeats(t *testing.T) {
	fs := 1000
	samples := make([]float64, 5*fs)
	// One triangular spike per second, well above the threshold.
	for beat := 0; beat < 5; beat++ {
		peak := beat*fs + fs/2
		for off := -10; off <= 10; off++ {
			samples[peak+off] = 1.0 - math.Abs(float64(off))/10
		}
	}

	if got := CountBeats(samples, fs, 0.5); got != 5 {
		t.Fatalf("CountBeats = %d, want 5", got)
	}
}

func TestCountBeatsRefractory(t *testing.T) {
	fs := 1000
	samples := make([]float64, fs)
	// Two crossings 50 ms apart count as a single beat.
	samples[100] = 1
	samples[150] = 1
	// A third crossing past the 200 ms gap counts again.
	samples[400] = 1

	if got := CountBeats(samples, fs, 0.5); got != 2 {
		t.Fatalf("CountBeats = %d, want 2", got)
	}
}

func TestCountBeatsIgnoresFlatSignal(t *testing.T) {
	if got := CountBeats(make([]float64, 2000), 1000, 0.5); got != 0 {
		t.Fatalf("CountBeats on a flat signal = %d, want 0", got)
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestRMS(t *testing.T) {
	if got := RMS(nil); got != 0 {
		t.Fatalf("RMS(nil) = %v, want 0", got)
	}
	if got := RMS([]float64{3, 3, 3, 3}); math.Abs(got-3) > 1e-12 {
		t.Fatalf("RMS of constant 3 = %v, want 3", got)
	}
	if got := RMS([]float64{1, -1, 1, -1}); math.Abs(got-1) > 1e-12 {
		t.Fatalf("RMS of alternating unit = %v, want 1", got)
	}
}
