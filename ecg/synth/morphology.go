package synth

import "math"

// waveEvent is one Gaussian deflection: amplitude in millivolts, center
// and width (standard deviation) in seconds.
type waveEvent struct {
	center float64
	amp    float64
	width  float64
}

// gaussianSupport is the half-support of a wave in standard deviations;
// beyond it the deflection is treated as zero.
const gaussianSupport = 4.0

// P-to-R spacing in seconds for conducted beats.
const (
	prNormal      = 0.16
	prFirstDegree = 0.28
)

// narrowBeat returns the waves of a normally conducted beat with the R
// peak at time r: Q, R, S and a rate-adaptive T. The repolarization
// segment stretches with the square root of the beat interval rr, so the
// T wave sits later and wider at slow rates. pr sets the P-to-R spacing;
// withP controls whether a P wave is drawn at all.
func narrowBeat(r, rr, pr float64, withP bool) []waveEvent {
	qt := math.Sqrt(rr)
	waves := []waveEvent{
		{center: r - 0.028, amp: -0.10, width: 0.010},
		{center: r, amp: 1.10, width: 0.009},
		{center: r + 0.030, amp: -0.25, width: 0.012},
		{center: r + 0.29*qt, amp: 0.33, width: 0.05 * qt},
	}
	if withP {
		waves = append(waves, waveEvent{center: r - pr, amp: 0.15, width: 0.025})
	}
	return waves
}

// wideBeat returns the waves of a ventricular beat: a broad, slurred
// QRS with no preceding P wave and a discordant T wave opposite the
// QRS polarity.
func wideBeat(r, rr float64) []waveEvent {
	qt := math.Sqrt(rr)
	return []waveEvent{
		{center: r - 0.010, amp: 1.25, width: 0.040},
		{center: r + 0.070, amp: -0.55, width: 0.050},
		{center: r + 0.34*qt, amp: -0.40, width: 0.07 * qt},
	}
}

// ectopicP is the P wave of an atrial ectopic beat. It sits closer to
// the QRS than a sinus P and has a flatter, wider shape.
func ectopicP(r float64) waveEvent {
	return waveEvent{center: r - 0.12, amp: 0.11, width: 0.035}
}
