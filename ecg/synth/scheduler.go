package synth

import "math/rand"

// train schedules one independent wave sequence. Most rhythms need a
// single train of beats; atrial flutter and complete AV block overlay a
// second, dissociated atrial train.
//
// step receives the absolute time of the current anchor and returns the
// waves to draw for it plus the interval to the next anchor. Waves never
// start more than backReach seconds before their anchor, which bounds
// how far ahead the stream has to schedule.
type train struct {
	next float64
	step func(t float64) ([]waveEvent, float64)
}

const backReach = 0.45

// Anchor times of the first event per train kind, chosen so the opening
// waves clear the start of the trace.
const (
	firstBeatAt   = 0.35
	firstAtrialAt = 0.15
)

// sinusTrain emits conducted sinus beats at the mean interval rr with a
// small uniform jitter per beat. pr sets the P-to-R spacing, which is
// how first-degree AV block differs from the normal rhythm.
func sinusTrain(rr, jitter, pr float64, rng *rand.Rand) *train {
	return &train{
		next: firstBeatAt,
		step: func(t float64) ([]waveEvent, float64) {
			adv := rr
			if jitter > 0 {
				adv = rr * (1 + jitter*(2*rng.Float64()-1))
			}
			return narrowBeat(t, rr, pr, true), adv
		},
	}
}

// qrsTrain emits regular QRS complexes with no preceding P wave: the
// ventricular response in SVT, VT, flutter and the escape rhythm of
// complete AV block. wide selects ventricular morphology.
func qrsTrain(rr float64, wide bool) *train {
	return &train{
		next: firstBeatAt,
		step: func(t float64) ([]waveEvent, float64) {
			if wide {
				return wideBeat(t, rr), rr
			}
			return narrowBeat(t, rr, 0, false), rr
		},
	}
}

// atrialTrain emits a bare P-like deflection every interval seconds,
// dissociated from any QRS train: flutter waves when inverted and fast,
// the independent atrial rhythm of complete AV block when upright.
func atrialTrain(interval, amp, width float64) *train {
	return &train{
		next: firstAtrialAt,
		step: func(t float64) ([]waveEvent, float64) {
			return []waveEvent{{center: t, amp: amp, width: width}}, interval
		},
	}
}

// pacTrain emits sinus beats interrupted every few cycles by a premature
// atrial beat. The ectopic arrives early, carries its own misshapen P,
// and is followed by a pause shorter than two full cycles: the premature
// impulse resets the sinus node.
func pacTrain(rr float64, rng *rand.Rand) *train {
	until := 6 + rng.Intn(5)
	return &train{
		next: firstBeatAt,
		step: func(t float64) ([]waveEvent, float64) {
			if until == 0 {
				until = 6 + rng.Intn(5)
				waves := narrowBeat(t, rr, 0, false)
				waves = append(waves, ectopicP(t))
				return waves, 1.18 * rr
			}
			until--
			adv := rr
			if until == 0 {
				adv = 0.62 * rr
			}
			return narrowBeat(t, rr, prNormal, true), adv
		},
	}
}

// pvcTrain emits sinus beats interrupted every few cycles by a premature
// ventricular beat. The ectopic is wide with no P wave, and the pause
// after it is fully compensatory: the early interval and the pause sum
// to exactly two sinus cycles.
func pvcTrain(rr float64, rng *rand.Rand) *train {
	until := 6 + rng.Intn(5)
	return &train{
		next: firstBeatAt,
		step: func(t float64) ([]waveEvent, float64) {
			if until == 0 {
				until = 6 + rng.Intn(5)
				return wideBeat(t, rr), 1.42 * rr
			}
			until--
			adv := rr
			if until == 0 {
				adv = 0.58 * rr
			}
			return narrowBeat(t, rr, prNormal, true), adv
		},
	}
}

// afibTrain emits narrow beats with no P waves at irregularly irregular
// intervals, uniform in [0.75, 1.35] of the nominal interval. The
// fibrillatory baseline itself is a separate noise layer.
func afibTrain(rr float64, rng *rand.Rand) *train {
	return &train{
		next: firstBeatAt,
		step: func(t float64) ([]waveEvent, float64) {
			return narrowBeat(t, rr, 0, false), rr * (0.75 + 0.6*rng.Float64())
		},
	}
}

// wenckebachCycle is the atrial beat count per Wenckebach period: three
// conducted beats, then one blocked P wave.
const wenckebachCycle = 4

// wenckebachTrain anchors on the atrial clock: a P wave every pp
// seconds, with the P-to-R spacing growing each beat until one P is not
// conducted at all.
func wenckebachTrain(pp float64) *train {
	beat := 0
	return &train{
		next: firstBeatAt,
		step: func(t float64) ([]waveEvent, float64) {
			waves := []waveEvent{{center: t, amp: 0.15, width: 0.025}}
			if beat < wenckebachCycle-1 {
				pr := prNormal + 0.07*float64(beat)
				qrst := narrowBeat(t+pr, pp, 0, false)
				waves = append(waves, qrst...)
			}
			beat = (beat + 1) % wenckebachCycle
			return waves, pp
		},
	}
}
