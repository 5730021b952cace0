package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-ecg/ecg/simulate"
)

// Continuous layer levels. Fibrillatory bands are intrinsic to their
// rhythms; wander and white noise scale with the request's noise level.
const (
	afibBandLoHz = 4.0
	afibBandHiHz = 9.0
	afibBandRMS  = 0.05

	vfBandLoHz = 3.0
	vfBandHiHz = 8.0
	vfBandRMS  = 0.30

	wanderFreqHz = 0.3
	wanderGain   = 0.5
	whiteGain    = 0.4
)

// Atrial overlay rates: flutter waves at 300 per minute, and the
// dissociated atrial rhythm of complete AV block at 80 per minute.
const (
	flutterInterval = 0.2
	dissociatedPP   = 0.75
)

// Seed offsets for the independent random streams. Schedulers, the
// noise layers and the fibrillatory band each draw from their own
// source, so the waveform for a given seed does not depend on how the
// caller chunks Next.
const (
	seedOffsetTrain = 0
	seedOffsetNoise = 211
	seedOffsetBand  = 307
)

// Stream yields one rhythm's waveform incrementally. Create it with
// NewStream or Synthesizer.Stream and drain it with Next; a Stream is
// not safe for concurrent use.
type Stream struct {
	fs  int
	pos int

	trains  []*train
	pending []float64

	band    *bandNoise
	bandEnv func(t float64) float64
	scratch []float64

	wanderAmp   float64
	wanderPhase float64
	whiteAmp    float64
	noiseRNG    *rand.Rand
}

// NewStream builds the generator program for the request's method. The
// request must satisfy Validate; the seed fixes every random draw, so
// equal requests with equal seeds replay the same waveform.
func NewStream(req simulate.Request, seed int64) (*Stream, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.SamplingRateHz <= 0 {
		return nil, ErrInvalidSampling
	}

	st := &Stream{fs: req.SamplingRateHz}

	rr := 60 / float64(req.HeartRateBPM)
	trainRNG := rand.New(rand.NewSource(seed + seedOffsetTrain))
	bandRNG := rand.New(rand.NewSource(seed + seedOffsetBand))

	switch req.MethodID {
	case MethodSinus:
		st.trains = []*train{sinusTrain(rr, 0.02, prNormal, trainRNG)}
	case MethodPAC:
		st.trains = []*train{pacTrain(rr, trainRNG)}
	case MethodPVC:
		st.trains = []*train{pvcTrain(rr, trainRNG)}
	case MethodAFib:
		st.trains = []*train{afibTrain(rr, trainRNG)}
		st.band = newBandNoise(st.fs, afibBandLoHz, afibBandHiHz, afibBandRMS, bandRNG)
	case MethodAFL:
		st.trains = []*train{
			qrsTrain(rr, false),
			atrialTrain(flutterInterval, -0.15, 0.05),
		}
	case MethodSVT:
		st.trains = []*train{qrsTrain(rr, false)}
	case MethodVT:
		st.trains = []*train{qrsTrain(rr, true)}
	case MethodVF:
		// No organized beats at all, and the heart rate plays no role.
		st.band = newBandNoise(st.fs, vfBandLoHz, vfBandHiHz, vfBandRMS, bandRNG)
		phase := 2 * math.Pi * bandRNG.Float64()
		st.bandEnv = func(t float64) float64 {
			return 1 + 0.35*math.Sin(2*math.Pi*0.45*t+phase)
		}
	case MethodAVB1:
		st.trains = []*train{sinusTrain(rr, 0.02, prFirstDegree, trainRNG)}
	case MethodAVB2:
		st.trains = []*train{wenckebachTrain(rr)}
	case MethodAVB3:
		st.trains = []*train{
			qrsTrain(rr, false),
			atrialTrain(dissociatedPP, 0.15, 0.025),
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMethod, req.MethodID)
	}

	noiseRNG := rand.New(rand.NewSource(seed + seedOffsetNoise))
	st.wanderPhase = 2 * math.Pi * noiseRNG.Float64()
	st.wanderAmp = wanderGain * req.NoiseLevel
	st.whiteAmp = whiteGain * req.NoiseLevel
	st.noiseRNG = noiseRNG

	return st, nil
}

// SamplingRateHz returns the stream's sampling rate.
func (st *Stream) SamplingRateHz() int { return st.fs }

// Next returns the next n samples of the waveform. The sample values are
// independent of the chunk sizes used to drain the stream.
func (st *Stream) Next(n int) []float64 {
	if n <= 0 {
		return nil
	}

	end := st.pos + n
	tEnd := float64(end) / float64(st.fs)

	// Anchors not yet scheduled lie at or beyond tEnd+backReach, so
	// none of their waves can start inside the emitted window.
	for _, tr := range st.trains {
		for tr.next < tEnd+backReach {
			waves, adv := tr.step(tr.next)
			for _, w := range waves {
				st.addWave(w)
			}
			tr.next += adv
		}
	}

	if len(st.pending) < n {
		st.pending = append(st.pending, make([]float64, n-len(st.pending))...)
	}

	out := make([]float64, n)
	copy(out, st.pending[:n])
	copy(st.pending, st.pending[n:])
	st.pending = st.pending[:len(st.pending)-n]

	if st.band != nil {
		if cap(st.scratch) < n {
			st.scratch = make([]float64, n)
		}
		scratch := st.scratch[:n]
		// emit only fails on FFT plan setup, which the fixed block
		// length rules out; degrade to a clean baseline if it ever does
		if err := st.band.emit(scratch); err == nil {
			if st.bandEnv != nil {
				for i := range scratch {
					t := float64(st.pos+i) / float64(st.fs)
					scratch[i] *= st.bandEnv(t)
				}
			}
			for i := range out {
				out[i] += scratch[i]
			}
		}
	}

	if st.wanderAmp > 0 || st.whiteAmp > 0 {
		for i := range out {
			t := float64(st.pos+i) / float64(st.fs)
			out[i] += st.wanderAmp * math.Sin(2*math.Pi*wanderFreqHz*t+st.wanderPhase)
			out[i] += st.whiteAmp * (2*st.noiseRNG.Float64() - 1)
		}
	}

	st.pos = end
	return out
}

// addWave accumulates one Gaussian deflection into the pending buffer,
// clipped to the not-yet-emitted region.
func (st *Stream) addWave(w waveEvent) {
	fs := float64(st.fs)

	lo := int(math.Floor((w.center - gaussianSupport*w.width) * fs))
	hi := int(math.Ceil((w.center + gaussianSupport*w.width) * fs))
	if lo < st.pos {
		lo = st.pos
	}
	if hi < lo {
		return
	}

	if need := hi - st.pos + 1; need > len(st.pending) {
		st.pending = append(st.pending, make([]float64, need-len(st.pending))...)
	}

	inv := 1 / (2 * w.width * w.width)
	for i := lo; i <= hi; i++ {
		dt := float64(i)/fs - w.center
		st.pending[i-st.pos] += w.amp * math.Exp(-dt*dt*inv)
	}
}
