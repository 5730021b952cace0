package webapp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-ecg/ecg/analysis"
	"github.com/cwbudde/algo-ecg/ecg/rhythm"
	"github.com/cwbudde/algo-ecg/ecg/simulate"
	"github.com/cwbudde/algo-ecg/ecg/synth"
)

// spectrumMaxHz caps the power spectrum returned to the page; ECG
// content of interest sits well below this.
const spectrumMaxHz = 40

// Simulator is the simulation surface the handlers consume. Both
// *simulate.Simulator and *cache.Cached satisfy it.
type Simulator interface {
	Simulate(ctx context.Context, req simulate.Request) (simulate.Signal, *simulate.Fault)
}

// Handler serves the JSON API backing the embedded page. The live
// monitor always runs on the local engine; request/response simulation
// goes through sim, which may be cached or remote.
type Handler struct {
	sim    Simulator
	engine *synth.Synthesizer
	logger *zap.Logger
}

func NewHandler(sim Simulator, engine *synth.Synthesizer, logger *zap.Logger) *Handler {
	return &Handler{sim: sim, engine: engine, logger: logger}
}

type simulateParams struct {
	Label           string  `json:"label"`
	DurationSeconds int     `json:"durationSeconds"`
	HeartRateBPM    int     `json:"heartRateBpm"`
	NoiseLevel      float64 `json:"noiseLevel"`
}

type rhythmInfo struct {
	Label                 string `json:"label"`
	MethodID              string `json:"methodId"`
	DefaultHeartRate      int    `json:"defaultHeartRate"`
	HeartRateControllable bool   `json:"heartRateControllable"`
	Note                  string `json:"note"`
}

type limitsInfo struct {
	MinDurationSeconds int     `json:"minDurationSeconds"`
	MaxDurationSeconds int     `json:"maxDurationSeconds"`
	MinHeartRateBPM    int     `json:"minHeartRateBpm"`
	MaxHeartRateBPM    int     `json:"maxHeartRateBpm"`
	MinNoiseLevel      float64 `json:"minNoiseLevel"`
	MaxNoiseLevel      float64 `json:"maxNoiseLevel"`
}

type rhythmsResult struct {
	Rhythms  []rhythmInfo `json:"rhythms"`
	RateHint string       `json:"rateHint"`
	Limits   limitsInfo   `json:"limits"`
}

type summaryResult struct {
	DurationSeconds float64 `json:"durationSeconds"`
	Min             float64 `json:"min"`
	Max             float64 `json:"max"`
	RMS             float64 `json:"rms"`
	PeakCount       int     `json:"peakCount"`
	RateBPM         float64 `json:"rateBpm"`
}

type signalResult struct {
	Title          string         `json:"title"`
	SamplingRateHz int            `json:"samplingRateHz"`
	Samples        []float64      `json:"samples"`
	Summary        *summaryResult `json:"summary,omitempty"`
	Warning        string         `json:"warning,omitempty"`
}

type spectrumResult struct {
	Title       string    `json:"title"`
	Frequencies []float64 `json:"frequencies"`
	Power       []float64 `json:"power"`
}

// Rhythms handles GET /api/rhythms: the catalog in presentation order
// plus the notes, the rate hint and the parameter limits the page
// needs to configure its controls.
func (h *Handler) Rhythms(w http.ResponseWriter, r *http.Request) {
	catalog := rhythm.Catalog()
	out := rhythmsResult{
		Rhythms:  make([]rhythmInfo, len(catalog)),
		RateHint: rhythm.RateHint,
		Limits: limitsInfo{
			MinDurationSeconds: simulate.MinDurationSeconds,
			MaxDurationSeconds: simulate.MaxDurationSeconds,
			MinHeartRateBPM:    simulate.MinHeartRateBPM,
			MaxHeartRateBPM:    simulate.MaxHeartRateBPM,
			MinNoiseLevel:      simulate.MinNoiseLevel,
			MaxNoiseLevel:      simulate.MaxNoiseLevel,
		},
	}
	for i, d := range catalog {
		out.Rhythms[i] = rhythmInfo{
			Label:                 d.Label,
			MethodID:              d.MethodID,
			DefaultHeartRate:      d.DefaultHeartRate,
			HeartRateControllable: d.HeartRateControllable,
			Note:                  rhythm.Note(d.MethodID),
		}
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

// Simulate handles POST /api/simulate. Validation problems produce an
// error envelope naming the offending field; a synthesis fault still
// produces a success envelope, carrying the flat fallback signal and a
// warning for the banner.
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(zap.String("request_id", uuid.NewString()))

	var params simulateParams
	if err := readBodyJSON(r, 1<<16, &params); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("malformed request body"))
		return
	}

	req, err := h.buildRequest(params)
	if err != nil {
		logger.Info("rejected simulate request",
			zap.String("label", params.Label), zap.Error(err))
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}

	sig, fault := h.sim.Simulate(r.Context(), req)
	out := signalResult{
		Title:          sig.Title,
		SamplingRateHz: sig.SamplingRateHz,
		Samples:        sig.Samples,
	}
	switch {
	case fault != nil:
		logger.Warn("synthesis degraded to flat signal",
			zap.String("method", fault.MethodID), zap.Error(fault.Err))
		out.Warning = fmt.Sprintf("signal generation for %q failed; showing a flat line", req.MethodID)
	default:
		if s, err := analysis.Summarize(sig.Samples, sig.SamplingRateHz); err == nil {
			out.Summary = &summaryResult{
				DurationSeconds: s.DurationSeconds,
				Min:             s.Min,
				Max:             s.Max,
				RMS:             s.RMS,
				PeakCount:       s.PeakCount,
				RateBPM:         s.RateBPM,
			}
		}
	}

	logger.Info("simulated",
		zap.String("method", req.MethodID),
		zap.Int("duration_s", req.DurationSeconds),
		zap.Int("heart_rate_bpm", req.HeartRateBPM),
		zap.Float64("noise", req.NoiseLevel),
		zap.Int("samples", len(sig.Samples)))
	writeJSON(w, http.StatusOK, Ok(out))
}

// Spectrum handles GET /api/spectrum with the simulate parameters in
// the query string. The signal itself comes from the same (cached)
// simulator, so flipping the page between chart tabs costs one
// synthesis, not two.
func (h *Handler) Spectrum(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(zap.String("request_id", uuid.NewString()))

	req, err := h.buildRequest(queryParams(r.URL.Query()))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}

	sig, fault := h.sim.Simulate(r.Context(), req)
	if fault != nil {
		logger.Warn("spectrum of degraded signal",
			zap.String("method", fault.MethodID), zap.Error(fault.Err))
	}

	freqs, power, err := analysis.PowerSpectrum(sig.Samples, sig.SamplingRateHz, spectrumMaxHz)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(spectrumResult{
		Title:       sig.Title,
		Frequencies: freqs,
		Power:       power,
	}))
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// buildRequest resolves the label against the catalog and applies the
// default heart rate when none was given.
func (h *Handler) buildRequest(params simulateParams) (simulate.Request, error) {
	desc, ok := rhythm.Find(params.Label)
	if !ok {
		return simulate.Request{}, fmt.Errorf("webapp: unknown rhythm %q", params.Label)
	}
	if params.HeartRateBPM == 0 {
		params.HeartRateBPM = desc.DefaultHeartRate
	}
	return simulate.BuildRequest(desc, params.DurationSeconds, params.HeartRateBPM, params.NoiseLevel)
}

// queryParams reads the simulate parameters from a query string, with
// the page's initial values as defaults.
func queryParams(q url.Values) simulateParams {
	return simulateParams{
		Label:           q.Get("label"),
		DurationSeconds: parseInt(q.Get("durationSeconds"), 10),
		HeartRateBPM:    parseInt(q.Get("heartRateBpm"), 0),
		NoiseLevel:      parseFloat(q.Get("noiseLevel"), 0.1),
	}
}
