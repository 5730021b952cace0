package simulate

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// RemoteProvider dispatches synthesis to an external HTTP service. The
// service speaks a small JSON protocol: POST {base}/simulate with the
// request parameters, answered with the sample array or an error message.
type RemoteProvider struct {
	client *resty.Client
}

type remoteSimulateRequest struct {
	DurationSeconds int     `json:"duration_seconds"`
	HeartRateBPM    int     `json:"heart_rate_bpm"`
	MethodID        string  `json:"method_id"`
	NoiseLevel      float64 `json:"noise_level"`
	SamplingRateHz  int     `json:"sampling_rate_hz"`
}

type remoteSimulateResponse struct {
	Samples []float64 `json:"samples"`
	Error   string    `json:"error,omitempty"`
}

// NewRemoteProvider returns a provider talking to the service at baseURL.
// Transient transport failures are retried twice with backoff before the
// request is reported as failed.
func NewRemoteProvider(baseURL string) *RemoteProvider {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &RemoteProvider{client: client}
}

// Simulate implements Provider.
func (p *RemoteProvider) Simulate(ctx context.Context, req Request) ([]float64, error) {
	var (
		out    remoteSimulateResponse
		reject remoteSimulateResponse
	)

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(remoteSimulateRequest{
			DurationSeconds: req.DurationSeconds,
			HeartRateBPM:    req.HeartRateBPM,
			MethodID:        req.MethodID,
			NoiseLevel:      req.NoiseLevel,
			SamplingRateHz:  req.SamplingRateHz,
		}).
		SetResult(&out).
		SetError(&reject).
		Post("/simulate")
	if err != nil {
		return nil, fmt.Errorf("simulate: provider request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		if reject.Error != "" {
			return nil, fmt.Errorf("simulate: provider rejected request: %s", reject.Error)
		}
		return nil, fmt.Errorf("simulate: provider returned status %d", resp.StatusCode())
	}
	if out.Error != "" {
		return nil, fmt.Errorf("simulate: provider reported: %s", out.Error)
	}

	return out.Samples, nil
}
