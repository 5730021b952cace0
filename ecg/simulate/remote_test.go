package simulate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRemoteProviderRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/simulate" {
			t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
			return
		}

		var in remoteSimulateRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		if in.MethodID != "afib" || in.DurationSeconds != 5 || in.HeartRateBPM != 90 {
			t.Errorf("request body not forwarded: %+v", in)
		}

		out := remoteSimulateResponse{Samples: make([]float64, in.DurationSeconds*in.SamplingRateHz)}
		out.Samples[0] = 0.25
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL)
	req, err := BuildRequest(mustFind(t, "Atrial Fibrillation (AFib)"), 5, 90, 0.0)
	if err != nil {
		t.Fatalf("BuildRequest failed: %v", err)
	}

	samples, err := p.Simulate(context.Background(), req)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if len(samples) != 5000 {
		t.Fatalf("len(samples) = %d, want 5000", len(samples))
	}
	if samples[0] != 0.25 {
		t.Errorf("samples[0] = %v, want 0.25", samples[0])
	}
}

func TestRemoteProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(remoteSimulateResponse{Error: "unknown method \"xyz\""})
	}))
	defer srv.Close()

	req := Request{
		DurationSeconds: 5,
		HeartRateBPM:    70,
		MethodID:        "xyz",
		SamplingRateHz:  SamplingRateHz,
	}

	_, err := NewRemoteProvider(srv.URL).Simulate(context.Background(), req)
	if err == nil {
		t.Fatal("Simulate succeeded against a rejecting provider")
	}
	if !strings.Contains(err.Error(), "unknown method") {
		t.Errorf("error %q does not carry the provider message", err)
	}
}

func TestRemoteProviderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	req := Request{
		DurationSeconds: 5,
		HeartRateBPM:    70,
		MethodID:        "ecgsyn",
		SamplingRateHz:  SamplingRateHz,
	}

	_, err := NewRemoteProvider(srv.URL).Simulate(context.Background(), req)
	if err == nil {
		t.Fatal("Simulate succeeded against a failing provider")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error %q does not carry the status code", err)
	}
}
