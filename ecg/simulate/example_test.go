package simulate_test

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-ecg/ecg/rhythm"
	"github.com/cwbudde/algo-ecg/ecg/simulate"
)

func ExampleBuildRequest() {
	d, _ := rhythm.Find("Atrial Fibrillation (AFib)")

	req, err := simulate.BuildRequest(d, 10, 95, 0.1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(req.MethodID)
	fmt.Println(req.Title)
	// Output:
	// afib
	// Simulated ECG: Atrial Fibrillation (AFib) (HR: 95 BPM)
}

func ExampleBuildRequest_outOfRange() {
	d, _ := rhythm.Find("Normal Sinus Rhythm")

	_, err := simulate.BuildRequest(d, 4, 70, 0.0)
	fmt.Println(err)
	// Output:
	// simulate: duration 4 out of range [5, 30]
}

func ExampleSimulator_Simulate() {
	flat := simulate.ProviderFunc(func(_ context.Context, req simulate.Request) ([]float64, error) {
		return make([]float64, req.NumSamples()), nil
	})

	d, _ := rhythm.Find("Normal Sinus Rhythm")
	req, _ := simulate.BuildRequest(d, 5, 70, 0.0)

	sig, fault := simulate.NewSimulator(flat).Simulate(context.Background(), req)
	fmt.Println(len(sig.Samples), fault == nil)
	// Output:
	// 5000 true
}
