package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ecg/ecg/cache"
	"github.com/cwbudde/algo-ecg/ecg/simulate"
)

func testSignal(n int, title string) simulate.Signal {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i) * 0.001
	}
	return simulate.Signal{
		Samples:        samples,
		SamplingRateHz: simulate.SamplingRateHz,
		Title:          title,
	}
}

func TestMemoryMiss(t *testing.T) {
	store := cache.NewMemory(0)

	_, err := store.Get(context.Background(), "ecg:vt:10:180:0.00:1000")
	require.ErrorIs(t, err, cache.ErrMiss)
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory(0)
	sig := testSignal(500, "Simulated ECG: Ventricular Tachycardia (VT) (HR: 180 BPM)")

	require.NoError(t, store.Set(ctx, "k", sig, time.Minute))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, sig.Samples, got.Samples)
	assert.Equal(t, sig.SamplingRateHz, got.SamplingRateHz)
	assert.Equal(t, sig.Title, got.Title)

	// Mutating the returned slice must not reach the cached copy.
	got.Samples[0] = 99
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 0.0, again.Samples[0])
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory(0)

	require.NoError(t, store.Set(ctx, "k", testSignal(10, "t"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestMemoryEvictsOldest(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory(2)

	require.NoError(t, store.Set(ctx, "a", testSignal(10, "a"), 0))
	require.NoError(t, store.Set(ctx, "b", testSignal(10, "b"), 0))
	require.NoError(t, store.Set(ctx, "c", testSignal(10, "c"), 0))

	assert.Equal(t, 2, store.Len())
	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, cache.ErrMiss)
	_, err = store.Get(ctx, "b")
	assert.NoError(t, err)
	_, err = store.Get(ctx, "c")
	assert.NoError(t, err)
}

func TestMemoryUpdateDoesNotEvict(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory(2)

	require.NoError(t, store.Set(ctx, "a", testSignal(10, "a"), 0))
	require.NoError(t, store.Set(ctx, "b", testSignal(10, "b"), 0))
	require.NoError(t, store.Set(ctx, "a", testSignal(10, "a2"), 0))

	assert.Equal(t, 2, store.Len())
	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a2", got.Title)
	_, err = store.Get(ctx, "b")
	assert.NoError(t, err)
}
