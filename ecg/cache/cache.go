package cache

import (
	"context"
	"errors"
	"time"

	"github.com/cwbudde/algo-ecg/ecg/simulate"
)

// ErrMiss is returned by Store.Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Store is a key-value holder for simulated signals. Implementations
// must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (simulate.Signal, error)
	Set(ctx context.Context, key string, sig simulate.Signal, ttl time.Duration) error
}
