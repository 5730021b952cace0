package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/cwbudde/algo-ecg/ecg/simulate"
)

// Redis is a Store backed by a shared Redis instance so several service
// replicas can reuse each other's synthesized signals. Values are
// stored as JSON and expire through Redis key TTLs.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an already configured client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

type redisPayload struct {
	Samples        []float64 `json:"samples"`
	SamplingRateHz int       `json:"sampling_rate_hz"`
	Title          string    `json:"title"`
}

func (r *Redis) Get(ctx context.Context, key string) (simulate.Signal, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return simulate.Signal{}, ErrMiss
		}
		return simulate.Signal{}, fmt.Errorf("cache: redis get: %w", err)
	}

	var p redisPayload
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return simulate.Signal{}, fmt.Errorf("cache: decode cached signal: %w", err)
	}
	return simulate.Signal{
		Samples:        p.Samples,
		SamplingRateHz: p.SamplingRateHz,
		Title:          p.Title,
	}, nil
}

func (r *Redis) Set(ctx context.Context, key string, sig simulate.Signal, ttl time.Duration) error {
	data, err := json.Marshal(redisPayload{
		Samples:        sig.Samples,
		SamplingRateHz: sig.SamplingRateHz,
		Title:          sig.Title,
	})
	if err != nil {
		return fmt.Errorf("cache: encode signal: %w", err)
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}
	return nil
}
