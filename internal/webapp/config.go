package webapp

import (
	"os"
	"strconv"
	"time"
)

// Config carries the service settings. Every value comes from an
// ECGLAB_-prefixed environment variable with a workable default; the
// ecglab command layers its -addr flag on top. The ecg libraries
// themselves read no environment.
type Config struct {
	Addr      string
	LogLevel  string
	LogFormat string

	// RedisAddr selects the shared Redis cache; empty keeps the cache
	// in process.
	RedisAddr       string
	CacheTTLSeconds int

	// ProviderURL points simulation at a remote synthesis service;
	// empty uses the built-in engine.
	ProviderURL string
	Seed        int64
}

// LoadConfig reads the environment.
func LoadConfig() Config {
	return Config{
		Addr:            getEnv("ECGLAB_ADDR", ":8080"),
		LogLevel:        getEnv("ECGLAB_LOG_LEVEL", "info"),
		LogFormat:       getEnv("ECGLAB_LOG_FORMAT", "json"),
		RedisAddr:       getEnv("ECGLAB_REDIS_ADDR", ""),
		CacheTTLSeconds: parseInt(getEnv("ECGLAB_CACHE_TTL_SECONDS", "900"), 900),
		ProviderURL:     getEnv("ECGLAB_PROVIDER_URL", ""),
		Seed:            parseInt64(getEnv("ECGLAB_SEED", "1"), 1),
	}
}

// CacheTTL returns the configured entry lifetime.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseInt64(s string, def int64) int64 {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return i
}

func parseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}
