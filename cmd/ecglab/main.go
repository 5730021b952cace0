// Command ecglab serves the interactive ECG arrhythmia simulator.
//
// Usage:
//
//	ecglab [-addr :8080]
//
// Configuration comes from ECGLAB_-prefixed environment variables (see
// the webapp package); the -addr flag overrides ECGLAB_ADDR. With no
// configuration at all the server listens on :8080, synthesizes in
// process and caches signals in memory.
//
// Examples:
//
//	ecglab
//	ecglab -addr :9090
//	ECGLAB_REDIS_ADDR=localhost:6379 ecglab
//	ECGLAB_PROVIDER_URL=http://synth.internal:9000 ecglab
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-ecg/ecg/cache"
	"github.com/cwbudde/algo-ecg/ecg/simulate"
	"github.com/cwbudde/algo-ecg/ecg/synth"
	"github.com/cwbudde/algo-ecg/internal/webapp"
)

func main() {
	cfg := webapp.LoadConfig()

	addr := flag.String("addr", cfg.Addr, "listen address")
	flag.Parse()
	cfg.Addr = *addr

	logger, err := webapp.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("ecglab: build logger: %v", err)
	}
	defer logger.Sync()

	engine := synth.New(synth.WithSeed(cfg.Seed))

	var provider simulate.Provider = engine
	if cfg.ProviderURL != "" {
		provider = simulate.NewRemoteProvider(cfg.ProviderURL)
		logger.Info("using remote synthesis provider", zap.String("url", cfg.ProviderURL))
	}

	var store cache.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		store = cache.NewRedis(client)
		logger.Info("using redis signal cache", zap.String("addr", cfg.RedisAddr))
	} else {
		store = cache.NewMemory(0)
	}

	sim := cache.NewCached(simulate.NewSimulator(provider), store, cfg.CacheTTL())
	handler := webapp.NewHandler(sim, engine, logger)
	srv := webapp.NewServer(cfg.Addr, handler, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
	logger.Info("server stopped")
}
