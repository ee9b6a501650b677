package cli

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"SignalBoard/internal/cache"
	"SignalBoard/internal/collector"
	"SignalBoard/internal/config"
	"SignalBoard/internal/model"
	"SignalBoard/internal/recorder"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newCache picks Redis when an address is configured, falling back to memory.
func newCache(cfg *config.Config) (cache.Cache, func()) {
	if cfg.Cache.RedisAddr == "" {
		return cache.NewMemoryCache(), func() {}
	}
	rc, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPass,
		DB:       cfg.Cache.RedisDB,
	})
	if err != nil {
		log.Printf("[WARN] redis cache unavailable, using memory: %v", err)
		return cache.NewMemoryCache(), func() {}
	}
	return rc, func() { rc.Close() }
}

func newCollector(cfg *config.Config) (*collector.Collector, func(), error) {
	fetcher, err := collector.NewFetcher(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())
	c, closeCache := newCache(cfg)
	return collector.NewCollector(fetcher, c, cfg.Cache.TTL), closeCache, nil
}

// openRecorder returns the SQLite recorder when a path is configured.
func openRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return sr
}

// parseRange builds the range from either explicit dates or a period.
func parseRange(period, from, to string) (model.RangeSpec, error) {
	if from == "" && to == "" {
		return model.Lookback(period), nil
	}
	if from == "" || to == "" {
		return model.RangeSpec{}, fmt.Errorf("--from and --to must be given together: %w", model.ErrInvalidRange)
	}
	f, err := time.Parse(model.DateLayout, from)
	if err != nil {
		return model.RangeSpec{}, fmt.Errorf("--from %q: %w", from, model.ErrInvalidRange)
	}
	t, err := time.Parse(model.DateLayout, to)
	if err != nil {
		return model.RangeSpec{}, fmt.Errorf("--to %q: %w", to, model.ErrInvalidRange)
	}
	rng := model.Between(f, t)
	return rng, rng.Validate()
}

// describeError turns a pipeline error into the message shown to the user.
func describeError(symbol string, err error) string {
	switch {
	case errors.Is(err, model.ErrInsufficientHistory):
		return fmt.Sprintf("Not enough history for %s to compute every indicator; choose a longer range.", symbol)
	case errors.Is(err, model.ErrParseMismatch):
		return fmt.Sprintf("The data provider returned an unexpected payload for %s: %v", symbol, err)
	case errors.Is(err, model.ErrDataUnavailable):
		return fmt.Sprintf("No data available for %s: %v", symbol, err)
	case errors.Is(err, model.ErrInvalidRange), errors.Is(err, model.ErrInvalidHorizon):
		return err.Error()
	default:
		return fmt.Sprintf("Error: %v", strings.TrimSpace(err.Error()))
	}
}

// userError carries a friendly message while keeping the cause for errors.Is.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }
