// Package probe exercises a running edge router with concurrent requests and
// verifies every response against the router's public contract.
package probe

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/okian/edgegate/pkg/logger"
)

// Run checks router health, then runs DefaultChecks and reports statistics.
// It returns ErrChecksFailed when any check did not pass.
func Run(ctx context.Context, config *Config) (*Stats, error) {
	return RunChecks(ctx, config, DefaultChecks(config.APIKey))
}

// RunChecks is Run with a caller-supplied check list.
func RunChecks(ctx context.Context, config *Config, checks []Check) (*Stats, error) {
	cfg := withDefaults(*config)
	stats := &Stats{
		StartTime: time.Now(),
		Failures:  make(map[string]int),
	}

	logger.Get().Info(ctx, "starting edge probe",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("rounds", cfg.Rounds),
		logger.Int("workers", cfg.Workers),
		logger.String("timeout", cfg.Timeout.String()),
		logger.Bool("gatedChecks", cfg.APIKey != ""),
		logger.Bool("verbose", cfg.Verbose))

	if err := checkServiceHealth(ctx, &cfg); err != nil {
		return stats, err
	}

	runChecks(ctx, &cfg, checks, stats)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if stats.Failed > 0 {
		return stats, fmt.Errorf("%w: %d of %d", ErrChecksFailed, stats.Failed, stats.ChecksRun)
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	logger.Get().Info(ctx, "probe completed successfully")
	return stats, nil
}

func withDefaults(cfg Config) Config {
	if cfg.Rounds <= 0 {
		cfg.Rounds = DefaultRounds
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}

// checkServiceHealth verifies the router is serving /health.
func checkServiceHealth(ctx context.Context, config *Config) error {
	client := newHTTPClient(config.Timeout)

	resp, err := client.Get(ctx, config.BaseURL+"/health", "")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	if err := verifyHealth(resp.StatusCode, body); err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}

	logger.Get().Info(ctx, "router is healthy")
	return nil
}

// displayFinalStats logs the final probe statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var successRate, checksPerSecond float64

	if stats.ChecksRun > 0 {
		successRate = float64(stats.Passed) / float64(stats.ChecksRun) * PercentageMultiplier
	}
	if stats.Duration > 0 {
		checksPerSecond = float64(stats.ChecksRun) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("checksRun", stats.ChecksRun),
		logger.Int("passed", stats.Passed),
		logger.Int("failed", stats.Failed),
		logger.Any("failures", stats.Failures),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("checksPerSecond", checksPerSecond))
}
