package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/edgegate/pkg/logger"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs a GET request, sending apiKey as X-API-Key when set.
func (c *HTTPClient) Get(ctx context.Context, url, apiKey string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if apiKey != "" {
		req.Header.Set(apiKeyHeader, apiKey)
	}
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// runChecks executes every check config.Rounds times using a worker pool.
func runChecks(ctx context.Context, config *Config, checks []Check, stats *Stats) {
	logger.Get().Info(ctx, "running checks",
		logger.Int("checks", len(checks)),
		logger.Int("rounds", config.Rounds),
		logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)

	var (
		passed int64
		failed int64
		run    int64
	)
	var failuresMu sync.Mutex

	checkChan := make(chan Check, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for check := range checkChan {
				if ctx.Err() != nil {
					continue
				}
				result := executeCheck(ctx, client, config.BaseURL, check)
				atomic.AddInt64(&run, 1)
				if result.Err == nil {
					atomic.AddInt64(&passed, 1)
					continue
				}
				atomic.AddInt64(&failed, 1)
				failuresMu.Lock()
				stats.Failures[result.Check]++
				failuresMu.Unlock()
				if config.Verbose {
					logger.Get().Warn(ctx, "check failed",
						logger.String("check", result.Check),
						logger.Int("status", result.Status),
						logger.String("latency", result.Latency.String()),
						logger.Error(result.Err))
				}
			}
		}()
	}

	go func() {
		defer close(checkChan)
		for round := 0; round < config.Rounds; round++ {
			for _, check := range checks {
				select {
				case <-ctx.Done():
					return
				case checkChan <- check:
				}
			}
		}
	}()

	wg.Wait()

	stats.ChecksRun = int(atomic.LoadInt64(&run))
	stats.Passed = int(atomic.LoadInt64(&passed))
	stats.Failed = int(atomic.LoadInt64(&failed))
}

// executeCheck performs one check and verifies its response.
func executeCheck(ctx context.Context, client *HTTPClient, baseURL string, check Check) Result {
	start := time.Now()
	result := Result{Check: check.Name}

	resp, err := client.Get(ctx, baseURL+check.Path, check.APIKey)
	if err != nil {
		result.Err = err
		result.Latency = time.Since(start)
		return result
	}
	body, err := readResponseBody(resp)
	result.Status = resp.StatusCode
	result.Latency = time.Since(start)
	if err != nil {
		result.Err = fmt.Errorf("failed to read body: %w", err)
		return result
	}

	if err := verifyStatus(check, resp.StatusCode); err != nil {
		result.Err = err
		return result
	}
	if check.Verify != nil {
		result.Err = check.Verify(resp.StatusCode, body)
	}
	return result
}
