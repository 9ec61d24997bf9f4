package service

import (
	"context"
	"runtime"
	"time"

	"github.com/okian/edgegate/pkg/metrics"
)

const (
	systemMetricsInterval     = 10 * time.Second
	nanosecondsPerMillisecond = 1e6
)

// runSystemMetricsUpdater samples runtime stats until ctx is done.
func runSystemMetricsUpdater(ctx context.Context, m *metrics.Manager, interval time.Duration) {
	updateSystemMetrics(m)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics(m)
		}
	}
}

func updateSystemMetrics(m *metrics.Manager) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	m.UpdateSystemMemoryUsage(ms.Alloc)
	m.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if ms.NumGC > 0 {
		avgPauseMs := float64(ms.PauseTotalNs) / float64(ms.NumGC) / nanosecondsPerMillisecond
		m.RecordSystemGCPauseTime(avgPauseMs)
	}
}
