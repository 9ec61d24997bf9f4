package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/edgegate/internal/probe"
	"github.com/okian/edgegate/pkg/logger"
)

// Default configuration constants.
const (
	defaultBaseURL  = "http://localhost:8787"
	defaultDeadline = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", defaultBaseURL, "Base URL of the router")
		apiKey  = flag.String("key", os.Getenv("API_KEY"), "Shared secret for gated checks")
		rounds  = flag.Int("rounds", probe.DefaultRounds, "Times each check is executed")
		workers = flag.Int("workers", runtime.NumCPU(), "Number of concurrent workers")
		timeout = flag.Duration("timeout", probe.DefaultTimeout, "HTTP request timeout")
		verbose = flag.Bool("verbose", false, "Log every failed check")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp(os.Stdout)
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, defaultDeadline)
	defer cancel()

	config := &probe.Config{
		BaseURL: *baseURL,
		APIKey:  *apiKey,
		Rounds:  *rounds,
		Workers: *workers,
		Timeout: *timeout,
		Verbose: *verbose,
	}

	if _, err := probe.Run(ctx, config); err != nil {
		logger.Get().Error(ctx, "probe failed", logger.Error(err))
		cancel()
		stop()
		os.Exit(1)
	}
}
