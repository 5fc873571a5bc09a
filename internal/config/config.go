package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	EmailDomain     string
	QRImageSize     int
	QRPollInterval  time.Duration
	WorkerPoolSize  int
	QRBatchSize     int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultEmailDomain     = "college.edu"
	defaultQRImageSize     = 256
	defaultQRPollInterval  = 5 * time.Second
	defaultWorkerPoolSize  = 2
	defaultQRBatchSize     = 16
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		EmailDomain:     getString(lookup, "CAMPUS_EMAIL_DOMAIN", defaultEmailDomain),
		QRImageSize:     getInt(lookup, "QR_IMAGE_SIZE", defaultQRImageSize),
		QRPollInterval:  getDuration(lookup, "QR_POLL_INTERVAL", defaultQRPollInterval),
		WorkerPoolSize:  getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		QRBatchSize:     getInt(lookup, "QR_BATCH_SIZE", defaultQRBatchSize),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("quickbite", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.QRPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.EmailDomain, "email-domain", cfg.EmailDomain, "Required email domain for login")
	fs.IntVar(&cfg.QRImageSize, "qr-size", cfg.QRImageSize, "QR image side length in pixels")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent QR backfill workers")
	fs.StringVar(&pollIntervalStr, "qr-poll-interval", pollIntervalStr, "Interval between QR backfill polls")
	fs.IntVar(&cfg.QRBatchSize, "qr-batch", cfg.QRBatchSize, "Maximum orders per QR backfill batch")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.QRPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid qr poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	cfg.EmailDomain = strings.TrimPrefix(strings.TrimSpace(cfg.EmailDomain), "@")

	if cfg.QRImageSize <= 0 {
		cfg.QRImageSize = defaultQRImageSize
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.QRBatchSize <= 0 {
		cfg.QRBatchSize = defaultQRBatchSize
	}

	if cfg.QRPollInterval <= 0 {
		cfg.QRPollInterval = defaultQRPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.EmailDomain == "" {
		return nil, fmt.Errorf("email domain must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
