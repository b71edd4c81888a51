package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	DatabaseURI          string
	MongoDatabase        string
	RedisAddress         string
	SnapshotPollInterval time.Duration
	ShutdownTimeout      time.Duration
	RequestTimeout       time.Duration
	LogLevel             string
	CORSAllowedOrigins   []string
}

const (
	defaultRunAddress           = ":8080"
	defaultMongoDatabase        = "sweetorders"
	defaultSnapshotPollInterval = 30 * time.Second
	defaultShutdownTimeout      = 10 * time.Second
	defaultRequestTimeout       = 15 * time.Second
	defaultLogLevel             = "info"
	defaultCORSAllowedOrigins   = "*"
	defaultEnvFile              = ".env"
)

// Load parses configuration from flags, environment variables and an optional .env file.
// Process environment wins over the file.
func Load() (*Config, error) {
	path := getString(os.LookupEnv, "ENV_FILE", defaultEnvFile)
	dotenv, err := readDotEnv(path)
	if err != nil {
		return nil, err
	}
	return load(os.Args[1:], chainLookup(os.LookupEnv, mapLookup(dotenv)))
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		MongoDatabase:        getString(lookup, "MONGO_DATABASE", defaultMongoDatabase),
		RedisAddress:         getString(lookup, "REDIS_ADDRESS", ""),
		SnapshotPollInterval: getDuration(lookup, "SNAPSHOT_POLL_INTERVAL", defaultSnapshotPollInterval),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		RequestTimeout:       getDuration(lookup, "REQUEST_TIMEOUT", defaultRequestTimeout),
		LogLevel:             getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}
	origins := getString(lookup, "CORS_ALLOWED_ORIGINS", defaultCORSAllowedOrigins)

	fs := flag.NewFlagSet("sweetorders", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.SnapshotPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		requestTimeoutStr  = cfg.RequestTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "Document store URI (postgres:// or mongodb://)")
	fs.StringVar(&cfg.RedisAddress, "r", cfg.RedisAddress, "Redis address for change fan-out")
	fs.StringVar(&cfg.MongoDatabase, "mongo-db", cfg.MongoDatabase, "MongoDB database name")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between snapshot reloads")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&requestTimeoutStr, "request-timeout", requestTimeoutStr, "Per-request timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&origins, "cors-origins", origins, "Comma separated list of allowed CORS origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SnapshotPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if uriFile, ok := lookup("DATABASE_URI_FILE"); ok && uriFile != "" {
		content, err := os.ReadFile(uriFile)
		if err != nil {
			return nil, fmt.Errorf("read database uri file: %w", err)
		}
		cfg.DatabaseURI = strings.TrimSpace(string(content))
	}

	cfg.CORSAllowedOrigins = splitList(origins)
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{defaultCORSAllowedOrigins}
	}

	if cfg.SnapshotPollInterval <= 0 {
		cfg.SnapshotPollInterval = defaultSnapshotPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = defaultMongoDatabase
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}

func mapLookup(values map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func chainLookup(lookups ...envLookup) envLookup {
	return func(key string) (string, bool) {
		for _, lookup := range lookups {
			if v, ok := lookup(key); ok && v != "" {
				return v, true
			}
		}
		return "", false
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
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
