package config

import (
	"log/slog"
	"net/url"

	"go.uber.org/fx"
)

// Module exposes configuration loader for fx graphs and logs the effective settings.
var Module = fx.Options(
	fx.Provide(Load),
	fx.Invoke(logEffective),
)

func logEffective(cfg *Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.String("run_address", cfg.RunAddress),
		slog.String("database", RedactURI(cfg.DatabaseURI)),
		slog.String("mongo_database", cfg.MongoDatabase),
		slog.Bool("redis_notifier", cfg.RedisAddress != ""),
		slog.Duration("snapshot_poll_interval", cfg.SnapshotPollInterval),
		slog.Duration("request_timeout", cfg.RequestTimeout),
		slog.String("log_level", cfg.LogLevel),
	)
}

// RedactURI hides the password of a connection URI so it can be logged.
func RedactURI(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid uri>"
	}
	return u.Redacted()
}
