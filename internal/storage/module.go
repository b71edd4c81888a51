// Package storage picks the order document backend from the database URI.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"go.uber.org/fx"

	"github.com/polkiloo/sweetorders/internal/config"
	"github.com/polkiloo/sweetorders/internal/domain/repository"
	"github.com/polkiloo/sweetorders/internal/storage/mongodb"
	"github.com/polkiloo/sweetorders/internal/storage/postgres"
)

// Backend is an opened document store.
type Backend interface {
	repository.HealthChecker
	Orders() repository.OrderRepository
	Close()
}

type opener func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Backend, error)

var openers = map[string]opener{
	"postgres":    openPostgres,
	"postgresql":  openPostgres,
	"mongodb":     openMongo,
	"mongodb+srv": openMongo,
}

// Module wires the selected storage backend and its repositories.
var Module = fx.Options(
	fx.Provide(newBackend),
	fx.Provide(
		func(b Backend) repository.OrderRepository { return b.Orders() },
		func(b Backend) repository.HealthChecker { return b },
	),
	fx.Invoke(registerLifecycle),
)

type backendParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newBackend(p backendParams) (Backend, error) {
	return Open(p.Ctx, p.Config, p.Logger)
}

// Open connects to the backend named by the DATABASE_URI scheme.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Backend, error) {
	u, err := url.Parse(cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("parse database uri: %w", err)
	}

	open, ok := openers[strings.ToLower(u.Scheme)]
	if !ok {
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}

	backend, err := open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("storage opened", slog.String("backend", u.Scheme))
	return backend, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Backend, error) {
	st, err := postgres.New(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func openMongo(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Backend, error) {
	st, err := mongodb.New(ctx, cfg.DatabaseURI, cfg.MongoDatabase, logger)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func registerLifecycle(lc fx.Lifecycle, backend Backend) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			backend.Close()
			return nil
		},
	})
}
