package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/sweetorders/internal/domain/model"
	"github.com/polkiloo/sweetorders/internal/domain/repository"
	"github.com/polkiloo/sweetorders/internal/storage/document"
	domainErrors "github.com/polkiloo/sweetorders/internal/domain/errors"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage keeps order documents in a JSONB column of PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Orders returns the order document repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
            doc JSONB NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_date ON orders((doc->>'date') DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// Create inserts the document and then writes the generated id into it.
func (r *orderRepository) Create(ctx context.Context, order model.Order) (string, error) {
	payload, err := json.Marshal(document.FromOrder(order))
	if err != nil {
		return "", fmt.Errorf("encode order: %w", err)
	}

	var id string
	err = r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertQuery = `INSERT INTO orders (doc) VALUES ($1::jsonb) RETURNING id`
		if err := tx.QueryRow(ctx, insertQuery, payload).Scan(&id); err != nil {
			return err
		}
		const stampQuery = `UPDATE orders SET doc = jsonb_set(doc, '{id}', to_jsonb($1::text)) WHERE id=$1`
		if _, err := tx.Exec(ctx, stampQuery, id); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// markDeliveredQuery compares jsonb values so documents with a non-boolean delivered field
// are patched instead of failing the cast.
const markDeliveredQuery = `UPDATE orders SET doc = jsonb_set(doc, '{delivered}', 'true'::jsonb), updated_at=NOW()
                         WHERE id=$1 AND (doc->'delivered') IS DISTINCT FROM 'true'::jsonb`

// MarkDelivered patches only the delivered field of a pending order.
func (r *orderRepository) MarkDelivered(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, markDeliveredQuery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	const existsQuery = `SELECT 1 FROM orders WHERE id=$1`
	var one int
	if err := r.storage.pool.QueryRow(ctx, existsQuery, id).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return domainErrors.ErrAlreadyDelivered
}

// List returns documents ordered by the date text, newest first.
func (r *orderRepository) List(ctx context.Context) ([]model.Record, error) {
	const query = `SELECT id, doc FROM orders ORDER BY doc->>'date' DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Record
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		result = append(result, decodeRecord(id, raw))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func decodeRecord(id string, raw []byte) model.Record {
	var doc document.Order
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Record{Order: model.Order{ID: id}, Err: fmt.Errorf("%w: %v", domainErrors.ErrMalformedDocument, err)}
	}
	return doc.ToRecord(id)
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
