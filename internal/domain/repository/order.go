package repository

import (
	"context"

	"github.com/polkiloo/sweetorders/internal/domain/model"
)

// OrderRepository describes persistence operations with order documents.
type OrderRepository interface {
	// Create inserts the order and stamps the generated identifier into the stored document.
	Create(ctx context.Context, order model.Order) (string, error)
	// MarkDelivered sets the delivered flag and touches no other field.
	MarkDelivered(ctx context.Context, id string) error
	// List returns every stored document ordered by date text, newest first.
	List(ctx context.Context) ([]model.Record, error)
}
