package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	domainErrors "github.com/polkiloo/sweetorders/internal/domain/errors"
	"github.com/polkiloo/sweetorders/internal/domain/model"
	"github.com/polkiloo/sweetorders/internal/domain/repository"
	"github.com/polkiloo/sweetorders/internal/storage/document"
)

const disconnectTimeout = 5 * time.Second

var connect = defaultConnect

func defaultConnect(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

// Storage keeps order documents in a MongoDB collection.
type Storage struct {
	client *mongo.Client
	orders *mongo.Collection
	logger *slog.Logger
}

type orderRepository struct {
	orders *mongo.Collection
}

// New connects to the server and verifies it answers.
func New(ctx context.Context, uri, database string, logger *slog.Logger) (*Storage, error) {
	client, err := connect(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return &Storage{
		client: client,
		orders: client.Database(database).Collection(model.OrdersCollection),
		logger: logger,
	}, nil
}

// Close disconnects the client.
func (s *Storage) Close() {
	if s.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil && s.logger != nil {
		s.logger.Warn("mongo disconnect failed", slog.String("error", err.Error()))
	}
}

// Orders returns the order document repository.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{orders: s.orders}
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}

// Create inserts the document and then writes the generated id into it.
func (r *orderRepository) Create(ctx context.Context, order model.Order) (string, error) {
	doc := document.FromOrder(order)
	doc.ID = ""

	res, err := r.orders.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id %v", res.InsertedID)
	}

	id := oid.Hex()
	if _, err := r.orders.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"id": id}}); err != nil {
		return "", err
	}
	return id, nil
}

// MarkDelivered patches only the delivered field of a pending order.
func (r *orderRepository) MarkDelivered(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domainErrors.ErrNotFound
	}

	res, err := r.orders.UpdateOne(ctx,
		bson.M{"_id": oid, "delivered": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{"delivered": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	count, err := r.orders.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if count == 0 {
		return domainErrors.ErrNotFound
	}
	return domainErrors.ErrAlreadyDelivered
}

// List returns documents ordered by the date text, newest first.
func (r *orderRepository) List(ctx context.Context) ([]model.Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.orders.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []model.Record
	for cursor.Next(ctx) {
		result = append(result, decodeRecord(cursor.Current))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func decodeRecord(raw bson.Raw) model.Record {
	var key string
	if oid, ok := raw.Lookup("_id").ObjectIDOK(); ok {
		key = oid.Hex()
	}

	var doc document.Order
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return model.Record{Order: model.Order{ID: key}, Err: fmt.Errorf("%w: %v", domainErrors.ErrMalformedDocument, err)}
	}
	return doc.ToRecord(key)
}

