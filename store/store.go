// Package store is the MongoDB access layer. A Store is constructed once at
// startup and handed to every controller and middleware that needs data.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bistro-boss/models"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names inside the bistro database.
const (
	UsersCollection    = "users"
	MenuCollection     = "menu"
	ReviewsCollection  = "reviews"
	CartsCollection    = "carts"
	PaymentsCollection = "payments"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")
)

// Store holds the five collections for the process lifetime.
type Store struct {
	db       *mongo.Database
	users    *mongo.Collection
	menu     *mongo.Collection
	reviews  *mongo.Collection
	carts    *mongo.Collection
	payments *mongo.Collection
	timeout  time.Duration
	logger   zerolog.Logger
}

// New binds a Store to the given database.
func New(db *mongo.Database, timeout time.Duration, logger zerolog.Logger) *Store {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Store{
		db:       db,
		users:    db.Collection(UsersCollection),
		menu:     db.Collection(MenuCollection),
		reviews:  db.Collection(ReviewsCollection),
		carts:    db.Collection(CartsCollection),
		payments: db.Collection(PaymentsCollection),
		timeout:  timeout,
		logger:   logger.With().Str("component", "store").Logger(),
	}
}

// EnsureIndexes creates the indexes the write paths rely on: one user per
// email and one payment per processor transaction.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}

	_, err = s.payments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transactionId", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true).SetName("uniq_transaction"),
	})
	if err != nil {
		return fmt.Errorf("failed to create payments index: %w", err)
	}

	_, err = s.carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("cart_email"),
	})
	if err != nil {
		return fmt.Errorf("failed to create carts index: %w", err)
	}

	s.logger.Debug().Msg("indexes ensured")
	return nil
}

// Ping checks that the deployment answers.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.db.Client().Ping(ctx, nil)
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// byID matches a document whose _id is stored either as an ObjectID or a string.
func byID(id models.ID) bson.M {
	return bson.M{"_id": bson.M{"$in": id.Candidates()}}
}

// byIDs is byID for a set of identifiers.
func byIDs(ids []models.ID) bson.M {
	in := make([]interface{}, 0, len(ids)*2)
	for _, id := range ids {
		in = append(in, id.Candidates()...)
	}
	return bson.M{"_id": bson.M{"$in": in}}
}

func insertResult(res *mongo.InsertOneResult) models.InsertResult {
	return models.InsertResult{
		Acknowledged: true,
		InsertedID:   models.IDFromInserted(res.InsertedID),
	}
}

func deleteResult(res *mongo.DeleteResult) models.DeleteResult {
	return models.DeleteResult{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}
}

func updateResult(res *mongo.UpdateResult) models.UpdateResult {
	out := models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := models.IDFromInserted(res.UpsertedID)
		out.UpsertedID = &id
	}
	return out
}
