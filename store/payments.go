package store

import (
	"context"
	"fmt"

	"bistro-boss/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertPayment stores a payment. When a payment with the same transactionId
// already exists nothing is written and the stored payment is returned as
// existing, so a replayed checkout can resume its cleanup.
func (s *Store) InsertPayment(ctx context.Context, payment *models.Payment) (result models.InsertResult, existing *models.Payment, err error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.payments.InsertOne(ctx, payment)
	if err == nil {
		return insertResult(res), nil, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return models.InsertResult{}, nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	var stored models.Payment
	err = s.payments.FindOne(ctx, bson.M{"transactionId": payment.TransactionID}).Decode(&stored)
	if err != nil {
		return models.InsertResult{}, nil, fmt.Errorf("failed to load existing payment: %w", err)
	}

	s.logger.Info().
		Str("transaction_id", payment.TransactionID).
		Str("payment_id", stored.ID.String()).
		Msg("payment already recorded")

	return models.InsertResult{Acknowledged: true, InsertedID: stored.ID}, &stored, nil
}

// CompletePayment marks the payment completed once its cart is cleared.
func (s *Store) CompletePayment(ctx context.Context, id models.ID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.payments.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"status": models.PaymentCompleted}})
	if err != nil {
		return fmt.Errorf("failed to complete payment: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPayments returns the payments of one customer, newest first.
func (s *Store) ListPayments(ctx context.Context, email string) ([]models.Payment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cursor, err := s.payments.Find(ctx, bson.M{"email": email}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find payments: %w", err)
	}

	payments := make([]models.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}
