package store

import (
	"context"
	"fmt"

	"bistro-boss/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ListCart returns the cart items owned by email.
func (s *Store) ListCart(ctx context.Context, email string) ([]models.CartItem, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cursor, err := s.carts.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find cart items: %w", err)
	}

	items := make([]models.CartItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	return items, nil
}

func (s *Store) InsertCartItem(ctx context.Context, doc models.Document) (models.InsertResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.carts.InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("failed to insert cart item: %w", err)
	}
	return insertResult(res), nil
}

func (s *Store) DeleteCartItem(ctx context.Context, id models.ID) (models.DeleteResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.carts.DeleteOne(ctx, byID(id))
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to delete cart item: %w", err)
	}
	return deleteResult(res), nil
}

// DeleteCartItems removes exactly the listed cart items. Deleting an id that
// is already gone is not an error, so the call can be replayed.
func (s *Store) DeleteCartItems(ctx context.Context, ids []models.ID) (models.DeleteResult, error) {
	if len(ids) == 0 {
		return models.DeleteResult{Acknowledged: true}, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.carts.DeleteMany(ctx, byIDs(ids))
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to delete cart items: %w", err)
	}
	return deleteResult(res), nil
}
