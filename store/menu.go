package store

import (
	"context"
	"fmt"

	"bistro-boss/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *Store) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cursor, err := s.menu.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find menu items: %w", err)
	}

	items := make([]models.MenuItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	return items, nil
}

// InsertMenuItem stores the posted document as-is.
func (s *Store) InsertMenuItem(ctx context.Context, doc models.Document) (models.InsertResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.menu.InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("failed to insert menu item: %w", err)
	}
	return insertResult(res), nil
}

func (s *Store) DeleteMenuItem(ctx context.Context, id models.ID) (models.DeleteResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.menu.DeleteOne(ctx, byID(id))
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to delete menu item: %w", err)
	}
	return deleteResult(res), nil
}

func (s *Store) ListReviews(ctx context.Context) ([]models.Review, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cursor, err := s.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	reviews := make([]models.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}
