package store

import (
	"context"
	"fmt"

	"bistro-boss/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Counts are estimated document counts of users, menu items and payments.
type Counts struct {
	Users    int64
	Menu     int64
	Payments int64
}

func (s *Store) Counts(ctx context.Context) (Counts, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var c Counts
	var err error
	if c.Users, err = s.users.EstimatedDocumentCount(ctx); err != nil {
		return Counts{}, fmt.Errorf("failed to count users: %w", err)
	}
	if c.Menu, err = s.menu.EstimatedDocumentCount(ctx); err != nil {
		return Counts{}, fmt.Errorf("failed to count menu items: %w", err)
	}
	if c.Payments, err = s.payments.EstimatedDocumentCount(ctx); err != nil {
		return Counts{}, fmt.Errorf("failed to count payments: %w", err)
	}
	return c, nil
}

// Revenue sums the price of every payment on the server. An empty payments
// collection yields zero.
func (s *Store) Revenue(ctx context.Context) (float64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
		}},
	}

	cursor, err := s.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// OrderStats joins each payment to the menu items it bought and groups them
// by category. Menu ids are compared as strings so that seeded string ids and
// generated ObjectIDs both join.
func (s *Store) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$lookup": bson.M{
			"from": s.menu.Name(),
			"let": bson.M{"ids": bson.M{"$map": bson.M{
				"input": bson.M{"$ifNull": bson.A{"$menuItems", bson.A{}}},
				"as":    "id",
				"in":    bson.M{"$toString": "$$id"},
			}}},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{
					"$in": bson.A{bson.M{"$toString": "$_id"}, "$$ids"},
				}}},
			},
			"as": "menuItemsData",
		}},
		bson.M{"$unwind": "$menuItemsData"},
		bson.M{"$group": bson.M{
			"_id":   "$menuItemsData.category",
			"count": bson.M{"$sum": 1},
			"total": bson.M{"$sum": "$menuItemsData.price"},
		}},
		bson.M{"$project": bson.M{
			"_id":      0,
			"category": "$_id",
			"count":    1,
			"total":    bson.M{"$round": bson.A{"$total", 2}},
		}},
		bson.M{"$sort": bson.M{"category": 1}},
	}

	cursor, err := s.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate order stats: %w", err)
	}

	stats := make([]models.CategoryStat, 0)
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode order stats: %w", err)
	}
	return stats, nil
}
