package store

import (
	"context"
	"errors"
	"fmt"

	"bistro-boss/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListUsers returns every user. No pagination.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	cursor, err := s.users.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"password": 0}))
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// FindUserByEmail returns ErrNotFound when no user has the email.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// InsertUserIfAbsent atomically inserts the user unless one with the same
// email exists. created is false when the email was already registered; the
// stored document is left untouched in that case.
func (s *Store) InsertUserIfAbsent(ctx context.Context, user *models.User) (models.InsertResult, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	doc := *user
	doc.ID = ""

	res, err := s.users.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$setOnInsert": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		// Two concurrent first sign-ins: the unique index lets one win.
		if mongo.IsDuplicateKeyError(err) {
			return models.InsertResult{}, false, nil
		}
		return models.InsertResult{}, false, fmt.Errorf("failed to upsert user: %w", err)
	}

	if res.UpsertedCount == 0 {
		return models.InsertResult{}, false, nil
	}

	return models.InsertResult{
		Acknowledged: true,
		InsertedID:   models.IDFromInserted(res.UpsertedID),
	}, true, nil
}

// PromoteToAdmin sets role=admin on the user with the given id.
func (s *Store) PromoteToAdmin(ctx context.Context, id models.ID) (models.UpdateResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.users.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"role": models.RoleAdmin}})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to promote user: %w", err)
	}
	return updateResult(res), nil
}
