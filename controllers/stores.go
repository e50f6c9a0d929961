package controllers

import (
	"context"

	"bistro-boss/models"
	"bistro-boss/store"
)

// The controllers depend on these narrow views of store.Store so that tests
// can swap in doubles.

type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUserIfAbsent(ctx context.Context, user *models.User) (models.InsertResult, bool, error)
	PromoteToAdmin(ctx context.Context, id models.ID) (models.UpdateResult, error)
}

type MenuStore interface {
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	InsertMenuItem(ctx context.Context, doc models.Document) (models.InsertResult, error)
	DeleteMenuItem(ctx context.Context, id models.ID) (models.DeleteResult, error)
	ListReviews(ctx context.Context) ([]models.Review, error)
}

type CartStore interface {
	ListCart(ctx context.Context, email string) ([]models.CartItem, error)
	InsertCartItem(ctx context.Context, doc models.Document) (models.InsertResult, error)
	DeleteCartItem(ctx context.Context, id models.ID) (models.DeleteResult, error)
}

type PaymentStore interface {
	InsertPayment(ctx context.Context, payment *models.Payment) (models.InsertResult, *models.Payment, error)
	DeleteCartItems(ctx context.Context, ids []models.ID) (models.DeleteResult, error)
	CompletePayment(ctx context.Context, id models.ID) error
	ListPayments(ctx context.Context, email string) ([]models.Payment, error)
}

type StatsStore interface {
	Counts(ctx context.Context) (store.Counts, error)
	Revenue(ctx context.Context) (float64, error)
	OrderStats(ctx context.Context) ([]models.CategoryStat, error)
}

// PaymentGateway creates processor-side charge intents.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

// TokenSigner issues identity tokens.
type TokenSigner interface {
	GenerateJWT(email, name string) (string, error)
}

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
