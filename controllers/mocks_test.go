package controllers

import (
	"context"

	"bistro-boss/models"
	"bistro-boss/store"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of every store view the controllers use.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) InsertUserIfAbsent(ctx context.Context, user *models.User) (models.InsertResult, bool, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(models.InsertResult), args.Bool(1), args.Error(2)
}

func (m *MockStore) PromoteToAdmin(ctx context.Context, id models.ID) (models.UpdateResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.UpdateResult), args.Error(1)
}

func (m *MockStore) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockStore) InsertMenuItem(ctx context.Context, doc models.Document) (models.InsertResult, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

func (m *MockStore) DeleteMenuItem(ctx context.Context, id models.ID) (models.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *MockStore) ListReviews(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockStore) ListCart(ctx context.Context, email string) ([]models.CartItem, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockStore) InsertCartItem(ctx context.Context, doc models.Document) (models.InsertResult, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(models.InsertResult), args.Error(1)
}

func (m *MockStore) DeleteCartItem(ctx context.Context, id models.ID) (models.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *MockStore) InsertPayment(ctx context.Context, payment *models.Payment) (models.InsertResult, *models.Payment, error) {
	args := m.Called(ctx, payment)
	var existing *models.Payment
	if args.Get(1) != nil {
		existing = args.Get(1).(*models.Payment)
	}
	return args.Get(0).(models.InsertResult), existing, args.Error(2)
}

func (m *MockStore) DeleteCartItems(ctx context.Context, ids []models.ID) (models.DeleteResult, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *MockStore) CompletePayment(ctx context.Context, id models.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) ListPayments(ctx context.Context, email string) ([]models.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockStore) Counts(ctx context.Context) (store.Counts, error) {
	args := m.Called(ctx)
	return args.Get(0).(store.Counts), args.Error(1)
}

func (m *MockStore) Revenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStore) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryStat), args.Error(1)
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateIntent(ctx context.Context, amount int64) (string, error) {
	args := m.Called(ctx, amount)
	return args.String(0), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	args := m.Called(ctx, toEmail, subject, htmlContent)
	return args.Error(0)
}
