package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boldserve-backend/internal/cart"
	"boldserve-backend/internal/catalog"
	"boldserve-backend/internal/user"
)

type mockCarts struct{ mock.Mock }

func (m *mockCarts) Items(ctx context.Context, userID string) ([]cart.ViewItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]cart.ViewItem)
	return items, args.Error(1)
}

func (m *mockCarts) AddItem(ctx context.Context, userID, productID string, quantity int, category string) error {
	return m.Called(ctx, userID, productID, quantity, category).Error(0)
}

func (m *mockCarts) UpdateQuantity(ctx context.Context, userID, productID, category string, quantity int) error {
	return m.Called(ctx, userID, productID, category, quantity).Error(0)
}

func (m *mockCarts) RemoveItem(ctx context.Context, userID, productID string) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func (m *mockCarts) Summary(ctx context.Context, userID string) (cart.Summary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(cart.Summary), args.Error(1)
}

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) List(ctx context.Context, category string) ([]catalog.Product, error) {
	args := m.Called(ctx, category)
	products, _ := args.Get(0).([]catalog.Product)
	return products, args.Error(1)
}

func (m *mockCatalog) Get(ctx context.Context, category, id string) (catalog.Product, error) {
	args := m.Called(ctx, category, id)
	return args.Get(0).(catalog.Product), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Register(ctx context.Context, in user.RegisterInput) (user.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUsers) Login(ctx context.Context, email, password string) (user.User, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.String(1), args.Error(2)
}

func (m *mockUsers) Profile(ctx context.Context, userID string) (user.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *mockUsers) CountCustomers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUsers) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

type mockDB struct{ mock.Mock }

func (m *mockDB) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
