package api

import (
	"context"

	"go.uber.org/zap"

	"boldserve-backend/internal/cart"
	"boldserve-backend/internal/catalog"
	"boldserve-backend/internal/user"
)

type CartService interface {
	Items(ctx context.Context, userID string) ([]cart.ViewItem, error)
	AddItem(ctx context.Context, userID, productID string, quantity int, category string) error
	UpdateQuantity(ctx context.Context, userID, productID, category string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
	Summary(ctx context.Context, userID string) (cart.Summary, error)
}

type CatalogService interface {
	List(ctx context.Context, category string) ([]catalog.Product, error)
	Get(ctx context.Context, category, id string) (catalog.Product, error)
}

type UserService interface {
	Register(ctx context.Context, in user.RegisterInput) (user.User, error)
	Login(ctx context.Context, email, password string) (user.User, string, error)
	Profile(ctx context.Context, userID string) (user.User, error)
	CountCustomers(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]user.User, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

var (
	_ CartService    = (*cart.Service)(nil)
	_ CatalogService = (*catalog.Service)(nil)
	_ UserService    = (*user.Service)(nil)
)

type Handlers struct {
	carts   CartService
	catalog CatalogService
	users   UserService
	db      Pinger
	log     *zap.Logger
	dev     bool
}
