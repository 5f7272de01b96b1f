package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository reads products out of a category collection. FindProduct
// returns ErrProductNotFound when the id is not present.
type Repository interface {
	FindProduct(ctx context.Context, coll Collection, id primitive.ObjectID) (Product, error)
	ListProducts(ctx context.Context, coll Collection) ([]Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every product in the given category. An empty label lists
// office stationery.
func (s *Service) List(ctx context.Context, category string) ([]Product, error) {
	if category == "" {
		category = string(OfficeStationaries)
	}
	coll, err := Resolve(category)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.ListProducts(ctx, coll)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, category, id string) (Product, error) {
	coll, err := Resolve(category)
	if err != nil {
		return Product{}, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Product{}, ErrProductNotFound
	}
	return s.repo.FindProduct(ctx, coll, oid)
}
