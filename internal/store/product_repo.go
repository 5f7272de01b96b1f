package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"boldserve-backend/internal/cart"
	"boldserve-backend/internal/catalog"
)

var (
	_ catalog.Repository = (*ProductRepository)(nil)
	_ cart.ProductFinder = (*ProductRepository)(nil)
)

// ProductRepository reads from whichever category collection it is asked
// for.
type ProductRepository struct {
	db *mongo.Database
}

func (r *ProductRepository) FindProduct(ctx context.Context, coll catalog.Collection, id primitive.ObjectID) (catalog.Product, error) {
	var p catalog.Product
	err := r.db.Collection(string(coll)).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return catalog.Product{}, catalog.ErrProductNotFound
	}
	return p, err
}

// ListProducts returns the newest products first.
func (r *ProductRepository) ListProducts(ctx context.Context, coll catalog.Collection) ([]catalog.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.db.Collection(string(coll)).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var products []catalog.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
