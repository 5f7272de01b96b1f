package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"boldserve-backend/internal/cart"
)

var _ cart.Repository = (*CartRepository)(nil)

type CartRepository struct {
	coll *mongo.Collection
}

func (r *CartRepository) FindByUser(ctx context.Context, userID string) (*cart.Cart, error) {
	var c cart.Cart
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, cart.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the whole document. Concurrent writers to the same cart race
// and the last one wins.
func (r *CartRepository) Save(ctx context.Context, c *cart.Cart) error {
	now := time.Now().UTC()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.Items == nil {
		c.Items = []cart.LineItem{}
	}

	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c, options.Replace().SetUpsert(true))
	return err
}
