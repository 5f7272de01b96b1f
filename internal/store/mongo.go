package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	cartsCollection = "carts"
	usersCollection = "users"
)

// DB bundles the client with the application database.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and waits for the primary to answer a ping.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*DB, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		SetTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &DB{client: client, db: client.Database(database)}, nil
}

func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// EnsureIndexes creates the lookup indexes the repositories rely on. Carts
// are looked up by owner; user emails are unique.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	_, err := d.db.Collection(cartsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("carts index: %w", err)
	}
	_, err = d.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users index: %w", err)
	}
	return nil
}

func (d *DB) Carts() *CartRepository {
	return &CartRepository{coll: d.db.Collection(cartsCollection)}
}

func (d *DB) Products() *ProductRepository {
	return &ProductRepository{db: d.db}
}

func (d *DB) Users() *UserRepository {
	return &UserRepository{coll: d.db.Collection(usersCollection)}
}
