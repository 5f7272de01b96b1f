package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"boldserve-backend/internal/user"
)

var _ user.Repository = (*UserRepository)(nil)

type UserRepository struct {
	coll *mongo.Collection
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (user.User, error) {
	var u user.User
	err := r.coll.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (user.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) Insert(ctx context.Context, u *user.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return user.ErrEmailTaken
	}
	return err
}

// CountNonAdmin treats a missing isAdmin field as a regular account.
func (r *UserRepository) CountNonAdmin(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"isAdmin": bson.M{"$ne": true}})
}

// FindAll lists accounts newest first without their password hashes.
func (r *UserRepository) FindAll(ctx context.Context) ([]user.User, error) {
	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var users []user.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
