package order

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoRepository persists orders in the "order" collection. A single
// InsertOne carries the whole aggregate, so the document becomes visible
// fully formed or not at all; that is the only atomicity checkout needs.
type mongoRepository struct {
	col *mongo.Collection
}

var _ Repository = (*mongoRepository)(nil)

// NewMongoRepository returns a Repository writing to db's "order"
// collection.
func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection("order")}
}

func (r *mongoRepository) Create(ctx context.Context, o *Order) (string, error) {
	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return "", &StorageError{Err: fmt.Errorf("insert order: %w", err)}
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", &StorageError{Err: fmt.Errorf("unexpected inserted id type %T", res.InsertedID)}
	}
	return oid.Hex(), nil
}
