package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoStore implements Store on the "product" collection.
type mongoStore struct {
	col *mongo.Collection
}

var _ Store = (*mongoStore)(nil)

// NewMongoStore returns a Store backed by db's "product" collection.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{col: db.Collection("product")}
}

func (s *mongoStore) FindByID(ctx context.Context, id string) (*Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed reference behaves exactly like a missing one.
		return nil, ErrNotFound
	}

	var p Product
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: find product %s: %w", id, err)
	}
	return &p, nil
}

func (s *mongoStore) FindByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.List(ctx, category, "")
}

func (s *mongoStore) Search(ctx context.Context, query string) ([]Product, error) {
	return s.List(ctx, "", query)
}

func (s *mongoStore) List(ctx context.Context, category, query string) ([]Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if query != "" {
		// Quote the query so metacharacters match literally; the search
		// contract is substring match, not user-supplied patterns.
		re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"tags": re},
		}
	}

	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("catalog: list products: %w", err)
	}

	products := make([]Product, 0)
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("catalog: decode products: %w", err)
	}
	return products, nil
}

func (s *mongoStore) Categories(ctx context.Context) ([]string, error) {
	raw, err := s.col.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("catalog: distinct categories: %w", err)
	}

	cats := make([]string, 0, len(raw))
	for _, v := range raw {
		if c, ok := v.(string); ok {
			cats = append(cats, c)
		}
	}
	return cats, nil
}

func (s *mongoStore) Count(ctx context.Context) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("catalog: count products: %w", err)
	}
	return n, nil
}

func (s *mongoStore) InsertMany(ctx context.Context, products []Product) error {
	docs := make([]interface{}, len(products))
	for i := range products {
		docs[i] = products[i]
	}

	if _, err := s.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("catalog: insert products: %w", err)
	}
	return nil
}
