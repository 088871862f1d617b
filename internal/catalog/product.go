// Package catalog holds the product side of the marketplace: the Product
// record, read access to the backing store, and the baseline seeding that
// keeps the catalog non-empty on first use.
//
// Products are read-only from the checkout workflow's point of view. An
// order copies what it needs out of a Product and never writes back.
package catalog

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by Store lookups when no product matches the
// given identifier. Malformed identifiers report the same way; callers
// cannot tell the two apart and should not need to.
var ErrNotFound = errors.New("catalog: product not found")

// Product is one catalog entry. BSON field names match the documents the
// production dataset was written with.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Vendor      string             `bson:"vendor,omitempty" json:"vendor,omitempty"`
	Rating      float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Tags        []string           `bson:"tags" json:"tags"`
	InStock     bool               `bson:"in_stock" json:"in_stock"`
}
