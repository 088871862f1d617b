// Package order implements the checkout workflow: validating a requested
// line-item list against the catalog, snapshotting product data into an
// immutable order, and persisting it with one atomic write.
//
// An order has exactly two states. While the Builder works on it, it is a
// plain in-memory value; once the Repository accepts it, it is a persisted,
// identified, append-only fact. There is no update or cancel path.
package order

import (
	"errors"
	"fmt"

	"github.com/umkm-eats/commerce-api/internal/catalog"
)

// Order is the aggregate persisted at checkout. Customer fields are all
// optional free text: anonymous checkout is allowed. Items is never empty
// and owns its snapshots outright, so later catalog changes cannot reach
// a recorded order.
type Order struct {
	CustomerName    string  `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	CustomerPhone   string  `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	CustomerAddress string  `bson:"customer_address,omitempty" json:"customer_address,omitempty"`
	Items           []Item  `bson:"items" json:"items"`
	Subtotal        float64 `bson:"subtotal" json:"subtotal"`
	Notes           string  `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Item is one purchased line: a reference to the product plus frozen
// copies of its name and price taken at order time. The copies are the
// consistency guarantee; a recorded price never changes, whatever happens
// to the catalog afterwards.
type Item struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Request is the checkout input. Customer fields and notes are optional;
// Lines must be non-empty.
type Request struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Lines           []Line
	Notes           string
}

// Line pairs a product reference with the requested quantity.
type Line struct {
	ProductID string
	Quantity  int
}

// ErrEmptyOrder rejects checkout requests that carry no line items.
var ErrEmptyOrder = errors.New("order: no items provided")

// ProductNotFoundError reports the first requested reference that did not
// resolve against the catalog. The whole order is rejected; nothing is
// persisted.
type ProductNotFoundError struct {
	ID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("order: product not found: %s", e.ID)
}

// Unwrap ties the error back to the catalog sentinel so errors.Is works
// across the two packages.
func (e *ProductNotFoundError) Unwrap() error { return catalog.ErrNotFound }

// InvalidQuantityError rejects quantities below one.
type InvalidQuantityError struct {
	ProductID string
	Quantity  int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("order: invalid quantity %d for product %s", e.Quantity, e.ProductID)
}

// StorageError wraps a failure of the backing store, on the validation
// reads as well as on the final write.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "order: storage failure: " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
