package order

import "context"

// Repository is the write side of checkout.
//
// Create persists the order as one atomic document insert, embedded items
// included, and returns the store-assigned identifier. Orders are
// append-only facts: there are no partial writes, no updates and no
// deletes behind this interface.
type Repository interface {
	Create(ctx context.Context, o *Order) (string, error)
}
