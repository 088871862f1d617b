package catalog

import "context"

// Store is the read side of the catalog plus the two operations seeding
// needs. Implementations must be safe for concurrent use; none of the
// read methods have side effects.
type Store interface {
	// FindByID resolves a single product from its identifier string.
	// Both unknown and malformed identifiers return ErrNotFound.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByCategory returns the products whose category matches exactly.
	FindByCategory(ctx context.Context, category string) ([]Product, error)

	// Search returns the products whose name, description or any tag
	// contains the query, case-insensitively. The query is matched as a
	// literal substring, never as a pattern.
	Search(ctx context.Context, query string) ([]Product, error)

	// List combines both filters; empty arguments mean no filter. This is
	// what the listing endpoint calls.
	List(ctx context.Context, category, query string) ([]Product, error)

	// Categories returns the distinct category names in no particular
	// order.
	Categories(ctx context.Context) ([]string, error)

	// Count reports how many products the catalog holds.
	Count(ctx context.Context) (int64, error)

	// InsertMany stores the given products, assigning identifiers to any
	// that lack one. Only seeding writes to the catalog.
	InsertMany(ctx context.Context, products []Product) error
}
