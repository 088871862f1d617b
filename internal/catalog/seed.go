package catalog

import (
	"context"
	"fmt"
)

// Seeder guarantees a non-empty catalog before listings run.
type Seeder struct {
	store Store
}

// NewSeeder returns a Seeder writing through the given store.
func NewSeeder(store Store) *Seeder {
	return &Seeder{store: store}
}

// EnsureSeeded inserts the baseline catalog when the store holds zero
// products, and is a no-op otherwise. The existence check is cheap, so it
// is safe to call on every listing request.
//
// Two concurrent calls that both observe an empty store can both insert.
// Checkout never depends on the catalog being duplicate-free, so that
// window is tolerated rather than locked away.
func (s *Seeder) EnsureSeeded(ctx context.Context) error {
	n, err := s.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("catalog: count before seeding: %w", err)
	}
	if n > 0 {
		return nil
	}

	if err := s.store.InsertMany(ctx, BaselineProducts()); err != nil {
		return fmt.Errorf("catalog: insert baseline: %w", err)
	}
	return nil
}

// BaselineProducts is the fixed sample catalog, priced in rupiah and
// spanning three categories. A fresh slice is returned on every call so
// stores can take ownership of what they insert.
func BaselineProducts() []Product {
	return []Product{
		{
			Name:        "Strawberry Bubble Tea",
			Description: "Refreshing strawberry milk tea with chewy tapioca pearls.",
			Price:       18000,
			Category:    "Drinks",
			Image:       "https://images.unsplash.com/photo-1613478223719-2ab802602423?q=80&w=1200&auto=format&fit=crop",
			Vendor:      "Boba Bliss UMKM",
			Rating:      4.7,
			Tags:        []string{"boba", "strawberry", "sweet"},
			InStock:     true,
		},
		{
			Name:        "Classic Milk Tea",
			Description: "Smooth black tea with creamy milk and brown sugar pearls.",
			Price:       16000,
			Category:    "Drinks",
			Image:       "https://images.unsplash.com/photo-1592861956120-e524fc739696?q=80&w=1200&auto=format&fit=crop",
			Vendor:      "Kopi & Teh Lokal",
			Rating:      4.6,
			Tags:        []string{"boba", "milk tea"},
			InStock:     true,
		},
		{
			Name:        "Spicy Chicken Skewers",
			Description: "Grilled chicken satay with homemade spicy sauce.",
			Price:       22000,
			Category:    "Snacks",
			Image:       "https://images.unsplash.com/photo-1666001085700-0610a7f0b11d?q=80&w=1200&auto=format&fit=crop",
			Vendor:      "Satay UMKM",
			Rating:      4.4,
			Tags:        []string{"spicy", "protein"},
			InStock:     true,
		},
		{
			Name:        "Chocolate Banana Crepes",
			Description: "Soft crepes filled with banana and chocolate drizzle.",
			Price:       15000,
			Category:    "Dessert",
			Image:       "https://images.unsplash.com/photo-1541599188778-cdc73298e8f8?q=80&w=1200&auto=format&fit=crop",
			Vendor:      "Manis Lokal",
			Rating:      4.8,
			Tags:        []string{"dessert", "sweet"},
			InStock:     true,
		},
	}
}
