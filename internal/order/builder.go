package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/umkm-eats/commerce-api/internal/catalog"
)

// Builder turns checkout requests into fully validated Orders. It only
// reads from the catalog; persisting the result is the Repository's job,
// so a Build that fails leaves no trace anywhere.
type Builder struct {
	store catalog.Store
}

// NewBuilder returns a Builder resolving references through store.
func NewBuilder(store catalog.Store) *Builder {
	return &Builder{store: store}
}

// Build walks the requested lines in input order: resolve the reference,
// check the quantity, snapshot the product's current name and price. The
// subtotal accumulates price times quantity in exact decimal arithmetic
// and is rounded half-to-even to two fraction digits, the same rounding
// the existing order documents were written with.
//
// The first failing line aborts the whole order, so the reported
// reference is deterministic. Nothing is ever partially built.
func (b *Builder) Build(ctx context.Context, req Request) (*Order, error) {
	if len(req.Lines) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]Item, 0, len(req.Lines))
	subtotal := decimal.Zero

	for _, line := range req.Lines {
		p, err := b.store.FindByID(ctx, line.ProductID)
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, &ProductNotFoundError{ID: line.ProductID}
		}
		if err != nil {
			return nil, &StorageError{Err: fmt.Errorf("resolve product %s: %w", line.ProductID, err)}
		}

		if line.Quantity < 1 {
			return nil, &InvalidQuantityError{ProductID: line.ProductID, Quantity: line.Quantity}
		}

		price := decimal.NewFromFloat(p.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))

		items = append(items, Item{
			ProductID: p.ID.Hex(),
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  line.Quantity,
		})
	}

	return &Order{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           items,
		Subtotal:        subtotal.RoundBank(2).InexactFloat64(),
		Notes:           req.Notes,
	}, nil
}
