package order

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// memoryRepository stores orders in process memory for local development
// without a database. Identifiers are random UUIDs; clients treat them as
// opaque either way.
type memoryRepository struct {
	mu     sync.Mutex
	orders map[string]*Order
}

var _ Repository = (*memoryRepository)(nil)

// NewMemoryRepository returns an empty in-memory Repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{orders: make(map[string]*Order)}
}

func (r *memoryRepository) Create(ctx context.Context, o *Order) (string, error) {
	// A cancelled request must never produce a persisted order, same as
	// a driver-backed write would refuse it.
	if err := ctx.Err(); err != nil {
		return "", &StorageError{Err: err}
	}

	// Keep a private copy so callers holding the original cannot reach
	// into the stored aggregate afterwards.
	stored := *o
	stored.Items = append([]Item(nil), o.Items...)

	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.orders[id] = &stored
	return id, nil
}
