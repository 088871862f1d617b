package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *Order {
	return &Order{
		CustomerName: "Ayu",
		Items: []Item{
			{ProductID: "p-1", Name: "Strawberry Bubble Tea", Price: 18000, Quantity: 2},
		},
		Subtotal: 36000,
	}
}

func TestMemoryRepositoryCreate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, sampleOrder())
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := repo.Create(ctx, sampleOrder())
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "every order gets its own identifier")
}

func TestMemoryRepositoryCopiesTheAggregate(t *testing.T) {
	repo := NewMemoryRepository()
	o := sampleOrder()

	id, err := repo.Create(context.Background(), o)
	require.NoError(t, err)

	// Mutating the caller's value after the write must not reach the
	// stored order.
	o.Items[0].Price = 1
	o.Subtotal = 1

	stored := repo.(*memoryRepository).orders[id]
	require.NotNil(t, stored)
	assert.Equal(t, 18000.0, stored.Items[0].Price)
	assert.Equal(t, 36000.0, stored.Subtotal)
}

func TestMemoryRepositoryRefusesCancelledContext(t *testing.T) {
	repo := NewMemoryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, sampleOrder())

	var storage *StorageError
	require.ErrorAs(t, err, &storage)
	assert.Empty(t, repo.(*memoryRepository).orders)
}
