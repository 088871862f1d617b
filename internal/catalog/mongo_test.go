package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/umkm-eats/commerce-api/internal/testutil"
)

func TestMongoStoreRoundTrip(t *testing.T) {
	db := testutil.MongoTestDB(t)
	s := NewMongoStore(db)
	ctx := context.Background()

	require.NoError(t, s.InsertMany(ctx, BaselineProducts()))

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)

	all, err := s.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.False(t, all[0].ID.IsZero())

	got, err := s.FindByID(ctx, all[0].ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, all[0].Name, got.Name)
	assert.Equal(t, all[0].Price, got.Price)

	drinks, err := s.FindByCategory(ctx, "Drinks")
	require.NoError(t, err)
	assert.Len(t, drinks, 2)

	hits, err := s.Search(ctx, "strawberry")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Strawberry Bubble Tea", hits[0].Name)

	cats, err := s.Categories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Drinks", "Snacks", "Dessert"}, cats)
}

func TestMongoStoreFindByIDNotFound(t *testing.T) {
	db := testutil.MongoTestDB(t)
	s := NewMongoStore(db)
	ctx := context.Background()

	_, err := s.FindByID(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMongoStoreQueryIsLiteral(t *testing.T) {
	db := testutil.MongoTestDB(t)
	s := NewMongoStore(db)
	ctx := context.Background()

	require.NoError(t, s.InsertMany(ctx, BaselineProducts()))

	// As a pattern ".*" would match every product; as a literal it
	// matches none of the baseline.
	hits, err := s.Search(ctx, ".*")
	require.NoError(t, err)
	assert.Empty(t, hits)
}
