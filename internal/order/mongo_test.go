package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/umkm-eats/commerce-api/internal/testutil"
)

func TestMongoRepositoryCreate(t *testing.T) {
	db := testutil.MongoTestDB(t)
	repo := NewMongoRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &Order{
		CustomerName:  "Ayu",
		CustomerPhone: "+62 812 0000 1111",
		Items: []Item{
			{ProductID: "p-1", Name: "Strawberry Bubble Tea", Price: 18000, Quantity: 2},
			{ProductID: "p-2", Name: "Classic Milk Tea", Price: 16000, Quantity: 1},
		},
		Subtotal: 52000,
		Notes:    "less ice please",
	})
	require.NoError(t, err)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err, "the minted identifier is the document's ObjectID")

	// Read the document back raw and make sure the whole aggregate landed
	// in one piece.
	var stored Order
	err = db.Collection("order").FindOne(ctx, bson.M{"_id": oid}).Decode(&stored)
	require.NoError(t, err)

	assert.Equal(t, "Ayu", stored.CustomerName)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "Strawberry Bubble Tea", stored.Items[0].Name)
	assert.Equal(t, 18000.0, stored.Items[0].Price)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, 52000.0, stored.Subtotal)
	assert.Equal(t, "less ice please", stored.Notes)
}

func TestMongoRepositoryOmitsEmptyCustomerFields(t *testing.T) {
	db := testutil.MongoTestDB(t)
	repo := NewMongoRepository(db)
	ctx := context.Background()

	// Anonymous checkout: no customer data at all.
	id, err := repo.Create(ctx, &Order{
		Items:    []Item{{ProductID: "p-1", Name: "Es Teh", Price: 5000, Quantity: 1}},
		Subtotal: 5000,
	})
	require.NoError(t, err)

	oid, err := primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	var raw bson.M
	err = db.Collection("order").FindOne(ctx, bson.M{"_id": oid}).Decode(&raw)
	require.NoError(t, err)

	assert.NotContains(t, raw, "customer_name")
	assert.NotContains(t, raw, "notes")
	assert.Contains(t, raw, "items")
	assert.Contains(t, raw, "subtotal")
}
