// Package testutil holds helpers shared by integration tests.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoTestDB connects to the MongoDB server named by MONGO_TEST_URI and
// returns a freshly named database for this test, dropped on cleanup.
// Tests calling it are skipped when the variable is unset, so the unit
// suite stays runnable without any infrastructure.
func MongoTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect to %s: %v", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Fatalf("ping %s: %v", uri, err)
	}

	// Unique name per test so packages running in parallel cannot step on
	// each other's data.
	db := client.Database("commerce_test_" + uuid.NewString())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Drop(ctx); err != nil {
			t.Logf("drop test database: %v", err)
		}
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("disconnect: %v", err)
		}
	})

	return db
}
