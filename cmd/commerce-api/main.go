package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/umkm-eats/commerce-api/internal/catalog"
	"github.com/umkm-eats/commerce-api/internal/config"
	"github.com/umkm-eats/commerce-api/internal/httpx"
	"github.com/umkm-eats/commerce-api/internal/order"
	"github.com/umkm-eats/commerce-api/internal/pkg/cache"
	"github.com/umkm-eats/commerce-api/internal/pkg/telemetry"
)

func main() {
	telemetry.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	shutdown, err := telemetry.SetupTracer(ctx, cfg.ServiceName)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	var (
		store  catalog.Store
		orders order.Repository
		db     *mongo.Database
	)
	if cfg.DatabaseURL != "" {
		client, err := connectMongo(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to mongodb", "error", err)
			os.Exit(1)
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				slog.Error("mongodb disconnect error", "error", err)
			}
		}()

		db = client.Database(cfg.DatabaseName)
		store = catalog.NewMongoStore(db)
		orders = order.NewMongoRepository(db)
		slog.Info("mongodb storage active", "database", cfg.DatabaseName)
	} else {
		store = catalog.NewMemoryStore()
		orders = order.NewMemoryRepository()
		slog.Warn("DATABASE_URL not set, serving from in-memory storage")
	}

	var c cache.Cache
	if cfg.RedisAddr != "" {
		c = cache.NewRedisCache(cfg.RedisAddr, cfg.ServiceName)
		slog.Info("redis category cache active", "addr", cfg.RedisAddr)
	}

	handler := httpx.NewHandler(store, catalog.NewSeeder(store), order.NewBuilder(store), orders, c, db)
	router := httpx.NewRouter(handler, cfg.AllowedOrigins, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(router, cfg.ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("commerce API running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
}

// connectMongo dials and pings, so a bad DATABASE_URL fails at boot rather
// than on the first request.
func connectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
