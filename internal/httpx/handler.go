// Package httpx is the HTTP face of the marketplace: catalog listings,
// checkout, and the small diagnostics endpoints the frontend pings during
// development.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/umkm-eats/commerce-api/internal/catalog"
	"github.com/umkm-eats/commerce-api/internal/order"
	"github.com/umkm-eats/commerce-api/internal/pkg/cache"
)

// categoryCacheTTL bounds how stale the cached category list may get.
const categoryCacheTTL = 60 * time.Second

// Handler serves the storefront API. All dependencies arrive through the
// constructor; there is no package-level state.
type Handler struct {
	store    catalog.Store
	seeder   *catalog.Seeder
	builder  *order.Builder
	orders   order.Repository
	validate *validator.Validate

	// cache may be nil: category caching is skipped.
	cache cache.Cache
	// db may be nil: the in-memory catalog is active and /test reports
	// accordingly.
	db *mongo.Database
}

// NewHandler wires the API surface. c and db are optional; pass nil to
// run without a cache or without a live database.
func NewHandler(
	store catalog.Store,
	seeder *catalog.Seeder,
	builder *order.Builder,
	orders order.Repository,
	c cache.Cache,
	db *mongo.Database,
) *Handler {
	return &Handler{
		store:    store,
		seeder:   seeder,
		builder:  builder,
		orders:   orders,
		validate: validator.New(),
		cache:    c,
		db:       db,
	}
}

// Root confirms the API is up.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "UMKM Food Commerce API is running"})
}

// Hello is the connectivity check the frontend calls first.
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Hello from the backend API!"})
}

// ListProducts returns the catalog, optionally filtered by exact category
// and/or a case-insensitive search query.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// A seeding failure must not take the listing down; the catalog is
	// served as it is.
	if err := h.seeder.EnsureSeeded(ctx); err != nil {
		slog.ErrorContext(ctx, "catalog seeding failed", "error", err)
	}

	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	items, err := h.store.List(ctx, category, query)
	if err != nil {
		slog.ErrorContext(ctx, "product listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage_error", "failed to list products")
		return
	}

	writeJSON(w, http.StatusOK, ProductListResponse{Items: items})
}

// ListCategories returns the distinct category names, served from the
// cache when one is configured.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.seeder.EnsureSeeded(ctx); err != nil {
		slog.ErrorContext(ctx, "catalog seeding failed", "error", err)
	}

	if cats, ok := h.cachedCategories(ctx); ok {
		writeJSON(w, http.StatusOK, CategoryListResponse{Categories: cats})
		return
	}

	cats, err := h.store.Categories(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "category listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "storage_error", "failed to list categories")
		return
	}

	h.storeCategories(ctx, cats)
	writeJSON(w, http.StatusOK, CategoryListResponse{Categories: cats})
}

// CreateOrder runs checkout: validate the payload, build the snapshot
// order against the current catalog, persist it, return the minted id.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "No items provided")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", validationMessage(err))
		return
	}

	built, err := h.builder.Build(ctx, order.Request{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Lines:           toLines(req.Items),
		Notes:           req.Notes,
	})
	if err != nil {
		writeCheckoutError(w, err)
		return
	}

	id, err := h.orders.Create(ctx, built)
	if err != nil {
		slog.ErrorContext(ctx, "order persistence failed", "error", err)
		writeCheckoutError(w, err)
		return
	}

	slog.InfoContext(ctx, "order created",
		"order_id", id, "items", len(built.Items), "subtotal", built.Subtotal)
	writeJSON(w, http.StatusCreated, CreateOrderResponse{Message: "Order created", OrderID: id})
}

// Diagnostics reports configuration and storage reachability. It never
// fails the request; every degraded state is a value in the body.
func (h *Handler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := DiagnosticsResponse{
		Backend:          "running",
		Database:         "in-memory catalog active",
		DatabaseURL:      envStatus("DATABASE_URL"),
		DatabaseName:     envStatus("DATABASE_NAME"),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if h.db != nil {
		resp.ConnectionStatus = "connected"
		names, err := h.db.ListCollectionNames(ctx, bson.M{})
		switch {
		case err != nil:
			resp.Database = "connected but failing: " + err.Error()
		default:
			if len(names) > 10 {
				names = names[:10]
			}
			resp.Database = "connected"
			resp.Collections = names
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// cachedCategories tries the cache; any miss, error or garbled entry
// falls back to the store.
func (h *Handler) cachedCategories(ctx context.Context) ([]string, bool) {
	if h.cache == nil {
		return nil, false
	}

	key := h.cache.GenerateKey("categories", "all")
	raw, err := h.cache.Get(ctx, key)
	if err != nil {
		slog.DebugContext(ctx, "category cache read failed", "error", err)
		return nil, false
	}
	if raw == "" {
		return nil, false
	}

	var cats []string
	if err := json.Unmarshal([]byte(raw), &cats); err != nil {
		return nil, false
	}
	return cats, true
}

// storeCategories writes through to the cache, best effort.
func (h *Handler) storeCategories(ctx context.Context, cats []string) {
	if h.cache == nil {
		return
	}

	raw, err := json.Marshal(cats)
	if err != nil {
		return
	}
	key := h.cache.GenerateKey("categories", "all")
	if err := h.cache.Set(ctx, key, raw, categoryCacheTTL); err != nil {
		slog.DebugContext(ctx, "category cache write failed", "error", err)
	}
}

// writeCheckoutError maps the checkout error taxonomy onto HTTP statuses:
// invalid input 400, unresolvable reference 404, storage failure 500.
func writeCheckoutError(w http.ResponseWriter, err error) {
	var notFound *order.ProductNotFoundError
	var badQty *order.InvalidQuantityError
	var storage *order.StorageError

	switch {
	case errors.Is(err, order.ErrEmptyOrder):
		writeError(w, http.StatusBadRequest, "invalid_request", "No items provided")
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, "product_not_found", "Product not found: "+notFound.ID)
	case errors.As(err, &badQty):
		writeError(w, http.StatusBadRequest, "invalid_request", badQty.Error())
	case errors.As(err, &storage):
		writeError(w, http.StatusInternalServerError, "storage_error", "Failed to create order: "+storage.Err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

// validationMessage flattens the first validator failure into a line the
// client can show as-is.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "min" && fe.Field() == "Quantity" {
			return "quantity must be at least 1"
		}
		return fmt.Sprintf("invalid field %s", fe.Field())
	}
	return err.Error()
}

func toLines(items []CreateOrderItemDTO) []order.Line {
	lines := make([]order.Line, len(items))
	for i, it := range items {
		lines[i] = order.Line{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return lines
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
