package httpx

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/umkm-eats/commerce-api/internal/httpx/middlewares"
)

// NewRouter mounts the API surface behind the shared middleware stack.
func NewRouter(h *Handler, allowedOrigins []string, timeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.CORS(allowedOrigins))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/", h.Root)
	r.Get("/api/hello", h.Hello)
	r.Get("/test", h.Diagnostics)
	r.Get("/schema", h.Schema)

	r.Get("/api/products", h.ListProducts)
	r.Get("/api/categories", h.ListCategories)
	r.Post("/api/orders", h.CreateOrder)

	return r
}
