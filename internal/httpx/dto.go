package httpx

import "github.com/umkm-eats/commerce-api/internal/catalog"

// CreateOrderRequest mirrors the checkout payload. Customer fields and
// notes are optional free text. product_id is deliberately unvalidated
// here: an empty or garbled reference is a resolution failure (404), not
// a malformed request.
type CreateOrderRequest struct {
	CustomerName    string                 `json:"customer_name"`
	CustomerPhone   string                 `json:"customer_phone"`
	CustomerAddress string                 `json:"customer_address"`
	Items           []CreateOrderItemDTO   `json:"items" validate:"required,min=1,dive"`
	Notes           string                 `json:"notes"`
}

type CreateOrderItemDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// CreateOrderResponse confirms a persisted order.
type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// ProductListResponse wraps product listings.
type ProductListResponse struct {
	Items []catalog.Product `json:"items"`
}

// CategoryListResponse wraps the distinct category names.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// MessageResponse is the shape of the root and hello endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// DiagnosticsResponse reports backend and storage health for quick smoke
// checks during development. Key names match what the frontend already
// reads.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
