package httpx

import "net/http"

// Schema returns a structural description of the persisted Product and
// Order documents so client tooling can introspect what the API stores.
func (h *Handler) Schema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, schemaDocument())
}

// schemaDocument is kept by hand: the two documents change rarely and the
// payload doubles as API documentation for the frontend.
func schemaDocument() map[string]any {
	product := map[string]any{
		"title": "Product",
		"type":  "object",
		"properties": map[string]any{
			"_id":         map[string]any{"type": "string", "description": "Store-assigned identifier"},
			"name":        map[string]any{"type": "string", "description": "Product name"},
			"description": map[string]any{"type": "string", "description": "Product description"},
			"price":       map[string]any{"type": "number", "minimum": 0, "description": "Price in local currency"},
			"category":    map[string]any{"type": "string", "description": "Product category (e.g., Drinks, Snacks)"},
			"image":       map[string]any{"type": "string", "description": "Image URL"},
			"vendor":      map[string]any{"type": "string", "description": "UMKM vendor/brand name"},
			"rating":      map[string]any{"type": "number", "minimum": 0, "maximum": 5, "description": "Average rating"},
			"tags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Tags for filtering",
			},
			"in_stock": map[string]any{"type": "boolean", "description": "Whether product is in stock"},
		},
		"required": []string{"name", "price", "category"},
	}

	orderItem := map[string]any{
		"title": "OrderItem",
		"type":  "object",
		"properties": map[string]any{
			"product_id": map[string]any{"type": "string", "description": "Referenced product id"},
			"name":       map[string]any{"type": "string", "description": "Snapshot of product name"},
			"price":      map[string]any{"type": "number", "minimum": 0, "description": "Snapshot of product price"},
			"quantity":   map[string]any{"type": "integer", "minimum": 1, "description": "Quantity ordered"},
		},
		"required": []string{"product_id", "name", "price", "quantity"},
	}

	order := map[string]any{
		"title": "Order",
		"type":  "object",
		"properties": map[string]any{
			"customer_name":    map[string]any{"type": "string", "description": "Customer name"},
			"customer_phone":   map[string]any{"type": "string", "description": "Customer phone"},
			"customer_address": map[string]any{"type": "string", "description": "Delivery address"},
			"items": map[string]any{
				"type":        "array",
				"items":       orderItem,
				"minItems":    1,
				"description": "Line items",
			},
			"subtotal": map[string]any{"type": "number", "minimum": 0, "description": "Subtotal amount, two fraction digits"},
			"notes":    map[string]any{"type": "string", "description": "Additional notes"},
		},
		"required": []string{"items", "subtotal"},
	}

	return map[string]any{
		"product": product,
		"order":   order,
	}
}
