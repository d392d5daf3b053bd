package lineitem

import (
	"github.com/shopspring/decimal"

	"github.com/vinocafe/order-svc/internal/service/models/category"
)

// LineItem is one product line of a materialized order view, joined back to
// its catalog entry.
type LineItem struct {
	ProductID  int64             `json:"id"`
	Category   category.Category `json:"category"`
	Name       string            `json:"name"`
	Type       *string           `json:"type"`
	Region     *string           `json:"region,omitempty"`
	Origin     *string           `json:"origin,omitempty"`
	Country    *string           `json:"country"`
	Vintage    *int              `json:"vintage,omitempty"`
	RoastLevel *string           `json:"roast_level,omitempty"`
	Quantity   int               `json:"quantity"`
	Price      float64           `json:"price"`
	Subtotal   float64           `json:"subtotal"`
}

// NewItem is a line item normalized at the API boundary, before persistence.
// Category carries the raw resolved value; items that do not resolve to a
// known category are dropped during order creation rather than rejected.
type NewItem struct {
	ProductID int64
	Category  string
	Quantity  int
	Price     decimal.Decimal
}
